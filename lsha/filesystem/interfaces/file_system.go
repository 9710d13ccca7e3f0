package interfaces

import (
	"github.com/ZanzyTHEbar/lsha/lsha/trees"
)

// TraversalHandler receives the listing as the walker produces it. HandleDirectory is called
// once per visited directory with its sorted entries; HandleFile is called for a top-level
// argument that is not a directory. Complete is called once after every argument was
// processed without error.
type TraversalHandler interface {
	HandleDirectory(node *trees.DirectoryNode) error
	HandleFile(node *trees.FileNode) error
	Complete() error
}

// IgnoreChecker interface for file ignore patterns
type IgnoreChecker interface {
	MatchesPath(path string) bool
}

// EntryReader produces the snapshot of one entry found in dir.
type EntryReader interface {
	ReadEntry(dir, name string) (*trees.FileNode, error)
}
