package trees

import (
	"slices"
	"strings"
)

// FileNode is one listed entry: a file, a sub-directory or any other kind of object found
// in Dir.
type FileNode struct {
	Path     string // Dir and Name joined the way the report spells it
	Dir      string // directory the entry was found in
	Name     string // bare entry name
	IsLink   bool   // the entry itself is a symlink; Metadata describes its target
	Metadata Metadata
}

// IsDir reports whether the entry is listed with the directories.
func (f *FileNode) IsDir() bool {
	return f.Metadata.NodeType == Directory
}

// DirectoryNode is one visited directory with its immediate entries. Children holds the
// sub-directory entries and Files every other entry, each sorted by name.
type DirectoryNode struct {
	Path     string
	Children []*FileNode
	Files    []*FileNode
}

// NewDirectoryNode creates an empty listing for path
func NewDirectoryNode(path string) *DirectoryNode {
	return &DirectoryNode{
		Path:     path,
		Children: make([]*FileNode, 0),
		Files:    make([]*FileNode, 0),
	}
}

// AddEntry files the entry under Children or Files depending on its kind.
func (d *DirectoryNode) AddEntry(entry *FileNode) {
	if entry.IsDir() {
		d.Children = append(d.Children, entry)
		return
	}
	d.Files = append(d.Files, entry)
}

// Sort orders both groups lexicographically by name.
func (d *DirectoryNode) Sort() {
	byName := func(a, b *FileNode) int {
		return strings.Compare(a.Name, b.Name)
	}
	slices.SortFunc(d.Children, byName)
	slices.SortFunc(d.Files, byName)
}

// Entries returns the directories followed by the files.
func (d *DirectoryNode) Entries() []*FileNode {
	entries := make([]*FileNode, 0, len(d.Children)+len(d.Files))
	entries = append(entries, d.Children...)
	return append(entries, d.Files...)
}
