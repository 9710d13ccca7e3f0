package filesystem

import (
	"context"
	"log/slog"
	"os"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/interfaces"
	"github.com/ZanzyTHEbar/lsha/lsha/trees"
)

// Traverser walks a directory tree depth first, one directory at a time, and hands every
// sorted listing to a TraversalHandler before descending into its sub-directories.
type Traverser struct {
	reader        interfaces.EntryReader
	ignored       interfaces.IgnoreChecker
	recursive     bool
	includeHidden bool
	pathUtils     *common.PathUtils
	errorUtils    *common.ErrorUtils
}

// TraversalStats counts what a walk visited
type TraversalStats struct {
	DirsProcessed    int64
	EntriesProcessed int64
	EntriesSkipped   int64
}

// NewTraverser creates a traverser honouring the recursion and hidden-entry settings of cfg.
// ignored may be nil.
func NewTraverser(cfg config.Config, reader interfaces.EntryReader, ignored interfaces.IgnoreChecker) *Traverser {
	return &Traverser{
		reader:        reader,
		ignored:       ignored,
		recursive:     cfg.Recursive(),
		includeHidden: cfg.IncludeHidden(),
		pathUtils:     common.NewPathUtils(),
		errorUtils:    common.NewErrorUtils(),
	}
}

// TraverseDirectory lists rootPath and, when recursion is enabled, every sub-directory below
// it. The first error aborts the walk.
func (t *Traverser) TraverseDirectory(ctx context.Context, rootPath string, handler interfaces.TraversalHandler) (*TraversalStats, error) {
	stats := &TraversalStats{}

	slog.Debug("Starting directory traversal",
		"root", rootPath,
		"recursive", t.recursive,
		"includeHidden", t.includeHidden)

	if err := t.walk(ctx, rootPath, rootPath, handler, stats); err != nil {
		return stats, err
	}

	slog.Debug("Directory traversal completed",
		"root", rootPath,
		"dirs", stats.DirsProcessed,
		"entries", stats.EntriesProcessed,
		"skipped", stats.EntriesSkipped)

	return stats, nil
}

func (t *Traverser) walk(ctx context.Context, rootPath, dirPath string, handler interfaces.TraversalHandler, stats *TraversalStats) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	node, err := t.processDirectory(rootPath, dirPath, stats)
	if err != nil {
		return err
	}

	if err := handler.HandleDirectory(node); err != nil {
		return err
	}
	stats.DirsProcessed++

	if !t.recursive {
		return nil
	}

	for _, child := range node.Children {
		if child.IsLink {
			slog.Debug("Not descending into symlinked directory", "path", child.Path)
			continue
		}
		if err := t.walk(ctx, rootPath, child.Path, handler, stats); err != nil {
			return err
		}
	}

	return nil
}

// processDirectory reads the immediate entries of dirPath into a sorted listing.
func (t *Traverser) processDirectory(rootPath, dirPath string, stats *TraversalStats) (*trees.DirectoryNode, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, t.errorUtils.HandleOperationError(err, "read directory", dirPath, true)
	}

	node := trees.NewDirectoryNode(dirPath)

	for _, entry := range entries {
		if t.skip(rootPath, dirPath, entry) {
			stats.EntriesSkipped++
			continue
		}

		child, err := t.reader.ReadEntry(dirPath, entry.Name())
		if err != nil {
			return nil, err
		}
		node.AddEntry(child)
		stats.EntriesProcessed++
	}

	node.Sort()
	return node, nil
}

// skip applies the hidden-entry rule and the ignore patterns.
func (t *Traverser) skip(rootPath, dirPath string, entry os.DirEntry) bool {
	name := entry.Name()

	if !t.includeHidden && common.IsHiddenName(name) {
		slog.Debug("Skipping hidden entry", "dir", dirPath, "name", name)
		return true
	}

	if t.ignored == nil {
		return false
	}

	rel, err := t.pathUtils.RelativeTo(rootPath, t.pathUtils.JoinChild(dirPath, name))
	if err != nil {
		return false
	}
	// directory patterns such as "build/" only match with the trailing separator
	if t.ignored.MatchesPath(rel) || (entry.IsDir() && t.ignored.MatchesPath(rel+"/")) {
		slog.Debug("Ignoring entry", "dir", dirPath, "name", name)
		return true
	}
	return false
}
