package filesystem

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/interfaces"
)

// FileSystem runs one listing invocation: it checks the host capabilities, classifies every
// path argument and drives the reader and the traverser.
type FileSystem struct {
	config       config.Config
	capabilities Capabilities
	reader       interfaces.EntryReader
	traverser    *Traverser

	pathUtils  *common.PathUtils
	errorUtils *common.ErrorUtils
}

// Option customizes a FileSystem
type Option func(*FileSystem)

// WithCapabilities replaces the probed host capabilities
func WithCapabilities(caps Capabilities) Option {
	return func(fs *FileSystem) {
		fs.capabilities = caps
	}
}

// WithEntryReader replaces the metadata reader
func WithEntryReader(reader interfaces.EntryReader) Option {
	return func(fs *FileSystem) {
		fs.reader = reader
	}
}

// New creates a FileSystem for cfg. The ignore file named by cfg, if any, is compiled here.
func New(cfg config.Config, opts ...Option) (*FileSystem, error) {
	ignored, err := LoadIgnoreFile(cfg.IgnoreFile)
	if err != nil {
		return nil, err
	}

	fs := &FileSystem{
		config:       cfg,
		capabilities: ProbeCapabilities(),
		reader:       NewMetadataReader(cfg),
		pathUtils:    common.NewPathUtils(),
		errorUtils:   common.NewErrorUtils(),
	}

	for _, opt := range opts {
		opt(fs)
	}

	fs.traverser = NewTraverser(cfg, fs.reader, ignored)

	return fs, nil
}

// List reports every path in order and finishes with handler.Complete. The capability check
// runs before anything is read; the first error stops the run.
func (fs *FileSystem) List(ctx context.Context, paths []string, handler interfaces.TraversalHandler) error {
	if err := fs.capabilities.Require(fs.config); err != nil {
		return err
	}

	for _, path := range paths {
		if err := fs.listPath(ctx, path, handler); err != nil {
			return err
		}
	}

	return handler.Complete()
}

func (fs *FileSystem) listPath(ctx context.Context, path string, handler interfaces.TraversalHandler) error {
	if err := fs.pathUtils.ValidatePath(path); err != nil {
		return err
	}

	if !fs.config.IncludeHidden() && fs.pathUtils.IsHidden(path) {
		slog.Debug("Skipping hidden path argument", "path", path)
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fs.errorUtils.IOError(err, "stat", path)
	}

	if !info.IsDir() {
		node, err := fs.reader.ReadEntry(filepath.Dir(path), filepath.Base(path))
		if err != nil {
			return err
		}
		return handler.HandleFile(node)
	}

	root := fs.pathUtils.StripTrailingSeparators(path)
	_, err = fs.traverser.TraverseDirectory(ctx, root, handler)
	return err
}
