package filesystem

import (
	"os"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/checksum"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
	"github.com/ZanzyTHEbar/lsha/lsha/trees"
)

// MetadataReader builds the snapshot of single entries. Ownership is always resolved, so an
// unnamed uid or gid fails the entry whether or not the column is shown. Xattrs and checksums
// are only read when those columns are enabled.
type MetadataReader struct {
	config     config.Config
	pathUtils  *common.PathUtils
	errorUtils *common.ErrorUtils
}

// NewMetadataReader creates a reader for cfg
func NewMetadataReader(cfg config.Config) *MetadataReader {
	return &MetadataReader{
		config:     cfg,
		pathUtils:  common.NewPathUtils(),
		errorUtils: common.NewErrorUtils(),
	}
}

// ReadEntry stats the entry name in dir, following symlinks, and fills in the optional
// parts of its metadata.
func (r *MetadataReader) ReadEntry(dir, name string) (*trees.FileNode, error) {
	path := r.pathUtils.JoinChild(dir, name)

	info, err := os.Lstat(path)
	if err != nil {
		return nil, r.errorUtils.IOError(err, "stat", path)
	}

	isLink := info.Mode()&os.ModeSymlink != 0
	if isLink {
		if info, err = os.Stat(path); err != nil {
			return nil, r.errorUtils.IOError(err, "stat", path)
		}
	}

	node := &trees.FileNode{
		Path:     path,
		Dir:      dir,
		Name:     name,
		IsLink:   isLink,
		Metadata: trees.NewMetadata(info),
	}

	owner, group, err := trees.LookupOwnership(info)
	if err != nil {
		return nil, r.errorUtils.WrapError(err, "failed to resolve ownership of %s", path)
	}
	node.Metadata.Owner = owner
	node.Metadata.Group = group

	if r.config.ShowXattrs() {
		attrs, err := ReadXattrs(path)
		if err != nil {
			return nil, err
		}
		node.Metadata.Xattrs = attrs
	}

	if r.config.ShowChecksum() {
		if node.Metadata.IsRegular() {
			sum, err := checksum.Compute(path, r.config.Algorithm)
			if err != nil {
				return nil, err
			}
			node.Metadata.Checksum = sum
		} else {
			node.Metadata.Checksum = checksum.Placeholder(r.config.Algorithm)
		}
	}

	return node, nil
}
