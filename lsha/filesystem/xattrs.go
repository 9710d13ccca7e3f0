package filesystem

import (
	"log/slog"

	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"

	"github.com/pkg/xattr"
)

// ReadXattrs returns the extended attributes of path as name to raw value. A file without
// attributes, or on a filesystem that does not support them, yields an empty map.
func ReadXattrs(path string) (map[string][]byte, error) {
	eu := common.NewErrorUtils()
	attrs := make(map[string][]byte)

	names, err := xattr.List(path)
	if err != nil {
		if isXattrUnsupported(err) {
			slog.Debug("Extended attributes not supported", "path", path)
			return attrs, nil
		}
		return nil, eu.IOError(err, "list xattrs of", path)
	}

	for _, name := range names {
		value, err := xattr.Get(path, name)
		if err != nil {
			// removed between List and Get
			if isXattrMissing(err) {
				continue
			}
			return nil, eu.IOError(err, "read xattr "+name+" of", path)
		}
		attrs[name] = value
	}

	return attrs, nil
}
