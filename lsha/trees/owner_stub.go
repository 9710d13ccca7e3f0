//go:build !unix

package trees

import "os"

// LookupOwnership is a stub for platforms without numeric file ownership. There is no id to
// resolve, so the names are left empty.
func LookupOwnership(fileinfo os.FileInfo) (owner, group string, err error) {
	return "", "", nil
}
