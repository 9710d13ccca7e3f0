//go:build !(linux || darwin || freebsd || netbsd || solaris)

package filesystem

// isXattrUnsupported is a stub for platforms where the capability probe already reports
// xattrs as unavailable
func isXattrUnsupported(err error) bool {
	return true
}

func isXattrMissing(err error) bool {
	return false
}
