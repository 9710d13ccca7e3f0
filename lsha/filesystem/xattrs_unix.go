//go:build linux || darwin || freebsd || netbsd || solaris

package filesystem

import (
	"errors"
	"syscall"

	"github.com/pkg/xattr"
)

func isXattrUnsupported(err error) bool {
	var xerr *xattr.Error
	if errors.As(err, &xerr) {
		err = xerr.Err
	}
	return errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.EOPNOTSUPP)
}

func isXattrMissing(err error) bool {
	var xerr *xattr.Error
	if errors.As(err, &xerr) {
		err = xerr.Err
	}
	return errors.Is(err, xattr.ENOATTR)
}
