//go:build unix

package trees

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
)

// ownerIDs returns the numeric owner and group of a file.
func ownerIDs(fileinfo os.FileInfo) (uid, gid uint32, err error) {
	stat, ok := fileinfo.Sys().(*syscall.Stat_t)
	if !ok || stat == nil {
		return 0, 0, fmt.Errorf("unable to read ownership of %s: %w", fileinfo.Name(), common.ErrIdentityResolution)
	}
	return stat.Uid, stat.Gid, nil
}

// LookupOwnership resolves the owner and group names of a file. An id without a name is
// reported as ErrIdentityResolution; there is no fallback to the numeric id.
func LookupOwnership(fileinfo os.FileInfo) (owner, group string, err error) {
	uid, gid, err := ownerIDs(fileinfo)
	if err != nil {
		return "", "", err
	}

	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", "", fmt.Errorf("owner uid %d: %w: %w", uid, common.ErrIdentityResolution, err)
	}

	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return "", "", fmt.Errorf("group gid %d: %w: %w", gid, common.ErrIdentityResolution, err)
	}

	return u.Username, g.Name, nil
}
