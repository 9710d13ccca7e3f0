package filesystem

import (
	"fmt"
	"runtime"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"

	"github.com/pkg/xattr"
)

// CapabilityStatus is the result of probing one optional host capability
type CapabilityStatus int

const (
	Unavailable CapabilityStatus = iota
	Available
)

func (s CapabilityStatus) String() string {
	if s == Available {
		return "available"
	}
	return "unavailable"
}

// Capabilities represents the detected host capabilities the listing depends on
type Capabilities struct {
	OS    string
	Xattr CapabilityStatus
}

// ProbeCapabilities detects the capabilities of the running host. It is called once before
// any traversal.
func ProbeCapabilities() Capabilities {
	caps := Capabilities{
		OS:    runtime.GOOS,
		Xattr: Unavailable,
	}
	if xattr.XATTR_SUPPORTED {
		caps.Xattr = Available
	}
	return caps
}

// Require fails with ErrCapabilityMissing when cfg asks for something the host cannot do.
func (c Capabilities) Require(cfg config.Config) error {
	if cfg.ShowXattrs() && c.Xattr != Available {
		return fmt.Errorf("xattrs requested on %s: %w", c.OS, common.ErrCapabilityMissing)
	}
	return nil
}
