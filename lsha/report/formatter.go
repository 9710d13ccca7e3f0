package report

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/checksum"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
	"github.com/ZanzyTHEbar/lsha/lsha/trees"
)

const (
	// TimestampLayout renders modification times, always in UTC.
	TimestampLayout = "2006-01-02 15:04:05 MST"

	// xattrPreviewBytes is how much of an attribute value is printed before truncation.
	xattrPreviewBytes = 10
)

var rwx = [3]byte{'r', 'w', 'x'}

// FormatEntry renders one entry as a report line. Fields are emitted in a fixed order and
// only when the configuration enables them; size and name are always present.
func FormatEntry(node *trees.FileNode, cfg config.Config) string {
	var b strings.Builder
	m := node.Metadata

	if cfg.ShowChecksum() {
		sum := m.Checksum
		if sum == "" {
			sum = checksum.Placeholder(cfg.Algorithm)
		}
		b.WriteString(sum)
		b.WriteString("  ")
	}

	if cfg.ShowPermissions() {
		b.WriteString(FormatPermissions(m.NodeType, m.Permissions))
		fmt.Fprintf(&b, "%6s %6s ", m.Owner, m.Group)
	}

	fmt.Fprintf(&b, "%11d ", m.Size)

	if cfg.ShowTimestamp() {
		b.WriteString(FormatTimestamp(m.ModifiedAt))
		b.WriteByte(' ')
	}

	if cfg.ShowFullPath() {
		b.WriteString(common.NewPathUtils().ParentPrefix(node.Dir))
	}

	b.WriteString(node.Name)

	if cfg.ShowXattrs() {
		b.WriteString(FormatXattrs(m.Xattrs))
	}

	return b.String()
}

// FormatPermissions renders the 10 character type and rwx column, e.g. "-rwxr-xr--".
func FormatPermissions(nodeType trees.NodeType, mode os.FileMode) string {
	out := make([]byte, 10)
	out[0] = nodeType.TypeChar()

	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			out[i+1] = rwx[i%3]
		} else {
			out[i+1] = '-'
		}
	}
	return string(out)
}

// FormatTimestamp renders t in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatXattrs renders the attribute lines appended to an entry, sorted by name. Each line
// starts with a line break; an empty map renders as nothing.
func FormatXattrs(attrs map[string][]byte) string {
	if len(attrs) == 0 {
		return ""
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		value := attrs[name]
		fmt.Fprintf(&b, "\n  +xattr (md5:%s) %s = %s ",
			checksum.SumBytes(value, checksum.MD5), name, FormatXattrValue(value))
	}
	return b.String()
}

// FormatXattrValue quotes a raw attribute value, keeping only its first bytes when long.
func FormatXattrValue(value []byte) string {
	if len(value) > xattrPreviewBytes {
		return strconv.Quote(string(value[:xattrPreviewBytes])) + fmt.Sprintf(" (%d bytes)", len(value))
	}
	return strconv.Quote(string(value))
}
