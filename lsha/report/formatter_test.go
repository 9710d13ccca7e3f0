package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/checksum"
	"github.com/ZanzyTHEbar/lsha/lsha/trees"

	"github.com/stretchr/testify/assert"
)

func sampleNode() *trees.FileNode {
	return &trees.FileNode{
		Path: "dir/a.txt",
		Dir:  "dir",
		Name: "a.txt",
		Metadata: trees.Metadata{
			Size:        1234,
			ModifiedAt:  time.Date(2020, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600)),
			NodeType:    trees.Regular,
			Permissions: 0o754,
			Owner:       "alice",
			Group:       "staff",
			Checksum:    strings.Repeat("ab", 32),
		},
	}
}

func TestFormatPermissions(t *testing.T) {
	tests := []struct {
		name     string
		nodeType trees.NodeType
		mode     os.FileMode
		expected string
	}{
		{"regular rwxr-xr--", trees.Regular, 0o754, "-rwxr-xr--"},
		{"directory", trees.Directory, os.ModeDir | 0o755, "drwxr-xr-x"},
		{"no bits", trees.Regular, 0, "----------"},
		{"all bits", trees.Regular, 0o777, "-rwxrwxrwx"},
		{"fifo", trees.FIFO, os.ModeNamedPipe | 0o600, "prw-------"},
		{"socket", trees.Socket, os.ModeSocket | 0o755, "srwxr-xr-x"},
		{"char device", trees.CharDevice, 0o620, "crw--w----"},
		{"block device", trees.BlockDevice, 0o660, "brw-rw----"},
		{"unknown", trees.Unknown, 0o644, "?rw-r--r--"},
		{"setuid ignored", trees.Regular, os.ModeSetuid | 0o755, "-rwxr-xr-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPermissions(tt.nodeType, tt.mode)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, 10)
		})
	}
}

func TestFormatEntry_Defaults(t *testing.T) {
	got := FormatEntry(sampleNode(), config.Config{})
	assert.Equal(t, "       1234 a.txt", got)
}

func TestFormatEntry_AllFields(t *testing.T) {
	node := sampleNode()
	node.Metadata.Xattrs = map[string][]byte{"user.tag": []byte("blue")}

	got := FormatEntry(node, config.Config{All: true})

	expected := strings.Repeat("ab", 32) + "  " +
		"-rwxr-xr--" + " alice  staff " +
		"       1234 " +
		"2020-01-02 02:04:05 UTC " +
		"dir/" +
		"a.txt" +
		"\n  +xattr (md5:48d6215903dff56238e52e8891380c8f) user.tag = \"blue\" "
	assert.Equal(t, expected, got)
}

func TestFormatEntry_FieldOrderAndToggles(t *testing.T) {
	node := sampleNode()

	cfg := config.Config{
		Timestamp: config.Enabled,
		FullPath:  config.Enabled,
	}
	assert.Equal(t, "       1234 2020-01-02 02:04:05 UTC dir/a.txt", FormatEntry(node, cfg))

	cfg = config.Config{
		All:      true,
		Checksum: config.Disabled,
		Xattrs:   config.Disabled,
	}
	got := FormatEntry(node, cfg)
	assert.True(t, strings.HasPrefix(got, "-rwxr-xr--"), got)
	assert.NotContains(t, got, "+xattr")
}

func TestFormatEntry_PlaceholderForNonRegular(t *testing.T) {
	node := &trees.FileNode{
		Dir:  ".",
		Name: "sub",
		Metadata: trees.Metadata{
			NodeType: trees.Directory,
			Checksum: checksum.Placeholder(checksum.MD5),
		},
	}

	cfg := config.Config{Checksum: config.Enabled, Algorithm: checksum.MD5}
	got := FormatEntry(node, cfg)
	assert.Equal(t, strings.Repeat(":.", 16)+"  "+"          0 sub", got)
}

func TestFormatEntry_LongOwnerNotTruncated(t *testing.T) {
	node := sampleNode()
	node.Metadata.Owner = "a-very-long-user"
	node.Metadata.Group = "g"

	got := FormatEntry(node, config.Config{Permissions: config.Enabled})
	assert.Equal(t, "-rwxr-xr--a-very-long-user      g        1234 a.txt", got)
}

func TestFormatEntry_FullPathUnderRoot(t *testing.T) {
	node := sampleNode()
	node.Dir = "/"
	got := FormatEntry(node, config.Config{FullPath: config.Enabled})
	assert.Equal(t, "       1234 /a.txt", got)
}

func TestFormatXattrs(t *testing.T) {
	assert.Empty(t, FormatXattrs(nil))
	assert.Empty(t, FormatXattrs(map[string][]byte{}))

	attrs := map[string][]byte{
		"user.b": []byte("0123456789abcdef"),
		"user.a": []byte("0123456789"),
	}
	got := FormatXattrs(attrs)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "  +xattr (md5:"+checksum.SumBytes([]byte("0123456789"), checksum.MD5)+") user.a = \"0123456789\" ", lines[1])
	assert.Equal(t, "  +xattr (md5:"+checksum.SumBytes([]byte("0123456789abcdef"), checksum.MD5)+") user.b = \"0123456789\" (16 bytes) ", lines[2])
}

func TestFormatXattrValue(t *testing.T) {
	assert.Equal(t, `""`, FormatXattrValue(nil))
	assert.Equal(t, `"short"`, FormatXattrValue([]byte("short")))
	assert.Equal(t, `"\x00\x01"`, FormatXattrValue([]byte{0, 1}))
	assert.Equal(t, `"aaaaaaaaaa" (11 bytes)`, FormatXattrValue([]byte("aaaaaaaaaaa")))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(1999, 12, 31, 23, 59, 59, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, "2000-01-01 04:59:59 UTC", FormatTimestamp(ts))
}
