package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/checksum"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
	"github.com/ZanzyTHEbar/lsha/lsha/trees"

	"github.com/pkg/xattr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataReader_ReadEntry(t *testing.T) {
	root := t.TempDir()
	createTestTree(t, root, "file.txt", "sub/")
	require.NoError(t, os.Chmod(filepath.Join(root, "file.txt"), 0o754))

	t.Run("Stat only by default", func(t *testing.T) {
		reader := NewMetadataReader(config.Config{})

		node, err := reader.ReadEntry(root, "file.txt")
		require.NoError(t, err)

		assert.Equal(t, root+"/file.txt", node.Path)
		assert.Equal(t, root, node.Dir)
		assert.Equal(t, "file.txt", node.Name)
		assert.False(t, node.IsLink)
		assert.Equal(t, trees.Regular, node.Metadata.NodeType)
		assert.Equal(t, os.FileMode(0o754), node.Metadata.Permissions.Perm())
		assert.Equal(t, int64(len("file.txt")), node.Metadata.Size)
		assert.Empty(t, node.Metadata.Checksum)
		assert.Nil(t, node.Metadata.Xattrs)
	})

	t.Run("Checksum for regular files", func(t *testing.T) {
		reader := NewMetadataReader(config.Config{Checksum: config.Enabled, Algorithm: checksum.SHA1})

		node, err := reader.ReadEntry(root, "file.txt")
		require.NoError(t, err)
		expected, err := checksum.Compute(filepath.Join(root, "file.txt"), checksum.SHA1)
		require.NoError(t, err)
		assert.Equal(t, expected, node.Metadata.Checksum)
	})

	t.Run("Placeholder for directories", func(t *testing.T) {
		reader := NewMetadataReader(config.Config{Checksum: config.Enabled, Algorithm: checksum.SHA384})

		node, err := reader.ReadEntry(root, "sub")
		require.NoError(t, err)
		assert.True(t, node.IsDir())
		assert.Equal(t, checksum.Placeholder(checksum.SHA384), node.Metadata.Checksum)
		assert.Len(t, node.Metadata.Checksum, 96)
	})

	t.Run("Missing entry is an I/O failure", func(t *testing.T) {
		reader := NewMetadataReader(config.Config{})

		_, err := reader.ReadEntry(root, "missing")
		assert.ErrorIs(t, err, common.ErrIO)
	})
}

func TestMetadataReader_BrokenSymlink(t *testing.T) {
	root := t.TempDir()
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	_, err := NewMetadataReader(config.Config{}).ReadEntry(root, "dangling")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrIO)
}

func TestMetadataReader_Ownership(t *testing.T) {
	root := t.TempDir()
	createTestTree(t, root, "owned.txt")

	info, err := os.Stat(filepath.Join(root, "owned.txt"))
	require.NoError(t, err)
	owner, group, err := trees.LookupOwnership(info)
	if err != nil {
		t.Skipf("ownership not resolvable on this host: %v", err)
	}

	for _, cfg := range []config.Config{{}, {Permissions: config.Enabled}} {
		node, err := NewMetadataReader(cfg).ReadEntry(root, "owned.txt")
		require.NoError(t, err)
		assert.Equal(t, owner, node.Metadata.Owner, "ownership is resolved whether or not it is shown")
		assert.Equal(t, group, node.Metadata.Group)
	}
}

func TestReadXattrs(t *testing.T) {
	if ProbeCapabilities().Xattr != Available {
		t.Skip("xattrs unavailable on this platform")
	}

	root := t.TempDir()
	createTestTree(t, root, "tagged.txt", "plain.txt")
	tagged := filepath.Join(root, "tagged.txt")

	if err := xattr.Set(tagged, "user.lsha.test", []byte("0123456789abc")); err != nil {
		t.Skipf("filesystem does not accept user xattrs: %v", err)
	}

	attrs, err := ReadXattrs(tagged)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abc"), attrs["user.lsha.test"])

	node, err := NewMetadataReader(config.Config{Xattrs: config.Enabled}).ReadEntry(root, "tagged.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abc"), node.Metadata.Xattrs["user.lsha.test"])

	plain, err := ReadXattrs(filepath.Join(root, "plain.txt"))
	require.NoError(t, err)
	assert.NotContains(t, plain, "user.lsha.test")
}

func TestCapabilities_Require(t *testing.T) {
	missing := Capabilities{OS: "plan9", Xattr: Unavailable}
	present := Capabilities{OS: "linux", Xattr: Available}

	assert.ErrorIs(t, missing.Require(config.Config{Xattrs: config.Enabled}), common.ErrCapabilityMissing)
	assert.ErrorIs(t, missing.Require(config.Config{All: true}), common.ErrCapabilityMissing)
	assert.NoError(t, missing.Require(config.Config{All: true, Xattrs: config.Disabled}))
	assert.NoError(t, missing.Require(config.Config{}))
	assert.NoError(t, present.Require(config.Config{All: true}))

	assert.Equal(t, "available", Available.String())
	assert.Equal(t, "unavailable", Unavailable.String())
}
