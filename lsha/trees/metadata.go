package trees

import (
	"os"
	"time"
)

// Metadata is the snapshot of OS metadata rendered for one entry
type Metadata struct {
	Size        int64             `json:"size"`
	ModifiedAt  time.Time         `json:"modified_at"`
	NodeType    NodeType          `json:"node_type"`
	Permissions os.FileMode       `json:"permissions"`
	Owner       string            `json:"owner"`
	Group       string            `json:"group"`
	Xattrs      map[string][]byte `json:"xattrs,omitempty"`
	Checksum    string            `json:"checksum,omitempty"`
}

type NodeType int

const (
	Unknown NodeType = iota
	Regular
	Directory
	BlockDevice
	CharDevice
	FIFO
	Socket
)

func (n NodeType) String() string {
	switch n {
	case Regular:
		return "Regular"
	case Directory:
		return "Directory"
	case BlockDevice:
		return "BlockDevice"
	case CharDevice:
		return "CharDevice"
	case FIFO:
		return "FIFO"
	case Socket:
		return "Socket"
	default:
		return "Unknown"
	}
}

// TypeChar is the leading character of the permission column.
func (n NodeType) TypeChar() byte {
	switch n {
	case Regular:
		return '-'
	case Directory:
		return 'd'
	case BlockDevice:
		return 'b'
	case CharDevice:
		return 'c'
	case FIFO:
		return 'p'
	case Socket:
		return 's'
	default:
		return '?'
	}
}

// NodeTypeOf classifies a followed (stat, not lstat) file mode, so symlinks never reach it.
func NodeTypeOf(mode os.FileMode) NodeType {
	switch {
	case mode.IsRegular():
		return Regular
	case mode.IsDir():
		return Directory
	case mode&os.ModeNamedPipe != 0:
		return FIFO
	case mode&os.ModeSocket != 0:
		return Socket
	case mode&os.ModeDevice != 0 && mode&os.ModeCharDevice != 0:
		return CharDevice
	case mode&os.ModeDevice != 0:
		return BlockDevice
	default:
		return Unknown
	}
}

// NewMetadata builds the stat part of the snapshot. Owner, group, xattrs and checksum are
// filled in by the reader when the configuration asks for them.
func NewMetadata(fileinfo os.FileInfo) Metadata {
	return Metadata{
		Size:        fileinfo.Size(),
		ModifiedAt:  fileinfo.ModTime(),
		NodeType:    NodeTypeOf(fileinfo.Mode()),
		Permissions: fileinfo.Mode(),
	}
}

// IsRegular reports whether the entry is a regular file and therefore gets a real checksum.
func (m *Metadata) IsRegular() bool {
	return m.NodeType == Regular
}
