package checksum

import (
	"bufio"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	internal "github.com/ZanzyTHEbar/lsha/lsha"
	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/common"
)

// Algorithm selects the digest used for file checksums. The zero value is SHA256.
type Algorithm int

const (
	SHA256 Algorithm = iota
	MD5
	SHA1
	SHA384
	SHA512
)

// placeholderToken is repeated to the digest width for entries that are not regular files.
const placeholderToken = ":."

var algorithmNames = map[Algorithm]string{
	MD5:    "md5",
	SHA1:   "sha1",
	SHA256: "sha256",
	SHA384: "sha384",
	SHA512: "sha512",
}

// Algorithms lists every supported algorithm in flag order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA384, SHA512}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name such as "sha1" or "SHA-512" to an Algorithm. An empty name
// selects the default.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	if normalized == "" {
		return SHA256, nil
	}
	for algo, algoName := range algorithmNames {
		if algoName == normalized {
			return algo, nil
		}
	}
	return SHA256, fmt.Errorf("%w: %q", common.ErrUnknownAlgorithm, name)
}

// New returns a fresh hash for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case MD5:
		return md5.New()
	case SHA1:
		return sha1.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	default:
		return sha256.New()
	}
}

// HexLen is the length of the hexadecimal digest.
func (a Algorithm) HexLen() int {
	return a.New().Size() * 2
}

// Placeholder returns the mock checksum printed for non-regular entries. It is exactly as
// wide as a real digest of the same algorithm.
func Placeholder(a Algorithm) string {
	return strings.Repeat(placeholderToken, a.HexLen()/len(placeholderToken))
}

// Compute streams the file at path through the algorithm and returns the lowercase hex
// digest. The file is closed before returning.
func Compute(path string, a Algorithm) (string, error) {
	eu := common.NewErrorUtils()

	file, err := os.Open(path)
	if err != nil {
		return "", eu.IOError(err, "open", path)
	}
	defer file.Close()

	sum, err := Sum(bufio.NewReaderSize(file, internal.DefaultChunkSize), a)
	if err != nil {
		return "", eu.IOError(err, "checksum", path)
	}
	return sum, nil
}

// Sum hashes everything read from r in fixed size chunks.
func Sum(r io.Reader, a Algorithm) (string, error) {
	hasher := a.New()
	buf := make([]byte, internal.DefaultChunkSize)
	if _, err := io.CopyBuffer(hasher, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// SumBytes returns the hex digest of data.
func SumBytes(data []byte, a Algorithm) string {
	hasher := a.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
