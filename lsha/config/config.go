package config

import (
	"fmt"

	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/checksum"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by the command line flags, the optional config file and viper.
const (
	KeyChecksum        = "checksum"
	KeyRecursive       = "recursive"
	KeyHidden          = "hidden"
	KeyTimestamp       = "timestamp"
	KeyXattrs          = "xattrs"
	KeyPerms           = "perms"
	KeyFullPath        = "full-path"
	KeyAll             = "all"
	KeyAlgorithm       = "algo"
	KeyExcludeChecksum = "exclude-checksum"
	KeyExcludeXattrs   = "exclude-xattrs"
	KeyIgnoreFile      = "ignore-file"
	KeyConfig          = "config"
	KeyVerbose         = "verbose"
)

// Config is the resolved, read-only configuration of one invocation. It is passed by value.
type Config struct {
	Checksum    Toggle
	Recursion   Toggle
	Hidden      Toggle
	Timestamp   Toggle
	Xattrs      Toggle
	Permissions Toggle
	FullPath    Toggle
	All         bool

	Algorithm  checksum.Algorithm
	IgnoreFile string
	Verbose    bool
}

func (c Config) ShowChecksum() bool    { return c.Checksum.Resolve(c.All) }
func (c Config) Recursive() bool       { return c.Recursion.Resolve(c.All) }
func (c Config) IncludeHidden() bool   { return c.Hidden.Resolve(c.All) }
func (c Config) ShowTimestamp() bool   { return c.Timestamp.Resolve(c.All) }
func (c Config) ShowXattrs() bool      { return c.Xattrs.Resolve(c.All) }
func (c Config) ShowPermissions() bool { return c.Permissions.Resolve(c.All) }
func (c Config) ShowFullPath() bool    { return c.FullPath.Resolve(c.All) }

// RegisterFlags defines every configuration flag on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false
	fs.BoolP(KeyChecksum, "c", false, "checksum files")
	fs.BoolP(KeyRecursive, "r", false, "walk recursively")
	fs.BoolP(KeyHidden, "i", false, "include hidden files")
	fs.BoolP(KeyTimestamp, "t", false, "include timestamps")
	fs.BoolP(KeyXattrs, "x", false, "include xattrs")
	fs.BoolP(KeyPerms, "p", false, "include permissions")
	fs.BoolP(KeyFullPath, "f", false, "path + file per-line")
	fs.BoolP(KeyAll, "a", false, "include everything")
	fs.String(KeyAlgorithm, checksum.SHA256.String(), "checksum algorithm: md5, sha1, sha256, sha384 or sha512 (also -c:<algo>)")
	fs.Bool(KeyExcludeXattrs, false, "disable xattrs, useful after -a (also -e:x)")
	fs.Bool(KeyExcludeChecksum, false, "disable checksum, useful after -a (also -e:c)")
	fs.String(KeyIgnoreFile, "", "gitignore-style file listing entries to skip")
	fs.String(KeyConfig, "", "config file holding default values for these flags")
	fs.Bool(KeyVerbose, false, "debug logging on stderr")
}

// LoadConfig reads the configuration from v. Flags must already be bound to v. When the
// config key names a file it is read first and flags set on the command line override it.
func LoadConfig(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	algo, err := checksum.ParseAlgorithm(v.GetString(KeyAlgorithm))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Checksum:    NewToggle(v.GetBool(KeyChecksum), v.GetBool(KeyExcludeChecksum)),
		Recursion:   NewToggle(v.GetBool(KeyRecursive), false),
		Hidden:      NewToggle(v.GetBool(KeyHidden), false),
		Timestamp:   NewToggle(v.GetBool(KeyTimestamp), false),
		Xattrs:      NewToggle(v.GetBool(KeyXattrs), v.GetBool(KeyExcludeXattrs)),
		Permissions: NewToggle(v.GetBool(KeyPerms), false),
		FullPath:    NewToggle(v.GetBool(KeyFullPath), false),
		All:         v.GetBool(KeyAll),
		Algorithm:   algo,
		IgnoreFile:  v.GetString(KeyIgnoreFile),
		Verbose:     v.GetBool(KeyVerbose),
	}, nil
}
