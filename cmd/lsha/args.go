package main

import (
	"strings"

	"github.com/ZanzyTHEbar/lsha/lsha/config"
)

// colon style flags that pflag cannot parse as shorthands
var colonFlags = map[string]string{
	"-e:x": "--" + config.KeyExcludeXattrs,
	"-e:c": "--" + config.KeyExcludeChecksum,
}

const algorithmPrefix = "-c:"

// normalizeArgs rewrites the "-c:<algo>" and "-e:<field>" forms into long flags. Everything
// after "--" is passed through untouched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if long, ok := colonFlags[arg]; ok {
			out = append(out, long)
			continue
		}
		if algo, ok := strings.CutPrefix(arg, algorithmPrefix); ok {
			out = append(out, "--"+config.KeyAlgorithm+"="+algo)
			continue
		}
		out = append(out, arg)
	}
	return out
}
