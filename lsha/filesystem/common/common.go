package common

// This package contains shared helpers used across the filesystem packages:
// the error taxonomy, error wrapping and the path rules of the listing (hidden
// entries, trailing separators, how child paths are spelled in the report).
