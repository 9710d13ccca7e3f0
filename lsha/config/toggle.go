package config

// Toggle is the resolved state of one optional report field. Inherit defers to the "all"
// master switch; Enabled and Disabled ignore it.
type Toggle int

const (
	Inherit Toggle = iota
	Enabled
	Disabled
)

// NewToggle resolves the explicit enable flag and the exclusion flag of a field. Exclusion
// wins over the explicit flag.
func NewToggle(explicit, excluded bool) Toggle {
	switch {
	case excluded:
		return Disabled
	case explicit:
		return Enabled
	default:
		return Inherit
	}
}

// Resolve reports whether the field is shown given the "all" master switch.
func (t Toggle) Resolve(all bool) bool {
	switch t {
	case Enabled:
		return true
	case Disabled:
		return false
	default:
		return all
	}
}

func (t Toggle) String() string {
	switch t {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "inherit"
	}
}
