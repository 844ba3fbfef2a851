package domain

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version wraps a canonical semantic version string. It stores the value
// exactly as declared (SPM-style bare versions like "1.2.0" are common in
// this domain) but compares and canonicalizes through golang.org/x/mod/semver,
// which requires a "v" prefix internally.
type Version struct {
	raw string
}

// NewVersion constructs a Version from a raw string such as "1.2.0" or "v1.2.0".
func NewVersion(raw string) Version {
	return Version{raw: strings.TrimSpace(raw)}
}

// String returns the version exactly as declared.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v holds no value.
func (v Version) IsZero() bool {
	return v.raw == ""
}

// canonical returns the "v"-prefixed form semver.Compare expects.
func (v Version) canonical() string {
	if v.raw == "" {
		return ""
	}
	if strings.HasPrefix(v.raw, "v") {
		return v.raw
	}
	return "v" + v.raw
}

// Compare returns -1, 0, or +1 following semver precedence, using
// golang.org/x/mod/semver.Compare. Two invalid versions compare by their raw
// strings; an invalid version is less than any valid one.
func (v Version) Compare(other Version) int {
	vc, oc := v.canonical(), other.canonical()
	vValid, oValid := semver.IsValid(vc), semver.IsValid(oc)
	switch {
	case vValid && oValid:
		return semver.Compare(vc, oc)
	case !vValid && !oValid:
		return strings.Compare(v.raw, other.raw)
	case vValid:
		return 1
	default:
		return -1
	}
}

// Equal reports version equality under semver precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}
