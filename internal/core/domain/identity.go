package domain

import "strings"

// PackageIdentity is a canonicalized name uniquely identifying a package
// across every kind of reference to it (path, source-control URL, registry
// coordinate). Canonicalization case-folds and strips any scheme prefix so
// that "https://Example.com/Foo" and "example.com/foo" name the same package.
type PackageIdentity struct {
	s InternedString
}

// NewPackageIdentity canonicalizes raw and interns the result.
func NewPackageIdentity(raw string) PackageIdentity {
	return PackageIdentity{s: NewInternedString(canonicalizeIdentity(raw))}
}

// String returns the canonical identity string.
func (id PackageIdentity) String() string {
	return id.s.String()
}

// IsZero reports whether id was never assigned a value.
func (id PackageIdentity) IsZero() bool {
	return id.s.String() == ""
}

// MarshalText implements encoding.TextMarshaler.
func (id PackageIdentity) MarshalText() ([]byte, error) {
	return id.s.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *PackageIdentity) UnmarshalText(text []byte) error {
	id.s = NewInternedString(canonicalizeIdentity(string(text)))
	return nil
}

func canonicalizeIdentity(raw string) string {
	s := strings.TrimSpace(raw)
	for _, scheme := range []string{"https://", "http://", "git+ssh://", "git://", "ssh://"} {
		if strings.HasPrefix(strings.ToLower(s), scheme) {
			s = s[len(scheme):]
			break
		}
	}
	s = strings.TrimSuffix(s, ".git")
	s = strings.TrimSuffix(s, "/")
	return strings.ToLower(s)
}

// DeprecatedNameSet answers whether a requested name matches either the
// current identity or one of its recorded deprecated aliases. Used by the
// orchestrator's partial-update pin-dropping (spec.md §4.7 step 3).
type DeprecatedNameSet struct {
	Current    PackageIdentity
	Deprecated []PackageIdentity
}

// Matches reports whether requested resolves to this identity, either
// directly or through a recorded deprecated alias.
func (d DeprecatedNameSet) Matches(requested PackageIdentity) bool {
	if d.Current == requested {
		return true
	}
	for _, old := range d.Deprecated {
		if old == requested {
			return true
		}
	}
	return false
}
