package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// version represents a semantic version with major, minor, and patch components.
type version struct {
	major      int
	minor      int
	patch      int
	prerelease string
	// hasPatch is false when the source string omitted the patch component.
	hasPatch bool
}

// parseVersion parses a semantic version string into a version struct.
// Supports "major.minor" and "major.minor.patch" with an optional "-prerelease" suffix.
func parseVersion(s string) (*version, error) {
	var prerelease string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		prerelease = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	major, err := parseComponent(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid major version: %q", parts[0])
	}
	minor, err := parseComponent(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid minor version: %q", parts[1])
	}

	v := &version{major: major, minor: minor, prerelease: prerelease}
	if len(parts) == 3 {
		v.patch, err = parseComponent(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid patch version: %q", parts[2])
		}
		v.hasPatch = true
	}
	return v, nil
}

// parseComponent parses a single numeric version component. Only ASCII
// digits are accepted, so "+1" and " 1" are rejected.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > math.MaxInt32 {
		return 0, fmt.Errorf("out of range")
	}
	return n, nil
}

// String returns the version in "major.minor.patch[-prerelease]" form.
func (v *version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	if v.prerelease != "" {
		s += "-" + v.prerelease
	}
	return s
}
