package parser

import (
	"github.com/erraggy/oasts/oaserrors"
)

// SupportedVersions describes the accepted version family in error messages.
const SupportedVersions = "3.1.x"

// OASVersion represents a release of the OpenAPI Specification in the 3.1 family.
type OASVersion int

const (
	// Unknown represents an unknown or unsupported OAS version
	Unknown OASVersion = iota
	// OASVersion310 OpenAPI Specification Version 3.1.0
	OASVersion310
	// OASVersion311 OpenAPI Specification Version 3.1.1
	OASVersion311
	// OASVersion312 OpenAPI Specification Version 3.1.2
	OASVersion312
)

var versionToString = map[OASVersion]string{
	OASVersion310: "3.1.0",
	OASVersion311: "3.1.1",
	OASVersion312: "3.1.2",
}

// latestKnown is used for 3.1 patch releases newer than the ones listed above.
const latestKnown = OASVersion312

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// ParseVersion maps a declared openapi version string to an OASVersion.
//
// Any "3.1.<patch>" string is accepted; a patch newer than the latest known
// release maps to the latest known release. Everything else, including
// "3.1" without a patch and pre-release suffixes, is rejected.
func ParseVersion(s string) (OASVersion, bool) {
	v, err := parseVersion(s)
	if err != nil || !v.hasPatch || v.prerelease != "" || v.major != 3 || v.minor != 1 {
		return Unknown, false
	}
	for oasVer, str := range versionToString {
		if str == s {
			return oasVer, true
		}
	}
	return latestKnown, true
}

// checkVersion validates a declared version, returning a VersionError when it
// is missing or outside the 3.1 family.
func checkVersion(declared string) (OASVersion, error) {
	if declared == "" {
		return Unknown, &oaserrors.VersionError{Supported: SupportedVersions}
	}
	v, ok := ParseVersion(declared)
	if !ok {
		return Unknown, &oaserrors.VersionError{Version: declared, Supported: SupportedVersions}
	}
	return v, nil
}
