package rexec

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CompatibilityStatus classifies a server API version against the range
// this SDK supports.
type CompatibilityStatus int

const (
	// Compatible means the server API version is within [APIVersionRange].
	Compatible CompatibilityStatus = iota

	// Incompatible means the server API version parsed but falls outside
	// the supported range.
	Incompatible

	// Unknown means the server API version could not be parsed.
	Unknown
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult describes the outcome of a version check.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible returns true when the check succeeded.
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

// CheckCompatibility validates a workspace-reported API version against
// [APIVersionRange].
//
// Unparseable versions yield the Unknown status rather than an error, so
// callers can decide whether to proceed:
//
//	result := rexec.CheckCompatibility(serverAPIVersion)
//	if !result.IsCompatible() {
//	    log.Printf("version check: %s", result.Message)
//	}
func CheckCompatibility(version string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    version,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse API version %q: %v", version, err)
		return result
	}

	constraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse supported range %q: %v", APIVersionRange, err)
		return result
	}

	if constraint.Check(v) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("API version %s is compatible with SDK %s", version, Version)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("API version %s is not compatible with SDK %s (supported: %s)",
			version, Version, APIVersionRange)
	}
	return result
}

// IsCompatible reports whether a server API version is within the
// supported range.
func IsCompatible(version string) bool {
	return CheckCompatibility(version).IsCompatible()
}

// MustBeCompatible panics when the given API version is not compatible.
// Intended for program startup where an incompatible workspace is fatal.
func MustBeCompatible(version string) {
	result := CheckCompatibility(version)
	if !result.IsCompatible() {
		panic("rexec: " + result.Message)
	}
}
