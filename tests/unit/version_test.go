package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rexec-dev/rexec-go"
)

// TestVersion_Constants verifies version constants are set correctly.
func TestVersion_Constants(t *testing.T) {
	// Verify constants are not empty
	assert.NotEmpty(t, rexec.Version, "Version should not be empty")
	assert.NotEmpty(t, rexec.APIVersion, "APIVersion should not be empty")
	assert.NotEmpty(t, rexec.APIVersionRange, "APIVersionRange should not be empty")

	// Log values for debugging
	t.Logf("SDK Version: %s", rexec.Version)
	t.Logf("API Version: %s", rexec.APIVersion)
	t.Logf("API Range: %s", rexec.APIVersionRange)
}

// TestIsCompatible tests the IsCompatible convenience function.
func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
	}{
		{
			name:       "exact target version",
			version:    "1.2",
			compatible: true,
		},
		{
			name:       "patch version in range",
			version:    "1.2.1",
			compatible: true,
		},
		{
			name:       "minor version in range",
			version:    "1.5",
			compatible: true,
		},
		{
			name:       "version too old",
			version:    "1.1",
			compatible: false,
		},
		{
			name:       "major version mismatch",
			version:    "2.0",
			compatible: false,
		},
		{
			name:       "empty version",
			version:    "",
			compatible: false,
		},
		{
			name:       "invalid version",
			version:    "not-a-version",
			compatible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rexec.IsCompatible(tt.version)
			assert.Equal(t, tt.compatible, result, "IsCompatible(%q) should return %v", tt.version, tt.compatible)
		})
	}
}

// TestCheckCompatibility_Compatible tests CheckCompatibility with compatible versions.
func TestCheckCompatibility_Compatible(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"exact version", "1.2"},
		{"patch version", "1.2.3"},
		{"newer minor", "1.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rexec.CheckCompatibility(tt.version)

			assert.Equal(t, rexec.Compatible, result.Status)
			assert.True(t, result.IsCompatible())
			assert.Equal(t, tt.version, result.ServerVersion)
			assert.Equal(t, rexec.Version, result.SDKVersion)
			assert.Equal(t, rexec.APIVersion, result.TargetAPIVersion)
			assert.Equal(t, rexec.APIVersionRange, result.SupportedRange)
			assert.Contains(t, result.Message, "compatible")
		})
	}
}

// TestCheckCompatibility_Incompatible tests CheckCompatibility with incompatible versions.
func TestCheckCompatibility_Incompatible(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"too old", "1.1"},
		{"way too old", "0.9"},
		{"too new major", "2.0"},
		{"much too new", "3.1.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rexec.CheckCompatibility(tt.version)

			assert.Equal(t, rexec.Incompatible, result.Status)
			assert.False(t, result.IsCompatible())
			assert.Equal(t, tt.version, result.ServerVersion)
			assert.Contains(t, result.Message, "not compatible")
		})
	}
}

// TestCheckCompatibility_Unknown tests CheckCompatibility with unparseable versions.
func TestCheckCompatibility_Unknown(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"empty string", ""},
		{"invalid format", "not-a-version"},
		{"garbage", "abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rexec.CheckCompatibility(tt.version)

			assert.Equal(t, rexec.Unknown, result.Status)
			assert.False(t, result.IsCompatible())
			assert.NotEmpty(t, result.Message)
		})
	}
}

// TestCompatibilityStatus_String tests the String method on CompatibilityStatus.
func TestCompatibilityStatus_String(t *testing.T) {
	tests := []struct {
		status   rexec.CompatibilityStatus
		expected string
	}{
		{rexec.Compatible, "compatible"},
		{rexec.Incompatible, "incompatible"},
		{rexec.Unknown, "unknown"},
		{rexec.CompatibilityStatus(99), "unknown"}, // Invalid value defaults to unknown
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

// TestMustBeCompatible_Compatible tests MustBeCompatible doesn't panic with compatible version.
func TestMustBeCompatible_Compatible(t *testing.T) {
	// Should not panic
	require.NotPanics(t, func() {
		rexec.MustBeCompatible("1.2")
	})
}

// TestMustBeCompatible_Incompatible tests MustBeCompatible panics with incompatible version.
func TestMustBeCompatible_Incompatible(t *testing.T) {
	// Should panic
	require.Panics(t, func() {
		rexec.MustBeCompatible("1.1")
	})
}

// TestMustBeCompatible_Invalid tests MustBeCompatible panics with invalid version.
func TestMustBeCompatible_Invalid(t *testing.T) {
	// Should panic
	require.Panics(t, func() {
		rexec.MustBeCompatible("invalid")
	})
}
