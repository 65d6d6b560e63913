package rexec

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the Command Execution API version this SDK was built
// for. It doubles as the path segment of every request
// (/api/1.2/...).
const APIVersion = "1.2"

// APIVersionRange is the range of API versions this SDK is expected to
// work with, in semver constraint syntax.
const APIVersionRange = ">= 1.2, < 2.0"
