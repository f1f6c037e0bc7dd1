// Package version resolves the version string reported by the CLI.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Fallback is reported when neither the build nor the embedded manifest
// carries a usable version.
const Fallback = "1.0.0"

// Resolve returns the first candidate that parses as semver, normalized
// without a leading "v". Build versions such as "dev" are skipped.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		v, err := parseSemver(c)
		if err != nil {
			continue
		}
		return v.String()
	}
	return Fallback
}

// parseSemver strips a leading "v" and parses the version string strictly.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.StrictNewVersion(version)
}
