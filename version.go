package saybox

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the saybox release in SemVer form, without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag, e.g. "v0.3.0".
func VersionTag() string {
	return "v" + Version()
}

// VersionLine is what `saybox -version` prints, e.g. "saybox v0.3.0".
// A VERSION file that is not SemVer reports as "saybox (devel)".
func VersionLine() string {
	if !IsSemver(Version()) {
		return "saybox (devel)"
	}
	return "saybox " + VersionTag()
}

// IsSemver reports whether v is a SemVer 2.0.0 version string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
