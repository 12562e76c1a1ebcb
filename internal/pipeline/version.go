package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Supported dump format versions: greater than 0.4.99 and at most
// 0.5.0-next.2. The 0.5.0 release itself is accepted; only later 0.5.0
// pre-releases are not.
const (
	minVersionExclusive = "v0.4.99"
	maxRelease          = "v0.5.0"
	maxPrerelease       = "v0.5.0-next.2"
)

// coreVersion strips pre-release and build suffixes, leaving vX.Y.Z.
func coreVersion(v string) string {
	v = strings.TrimSuffix(v, semver.Build(v))
	return strings.TrimSuffix(v, semver.Prerelease(v))
}

// CheckVersion validates a dump's metaData version against the supported
// range.
func CheckVersion(version string) error {
	v := "v" + version
	if !semver.IsValid(v) {
		return &SchemaError{Msg: fmt.Sprintf("invalid format version %q", version)}
	}
	core := coreVersion(v)
	if semver.Compare(core, minVersionExclusive) <= 0 || semver.Compare(core, maxRelease) > 0 {
		return &SchemaError{Msg: fmt.Sprintf("unsupported format version %q", version)}
	}
	if semver.Compare(core, maxRelease) == 0 && semver.Prerelease(v) != "" &&
		semver.Compare(v, maxPrerelease) > 0 {
		return &SchemaError{Msg: fmt.Sprintf("unsupported format version %q", version)}
	}
	return nil
}
