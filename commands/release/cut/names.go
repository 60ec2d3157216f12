package cutCmd

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/version"
)

// releaseTag computes the tag the given version is to be released as.
// A rehearsal uses the test prefix so that it can never collide with
// a real release tag.
func releaseTag(ver *version.Version, debug bool) string {
	if debug {
		return ver.TestTagString()
	}
	return ver.ReleaseTagString()
}
