package version

import (
	// Stdlib
	"fmt"
	"regexp"
	"strconv"
	"strings"

	// Vendor
	"github.com/blang/semver/v4"
)

// Version represents a suffix-less project version, i.e. major.minor.micro.
// The development suffix lives in the version metadata file and is handled
// separately, see the metafile package.
type Version struct {
	semver.Version
}

func (v *Version) Clone() *Version {
	return &Version{v.Version}
}

func (v *Version) Zero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0
}

func (v *Version) IncrementMicro() *Version {
	return &Version{semver.Version{
		Major: v.Major,
		Minor: v.Minor,
		Patch: v.Patch + 1,
	}}
}

// ReleaseTagString returns the tag this version is released as.
func (v *Version) ReleaseTagString() string {
	return "v" + v.String()
}

// TestTagString returns the tag used to rehearse the release
// of this version without touching the real release tags.
func (v *Version) TestTagString() string {
	return "test" + v.String()
}

func Parse(versionString string) (*Version, error) {
	v, err := semver.Parse(versionString)
	if err != nil {
		return nil, fmt.Errorf("invalid version string: %v", versionString)
	}
	if len(v.Pre) != 0 || len(v.Build) != 0 {
		return nil, fmt.Errorf("not a plain major.minor.micro version: %v", versionString)
	}
	return &Version{v}, nil
}

func FromTag(tag string) (*Version, error) {
	if !strings.HasPrefix(tag, "v") {
		return nil, fmt.Errorf("not a release tag: %v", tag)
	}
	return Parse(tag[1:])
}

// Set implements flag.Value interface.
func (v *Version) Set(versionString string) error {
	ver, err := Parse(versionString)
	if err != nil {
		return err
	}
	v.Version = ver.Version
	return nil
}

// Development suffixes --------------------------------------------------------

// FirstDevSuffix marks the first development iteration of a version.
const FirstDevSuffix = ".dev0"

var devSuffixRegexp = regexp.MustCompile(`^[.]dev([0-9]+)$`)

// DevSuffix returns the development suffix for iteration n, e.g. ".dev7".
func DevSuffix(n uint64) string {
	return fmt.Sprintf(".dev%v", n)
}

func ParseDevSuffix(suffix string) (uint64, error) {
	match := devSuffixRegexp.FindStringSubmatch(suffix)
	if len(match) == 0 {
		return 0, fmt.Errorf("invalid development suffix: %v", suffix)
	}
	return strconv.ParseUint(match[1], 10, 64)
}

// ParseWithSuffix parses a full version string as stored in the project
// files, e.g. "1.2.3" or "1.2.3.dev0", into the base version and the
// development suffix. The suffix is empty for a release version.
func ParseWithSuffix(versionString string) (*Version, string, error) {
	if i := strings.Index(versionString, ".dev"); i != -1 {
		base, suffix := versionString[:i], versionString[i:]
		if _, err := ParseDevSuffix(suffix); err != nil {
			return nil, "", err
		}
		ver, err := Parse(base)
		if err != nil {
			return nil, "", err
		}
		return ver, suffix, nil
	}

	ver, err := Parse(versionString)
	if err != nil {
		return nil, "", err
	}
	return ver, "", nil
}
