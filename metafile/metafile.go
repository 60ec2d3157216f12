package metafile

import (
	// Stdlib
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/version"
)

// Recognized version metadata keys.
const (
	KeyMajorVersion  = "DPK_MAJOR_VERSION"
	KeyMinorVersion  = "DPK_MINOR_VERSION"
	KeyMicroVersion  = "DPK_MICRO_VERSION"
	KeyVersionSuffix = "DPK_VERSION_SUFFIX"
)

type ErrKeyNotFound struct {
	Key  string
	Path string
}

func (err *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("key '%v' not found in '%v'", err.Key, err.Path)
}

// File represents the version metadata file, e.g. .make.versions.
// The file is a list of KEY=value lines interleaved with comments that
// make includes directly, so values are rewritten in place and all
// other lines are left byte-for-byte intact.
type File struct {
	path  string
	lines []string
}

func Open(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(content, path), nil
}

func parse(content []byte, path string) *File {
	lines := strings.Split(string(content), "\n")
	return &File{path: path, lines: lines}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Bytes() []byte {
	return []byte(strings.Join(f.lines, "\n"))
}

func (f *File) Save() error {
	return os.WriteFile(f.path, f.Bytes(), 0644)
}

// keyLineRegexp matches a KEY=value line, capturing everything
// up to and including the assignment operator.
func keyLineRegexp(key string) *regexp.Regexp {
	return regexp.MustCompile(`^(\s*` + regexp.QuoteMeta(key) + `\s*\??=\s*)(.*)$`)
}

func (f *File) Get(key string) (string, error) {
	re := keyLineRegexp(key)
	for _, line := range f.lines {
		if match := re.FindStringSubmatch(line); len(match) != 0 {
			return strings.TrimSpace(match[2]), nil
		}
	}
	return "", &ErrKeyNotFound{key, f.path}
}

func (f *File) Set(key, value string) error {
	re := keyLineRegexp(key)
	for i, line := range f.lines {
		if match := re.FindStringSubmatch(line); len(match) != 0 {
			f.lines[i] = match[1] + value
			return nil
		}
	}
	return &ErrKeyNotFound{key, f.path}
}

// Version helpers -------------------------------------------------------------

// BaseVersion assembles the suffix-less version from the major,
// minor and micro keys.
func (f *File) BaseVersion() (*version.Version, error) {
	var parts [3]string
	for i, key := range [...]string{KeyMajorVersion, KeyMinorVersion, KeyMicroVersion} {
		value, err := f.Get(key)
		if err != nil {
			return nil, err
		}
		parts[i] = value
	}
	return version.Parse(strings.Join(parts[:], "."))
}

// Suffix returns the development suffix, which may be empty
// in case the file describes a release version.
func (f *File) Suffix() (string, error) {
	return f.Get(KeyVersionSuffix)
}

// VersionString returns the full version string, base plus suffix.
func (f *File) VersionString() (string, error) {
	base, err := f.BaseVersion()
	if err != nil {
		return "", err
	}
	suffix, err := f.Suffix()
	if err != nil {
		return "", err
	}
	return base.String() + suffix, nil
}

func (f *File) SetBaseVersion(ver *version.Version) error {
	for key, value := range map[string]uint64{
		KeyMajorVersion: ver.Major,
		KeyMinorVersion: ver.Minor,
		KeyMicroVersion: ver.Patch,
	} {
		if err := f.Set(key, strconv.FormatUint(value, 10)); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) SetMicroVersion(micro uint64) error {
	return f.Set(KeyMicroVersion, strconv.FormatUint(micro, 10))
}

func (f *File) SetSuffix(suffix string) error {
	return f.Set(KeyVersionSuffix, suffix)
}
