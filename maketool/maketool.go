package maketool

import (
	// Stdlib
	"bytes"
	"fmt"
	"strings"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git/gitutil"
	"github.com/shahrokhDaijavad/data-prep-kit/log"
	"github.com/shahrokhDaijavad/data-prep-kit/metafile"
	"github.com/shahrokhDaijavad/data-prep-kit/shell"
	"github.com/shahrokhDaijavad/data-prep-kit/version"
)

// The build tool targets used to query and propagate the project version.
// The propagation mechanism itself is a black box as far as this tool
// is concerned, all it relies on is the targets being available.
const (
	TargetShowVersion = "show-version"
	TargetSetVersions = "set-versions"
)

// ShowVersion runs the show-version target and returns the full
// version string, including the development suffix if any.
func ShowVersion() (string, error) {
	stdout, err := run(TargetShowVersion)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ShowBaseVersion runs the show-version target with the suffix variable
// overridden to be empty so that the suffix-less version is returned.
func ShowBaseVersion() (*version.Version, error) {
	stdout, err := run(metafile.KeyVersionSuffix+"=", TargetShowVersion)
	if err != nil {
		return nil, err
	}

	task := "Parse the version string reported by the build tool"
	ver, err := version.Parse(strings.TrimSpace(stdout.String()))
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return ver, nil
}

// SetVersions runs the set-versions target, which propagates the version
// stored in the metadata file into all relevant project files.
func SetVersions() error {
	_, err := run(TargetSetVersions)
	return err
}

func run(args ...string) (stdout *bytes.Buffer, err error) {
	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return nil, err
	}

	task := fmt.Sprintf("Run make with args = %#v", args)
	log.V(log.Debug).Log(task)
	stdout, stderr, err := shell.RunInDir(root, append([]string{"make"}, args...)...)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err, stderr.String())
	}
	return stdout, nil
}
