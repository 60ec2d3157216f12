package metafile

import (
	// Stdlib
	"path/filepath"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/config"
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git/gitutil"
)

// DefaultFilename is the version metadata file name, relative
// to the repository root.
const DefaultFilename = ".make.versions"

// LocalConfig is the versions-related section of the local configuration file.
type LocalConfig struct {
	Versions struct {
		File string `yaml:"file"`
	} `yaml:"versions"`
}

var filenameCache string

// Filename returns the version metadata file name, relative
// to the repository root.
func Filename() (string, error) {
	if filenameCache != "" {
		return filenameCache, nil
	}

	task := "Load versions-related configuration"
	var local LocalConfig
	if err := config.UnmarshalLocalConfig(&local); err != nil {
		return "", errs.NewError(task, err)
	}
	if local.Versions.File == "" {
		local.Versions.File = DefaultFilename
	}

	filenameCache = local.Versions.File
	return filenameCache, nil
}

// Load opens the version metadata file of the current repository.
func Load() (*File, error) {
	filename, err := Filename()
	if err != nil {
		return nil, err
	}
	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(root, filename))
}
