package config

import (
	// Stdlib
	"bytes"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git/gitutil"

	// Vendor
	"gopkg.in/yaml.v2"
)

const (
	// LocalConfigFilename is the name of the configuration file
	// that holds project-specific configuration.
	//
	// This file is expected to be placed in the repository root.
	LocalConfigFilename = ".dpkflow.yml"

	// GlobalConfigFilename is the name of the configuration file
	// that holds user-specific configuration.
	//
	// This file is expected to be placed in the user's home directory,
	// unless overwritten on the command line.
	GlobalConfigFilename = ".dpkflow.yml"
)

type ErrKeyNotSet struct {
	Key string
}

func (err *ErrKeyNotSet) Error() string {
	return fmt.Sprintf("configuration key '%v' is not set", err.Key)
}

// Local config ----------------------------------------------------------------

var localContentCache []byte

// UnmarshalLocalConfig loads the local configuration file placed in the
// repository root and unmarshals it into the given object. A missing
// file is not an error, the object is simply left untouched so that
// the defaults apply.
func UnmarshalLocalConfig(v interface{}) error {
	if localContentCache == nil {
		content, err := readLocalConfig()
		if err != nil {
			return err
		}
		localContentCache = content.Bytes()
	}

	return unmarshal("local", localContentCache, v)
}

func readLocalConfig() (content *bytes.Buffer, err error) {
	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return nil, err
	}
	return readConfig("local", filepath.Join(root, LocalConfigFilename))
}

// Global config ---------------------------------------------------------------

var (
	globalContentCache []byte
	globalPathOverride string
)

// SetGlobalConfigPath makes the following global config reads use
// the given path instead of the file in the user's home directory.
func SetGlobalConfigPath(path string) {
	globalPathOverride = path
}

func UnmarshalGlobalConfig(v interface{}) error {
	if globalContentCache == nil {
		content, err := readGlobalConfig()
		if err != nil {
			return err
		}
		globalContentCache = content.Bytes()
	}

	return unmarshal("global", globalContentCache, v)
}

func readGlobalConfig() (content *bytes.Buffer, err error) {
	path := globalPathOverride
	if path == "" {
		me, err := user.Current()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(me.HomeDir, GlobalConfigFilename)
	}
	return readConfig("global", path)
}

// Common helpers --------------------------------------------------------------

func readConfig(kind, path string) (content *bytes.Buffer, err error) {
	task := fmt.Sprintf("Read the %v configuration file", kind)
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &bytes.Buffer{}, nil
		}
		return nil, errs.NewError(task, err)
	}
	return bytes.NewBuffer(contentBytes), nil
}

func unmarshal(kind string, content []byte, v interface{}) error {
	if len(content) == 0 {
		return nil
	}
	task := fmt.Sprintf("Unmarshal the %v configuration file", kind)
	if err := yaml.Unmarshal(content, v); err != nil {
		return errs.NewErrorWithHint(
			task, err, "\nMake sure the configuration file is valid YAML\n")
	}
	return nil
}
