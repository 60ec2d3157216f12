package git

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/config"
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
)

const (
	DefaultRemoteName = "origin"

	DefaultTrunkBranchName       = "dev"
	DefaultReleaseBranchPrefix   = "releases/"
	DefaultNextReleaseBranchName = "release_next_pending"
)

// ConfigKeyRemote can be set using git config to overwrite
// the remote name on a per-clone basis.
const ConfigKeyRemote = "dpkflow.remote"

// LocalConfig is the git-related section of the local configuration file.
type LocalConfig struct {
	Git struct {
		Remote   string `yaml:"remote"`
		Branches struct {
			Trunk         string `yaml:"trunk"`
			ReleasePrefix string `yaml:"release_prefix"`
			Next          string `yaml:"next"`
		} `yaml:"branches"`
	} `yaml:"git"`
}

func (local *LocalConfig) fillDefaults() {
	git := &local.Git
	if git.Remote == "" {
		git.Remote = DefaultRemoteName
	}
	bs := &git.Branches
	if bs.Trunk == "" {
		bs.Trunk = DefaultTrunkBranchName
	}
	if bs.ReleasePrefix == "" {
		bs.ReleasePrefix = DefaultReleaseBranchPrefix
	}
	if bs.Next == "" {
		bs.Next = DefaultNextReleaseBranchName
	}
}

type Config struct {
	RemoteName            string
	TrunkBranchName       string
	ReleaseBranchPrefix   string
	NextReleaseBranchName string
}

// ReleaseBranchName returns the name of the release branch
// associated with the given release tag.
func (config *Config) ReleaseBranchName(tag string) string {
	return config.ReleaseBranchPrefix + tag
}

var configCache *Config

func LoadConfig() (*Config, error) {
	// Try the cache first.
	if configCache != nil {
		return configCache, nil
	}

	task := "Load git-related configuration"

	// Parse the local config file.
	var local LocalConfig
	if err := config.UnmarshalLocalConfig(&local); err != nil {
		return nil, errs.NewError(task, err)
	}
	local.fillDefaults()

	// Consult git config for the remote name override.
	remote, err := GetConfigString(ConfigKeyRemote)
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	if remote == "" {
		remote = local.Git.Remote
	}

	configCache = &Config{
		RemoteName:            remote,
		TrunkBranchName:       local.Git.Branches.Trunk,
		ReleaseBranchPrefix:   local.Git.Branches.ReleasePrefix,
		NextReleaseBranchName: local.Git.Branches.Next,
	}
	return configCache, nil
}
