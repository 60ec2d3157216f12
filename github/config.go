package github

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/config"
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git"
)

// ConfigKeyToken can be set using git config to supply the API token
// on a per-clone basis.
const ConfigKeyToken = "dpkflow.github.token"

// GlobalConfig is the GitHub-related section of the global configuration file.
type GlobalConfig struct {
	GitHub struct {
		Token string `yaml:"token"`
	} `yaml:"github"`
}

var tokenCache string

// LoadToken returns the GitHub API token, looking into the global
// configuration file first, then into git config. An empty string
// means that no token is configured.
func LoadToken() (string, error) {
	if tokenCache != "" {
		return tokenCache, nil
	}

	task := "Load GitHub-related configuration"

	var global GlobalConfig
	if err := config.UnmarshalGlobalConfig(&global); err != nil {
		return "", errs.NewError(task, err)
	}
	token := global.GitHub.Token

	if token == "" {
		var err error
		token, err = git.GetConfigString(ConfigKeyToken)
		if err != nil {
			return "", errs.NewError(task, err)
		}
	}

	tokenCache = token
	return token, nil
}
