package app

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/app/appflags"
	"github.com/shahrokhDaijavad/data-prep-kit/config"
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git"
	"github.com/shahrokhDaijavad/data-prep-kit/log"

	// Vendor
	"github.com/kr/pretty"
)

func Init() error {
	// Set up logging.
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))

	// Register the custom global configuration file when set.
	if path := appflags.FlagConfig; path != "" {
		config.SetGlobalConfigPath(path)
	}

	// Load the git-related configuration. This also makes sure
	// that we are being run from inside a git repository.
	gitConfig, err := git.LoadConfig()
	if err != nil {
		return err
	}
	log.V(log.Debug).Printf("Git configuration:\n%# v\n", pretty.Formatter(gitConfig))

	return nil
}

func InitOrDie() {
	if err := Init(); err != nil {
		errs.Fatal(err)
	}
}
