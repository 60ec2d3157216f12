package versionCmd

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/app/appflags"
	bumpCmd "github.com/shahrokhDaijavad/data-prep-kit/commands/version/bump"
	showCmd "github.com/shahrokhDaijavad/data-prep-kit/commands/version/show"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "version",
	Short:     "various version-related actions",
	Long: `
  Show or modify the project version string. See the subcommands.
	`,
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)

	// Register subcommands.
	Command.MustRegisterSubcommand(bumpCmd.Command)
	Command.MustRegisterSubcommand(showCmd.Command)
}
