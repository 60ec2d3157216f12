package releaseCmd

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/app/appflags"
	cutCmd "github.com/shahrokhDaijavad/data-prep-kit/commands/release/cut"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "release",
	Short:     "various release-related actions",
	Long: `
  Perform various release-related actions. See the subcommands.
	`,
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)

	// Register subcommands.
	Command.MustRegisterSubcommand(cutCmd.Command)
}
