package showCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/app"
	"github.com/shahrokhDaijavad/data-prep-kit/app/appflags"
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/maketool"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "show [-base]",
	Short:     "show the current version",
	Long: `
  Print the version string the build tool reports for the project.

  In case -base is set, the development suffix is overridden to be
  empty, i.e. the version a release cut right now would get.
	`,
	Action: run,
}

var flagBase bool

func init() {
	// Register flags.
	Command.Flags.BoolVar(&flagBase, "base", flagBase, "drop the development suffix")

	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.InitOrDie()

	if err := runMain(); err != nil {
		errs.Fatal(err)
	}
}

func runMain() error {
	if flagBase {
		ver, err := maketool.ShowBaseVersion()
		if err != nil {
			return err
		}
		fmt.Println(ver)
		return nil
	}

	versionString, err := maketool.ShowVersion()
	if err != nil {
		return err
	}
	fmt.Println(versionString)
	return nil
}
