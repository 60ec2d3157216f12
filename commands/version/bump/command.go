package bumpCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/app"
	"github.com/shahrokhDaijavad/data-prep-kit/app/appflags"
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git"
	"github.com/shahrokhDaijavad/data-prep-kit/log"
	"github.com/shahrokhDaijavad/data-prep-kit/maketool"
	"github.com/shahrokhDaijavad/data-prep-kit/metafile"
	"github.com/shahrokhDaijavad/data-prep-kit/version"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "bump [-commit] VERSION",
	Short:     "bump version to the specified value",
	Long: `
  Rewrite the version metadata file to the specified version and
  propagate the new version into the project files.

  VERSION is either a release version (e.g. 1.2.3) or a development
  version (e.g. 1.2.3.dev0).

  In case -commit is set, the changes are committed as well.
  The repository must be clean for the commit to be created.
	`,
	Action: run,
}

var flagCommit bool

func init() {
	// Register flags.
	Command.Flags.BoolVar(&flagCommit, "commit", flagCommit,
		"commit the new version string")

	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 1 {
		cmd.Usage()
		os.Exit(2)
	}

	app.InitOrDie()

	if err := runMain(args[0]); err != nil {
		errs.Fatal(err)
	}
}

func runMain(versionString string) error {
	// Make sure the version string is correct.
	task := "Parse the command line VERSION argument"
	ver, suffix, err := version.ParseWithSuffix(versionString)
	if err != nil {
		hint := `
The version string must be in the form of Major.Minor.Micro,
optionally followed by a development suffix, e.g. 1.2.3.dev0.

`
		return errs.NewErrorWithHint(task, err, hint)
	}

	// The commit is created from the whole working tree,
	// so it must not contain any unrelated changes.
	if flagCommit {
		task = "Make sure the working tree is clean"
		if err := git.EnsureCleanWorkingTree(); err != nil {
			return errs.NewError(task, err)
		}
	}

	// Rewrite the metadata file and propagate the version.
	task = fmt.Sprintf("Set the version to %v%v and propagate it", ver, suffix)
	log.Run(task)
	file, err := metafile.Load()
	if err != nil {
		return errs.NewError(task, err)
	}
	if err := file.SetBaseVersion(ver); err != nil {
		return errs.NewError(task, err)
	}
	if err := file.SetSuffix(suffix); err != nil {
		return errs.NewError(task, err)
	}
	if err := file.Save(); err != nil {
		return errs.NewError(task, err)
	}
	if err := maketool.SetVersions(); err != nil {
		return errs.NewError(task, err)
	}

	if !flagCommit {
		return nil
	}

	currentBranch, err := git.CurrentBranch()
	if err != nil {
		return err
	}

	task = fmt.Sprintf("Commit the new version on branch '%v'", currentBranch)
	log.Run(task)
	if err := git.Commit("-s", "-a", "-m",
		fmt.Sprintf("Bump version to %v%v", ver, suffix)); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
