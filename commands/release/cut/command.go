package cutCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/action"
	"github.com/shahrokhDaijavad/data-prep-kit/app"
	"github.com/shahrokhDaijavad/data-prep-kit/app/appflags"
	"github.com/shahrokhDaijavad/data-prep-kit/asciiart"
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git"
	"github.com/shahrokhDaijavad/data-prep-kit/log"
	"github.com/shahrokhDaijavad/data-prep-kit/maketool"
	"github.com/shahrokhDaijavad/data-prep-kit/metafile"
	"github.com/shahrokhDaijavad/data-prep-kit/prompt"
	"github.com/shahrokhDaijavad/data-prep-kit/version"

	// Vendor
	"github.com/coreos/go-semver/semver"
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: `
  cut [-debug] [-no_fetch] [-next_version=VERSION] [-y]`,
	Short: "cut a new release",
	Long: `
  Cut a new release, i.e. create the release branch on top of the trunk
  branch, strip the development suffix there, commit and tag the release,
  then prepare the next development version on a separate branch that is
  to be merged back into the trunk branch.

  The release version is whatever the build tool reports with the
  development suffix overridden to be empty. The next development version
  is derived from it by incrementing the micro version and resetting the
  suffix, unless -next_version is used to overwrite this behaviour.

  In case -debug is set, the whole workflow is rehearsed using a
  test-prefixed tag so that the real release artifacts are not affected.
  Any rehearsal artifacts left around by a previous run are deleted
  first, and the next development version is left uncommitted, only
  the working tree status is shown.
	`,
	Action: run,
}

// debugSuffix is committed on the rehearsal release branch instead of
// the empty suffix so that a debug run can never produce project files
// that look like a real release.
const debugSuffix = ".dev7"

var (
	flagDebug       bool
	flagNoFetch     bool
	flagNextVersion version.Version
	flagYes         bool
)

func init() {
	// Register flags.
	Command.Flags.BoolVar(&flagDebug, "debug", flagDebug,
		"rehearse the release using test artifacts")
	Command.Flags.BoolVar(&flagNoFetch, "no_fetch", flagNoFetch,
		"do not fetch the remote")
	Command.Flags.Var(&flagNextVersion, "next_version",
		"the next development version string")
	Command.Flags.BoolVar(&flagYes, "y", flagYes,
		"do not prompt for confirmation")

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

func runMain() (err error) {
	// Load the git-related config.
	gitConfig, err := git.LoadConfig()
	if err != nil {
		return err
	}
	var (
		remote      = gitConfig.RemoteName
		trunkBranch = gitConfig.TrunkBranchName
		nextBranch  = gitConfig.NextReleaseBranchName
	)

	// Fetch the remote repository.
	if !flagNoFetch {
		task := "Fetch the remote repository"
		log.Run(task)
		if err := git.UpdateRemotes(remote); err != nil {
			return errs.NewError(task, err)
		}
	}

	// Make sure that the trunk branch is up to date.
	task := fmt.Sprintf("Make sure that branch '%v' is up to date", trunkBranch)
	log.Run(task)
	if err := git.EnsureBranchSynchronized(trunkBranch, remote); err != nil {
		return errs.NewError(task, err)
	}

	// A previous rehearsal ends checked out on the next-version branch
	// with the version bump left uncommitted. Drop these leftovers and
	// return to the trunk branch, otherwise the clean working tree
	// check below fails and the branch cannot be deleted either.
	if flagDebug {
		currentBranch, err := git.CurrentBranch()
		if err != nil {
			return err
		}
		for _, step := range rehearsalCleanupSteps(currentBranch, trunkBranch, nextBranch) {
			log.Run(step.task)
			if err := step.run(); err != nil {
				return errs.NewError(step.task, err)
			}
		}
	}

	// Make sure the working tree is clean, the workflow commits twice.
	task = "Make sure the working tree is clean"
	if err := git.EnsureCleanWorkingTree(); err != nil {
		return errs.NewError(task, err)
	}

	// Get the current suffix-less version string.
	task = "Get the current base version string"
	log.Run(task)
	ver, err := maketool.ShowBaseVersion()
	if err != nil {
		return errs.NewError(task, err)
	}

	// Compute the release artifact names.
	tag := releaseTag(ver, flagDebug)
	releaseBranch := gitConfig.ReleaseBranchName(tag)

	// Get the next development version.
	nextVersion, err := computeNextVersion(ver)
	if err != nil {
		return err
	}

	if flagDebug {
		// Delete the artifacts a previous rehearsal may have left around.
		// Failures are fine here, a first run has nothing to delete.
		deleteRehearsalArtifacts(remote, tag, releaseBranch, nextBranch)
	} else {
		rerunHint := `
The release branch or tag for this version already exists.
Re-running a release for the same version is not supported,
delete the stale artifacts manually in case this is intended.

`
		task = fmt.Sprintf("Make sure that branch '%v' does not exist", releaseBranch)
		if err := git.EnsureBranchNotExist(releaseBranch, remote); err != nil {
			return errs.NewErrorWithHint(task, err, rerunHint)
		}
		task = fmt.Sprintf("Make sure that tag '%v' does not exist", tag)
		if err := git.EnsureTagNotExist(tag, remote); err != nil {
			return errs.NewErrorWithHint(task, err, rerunHint)
		}
		staleHint := `
The next-version branch was most likely left behind by the previous
release. Once it has been merged into the trunk branch, delete it
both locally and in the remote, then run the release again.

`
		task = fmt.Sprintf("Make sure that branch '%v' does not exist", nextBranch)
		if err := git.EnsureBranchNotExist(nextBranch, remote); err != nil {
			return errs.NewErrorWithHint(task, err, staleHint)
		}
	}

	// Prompt the user to confirm the release.
	if !flagYes {
		fmt.Printf(`
You are about to cut release %v.
The relevant names are:

  release branch:           %v
  release tag:              %v
  next development version: %v%v (branch '%v')

`, ver, releaseBranch, tag, nextVersion, version.FirstDevSuffix, nextBranch)
		ok, ex := prompt.Confirm("Are you sure you want to continue?")
		if ex != nil {
			return ex
		}
		if !ok {
			fmt.Println("\nYour wish is my command, exiting now!")
			return nil
		}
	}
	asciiart.PrintSnoopy()

	// Remember the current branch so that it can be restored on rollback.
	currentBranch, err := git.CurrentBranch()
	if err != nil {
		return err
	}

	chain := action.NewActionChain()
	defer chain.RollbackOnError(&err)

	// Create the release branch on top of the trunk branch.
	task = fmt.Sprintf("Create branch '%v' on top of branch '%v'", releaseBranch, trunkBranch)
	log.Run(task)
	if err = git.Branch(releaseBranch, trunkBranch); err != nil {
		return errs.NewError(task, err)
	}
	chain.PushTask(fmt.Sprintf("Delete branch '%v'", releaseBranch),
		action.ActionFunc(func() error {
			if err := git.Checkout(currentBranch); err != nil {
				return err
			}
			return git.Branch("-D", releaseBranch)
		}))

	task = fmt.Sprintf("Checkout branch '%v'", releaseBranch)
	if err = git.Checkout(releaseBranch); err != nil {
		return errs.NewError(task, err)
	}

	// Strip the development suffix and propagate the version.
	// A rehearsal commits a fixed development suffix instead.
	suffix := ""
	if flagDebug {
		suffix = debugSuffix
	}
	task = fmt.Sprintf("Set the version to %v%v and propagate it", ver, suffix)
	log.Run(task)
	if err = applyVersion(func(file *metafile.File) error {
		return file.SetSuffix(suffix)
	}); err != nil {
		return errs.NewError(task, err)
	}

	// Commit and tag the release.
	task = fmt.Sprintf("Commit the release version on branch '%v'", releaseBranch)
	log.Run(task)
	if err = git.Commit("-s", "-a", "-m", fmt.Sprintf("Release %v", tag)); err != nil {
		return errs.NewError(task, err)
	}

	task = fmt.Sprintf("Create tag '%v'", tag)
	log.Run(task)
	if err = git.SignedTag(tag, fmt.Sprintf("Release %v", tag)); err != nil {
		return errs.NewError(task, err)
	}
	chain.PushTask(fmt.Sprintf("Delete tag '%v'", tag),
		action.ActionFunc(func() error {
			return git.DeleteTag(tag)
		}))

	// Push the release branch, and the tag unless rehearsing.
	task = fmt.Sprintf("Push branch '%v'", releaseBranch)
	log.Run(task)
	if err = git.Push(remote, releaseBranch+":"+releaseBranch); err != nil {
		return errs.NewError(task, err)
	}
	chain.PushTask(fmt.Sprintf("Delete branch '%v' from remote '%v'", releaseBranch, remote),
		action.ActionFunc(func() error {
			return git.DeleteRemoteBranch(remote, releaseBranch)
		}))

	if !flagDebug {
		task = fmt.Sprintf("Push tag '%v'", tag)
		log.Run(task)
		if err = git.PushTag(remote, tag); err != nil {
			return errs.NewError(task, err)
		}
		chain.PushTask(fmt.Sprintf("Delete tag '%v' from remote '%v'", tag, remote),
			action.ActionFunc(func() error {
				return git.DeleteRemoteTag(remote, tag)
			}))
	}

	// Create the next-version branch on top of the release branch tip.
	task = fmt.Sprintf("Create branch '%v' on top of branch '%v'", nextBranch, releaseBranch)
	log.Run(task)
	if err = git.Branch(nextBranch, releaseBranch); err != nil {
		return errs.NewError(task, err)
	}
	chain.PushTask(fmt.Sprintf("Delete branch '%v'", nextBranch),
		action.ActionFunc(func() error {
			if err := git.Checkout(currentBranch); err != nil {
				return err
			}
			return git.Branch("-D", nextBranch)
		}))

	task = fmt.Sprintf("Checkout branch '%v'", nextBranch)
	if err = git.Checkout(nextBranch); err != nil {
		return errs.NewError(task, err)
	}

	// Bump the version for the next development iteration.
	task = fmt.Sprintf("Set the version to %v%v and propagate it",
		nextVersion, version.FirstDevSuffix)
	log.Run(task)
	if err = applyVersion(func(file *metafile.File) error {
		if err := file.SetBaseVersion(nextVersion); err != nil {
			return err
		}
		return file.SetSuffix(version.FirstDevSuffix)
	}); err != nil {
		return errs.NewError(task, err)
	}

	if flagDebug {
		// Only show what would be committed.
		task = "Show the working tree status"
		stdout, ex := git.Status()
		if ex != nil {
			err = errs.NewError(task, ex)
			return err
		}
		fmt.Println()
		fmt.Print(stdout)
	} else {
		task = fmt.Sprintf("Commit the next development version on branch '%v'", nextBranch)
		log.Run(task)
		if err = git.Commit("-s", "-a", "-m",
			fmt.Sprintf("Bump version to %v%v", nextVersion, version.FirstDevSuffix)); err != nil {
			return errs.NewError(task, err)
		}

		task = fmt.Sprintf("Push branch '%v'", nextBranch)
		log.Run(task)
		if err = git.Push(remote, nextBranch+":"+nextBranch); err != nil {
			return errs.NewError(task, err)
		}
	}

	// Get the next development version merged back into the trunk branch.
	if !flagDebug {
		prURL, ex := openPullRequest(nextBranch, trunkBranch, nextVersion)
		if ex != nil {
			errs.Log(ex)
		}
		if prURL != "" {
			fmt.Printf("\nOpened a merge request: %v\n", prURL)
			asciiart.PrintThumbsUp()
			return nil
		}
	}
	fmt.Printf("\nNow open a merge request to merge branch '%v' into branch '%v'.\n",
		nextBranch, trunkBranch)
	asciiart.PrintThumbsUp()
	return nil
}

// computeNextVersion returns the version to be bumped into the
// next-version branch. The -next_version flag wins when set, but it
// must be a strict increment of the version being released.
func computeNextVersion(current *version.Version) (*version.Version, error) {
	if flagNextVersion.Zero() {
		return current.IncrementMicro(), nil
	}

	cur, err := semver.NewVersion(current.String())
	if err != nil {
		panic(err)
	}
	next, err := semver.NewVersion(flagNextVersion.String())
	if err != nil {
		panic(err)
	}
	if !cur.LessThan(*next) {
		return nil, fmt.Errorf("next version string not an increment: %v <= %v", next, cur)
	}

	return flagNextVersion.Clone(), nil
}

func applyVersion(mutate func(file *metafile.File) error) error {
	file, err := metafile.Load()
	if err != nil {
		return err
	}
	if err := mutate(file); err != nil {
		return err
	}
	if err := file.Save(); err != nil {
		return err
	}
	return maketool.SetVersions()
}
