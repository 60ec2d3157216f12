package cutCmd

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/git"
	"github.com/shahrokhDaijavad/data-prep-kit/log"
)

type rehearsalStep struct {
	task string
	run  func() error
}

// rehearsalCleanupSteps returns the steps to run so that a rehearsal
// can be started again. The previous rehearsal leaves the next-version
// branch checked out with the version bump uncommitted, so the changes
// are dropped and the trunk branch is checked out again. No steps are
// returned when the working copy sits elsewhere.
func rehearsalCleanupSteps(currentBranch, trunkBranch, nextBranch string) []rehearsalStep {
	if currentBranch != nextBranch {
		return nil
	}
	return []rehearsalStep{
		{fmt.Sprintf("Drop the uncommitted changes on branch '%v'", nextBranch),
			func() error { return git.ResetHard() }},
		{fmt.Sprintf("Checkout branch '%v'", trunkBranch),
			func() error { return git.Checkout(trunkBranch) }},
	}
}

// deleteRehearsalArtifacts deletes the branches and the tag a previous
// rehearsal may have created. Every step is best-effort, a first run
// simply has nothing to delete.
func deleteRehearsalArtifacts(remote, tag, releaseBranch, nextBranch string) {
	deletes := []rehearsalStep{
		{fmt.Sprintf("Delete tag '%v'", tag),
			func() error { return git.DeleteTag(tag) }},
		{fmt.Sprintf("Delete tag '%v' from remote '%v'", tag, remote),
			func() error { return git.DeleteRemoteTag(remote, tag) }},
		{fmt.Sprintf("Delete branch '%v'", releaseBranch),
			func() error { return git.Branch("-D", releaseBranch) }},
		{fmt.Sprintf("Delete branch '%v' from remote '%v'", releaseBranch, remote),
			func() error { return git.DeleteRemoteBranch(remote, releaseBranch) }},
		{fmt.Sprintf("Delete branch '%v'", nextBranch),
			func() error { return git.Branch("-D", nextBranch) }},
	}
	for _, del := range deletes {
		log.Run(del.task)
		if err := del.run(); err != nil {
			log.Skip(del.task)
		}
	}
}
