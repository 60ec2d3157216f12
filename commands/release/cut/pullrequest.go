package cutCmd

import (
	// Stdlib
	"context"
	"fmt"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git"
	"github.com/shahrokhDaijavad/data-prep-kit/github"
	"github.com/shahrokhDaijavad/data-prep-kit/prompt"
	"github.com/shahrokhDaijavad/data-prep-kit/version"
)

// openPullRequest tries to open the follow-up merge request using the
// GitHub API. An empty URL with a nil error means that the request was
// not opened and the instruction is to be printed instead, e.g. when
// the remote is not hosted on GitHub or no API token is available.
func openPullRequest(head, base string, nextVersion *version.Version) (prURL string, err error) {
	// The instruction fallback applies to remotes not hosted on GitHub.
	owner, repo, err := github.ParseUpstreamURL()
	if err != nil {
		return "", nil
	}

	token, err := github.LoadToken()
	if err != nil {
		return "", err
	}
	if token == "" {
		if flagYes {
			return "", nil
		}
		ok, err := prompt.Confirm(
			fmt.Sprintf("\nOpen the merge request for branch '%v' now?", head))
		if err != nil || !ok {
			return "", err
		}
		token, err = prompt.AskSecret("Insert your GitHub API token")
		if err != nil {
			if err == prompt.ErrCanceled {
				return "", nil
			}
			return "", err
		}

		// Offer to remember the token so that the next run can read it
		// from git config again.
		ok, err = prompt.Confirm(
			fmt.Sprintf("Store the token as git config '%v'?", github.ConfigKeyToken))
		if err != nil {
			return "", err
		}
		if ok {
			if err := git.SetConfigString(github.ConfigKeyToken, token); err != nil {
				errs.Log(err)
			}
		}
	}

	title := fmt.Sprintf("Bump version to %v%v", nextVersion, version.FirstDevSuffix)
	body := fmt.Sprintf(
		"Merge the next development version back into branch `%v`.", base)

	return github.CreatePullRequest(
		context.Background(), github.NewClient(token), owner, repo, head, base, title, body)
}
