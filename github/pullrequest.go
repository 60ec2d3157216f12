package github

import (
	// Stdlib
	"context"
	"fmt"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/errs"

	// Vendor
	"github.com/google/go-github/v48/github"
)

// CreatePullRequest opens a pull request from head into base
// in the given repository and returns its URL.
func CreatePullRequest(
	ctx context.Context,
	client *github.Client,
	owner, repo, head, base, title, body string,
) (prURL string, err error) {

	task := fmt.Sprintf("Create a pull request (%v -> %v)", head, base)
	pr, _, err := client.PullRequests.Create(ctx, owner, repo, &github.NewPullRequest{
		Title: github.String(title),
		Head:  github.String(head),
		Base:  github.String(base),
		Body:  github.String(body),
	})
	if err != nil {
		return "", errs.NewError(task, err)
	}
	return pr.GetHTMLURL(), nil
}
