package github

import (
	// Stdlib
	"context"

	// Vendor
	"github.com/google/go-github/v48/github"
	"golang.org/x/oauth2"
)

func NewClient(token string) *github.Client {
	httpClient := oauth2.NewClient(context.Background(), &tokenSource{token})
	return github.NewClient(httpClient)
}

type tokenSource struct {
	token string
}

func (ts *tokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: ts.token}, nil
}
