package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pslmodels/pkgbld/pkg/domain/interfaces"
)

type client struct {
	githubClient *github.Client
	owner        string
}

// NewClient creates a release checker for repositories under the given
// GitHub owner. The client is unauthenticated; model repositories are
// public and only read operations are performed.
func NewClient(owner string) interfaces.ReleaseChecker {
	return &client{
		githubClient: github.NewClient(nil),
		owner:        owner,
	}
}

// ReleaseExists reports whether tag exists in the repository, either as a
// published release or as a bare git tag.
func (c *client) ReleaseExists(ctx context.Context, repo, tag string) (bool, error) {
	_, resp, err := c.githubClient.Repositories.GetReleaseByTag(ctx, c.owner, repo, tag)
	if err == nil {
		return true, nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return false, goerr.Wrap(err, "failed to query release by tag",
			goerr.V("owner", c.owner), goerr.V("repo", repo), goerr.V("tag", tag))
	}

	// Some model releases are tagged without a GitHub release object
	_, resp, err = c.githubClient.Git.GetRef(ctx, c.owner, repo, "tags/"+tag)
	if err == nil {
		return true, nil
	}
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, goerr.Wrap(err, "failed to query tag ref",
		goerr.V("owner", c.owner), goerr.V("repo", repo), goerr.V("tag", tag))
}
