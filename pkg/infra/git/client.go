package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/pslmodels/pkgbld/pkg/domain/interfaces"
)

type client struct {
	runner interfaces.CommandRunner
}

// NewClient creates a git client backed by the git CLI
func NewClient(runner interfaces.CommandRunner) interfaces.GitClient {
	return &client{runner: runner}
}

// CloneTag shallow-clones exactly the given tag. A missing tag surfaces as a
// clone failure, which is fatal to the release.
func (c *client) CloneTag(ctx context.Context, dir, baseURL, repo, tag string) error {
	url := fmt.Sprintf("%s/%s/", strings.TrimSuffix(baseURL, "/"), repo)
	return c.runner.Run(ctx, dir, "git", "clone", "--branch", tag, "--depth", "1", url)
}
