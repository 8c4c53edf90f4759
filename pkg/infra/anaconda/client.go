package anaconda

import (
	"context"

	"github.com/pslmodels/pkgbld/pkg/domain/interfaces"
)

type client struct {
	runner interfaces.CommandRunner
}

// NewClient creates an uploader backed by the anaconda CLI
func NewClient(runner interfaces.CommandRunner) interfaces.AnacondaClient {
	return &client{runner: runner}
}

// Upload pushes one artifact to the channel owner's account. --force
// replaces any existing remote artifact with the same name; the token file
// content is opaque here and passed through to the tool.
func (c *client) Upload(ctx context.Context, repoDir, tokenFile, user, artifact string) error {
	return c.runner.Run(ctx, repoDir, "anaconda",
		"-t", tokenFile, "upload", "-u", user, "--force", artifact,
	)
}
