package conda

import (
	"context"

	"github.com/pslmodels/pkgbld/pkg/domain/interfaces"
)

type client struct {
	runner interfaces.CommandRunner
}

// NewClient creates a conda client backed by the conda CLI
func NewClient(runner interfaces.CommandRunner) interfaces.CondaClient {
	return &client{runner: runner}
}

// Build builds the conda.recipe in repoDir for one Python version. The
// channel is both the dependency source and the only allowed channel, and
// --old-build-string pins the artifact name to the py<XY>_0 form the rest of
// the pipeline derives.
func (c *client) Build(ctx context.Context, repoDir, pyVersion, channel, outputDir string) error {
	return c.runner.Run(ctx, repoDir, "conda",
		"build",
		"--python", pyVersion,
		"--old-build-string",
		"--channel", channel,
		"--override-channels",
		"--no-anaconda-upload",
		"--output-folder", outputDir,
		"conda.recipe",
	)
}

// Convert produces a copy of a locally built artifact for another platform
func (c *client) Convert(ctx context.Context, repoDir, platform, outputDir, artifact string) error {
	return c.runner.Run(ctx, repoDir, "conda",
		"convert", "-p", platform, "-o", outputDir, artifact,
	)
}

// Purge removes intermediate build artifacts from the conda cache
func (c *client) Purge(ctx context.Context, repoDir string) error {
	return c.runner.Run(ctx, repoDir, "conda", "build", "purge")
}
