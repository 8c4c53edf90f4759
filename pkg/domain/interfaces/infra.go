package interfaces

import "context"

// CommandRunner runs an external command in a working directory and waits
// for it to finish. A non-zero exit is returned as an error; there is no
// retry and no timeout beyond ctx.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// GitClient defines source acquisition operations
type GitClient interface {
	// CloneTag performs a shallow (depth 1) clone of the given tag from
	// <baseURL>/<repo>/ into dir.
	CloneTag(ctx context.Context, dir, baseURL, repo, tag string) error
}

// CondaClient defines package build operations
type CondaClient interface {
	// Build builds the recipe in repoDir for one Python version on the
	// local platform, restricted to the given channel.
	Build(ctx context.Context, repoDir, pyVersion, channel, outputDir string) error

	// Convert converts a locally built artifact to another platform,
	// writing under outputDir.
	Convert(ctx context.Context, repoDir, platform, outputDir, artifact string) error

	// Purge removes intermediate build artifacts from the conda cache
	Purge(ctx context.Context, repoDir string) error
}

// AnacondaClient defines distribution-channel upload operations
type AnacondaClient interface {
	// Upload pushes one artifact to the channel owner's account, replacing
	// any existing remote copy.
	Upload(ctx context.Context, repoDir, tokenFile, user, artifact string) error
}

// ReleaseChecker verifies that a release tag exists before the pipeline
// touches the filesystem
type ReleaseChecker interface {
	ReleaseExists(ctx context.Context, repo, tag string) (bool, error)
}
