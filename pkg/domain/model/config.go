package model

import (
	"path/filepath"
	"slices"
)

// Config holds the process-wide release settings. It is assembled once from
// CLI flags and the optional overrides file, and is read-only for the
// lifetime of a release.
type Config struct {
	GitHubURL       string // Source-hosting base URL, e.g. https://github.com/PSLmodels
	AnacondaUser    string // Channel owner passed to the uploader
	AnacondaChannel string // Channel packages are built against and uploaded to
	TokenFile       string // Path to the Anaconda Cloud token file
	WorkingDir      string // Transient clone/build directory, clobbered per run
	OutputDir       string // Build output directory name, relative to the clone
	BasePythons     []string
	SecondaryPython string // Added to BasePythons when the request asks for it
	Platforms       []string
	LocalPlatform   string // Conda subdir name of the machine running the build
}

// PythonVersions returns the interpreter versions to build for. The secondary
// version is appended at most once, preserving base order.
func (c *Config) PythonVersions(alsoSecondary bool) []string {
	versions := slices.Clone(c.BasePythons)
	if alsoSecondary && !slices.Contains(versions, c.SecondaryPython) {
		versions = append(versions, c.SecondaryPython)
	}
	return versions
}

// RepoDir returns the clone destination for a repository inside WorkingDir
func (c *Config) RepoDir(repo string) string {
	return filepath.Join(c.WorkingDir, repo)
}

// BuildPlan is the cross product of interpreter versions and platforms for
// one release. It is derived fresh from the request and config on every run.
type BuildPlan struct {
	PythonVersions []string
	Platforms      []string
}

// NewBuildPlan derives the plan for a request
func NewBuildPlan(cfg *Config, req *ReleaseRequest) *BuildPlan {
	return &BuildPlan{
		PythonVersions: cfg.PythonVersions(req.AlsoPython37),
		Platforms:      slices.Clone(cfg.Platforms),
	}
}
