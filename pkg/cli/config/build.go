package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Build holds source, workspace, and build-matrix configuration
type Build struct {
	GitHubURL        string
	WorkingDir       string
	OutputDir        string
	Platforms        []string
	BasePythons      []string
	SecondaryPython  string
	LocalPlatform    string
	SkipReleaseCheck bool
}

// Flags returns CLI flags for build configuration
func (c *Build) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-url",
			Usage:       "Base URL of the GitHub organization hosting model repositories",
			Value:       "https://github.com/PSLmodels",
			Destination: &c.GitHubURL,
			Sources:     cli.EnvVars("PKGBLD_GITHUB_URL"),
		},
		&cli.StringFlag{
			Name:        "working-dir",
			Usage:       "Transient build directory (defaults to ~/temporary_pkgbld_working_dir)",
			Destination: &c.WorkingDir,
			Sources:     cli.EnvVars("PKGBLD_WORKING_DIR"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Build output directory name, relative to the clone",
			Value:       "pkgbld_output",
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("PKGBLD_OUTPUT_DIR"),
		},
		&cli.StringSliceFlag{
			Name:        "platforms",
			Usage:       "Target OS platforms",
			Value:       []string{"osx-64", "linux-64", "win-32", "win-64"},
			Destination: &c.Platforms,
			Sources:     cli.EnvVars("PKGBLD_PLATFORMS"),
		},
		&cli.StringSliceFlag{
			Name:        "base-python",
			Usage:       "Python versions always built",
			Value:       []string{"3.6"},
			Destination: &c.BasePythons,
			Sources:     cli.EnvVars("PKGBLD_BASE_PYTHON"),
		},
		&cli.StringFlag{
			Name:        "secondary-python",
			Usage:       "Extra Python version built when requested",
			Value:       "3.7",
			Destination: &c.SecondaryPython,
			Sources:     cli.EnvVars("PKGBLD_SECONDARY_PYTHON"),
		},
		&cli.StringFlag{
			Name:        "local-platform",
			Usage:       "Override the detected local conda platform",
			Destination: &c.LocalPlatform,
			Sources:     cli.EnvVars("PKGBLD_LOCAL_PLATFORM"),
		},
		&cli.BoolFlag{
			Name:        "skip-release-check",
			Usage:       "Skip the pre-flight check that the release tag exists",
			Destination: &c.SkipReleaseCheck,
			Sources:     cli.EnvVars("PKGBLD_SKIP_RELEASE_CHECK"),
		},
	}
}

// ResolvedWorkingDir returns the working directory path, defaulting to
// ~/temporary_pkgbld_working_dir under the home directory.
func (c *Build) ResolvedWorkingDir() (string, error) {
	if c.WorkingDir != "" {
		return c.WorkingDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, "temporary_pkgbld_working_dir"), nil
}

// Owner extracts the GitHub organization name from the base URL, e.g.
// "PSLmodels" from "https://github.com/PSLmodels".
func (c *Build) Owner() (string, error) {
	u, err := url.Parse(c.GitHubURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid GitHub base URL", goerr.V("url", c.GitHubURL))
	}
	owner := strings.Trim(u.Path, "/")
	if owner == "" || strings.Contains(owner, "/") {
		return "", goerr.New("GitHub base URL must name exactly one organization",
			goerr.V("url", c.GitHubURL))
	}
	return owner, nil
}
