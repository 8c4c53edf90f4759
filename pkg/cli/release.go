package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pslmodels/pkgbld/pkg/cli/config"
	"github.com/pslmodels/pkgbld/pkg/domain/interfaces"
	"github.com/pslmodels/pkgbld/pkg/domain/model"
	"github.com/pslmodels/pkgbld/pkg/infra/anaconda"
	"github.com/pslmodels/pkgbld/pkg/infra/command"
	"github.com/pslmodels/pkgbld/pkg/infra/conda"
	"github.com/pslmodels/pkgbld/pkg/infra/git"
	"github.com/pslmodels/pkgbld/pkg/infra/github"
	"github.com/pslmodels/pkgbld/pkg/usecase"
	"github.com/pslmodels/pkgbld/pkg/utils/console"
	"github.com/urfave/cli/v3"
)

func cmdRelease() *cli.Command {
	var (
		channelCfg config.Channel
		buildCfg   config.Build
		req        model.ReleaseRequest
		configPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Model repository name",
			Required:    true,
			Destination: &req.Repo,
			Sources:     cli.EnvVars("PKGBLD_REPO"),
		},
		&cli.StringFlag{
			Name:        "package",
			Usage:       "Model package name within the repository",
			Required:    true,
			Destination: &req.Package,
			Sources:     cli.EnvVars("PKGBLD_PACKAGE"),
		},
		&cli.StringFlag{
			Name:        "model-version",
			Aliases:     []string{"ver"},
			Usage:       "Release tag with X.Y.Z pattern",
			Required:    true,
			Destination: &req.Version,
			Sources:     cli.EnvVars("PKGBLD_MODEL_VERSION"),
		},
		&cli.BoolFlag{
			Name:        "also-python-37",
			Usage:       "Also build and upload packages for Python 3.7",
			Value:       true,
			Destination: &req.AlsoPython37,
			Sources:     cli.EnvVars("PKGBLD_ALSO_PYTHON_37"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Show the build/upload plan and quit",
			Destination: &req.DryRun,
			Sources:     cli.EnvVars("PKGBLD_DRY_RUN"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "YAML file with channel/build overrides",
			Destination: &configPath,
			Sources:     cli.EnvVars("PKGBLD_CONFIG"),
		},
	}
	flags = append(flags, channelCfg.Flags()...)
	flags = append(flags, buildCfg.Flags()...)

	return &cli.Command{
		Name:    "release",
		Aliases: []string{"r"},
		Usage:   "Build and upload conda packages for one model release",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if configPath != "" {
				overrides, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				overrides.Apply(&channelCfg, &buildCfg)
			}

			cfg, err := buildConfig(&channelCfg, &buildCfg)
			if err != nil {
				return err
			}

			var checker interfaces.ReleaseChecker
			if !buildCfg.SkipReleaseCheck {
				owner, err := buildCfg.Owner()
				if err != nil {
					return err
				}
				checker = github.NewClient(owner)
			}

			runner := command.NewRunner()
			uc := usecase.NewRelease(
				cfg,
				git.NewClient(runner),
				conda.NewClient(runner),
				anaconda.NewClient(runner),
				checker,
				console.Default(),
			)

			if err := uc.Release(ctx, &req); err != nil {
				return goerr.Wrap(err, "release failed",
					goerr.V("repo", req.Repo), goerr.V("version", req.Version))
			}
			return nil
		},
	}
}

// buildConfig resolves flag-backed config into the immutable release config
func buildConfig(channelCfg *config.Channel, buildCfg *config.Build) (*model.Config, error) {
	tokenFile, err := channelCfg.ResolvedTokenFile()
	if err != nil {
		return nil, err
	}
	workingDir, err := buildCfg.ResolvedWorkingDir()
	if err != nil {
		return nil, err
	}
	localPlatform := buildCfg.LocalPlatform
	if localPlatform == "" {
		localPlatform = conda.LocalPlatform()
	}

	return &model.Config{
		GitHubURL:       buildCfg.GitHubURL,
		AnacondaUser:    channelCfg.User,
		AnacondaChannel: channelCfg.ResolvedChannel(),
		TokenFile:       tokenFile,
		WorkingDir:      workingDir,
		OutputDir:       buildCfg.OutputDir,
		BasePythons:     buildCfg.BasePythons,
		SecondaryPython: buildCfg.SecondaryPython,
		Platforms:       buildCfg.Platforms,
		LocalPlatform:   localPlatform,
	}, nil
}
