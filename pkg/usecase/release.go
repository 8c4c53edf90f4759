package usecase

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pslmodels/pkgbld/pkg/domain/interfaces"
	"github.com/pslmodels/pkgbld/pkg/domain/model"
	"github.com/pslmodels/pkgbld/pkg/utils/console"
)

// Version-stamp patterns for the three tracked files inside a model clone
var (
	metaVersionPattern  = regexp.MustCompile(`version: .*`)
	setupVersionPattern = regexp.MustCompile(`version = .*`)
	initVersionPattern  = regexp.MustCompile(`__version__ = .*`)
)

type releaseUseCase struct {
	cfg      *model.Config
	git      interfaces.GitClient
	conda    interfaces.CondaClient
	anaconda interfaces.AnacondaClient
	checker  interfaces.ReleaseChecker
	out      *console.Printer
}

// NewRelease creates the release orchestrator. checker may be nil, in which
// case a missing tag is only discovered when the clone fails.
func NewRelease(
	cfg *model.Config,
	git interfaces.GitClient,
	conda interfaces.CondaClient,
	anaconda interfaces.AnacondaClient,
	checker interfaces.ReleaseChecker,
	out *console.Printer,
) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		cfg:      cfg,
		git:      git,
		conda:    conda,
		anaconda: anaconda,
		checker:  checker,
		out:      out,
	}
}

// Release runs the build-and-upload pipeline: validate, report the plan,
// reset the workspace, clone the tagged release, stamp version strings,
// build/convert/upload per Python version, then clean up. Stages run
// strictly in order; the first failure aborts the rest, leaving the working
// directory in place for inspection.
func (uc *releaseUseCase) Release(ctx context.Context, req *model.ReleaseRequest) error {
	logger := ctxlog.From(ctx)

	if err := req.Validate(); err != nil {
		return goerr.Wrap(err, "invalid release request")
	}
	if _, err := os.Stat(uc.cfg.TokenFile); err != nil {
		return goerr.Wrap(err, "Anaconda token file does not exist",
			goerr.V("token_file", uc.cfg.TokenFile))
	}

	plan := model.NewBuildPlan(uc.cfg, req)

	uc.out.Headf("Package-Builder will build model packages for:")
	uc.out.Stepf("  repository_name = %s", req.Repo)
	uc.out.Stepf("  package_name = %s", req.Package)
	uc.out.Stepf("  model_version = %s", req.Version)
	uc.out.Stepf("  python_versions = %v", plan.PythonVersions)
	uc.out.Stepf("  os_platforms = %v", plan.Platforms)
	uc.out.Headf("Package-Builder will upload model packages to:")
	uc.out.Stepf("  Anaconda channel = %s", uc.cfg.AnacondaChannel)
	uc.out.Stepf("  using token in file = %s", uc.cfg.TokenFile)

	if req.DryRun {
		uc.out.Headf("Package-Builder is quitting")
		return nil
	}

	uc.out.Headf("Package-Builder is starting at %s", time.Now().Format(time.ANSIC))
	logger.Info("Starting release",
		"repo", req.Repo,
		"package", req.Package,
		"version", req.Version,
		"python_versions", plan.PythonVersions,
		"platforms", plan.Platforms,
		"local_platform", uc.cfg.LocalPlatform,
	)

	if uc.checker != nil {
		exists, err := uc.checker.ReleaseExists(ctx, req.Repo, req.Version)
		if err != nil {
			return goerr.Wrap(err, "failed to verify release tag",
				goerr.V("repo", req.Repo), goerr.V("version", req.Version))
		}
		if !exists {
			return goerr.New("release tag not found in repository",
				goerr.V("repo", req.Repo), goerr.V("version", req.Version))
		}
	}

	if err := uc.resetWorkspace(); err != nil {
		return err
	}

	uc.out.Headf("Package-Builder is cloning repository code for %s", req.Version)
	if err := uc.git.CloneTag(ctx, uc.cfg.WorkingDir, uc.cfg.GitHubURL, req.Repo, req.Version); err != nil {
		return goerr.Wrap(err, "failed to clone release tag",
			goerr.V("repo", req.Repo), goerr.V("version", req.Version))
	}

	repoDir := uc.cfg.RepoDir(req.Repo)

	uc.out.Headf("Package-Builder is setting version")
	if err := uc.stampAll(repoDir, req); err != nil {
		return err
	}

	for _, pyVersion := range plan.PythonVersions {
		if err := uc.buildConvertUpload(ctx, repoDir, req, plan, pyVersion); err != nil {
			return err
		}
	}

	uc.out.Headf("Package-Builder is cleaning-up")
	if err := uc.conda.Purge(ctx, repoDir); err != nil {
		return goerr.Wrap(err, "failed to purge conda build cache")
	}
	if err := os.RemoveAll(uc.cfg.WorkingDir); err != nil {
		return goerr.Wrap(err, "failed to remove working directory",
			goerr.V("working_dir", uc.cfg.WorkingDir))
	}

	uc.out.Headf("Package-Builder is finishing at %s", time.Now().Format(time.ANSIC))
	return nil
}

// resetWorkspace clobbers the working directory and recreates it empty. The
// directory is owned exclusively by one release run; concurrent runs against
// the same path are a precondition violation, not guarded against.
func (uc *releaseUseCase) resetWorkspace() error {
	if err := os.RemoveAll(uc.cfg.WorkingDir); err != nil {
		return goerr.Wrap(err, "failed to remove stale working directory",
			goerr.V("working_dir", uc.cfg.WorkingDir))
	}
	if err := os.MkdirAll(uc.cfg.WorkingDir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create working directory",
			goerr.V("working_dir", uc.cfg.WorkingDir))
	}
	return nil
}

// stampAll rewrites the version literal in the three tracked files of the
// cloned repository.
func (uc *releaseUseCase) stampAll(repoDir string, req *model.ReleaseRequest) error {
	stamps := []struct {
		path        string
		pattern     *regexp.Regexp
		replacement string
	}{
		{
			path:        filepath.Join(repoDir, "conda.recipe", "meta.yaml"),
			pattern:     metaVersionPattern,
			replacement: "version: " + req.Version,
		},
		{
			path:        filepath.Join(repoDir, "setup.py"),
			pattern:     setupVersionPattern,
			replacement: `version = "` + req.Version + `"`,
		},
		{
			path:        filepath.Join(repoDir, req.Package, "__init__.py"),
			pattern:     initVersionPattern,
			replacement: `__version__ = "` + req.Version + `"`,
		},
	}
	for _, s := range stamps {
		if err := stampVersion(s.path, s.pattern, s.replacement); err != nil {
			return err
		}
	}
	return nil
}

// buildConvertUpload handles one Python version: build for the local
// platform, convert the artifact to every other platform, upload all of
// them. Uploads force-overwrite existing remote artifacts; nothing is rolled
// back on a later failure.
func (uc *releaseUseCase) buildConvertUpload(
	ctx context.Context,
	repoDir string,
	req *model.ReleaseRequest,
	plan *model.BuildPlan,
	pyVersion string,
) error {
	logger := ctxlog.From(ctx)

	uc.out.Headf("Package-Builder is building package for Python %s", pyVersion)
	if err := uc.conda.Build(ctx, repoDir, pyVersion, uc.cfg.AnacondaChannel, uc.cfg.OutputDir); err != nil {
		return goerr.Wrap(err, "conda build failed", goerr.V("python_version", pyVersion))
	}

	pkgFile := model.PackageFileName(req.Package, req.Version, pyVersion)
	localArtifact := filepath.Join(uc.cfg.OutputDir, uc.cfg.LocalPlatform, pkgFile)
	logger.Debug("Built local artifact", "artifact", localArtifact)

	uc.out.Headf("Package-Builder is converting package for Python %s", pyVersion)
	for _, platform := range plan.Platforms {
		if platform == uc.cfg.LocalPlatform {
			continue
		}
		if err := uc.conda.Convert(ctx, repoDir, platform, uc.cfg.OutputDir, localArtifact); err != nil {
			return goerr.Wrap(err, "conda convert failed",
				goerr.V("python_version", pyVersion), goerr.V("platform", platform))
		}
	}

	uc.out.Headf("Package-Builder is uploading packages for Python %s", pyVersion)
	for _, platform := range plan.Platforms {
		artifact := filepath.Join(uc.cfg.OutputDir, platform, pkgFile)
		if err := uc.anaconda.Upload(ctx, repoDir, uc.cfg.TokenFile, uc.cfg.AnacondaUser, artifact); err != nil {
			return goerr.Wrap(err, "anaconda upload failed",
				goerr.V("python_version", pyVersion), goerr.V("platform", platform))
		}
	}

	return nil
}
