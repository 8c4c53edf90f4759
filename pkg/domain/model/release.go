package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// versionPattern is the X.Y.Z semantic-versioning pattern a release tag
// must match exactly. Forms like "1.2", "v1.2.3" or "1.2.3rc1" are rejected.
var versionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// ReleaseRequest describes one build-and-upload cycle for a model repository
type ReleaseRequest struct {
	Repo         string // Repository name appended to the GitHub base URL
	Package      string // Package name inside the repository
	Version      string // Release tag with X.Y.Z pattern
	AlsoPython37 bool   // Whether packages are also built for Python 3.7
	DryRun       bool   // Whether only the build/upload plan is shown
}

// Validate rejects malformed requests before any side effect occurs
func (r *ReleaseRequest) Validate() error {
	if r.Repo == "" {
		return goerr.New("repository name is empty")
	}
	if r.Package == "" {
		return goerr.New("package name is empty")
	}
	if !versionPattern.MatchString(r.Version) {
		return goerr.New("version does not have X.Y.Z semantic-versioning pattern",
			goerr.V("version", r.Version))
	}
	return nil
}

// PackageFileName derives the conda artifact filename produced by a local
// build, e.g. ("taxcalc", "0.22.2", "3.7") -> "taxcalc-0.22.2-py37_0.tar.bz2".
// The build-number suffix is fixed at 0 because builds use --old-build-string.
func PackageFileName(pkg, version, pyVersion string) string {
	parts := strings.SplitN(pyVersion, ".", 3)
	tag := parts[0]
	if len(parts) > 1 {
		tag += parts[1]
	}
	return fmt.Sprintf("%s-%s-py%s_0.tar.bz2", pkg, version, tag)
}
