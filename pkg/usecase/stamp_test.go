package usecase

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestStampVersion_ReplacesOnlyMatchingLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.yaml")
	content := "package:\n  name: taxcalc\nversion: 0.0.0\nbuild:\n  number: 0\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	err := stampVersion(path, regexp.MustCompile(`version: .*`), "version: 1.2.3")
	gt.NoError(t, err)

	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.Value(t, string(data)).
		Equal("package:\n  name: taxcalc\nversion: 1.2.3\nbuild:\n  number: 0\n")
}

func TestStampVersion_PreservesIndentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "__init__.py")
	gt.NoError(t, os.WriteFile(path, []byte("__version__ = \"0.0.0\"\n"), 0o644))

	err := stampVersion(path, regexp.MustCompile(`__version__ = .*`), `__version__ = "9.8.7"`)
	gt.NoError(t, err)

	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("__version__ = \"9.8.7\"\n")
}

func TestStampVersion_NoMatchIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.yaml")
	gt.NoError(t, os.WriteFile(path, []byte("package:\n  name: taxcalc\n"), 0o644))

	err := stampVersion(path, regexp.MustCompile(`version: .*`), "version: 1.2.3")
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("matched no lines")

	// file must be untouched when the stamp fails
	data, readErr := os.ReadFile(path)
	gt.NoError(t, readErr)
	gt.Value(t, string(data)).Equal("package:\n  name: taxcalc\n")
}

func TestStampVersion_MissingFile(t *testing.T) {
	err := stampVersion(filepath.Join(t.TempDir(), "absent.py"),
		regexp.MustCompile(`version = .*`), `version = "1.0.0"`)
	gt.Error(t, err)
}
