package usecase

import (
	"os"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// stampVersion rewrites every line of the file matching pattern, replacing
// the matched portion with replacement. All other bytes are preserved. A
// pattern that matches no line is an error: a silently skipped stamp would
// publish packages whose metadata disagrees with the release tag.
func stampVersion(path string, pattern *regexp.Regexp, replacement string) error {
	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat file for version stamp",
			goerr.V("file", path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read file for version stamp",
			goerr.V("file", path))
	}

	lines := strings.Split(string(data), "\n")
	matched := 0
	for i, line := range lines {
		if pattern.MatchString(line) {
			lines[i] = pattern.ReplaceAllLiteralString(line, replacement)
			matched++
		}
	}
	if matched == 0 {
		return goerr.New("version pattern matched no lines",
			goerr.V("file", path), goerr.V("pattern", pattern.String()))
	}

	out := strings.Join(lines, "\n")
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return goerr.Wrap(err, "failed to write stamped file",
			goerr.V("file", path))
	}
	return nil
}
