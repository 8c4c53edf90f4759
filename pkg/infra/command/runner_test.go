package command_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/pslmodels/pkgbld/pkg/infra/command"
)

func TestRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	ctx := context.Background()

	t.Run("streams output", func(t *testing.T) {
		var buf bytes.Buffer
		runner := command.NewRunner(command.WithOutput(&buf, &buf))

		err := runner.Run(ctx, t.TempDir(), "sh", "-c", "echo hello")
		gt.NoError(t, err)
		gt.String(t, buf.String()).Contains("hello")
	})

	t.Run("runs in the given directory", func(t *testing.T) {
		dir := t.TempDir()
		runner := command.NewRunner(command.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

		err := runner.Run(ctx, dir, "sh", "-c", "touch made.txt")
		gt.NoError(t, err)
		_, statErr := os.Stat(filepath.Join(dir, "made.txt"))
		gt.NoError(t, statErr)
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		runner := command.NewRunner(command.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

		err := runner.Run(ctx, t.TempDir(), "sh", "-c", "exit 3")
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("external command failed")
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		runner := command.NewRunner(command.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

		err := runner.Run(ctx, t.TempDir(), "pkgbld-no-such-tool-xyz")
		gt.Error(t, err)
	})
}
