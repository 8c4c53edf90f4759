package command

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pslmodels/pkgbld/pkg/domain/interfaces"
)

// Runner invokes external tools synchronously. Tool output streams straight
// through to the attached writers; no timeout is imposed beyond ctx, so a
// hung tool hangs the run.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner
type Option func(*Runner)

// WithOutput redirects the spawned command's stdout and stderr
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a Runner attached to the process's stdout/stderr
func NewRunner(opts ...Option) interfaces.CommandRunner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args in dir and waits for completion. A non-zero
// exit status is returned as an error carrying the full command line.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "external command failed",
			goerr.V("command", name),
			goerr.V("args", args),
			goerr.V("dir", dir),
		)
	}
	return nil
}
