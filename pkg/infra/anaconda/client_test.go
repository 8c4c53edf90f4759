package anaconda_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/pslmodels/pkgbld/pkg/infra/anaconda"
)

type recordedRun struct {
	dir  string
	name string
	args []string
}

type mockRunner struct {
	runs []recordedRun
}

func (m *mockRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	m.runs = append(m.runs, recordedRun{dir: dir, name: name, args: args})
	return nil
}

func TestUpload(t *testing.T) {
	runner := &mockRunner{}
	client := anaconda.NewClient(runner)

	err := client.Upload(context.Background(), "/work/Tax-Calculator",
		"/home/user/.pslmodels_anaconda_token", "pslmodels",
		"pkgbld_output/win-64/taxcalc-0.22.2-py37_0.tar.bz2")
	gt.NoError(t, err)

	run := runner.runs[0]
	gt.Value(t, run.name).Equal("anaconda")
	gt.Array(t, run.args).Equal([]string{
		"-t", "/home/user/.pslmodels_anaconda_token",
		"upload",
		"-u", "pslmodels",
		"--force",
		"pkgbld_output/win-64/taxcalc-0.22.2-py37_0.tar.bz2",
	})
}
