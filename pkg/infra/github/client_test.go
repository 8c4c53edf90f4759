package github_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/pslmodels/pkgbld/pkg/infra/github"
)

func TestReleaseExists_RealRepo(t *testing.T) {
	if os.Getenv("TEST_GITHUB_RELEASE_CHECK") == "" {
		t.Skip("set TEST_GITHUB_RELEASE_CHECK to run network tests")
	}

	ctx := context.Background()
	client := github.NewClient("PSLmodels")

	exists, err := client.ReleaseExists(ctx, "Tax-Calculator", "0.22.2")
	gt.NoError(t, err)
	gt.Value(t, exists).Equal(true)

	exists, err = client.ReleaseExists(ctx, "Tax-Calculator", "999.999.999")
	gt.NoError(t, err)
	gt.Value(t, exists).Equal(false)
}
