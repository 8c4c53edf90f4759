package conda_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/pslmodels/pkgbld/pkg/infra/conda"
)

func TestLocalPlatform(t *testing.T) {
	platform := conda.LocalPlatform()
	gt.Value(t, platform).NotEqual("")
	gt.Value(t, strings.Contains(platform, "-")).Equal(true)
}
