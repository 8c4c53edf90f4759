package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/pslmodels/pkgbld/pkg/utils/console"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := console.New(&buf)

	p.Stepf("  repository_name = %s", "Tax-Calculator")
	p.Headf("Package-Builder is starting")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	gt.Value(t, len(lines)).Equal(2)
	gt.Value(t, lines[0]).Equal(":   repository_name = Tax-Calculator")
	gt.String(t, lines[1]).Contains("Package-Builder is starting")
	gt.Value(t, strings.Contains(lines[1], ": ")).Equal(true)
}
