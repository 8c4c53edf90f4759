package config_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/pslmodels/pkgbld/pkg/cli/config"
)

func TestChannel_ResolvedChannel(t *testing.T) {
	cfg := &config.Channel{User: "pslmodels"}
	gt.Value(t, cfg.ResolvedChannel()).Equal("pslmodels")

	cfg.Channel = "nightly"
	gt.Value(t, cfg.ResolvedChannel()).Equal("nightly")
}

func TestChannel_ResolvedTokenFile(t *testing.T) {
	explicit := &config.Channel{User: "pslmodels", TokenFile: "/etc/token"}
	path, err := explicit.ResolvedTokenFile()
	gt.NoError(t, err)
	gt.Value(t, path).Equal("/etc/token")

	defaulted := &config.Channel{User: "pslmodels"}
	path, err = defaulted.ResolvedTokenFile()
	gt.NoError(t, err)
	gt.Value(t, strings.HasSuffix(path, ".pslmodels_anaconda_token")).Equal(true)
}

func TestBuild_Owner(t *testing.T) {
	cfg := &config.Build{GitHubURL: "https://github.com/PSLmodels"}
	owner, err := cfg.Owner()
	gt.NoError(t, err)
	gt.Value(t, owner).Equal("PSLmodels")

	cfg.GitHubURL = "https://github.com/PSLmodels/Tax-Calculator"
	_, err = cfg.Owner()
	gt.Error(t, err)
}
