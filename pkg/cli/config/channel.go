package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Channel holds distribution-channel configuration
type Channel struct {
	User      string
	Channel   string
	TokenFile string
}

// Flags returns CLI flags for channel configuration
func (c *Channel) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "anaconda-user",
			Usage:       "Anaconda Cloud account owning the channel",
			Value:       "pslmodels",
			Destination: &c.User,
			Sources:     cli.EnvVars("PKGBLD_ANACONDA_USER"),
		},
		&cli.StringFlag{
			Name:        "anaconda-channel",
			Usage:       "Anaconda channel (defaults to the user name)",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("PKGBLD_ANACONDA_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "token-file",
			Usage:       "Anaconda token file (defaults to ~/.<user>_anaconda_token)",
			Destination: &c.TokenFile,
			Sources:     cli.EnvVars("PKGBLD_TOKEN_FILE"),
		},
	}
}

// ResolvedChannel returns the channel name, falling back to the user name
func (c *Channel) ResolvedChannel() string {
	if c.Channel != "" {
		return c.Channel
	}
	return c.User
}

// ResolvedTokenFile returns the token file path, defaulting to
// ~/.<user>_anaconda_token under the home directory.
func (c *Channel) ResolvedTokenFile() (string, error) {
	if c.TokenFile != "" {
		return c.TokenFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, fmt.Sprintf(".%s_anaconda_token", c.User)), nil
}
