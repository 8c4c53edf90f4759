package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// File holds optional YAML overrides for channel and build settings. Only
// fields present in the file are applied; flags and env vars fill the rest.
type File struct {
	AnacondaUser     string   `yaml:"anaconda_user"`
	AnacondaChannel  string   `yaml:"anaconda_channel"`
	TokenFile        string   `yaml:"token_file"`
	GitHubURL        string   `yaml:"github_url"`
	WorkingDir       string   `yaml:"working_dir"`
	OutputDir        string   `yaml:"output_dir"`
	Platforms        []string `yaml:"platforms"`
	BasePythons      []string `yaml:"base_python"`
	SecondaryPython  string   `yaml:"secondary_python"`
	LocalPlatform    string   `yaml:"local_platform"`
	SkipReleaseCheck *bool    `yaml:"skip_release_check"`
}

// LoadFile reads a YAML overrides file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &f, nil
}

// Apply copies non-empty override values onto the flag-backed configs
func (f *File) Apply(ch *Channel, b *Build) {
	if f.AnacondaUser != "" {
		ch.User = f.AnacondaUser
	}
	if f.AnacondaChannel != "" {
		ch.Channel = f.AnacondaChannel
	}
	if f.TokenFile != "" {
		ch.TokenFile = f.TokenFile
	}
	if f.GitHubURL != "" {
		b.GitHubURL = f.GitHubURL
	}
	if f.WorkingDir != "" {
		b.WorkingDir = f.WorkingDir
	}
	if f.OutputDir != "" {
		b.OutputDir = f.OutputDir
	}
	if len(f.Platforms) > 0 {
		b.Platforms = f.Platforms
	}
	if len(f.BasePythons) > 0 {
		b.BasePythons = f.BasePythons
	}
	if f.SecondaryPython != "" {
		b.SecondaryPython = f.SecondaryPython
	}
	if f.LocalPlatform != "" {
		b.LocalPlatform = f.LocalPlatform
	}
	if f.SkipReleaseCheck != nil {
		b.SkipReleaseCheck = *f.SkipReleaseCheck
	}
}
