package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/pslmodels/pkgbld/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "debug console", level: "debug", format: "console"},
		{name: "info json", level: "info", format: "json"},
		{name: "warn text", level: "warn", format: "text"},
		{name: "error console", level: "error", format: "console"},
		{name: "uppercase level", level: "INFO", format: "console"},
		{name: "uppercase format", level: "info", format: "JSON"},
		{name: "unknown level", level: "verbose", format: "console", wantErr: true},
		{name: "empty level", level: "", format: "console", wantErr: true},
		{name: "unknown format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Logger{Level: tt.level, Format: tt.format}
			logger, err := cfg.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, logger).NotNil()
		})
	}
}

func TestLogger_Flags(t *testing.T) {
	cfg := &config.Logger{}
	gt.Value(t, len(cfg.Flags())).Equal(2)
}
