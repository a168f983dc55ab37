package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     *Config
		wantExit bool
		wantCode int
	}{
		{
			name: "positional path with defaults",
			args: []string{"wall.hcl"},
			want: &Config{ScenarioPath: "wall.hcl", LogFormat: "text", LogLevel: "warn", OutputFormat: "text", ShowMap: true},
		},
		{
			name: "flag path wins over positional",
			args: []string{"-scenario", "a.hcl", "b.hcl"},
			want: &Config{ScenarioPath: "a.hcl", LogFormat: "text", LogLevel: "warn", OutputFormat: "text", ShowMap: true},
		},
		{
			name: "all options",
			args: []string{"-s", "a.hcl", "-log-format", "JSON", "-log-level", "debug", "-format", "json", "-timeout", "250ms", "-map=false"},
			want: &Config{ScenarioPath: "a.hcl", LogFormat: "json", LogLevel: "debug", OutputFormat: "json", Timeout: 250 * time.Millisecond},
		},
		{name: "no path prints usage", args: nil, wantExit: true},
		{name: "help", args: []string{"-h"}, wantExit: true},
		{name: "unknown flag", args: []string{"-bogus"}, wantCode: 2},
		{name: "bad log format", args: []string{"-log-format", "xml", "a.hcl"}, wantCode: 2},
		{name: "bad log level", args: []string{"-log-level", "trace", "a.hcl"}, wantCode: 2},
		{name: "bad output format", args: []string{"-format", "yaml", "a.hcl"}, wantCode: 2},
		{name: "negative timeout", args: []string{"-timeout", "-1s", "a.hcl"}, wantCode: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			config, exit, err := Parse(tt.args, &out)

			if tt.wantCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tt.wantCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExit, exit)
			if tt.wantExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tt.want, config)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("warn", "json", &out)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	logger.Warn("careful", "k", 1)
	assert.Contains(t, out.String(), `"msg":"careful"`)

	out.Reset()
	NewLogger("unknown", "text", &out).Info("hello")
	assert.Contains(t, out.String(), "msg=hello")
}
