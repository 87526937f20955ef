package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.WaitTimeout)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, core.Monthly, cfg.Charts.Frequency)
	assert.Equal(t, "EUR", cfg.Charts.Chart.Currency)
	assert.Equal(t, 400, cfg.Charts.Chart.Height)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FOLIOVIEW_API_BASE_URL", "http://backend:9000/")
	t.Setenv("FOLIOVIEW_API_WAIT_TIMEOUT", "1m30s")
	t.Setenv("FOLIOVIEW_CHARTS_FREQUENCY", "weekly")
	t.Setenv("FOLIOVIEW_SERVER_PORT", "9090")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9000", cfg.API.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.API.WaitTimeout)
	assert.Equal(t, core.Weekly, cfg.Charts.Frequency)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folioview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
charts:
  currency: usd
  height: 320
log:
  level: debug
  json: true
`), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Charts.Chart.Currency)
	assert.Equal(t, 320, cfg.Charts.Chart.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"frequency", map[string]string{"FOLIOVIEW_CHARTS_FREQUENCY": "hourly"}},
		{"duration", map[string]string{"FOLIOVIEW_API_WAIT_TIMEOUT": "soon"}},
		{"port", map[string]string{"FOLIOVIEW_SERVER_PORT": "0"}},
		{"height", map[string]string{"FOLIOVIEW_CHARTS_HEIGHT": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(New(), "")
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
