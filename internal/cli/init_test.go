package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefnx/roller/internal/config"
	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/tracker"
)

func clearInitEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ROLLER_API_ENDPOINT", "ROLLER_INTERVAL", "ROLLER_SORT", "ROLLER_NON_INTERACTIVE", "CI"} {
		t.Setenv(key, "")
	}
}

func TestGetInitDefaults(t *testing.T) {
	t.Run("env vars populated", func(t *testing.T) {
		clearInitEnv(t)
		t.Setenv("ROLLER_API_ENDPOINT", "http://env.test")
		t.Setenv("ROLLER_INTERVAL", "250ms")
		t.Setenv("ROLLER_SORT", "tps")
		t.Setenv("ROLLER_NON_INTERACTIVE", "true")

		defaults := getInitDefaults()
		assert.Equal(t, "http://env.test", defaults.Endpoint)
		assert.Equal(t, "250ms", defaults.Interval)
		assert.Equal(t, "tps", defaults.Sort)
		assert.True(t, defaults.NonInteractive)
	})

	t.Run("CI env triggers non-interactive", func(t *testing.T) {
		clearInitEnv(t)
		t.Setenv("CI", "true")

		assert.True(t, getInitDefaults().NonInteractive)
	})

	t.Run("falsy value", func(t *testing.T) {
		clearInitEnv(t)
		t.Setenv("ROLLER_NON_INTERACTIVE", "no")

		assert.False(t, getInitDefaults().NonInteractive)
	})

	t.Run("empty env vars", func(t *testing.T) {
		clearInitEnv(t)

		defaults := getInitDefaults()
		assert.Empty(t, defaults.Endpoint)
		assert.Empty(t, defaults.Interval)
		assert.Empty(t, defaults.Sort)
		assert.False(t, defaults.NonInteractive)
	})
}

func TestMergeInitOptions(t *testing.T) {
	t.Run("flags override env vars", func(t *testing.T) {
		clearInitEnv(t)
		t.Setenv("ROLLER_API_ENDPOINT", "http://env.test")
		t.Setenv("ROLLER_SORT", "dps")

		merged := mergeInitOptions(InitOptions{Endpoint: "http://flag.test"})
		assert.Equal(t, "http://flag.test", merged.Endpoint)
		assert.Equal(t, "dps", merged.Sort)
		assert.False(t, merged.NonInteractive)
	})

	t.Run("non-interactive from either side", func(t *testing.T) {
		clearInitEnv(t)
		assert.True(t, mergeInitOptions(InitOptions{NonInteractive: true}).NonInteractive)

		t.Setenv("CI", "1")
		assert.True(t, mergeInitOptions(InitOptions{}).NonInteractive)
	})
}

func TestInit_NonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	var out bytes.Buffer

	err := Init(InitOptions{
		Path:           path,
		Endpoint:       "http://localhost:8080/",
		Interval:       "250ms",
		Sort:           "tps",
		NonInteractive: true,
		Out:            &out,
	})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIEndpoint)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, tracker.ByTps, cfg.Strategy())
	assert.Contains(t, out.String(), "Created "+path)
}

func TestInit_NonInteractiveDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	require.NoError(t, Init(InitOptions{Path: path, NonInteractive: true, Out: &bytes.Buffer{}}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInit_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("sort: dps\n"), 0644))

	t.Run("refused without force", func(t *testing.T) {
		err := Init(InitOptions{Path: path, NonInteractive: true, Out: &bytes.Buffer{}})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Contains(t, err.Error(), "--force")

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "sort: dps\n", string(data))
	})

	t.Run("overwritten with force", func(t *testing.T) {
		err := Init(InitOptions{Path: path, Sort: "gps", Overwrite: true, NonInteractive: true, Out: &bytes.Buffer{}})
		require.NoError(t, err)

		cfg, loadErr := config.Load(path)
		require.NoError(t, loadErr)
		assert.Equal(t, tracker.ByGps, cfg.Strategy())
	})
}

func TestBuildInitConfig(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		interval string
		sort     string
		wantErr  bool
	}{
		{name: "valid", endpoint: "https://api.test", interval: "1s", sort: "dps"},
		{name: "bad interval", endpoint: "https://api.test", interval: "soon", sort: "gps", wantErr: true},
		{name: "interval too small", endpoint: "https://api.test", interval: "0s", sort: "gps", wantErr: true},
		{name: "bad sort", endpoint: "https://api.test", interval: "1s", sort: "cpu", wantErr: true},
		{name: "bad endpoint", endpoint: "ftp://api.test", interval: "1s", sort: "gps", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := buildInitConfig(tt.endpoint, tt.interval, tt.sort)
			if tt.wantErr {
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Second, cfg.Interval)
			assert.Equal(t, tracker.ByDps, cfg.Strategy())
		})
	}
}

func TestValidateEndpointInput(t *testing.T) {
	assert.NoError(t, validateEndpointInput("http://localhost:8080"))
	assert.Error(t, validateEndpointInput("localhost"))
	assert.Error(t, validateEndpointInput(""))
}
