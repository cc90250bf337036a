package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{Capacity: 3, MetricsAddr: ":9090", LogLevel: "info"}, cfg)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Setenv("GOCACHE_CAPACITY", "5")
	t.Setenv("GOCACHE_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, "debug", cfg.LogLevel)

	cfg, err = Load([]string{"--capacity", "7", "--serve", "--metrics-addr", "127.0.0.1:0"})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Capacity)
	assert.True(t, cfg.Serve)
	assert.Equal(t, "127.0.0.1:0", cfg.MetricsAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "zero capacity", args: []string{"--capacity", "0"}},
		{name: "negative capacity env", env: map[string]string{"GOCACHE_CAPACITY": "-2"}},
		{name: "bad capacity env", env: map[string]string{"GOCACHE_CAPACITY": "many"}},
		{name: "unknown level", args: []string{"--log-level", "loud"}},
		{name: "serve without addr", args: []string{"--serve", "--metrics-addr", ""}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}
