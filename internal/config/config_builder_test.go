package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{DeviceSecret: "secret"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "secret", cfg.App.DeviceSecret)
}

// TestBuild_LaterSourceWins verifies that a non-zero value from a later
// source overrides the earlier one, while zero values never erase it.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{GRPCAddress: "env:9090", MediaBaseURL: "https://env"}},
		&StructuredConfig{Adapter: Adapter{GRPCAddress: "flag:9090"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag:9090", cfg.Adapter.GRPCAddress)
	assert.Equal(t, "https://env", cfg.Adapter.MediaBaseURL)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DATA_DIR", "/env/data")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/env/data", b.configs[0].Storage.DataDir)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "sometimes")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-data-dir", "/flag/data"}

	assert.Same(t, b, b.withFlags())
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/flag/data", b.configs[0].Storage.DataDir)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-pool-size", "lots"}
	b.withFlags()

	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error parsing flags")
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Adapter.GRPCAddress = "json:9090"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json:9090", b.configs[1].Adapter.GRPCAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
		&StructuredConfig{},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.Version)
}

// TestBuilder_FullChain runs env, flags and JSON together; JSON overrides
// flags which override env.
func TestBuilder_FullChain(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.Adapter.MediaBaseURL = "https://json.example.com"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("ADAPTER_GRPC_ADDRESS", "envhost:1")
	t.Setenv("ADAPTER_MEDIA_URL", "https://env.example.com")
	t.Setenv("CONFIG", path)

	b := newConfigBuilder()
	b.args = []string{"-a", "flaghost:2"}

	cfg, err := b.withEnv().withFlags().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "flaghost:2", cfg.Adapter.GRPCAddress)
	assert.Equal(t, "https://json.example.com", cfg.Adapter.MediaBaseURL)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestBuilder_Precedence sets the same field in every source: the JSON file
// beats flags, flags beat env, and an unset field keeps the lower source.
func TestBuilder_Precedence(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.Adapter.GRPCAddress = "jsonhost:3"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("ADAPTER_GRPC_ADDRESS", "envhost:1")
	t.Setenv("STORAGE_DATA_DIR", "/env/data")
	t.Setenv("CONFIG", path)

	b := newConfigBuilder()
	b.args = []string{"-a", "flaghost:2"}

	cfg, err := b.withEnv().withFlags().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "jsonhost:3", cfg.Adapter.GRPCAddress)
	assert.Equal(t, "/env/data", cfg.Storage.DataDir)

	b = newConfigBuilder()
	b.args = []string{"-a", "flaghost:2"}
	t.Setenv("CONFIG", "")

	cfg, err = b.withEnv().withFlags().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "flaghost:2", cfg.Adapter.GRPCAddress)
}
