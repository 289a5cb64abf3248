package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

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

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation: there is no DSN.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one, while gaps are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "flag.db"}}, Log: Log{Level: "debug"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
	assert.Equal(t, DefaultSubmitTimeout, cfg.App.SubmitTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_FORM_FILE", "forms/contact.yaml")
	t.Setenv("STORAGE_DB_DSN", "env.db")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "forms/contact.yaml", b.configs[0].App.FormFile)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_COPY_ON_SUBMIT", "definitely")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "flag.db"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-token-issuer", "x"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.App.SubmitTimeout = Duration(2 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, b.configs[1].App.SubmitTimeout)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
	assert.Empty(t, cfg.App.FormFile)
	assert.False(t, cfg.App.CopyOnSubmit)
}

func TestGetStructuredConfig_EnvBeatsFlagsBeatsJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.Log.Level = "warn"
	payload.Log.File = "json.log"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("STORAGE_DB_DSN", "env.db")

	cfg, err := GetStructuredConfig([]string{"-c", path, "-log-level", "debug", "-copy"})
	require.NoError(t, err)

	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json.log", cfg.Log.File)
	assert.True(t, cfg.App.CopyOnSubmit)
}

func TestGetStructuredConfig_InvalidLogLevel(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-log-level", "loud"})
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

func TestGetStructuredConfig_MissingFormFile(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-form", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
