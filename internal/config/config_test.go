package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Server.Listen)
	assert.Equal(t, 2, cfg.Inference.Slots)
	assert.Equal(t, "./temporary_templates", cfg.Templates.Dir)
	assert.Equal(t, 180*time.Second, cfg.Templates.TTL)
	assert.Equal(t, 30*time.Second, cfg.Templates.ReapInterval)
	assert.Zero(t, cfg.Scan.MaxFrames)
	assert.Equal(t, int64(16<<20), cfg.Scan.MaxFrameBytes)
	assert.Empty(t, cfg.Scoring.Profile)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Client.Server)
}

func TestLoadNilViperUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestInitReadsConfigFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twmj.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[inference]
slots = 4
url = "http://model:9000"

[templates]
ttl = "1m"
`), 0o600))
	t.Setenv("TWMJ_TEMPLATES_REAP_INTERVAL", "5s")

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Inference.Slots)
	assert.Equal(t, "http://model:9000", cfg.Inference.URL)
	assert.Equal(t, time.Minute, cfg.Templates.TTL)
	assert.Equal(t, 5*time.Second, cfg.Templates.ReapInterval)
}

func TestInitRequiresExplicitConfigFile(t *testing.T) {
	t.Parallel()

	err := Init(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetDefaults(v)
	v.Set(KeySlots, 0)
	v.Set(KeyTemplatesTTL, "0s")
	v.Set(KeyMaxFrames, -1)

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inference.slots must be at least 1")
	assert.Contains(t, err.Error(), "templates.ttl must be positive")
	assert.Contains(t, err.Error(), "scan.max_frames must not be negative")
}
