package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "HTTP_ADDR", "DISCORD_TOKEN",
	"APPLICATION_ID", "GUILD_ID", "LOG_VERBOSE", "RANDOM_SEED", "HISTORY_LIMIT",
	"WHEEL_CONFIG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DiscordToken)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
	assert.Equal(t, wheel.DefaultSettings(), cfg.Wheel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_VERBOSE", "false")
	t.Setenv("RANDOM_SEED", "99")
	t.Setenv("HISTORY_LIMIT", "20")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, uint64(99), cfg.RandomSeed)
	assert.Equal(t, 20, cfg.HistoryLimit)
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("GUILD_ID")
	t.Setenv("HTTP_ADDR", ":9000")
	envFile := writeFile(t, ".env", "HTTP_ADDR=:7000\nGUILD_ID=guild-1\n")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "guild-1", cfg.GuildID)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	for key, value := range map[string]string{
		"REDIS_DB":    "one",
		"LOG_VERBOSE": "loud",
		"RANDOM_SEED": "-1",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadWheelFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "wheel.yaml", `
history_limit: 40
wheel:
  spin_duration: 3s
  extra_turns: 4
`)
	t.Setenv("WHEEL_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.HistoryLimit)
	assert.Equal(t, 3*time.Second, cfg.Wheel.SpinDuration)
	assert.Equal(t, 4, cfg.Wheel.ExtraTurns)
	assert.Equal(t, wheel.DefaultSettings().ReturnDuration, cfg.Wheel.ReturnDuration)
	assert.Equal(t, wheel.DefaultSettings().FrameInterval, cfg.Wheel.FrameInterval)
}

func TestLoadWheelFileIsNormalized(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "wheel.yaml", "wheel:\n  spin_duration: 100ms\n  extra_turns: 1\n")
	t.Setenv("WHEEL_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, wheel.MinSpinDuration, cfg.Wheel.SpinDuration)
	assert.Equal(t, wheel.MinExtraTurns, cfg.Wheel.ExtraTurns)
}

func TestReadFile(t *testing.T) {
	file, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &FileConfig{}, file)

	_, err = ReadFile(writeFile(t, "bad.yaml", "wheel: [not, a, map"))
	assert.Error(t, err)
}
