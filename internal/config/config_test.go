package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolve/internal/config"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		config.EnvMazeFile, config.EnvAlgorithm, config.EnvDelay,
		config.EnvAnimate, config.EnvDevelopment,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, config.Defaults(), config.FromEnv())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMazeFile, "mazes/big.maze")
	t.Setenv(config.EnvAlgorithm, "dfs")
	t.Setenv(config.EnvDelay, "25")
	t.Setenv(config.EnvAnimate, "true")
	t.Setenv(config.EnvDevelopment, "1")

	cfg := config.FromEnv()
	assert.Equal(t, "mazes/big.maze", cfg.MazeFile)
	assert.Equal(t, "dfs", cfg.Algorithm)
	assert.Equal(t, 25*time.Millisecond, cfg.Delay)
	assert.True(t, cfg.Animate)
	assert.True(t, cfg.Development)
}

func TestFromEnv_Lenient(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvDelay, "soon")
	t.Setenv(config.EnvDevelopment, "yes")
	t.Setenv(config.EnvAnimate, "0")

	cfg := config.FromEnv()
	assert.Equal(t, config.Defaults().Delay, cfg.Delay)
	assert.True(t, cfg.Development)
	assert.False(t, cfg.Animate)

	t.Setenv(config.EnvDelay, "1s")
	assert.Equal(t, time.Second, config.FromEnv().Delay)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("MAZE_ALGO=bfs\nMAZE_FILE=from-dotenv.maze\n"), 0o600))
	t.Setenv(config.EnvMazeFile, "from-env.maze")

	cfg, loaded := config.Load(file)
	assert.True(t, loaded)
	assert.Equal(t, "bfs", cfg.Algorithm)
	assert.Equal(t, "from-env.maze", cfg.MazeFile, "existing variables win over .env")

	_, loaded = config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.False(t, loaded)
}
