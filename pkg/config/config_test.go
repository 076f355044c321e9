package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchnet/matchnet/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matchnet.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTopK, cfg.Rank.TopK)
	assert.Equal(t, 10.0, cfg.Render.BaseSize)
	assert.True(t, cfg.Render.Physics)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[rank]
top_k = 15

[render]
base_size = 12.5
palette = ["#112233", "#aabbcc"]

[cache]
redis_addr = "localhost:6379"

[server]
addr = ":9000"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Rank.TopK)
	assert.Equal(t, 12.5, cfg.Render.BaseSize)
	assert.Equal(t, []string{"#112233", "#aabbcc"}, cfg.Render.Palette)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, ":9000", cfg.Server.Addr)

	// Untouched sections keep their defaults.
	assert.Equal(t, 40.0, cfg.Render.SizeRange)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[rank\ntop_k = 3")
	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidArgument, errors.GetCode(err))
}

func TestValidateTopKBounds(t *testing.T) {
	for _, k := range []int{4, 21, 0, -1} {
		cfg := Default()
		cfg.Rank.TopK = k
		err := cfg.Validate()
		require.Error(t, err, "top_k=%d", k)
		assert.Equal(t, errors.ErrCodeInvalidArgument, errors.GetCode(err))
	}

	for _, k := range []int{MinTopK, DefaultTopK, MaxTopK} {
		cfg := Default()
		cfg.Rank.TopK = k
		assert.NoError(t, cfg.Validate(), "top_k=%d", k)
	}
}

func TestValidatePalette(t *testing.T) {
	cfg := Default()
	cfg.Render.Palette = []string{"#e6194b", "red"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "red")
}

func TestValidateSizes(t *testing.T) {
	cfg := Default()
	cfg.Render.BaseSize = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Render.SizeRange = -1
	assert.Error(t, cfg.Validate())

	// Zero range collapses every node to base size but is legal.
	cfg = Default()
	cfg.Render.SizeRange = 0
	assert.NoError(t, cfg.Validate())
}
