// Package config loads and validates the optional matchnet.toml
// configuration file. Every field has a working default, so a missing file
// is not an error; flags override file values at the CLI layer.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/matchnet/matchnet/pkg/errors"
)

// Top-K bounds for ranking requests. A leaderboard shorter than 5 hides
// real contenders, longer than 20 stops being a leaderboard.
const (
	MinTopK     = 5
	MaxTopK     = 20
	DefaultTopK = 10
)

// Config is the full application configuration.
type Config struct {
	Rank   RankConfig   `toml:"rank"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RankConfig configures leaderboard queries.
type RankConfig struct {
	TopK int `toml:"top_k"`
}

// RenderConfig configures the visual encoding.
type RenderConfig struct {
	Palette   []string `toml:"palette"`
	BaseSize  float64  `toml:"base_size"`
	SizeRange float64  `toml:"size_range"`
	Physics   bool     `toml:"physics"`
}

// CacheConfig selects the cache backend. When RedisAddr is set the Redis
// backend is used, otherwise the file backend rooted at Dir.
type CacheConfig struct {
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	Disabled  bool   `toml:"disabled"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Rank: RankConfig{TopK: DefaultTopK},
		Render: RenderConfig{
			BaseSize:  10,
			SizeRange: 40,
			Physics:   true,
		},
		Cache:  CacheConfig{Dir: defaultCacheDir()},
		Server: ServerConfig{Addr: ":8080"},
	}
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".matchnet-cache"
	}
	return base + "/matchnet"
}

// Load reads the configuration from path, layered over [Default]. A missing
// file returns the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks field ranges. Load calls it automatically; callers that
// assemble a Config from flags should call it themselves.
func (c Config) Validate() error {
	if c.Rank.TopK < MinTopK || c.Rank.TopK > MaxTopK {
		return errors.New(errors.ErrCodeInvalidArgument,
			"rank.top_k must be between %d and %d, got %d", MinTopK, MaxTopK, c.Rank.TopK)
	}
	if c.Render.BaseSize <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"render.base_size must be positive, got %g", c.Render.BaseSize)
	}
	if c.Render.SizeRange < 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"render.size_range must not be negative, got %g", c.Render.SizeRange)
	}
	for _, color := range c.Render.Palette {
		if !hexColorRe.MatchString(color) {
			return errors.New(errors.ErrCodeInvalidArgument,
				"render.palette entry %q is not a #rrggbb color", color)
		}
	}
	return nil
}
