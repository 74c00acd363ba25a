package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/catalog"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/errors"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given. A missing default file is not an error; flags and built-in
// defaults apply.
const defaultConfigFile = "scenehop.toml"

// Config holds file-based defaults for all commands. Flags override any
// value set here.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Thumb   ThumbConfig   `toml:"thumb"`
	Render  RenderConfig  `toml:"render"`
	Server  ServerConfig  `toml:"server"`
}

// CatalogConfig controls catalog generation.
type CatalogConfig struct {
	Seed  int64 `toml:"seed"`
	Count int   `toml:"count"`
}

// ThumbConfig controls thumbnail geometry.
type ThumbConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// RenderConfig controls the render command's output.
type RenderConfig struct {
	Out      string `toml:"out"`
	Variants bool   `toml:"variants"`
	Jobs     int    `toml:"jobs"`
}

// ServerConfig controls the preview server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the built-in defaults applied before any file or
// flag overrides.
func defaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{Seed: catalog.DefaultSeed, Count: catalog.DefaultCount},
		Thumb:   ThumbConfig{Width: 480, Height: 270},
		Render:  RenderConfig{Out: "thumbs", Variants: true, Jobs: 4},
		Server:  ServerConfig{Addr: ":8650"},
	}
}

// loadConfig reads path over the defaults. An empty path tries the default
// file name and tolerates its absence; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
