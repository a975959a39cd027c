// Package config loads penman's optional TOML configuration file.
//
// The file supplies defaults for command-line flags; flags given explicitly
// always win. A missing file at the default location is not an error.
//
//	[read]
//	full = true
//	reify = false
//	quiet = true
//	format = "json"
//
//	[write]
//	mark_props = true
//
//	[render]
//	detailed = true
//	format = "svg"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/penman/pkg/errors"
)

const appName = "penman"

// Config holds per-command defaults.
type Config struct {
	Read   Read   `toml:"read"`
	Write  Write  `toml:"write"`
	Render Render `toml:"render"`
}

// Read holds defaults for the read command.
type Read struct {
	Full   bool   `toml:"full"`
	Reify  bool   `toml:"reify"`
	Quiet  bool   `toml:"quiet"`
	Strict bool   `toml:"strict"`
	Format string `toml:"format"`
}

// Write holds defaults for the write command.
type Write struct {
	MarkProps bool `toml:"mark_props"`
}

// Render holds defaults for the render command.
type Render struct {
	Detailed bool   `toml:"detailed"`
	Format   string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Read:   Read{Format: "penman"},
		Render: Render{Format: "svg"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/penman/config.toml, falling back to
// ~/.config/penman/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path over the defaults. An empty path
// means DefaultPath, where a missing file yields the defaults; an explicit
// path must exist. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return cfg, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "failed to load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), perrors.New(perrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
