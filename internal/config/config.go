// Package config loads recast's optional user configuration file.
//
// The file is TOML, lives at <user config dir>/recast/recast.toml and only
// provides defaults for things the command line can already do. Flags always
// win over the file, the file wins over built in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/recast/internal/body"
)

// Config holds user level defaults for the recast CLI.
type Config struct {
	// From is the default source format when --from is not given.
	From string `toml:"from"`

	// To is the default target format when --to is not given.
	To string `toml:"to"`

	// Debug enables debug logging by default.
	Debug bool `toml:"debug"`
}

// Path returns the default location of the config file for the current user.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not locate user config dir: %w", err)
	}

	return filepath.Join(dir, "recast", "recast.toml"), nil
}

// Load reads the config file at path. A missing file is not an error, the
// zero [Config] is returned in that case.
func Load(path string) (Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("could not load config from %s: %w", path, err)
	}

	// Catch a bad format name at load time rather than on first use
	if cfg.From != "" {
		if _, err := body.Lookup(cfg.From); err != nil {
			return Config{}, fmt.Errorf("invalid from in %s: %w", path, err)
		}
	}

	if cfg.To != "" {
		if _, err := body.Lookup(cfg.To); err != nil {
			return Config{}, fmt.Errorf("invalid to in %s: %w", path, err)
		}
	}

	return cfg, nil
}
