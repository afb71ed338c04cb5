package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	geoerrors "github.com/matzehuels/geo/pkg/errors"
)

// Config holds user preferences read from config.toml.
//
// The zero value reproduces the plain demo output.
type Config struct {
	Verbose  bool `toml:"verbose"`  // debug logging, same as --verbose
	Color    bool `toml:"color"`    // styled report output
	Validate bool `toml:"validate"` // validate shapes before reporting
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{}
}

// configDir returns the config directory using XDG standard (~/.config/geo/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config at path. An empty path means the default
// location, where a missing file is not an error. An explicit path that
// does not exist yields FILE_NOT_FOUND; undecodable TOML yields INVALID_CONFIG.
func loadConfig(path string, logger *log.Logger) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			logger.Debug("no config directory", "err", err)
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return DefaultConfig(), geoerrors.Wrap(geoerrors.ErrCodeFileNotFound, err, "config file %s not found", path)
			}
			logger.Debug("no config file", "path", path)
			return DefaultConfig(), nil
		}
		return DefaultConfig(), geoerrors.Wrap(geoerrors.ErrCodeInvalidConfig, err, "failed to decode %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown config keys", "path", path, "keys", strings.Join(keys, ", "))
	}

	logger.Debug("loaded config", "path", path, "verbose", cfg.Verbose, "color", cfg.Color, "validate", cfg.Validate)
	return cfg, nil
}
