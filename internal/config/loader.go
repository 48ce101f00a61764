package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/yocto-labs/recipegen/internal/output"
)

// Loader reads the config file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads configuration from path. A missing file yields an empty Config.
// Environment variables are not applied here; see ResolveAll.
func (l *Loader) Load(path string) (*Config, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expanded)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expanded, err)
		}
		output.Debug("config file not found, using defaults", "path", expanded)
		return &Config{}, nil
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config %s: %w", expanded, err)
	}

	output.Debug("loaded config file", "path", expanded)
	return &cfg, nil
}
