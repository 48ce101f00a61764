// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the recipegen configuration file.
// Loaded from ~/.recipegen/config.yaml.
type Config struct {
	// License is the default LICENSE value for generated recipes.
	// Env: RECIPEGEN_LICENSE, Default: MIT
	License string `mapstructure:"license" yaml:"license,omitempty"`

	// Output is the default directory recipes are written to.
	// Env: RECIPEGEN_OUTPUT, Default: current working directory
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultLicense is the built-in license default.
const DefaultLicense = "MIT"

// DefaultConfig returns a Config with all default values populated.
// Used by `recipegen config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		License: DefaultLicense,
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
