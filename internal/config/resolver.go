package config

import (
	"os"

	"github.com/yocto-labs/recipegen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its provenance.
type ResolvedValue struct {
	// Key is the configuration key (e.g. "license").
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolve applies flag > env > config > default precedence.
// flagSet distinguishes an explicitly passed flag from its default.
func resolve(key, flagValue string, flagSet bool, envVar, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
		ok     bool
	}{
		{SourceFlag, flagValue, flagSet},
		{SourceEnv, os.Getenv(envVar), envVar != "" && os.Getenv(envVar) != ""},
		{SourceConfig, configValue, configValue != ""},
		{SourceDefault, defaultValue, true},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	found := false
	for _, c := range candidates {
		if !c.ok {
			continue
		}
		if !found {
			result.Value = c.value
			result.Source = c.source
			found = true
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}
	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RECIPEGEN_CONFIG env, (3) ~/.recipegen/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolve("config", opts.FlagValue, opts.FlagValue != "", EnvConfig, "", paths.ConfigFile), nil
}

// ResolveAllOptions carries flag values and the loaded config file.
type ResolveAllOptions struct {
	LicenseFlag    string
	LicenseFlagSet bool
	OutputFlag     string
	OutputFlagSet  bool

	// Config is the loaded config file. May be nil.
	Config *Config
}

// ResolvedConfig holds resolved generation settings.
type ResolvedConfig struct {
	License ResolvedValue
	// Output is empty when recipes go to the current working directory.
	Output ResolvedValue
}

// ResolveAll resolves license and output directory.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	resolved := &ResolvedConfig{
		License: resolve("license", opts.LicenseFlag, opts.LicenseFlagSet, EnvLicense, cfg.License, DefaultLicense),
		Output:  resolve("output", opts.OutputFlag, opts.OutputFlagSet, EnvOutput, cfg.Output, ""),
	}

	LogResolvedValues([]ResolvedValue{resolved.License, resolved.Output})
	return resolved
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
