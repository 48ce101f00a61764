// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yocto-labs/recipegen/internal/config"
	"github.com/yocto-labs/recipegen/internal/output"
	"github.com/yocto-labs/recipegen/internal/recipe"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool
	noColorFlag    bool

	// Loaded configuration file (set during PersistentPreRunE)
	loadedConfig *config.Config
	// Resolved config file path
	configPath config.ResolvedValue
)

// NewRootCmd creates the root command for the recipegen CLI.
// Invoked without a subcommand it generates a recipe.
func NewRootCmd() *cobra.Command {
	flags := &recipeFlags{}
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "recipegen --type <type> --name <name> --version <version>",
		Short: "Generate BitBake recipes from templates",
		Long: fmt.Sprintf(`Generate BitBake recipes for common package layouts.

Recipe types:
%s
Examples:
  # Generate autotools recipe
  recipegen --type autotools --name hello-world --version 1.0

  # Generate CMake recipe
  recipegen --type cmake --name myapp --version 2.1 --license Apache-2.0

  # Generate Python package recipe
  recipegen --type python --name mypkg --version 0.1.0

  # Generate kernel module recipe
  recipegen --type kernel-module --name gpio-driver --version 1.0

  # Generate systemd service recipe
  recipegen --type systemd --name mydaemon --version 1.0

  # Specify output directory
  recipegen --type cmake --name myapp --version 1.0 --output /path/to/recipes

  # Print the recipe instead of writing it
  recipegen --type cmake --name myapp --version 1.0 --dry-run`, kindHelp()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags, dryRun)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RECIPEGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	// Generation flags
	flags.register(rootCmd)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print recipe without writing to file")

	// Add subcommands
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
		Writer:  cmd.ErrOrStderr(),
	}
	output.SetupLogging(logCfg)
	output.ConfigureColor(noColorFlag)

	resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		output.Debug("could not resolve config path", "error", err)
		loadedConfig = &config.Config{}
	} else {
		configPath = resolved
		loadedConfig, err = config.NewLoader().Load(resolved.Value)
		if err != nil {
			// Commands still work from flags and env; only warn.
			output.Warn("ignoring config file", "path", resolved.Value, "error", err)
			loadedConfig = &config.Config{}
		}
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", configPath.Value,
		"config_source", configPath.Source,
	)

	return nil
}

// GetConfig returns the loaded configuration file contents.
func GetConfig() *config.Config {
	if loadedConfig == nil {
		return &config.Config{}
	}
	return loadedConfig
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	return configPath.Value
}

// kindHelp lists the recipe types with their descriptions.
func kindHelp() string {
	var b strings.Builder
	for _, t := range recipe.Default().List() {
		fmt.Fprintf(&b, "  %-15s%s\n", t.Kind(), t.Description())
	}
	return b.String()
}
