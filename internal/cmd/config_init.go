package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yocto-labs/recipegen/internal/config"
	oerrors "github.com/yocto-labs/recipegen/internal/errors"
	"github.com/yocto-labs/recipegen/internal/output"
)

const configHeader = `# recipegen configuration
#
# Values here are overridden by RECIPEGEN_* environment variables and by
# command-line flags.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default configuration file.

The file is created at ~/.recipegen/config.yaml unless --config or
RECIPEGEN_CONFIG names another path.

Examples:
  # Initialize configuration
  recipegen config init

  # Overwrite existing configuration
  recipegen config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, err := config.ExpandPath(GetConfigPath())
	if err != nil || path == "" {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine config file path")
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	body, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), body...), 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}

	output.Debug("config written", "path", path, "force", force)
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file created: "+output.StyleNoun.Render(path)))

	return nil
}
