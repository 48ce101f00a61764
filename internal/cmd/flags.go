package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yocto-labs/recipegen/internal/config"
	"github.com/yocto-labs/recipegen/internal/recipe"
)

// recipeFlags holds the flags that select and parameterize a recipe.
type recipeFlags struct {
	kind    string
	name    string
	version string
	license string
	output  string
}

// register adds the recipe flags to cmd and marks the required ones.
func (f *recipeFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.kind, "type", "t", "",
		fmt.Sprintf("Recipe template type (%s)", strings.Join(recipe.Names(), ", ")))
	fl.StringVarP(&f.name, "name", "n", "", "Package name")
	fl.StringVar(&f.version, "version", "", "Package version")
	fl.StringVarP(&f.license, "license", "l", config.DefaultLicense,
		"License (env: RECIPEGEN_LICENSE)")
	fl.StringVarP(&f.output, "output", "o", "",
		"Output directory (env: RECIPEGEN_OUTPUT, default: current directory)")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagDirname("output")
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return recipe.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}

// request resolves license and output directory against env and config and
// returns the generation request with its target directory.
func (f *recipeFlags) request(cmd *cobra.Command) (recipe.Request, string, error) {
	resolved := config.ResolveAll(config.ResolveAllOptions{
		LicenseFlag:    f.license,
		LicenseFlagSet: cmd.Flags().Changed("license"),
		OutputFlag:     f.output,
		OutputFlagSet:  cmd.Flags().Changed("output"),
		Config:         GetConfig(),
	})

	outputDir, err := config.ExpandPath(resolved.Output.Value)
	if err != nil {
		return recipe.Request{}, "", fmt.Errorf("expanding output path: %w", err)
	}

	return recipe.Request{
		Kind:    recipe.Kind(f.kind),
		Name:    f.name,
		Version: f.version,
		License: resolved.License.Value,
	}, outputDir, nil
}
