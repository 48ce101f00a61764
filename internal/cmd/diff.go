package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yocto-labs/recipegen/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	flags := &recipeFlags{}
	var (
		contextLines int
		exitCode     bool
	)

	c := &cobra.Command{
		Use:   "diff",
		Short: "Show changes between a generated recipe and the file on disk",
		Long: `Render a recipe and compare it with the recipe already present in the
output directory. Nothing is written.

Examples:
  # Compare against ./myapp_2.1.bb
  recipegen diff --type cmake --name myapp --version 2.1

  # Fail when the recipe on disk differs (for CI)
  recipegen diff --type cmake --name myapp --version 2.1 --exit-code`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd, flags, contextLines, exitCode)
		},
	}

	flags.register(c)
	c.Flags().IntVarP(&contextLines, "context", "U", 3, "Number of context lines around each change")
	c.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when the recipe would change")

	return c
}

func runDiff(cmd *cobra.Command, flags *recipeFlags, contextLines int, exitCode bool) error {
	req, outputDir, err := flags.request(cmd)
	if err != nil {
		return err
	}

	result, err := newGenerator().Diff(req, outputDir)
	if err != nil {
		return translateError(err)
	}

	out := cmd.OutOrStdout()
	if !result.Exists {
		fmt.Fprintln(out, output.StyleDim.Render(result.Path+" does not exist; recipe would be created"))
	}
	fmt.Fprint(out, output.RenderLineDiff(
		result.Path+" (on disk)",
		result.Path+" (generated)",
		result.Lines,
		contextLines,
	))
	if result.Changed() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, output.DiffSummary(result.Lines))
	}

	if exitCode && result.Changed() {
		return &ExitError{Code: ExitGeneralError, Printed: true}
	}
	return nil
}
