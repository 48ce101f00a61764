package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yocto-labs/recipegen/internal/output"
	"github.com/yocto-labs/recipegen/internal/recipe"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available recipe types",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := output.NewTable("TYPE", "FILENAME", "DESCRIPTION")
			for _, t := range recipe.Default().List() {
				tbl.Row(t.Kind().String(), t.Filename("{name}", "{version}"), t.Description())
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
			return nil
		},
	}
}
