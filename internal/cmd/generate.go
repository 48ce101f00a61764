package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yocto-labs/recipegen/internal/output"
	"github.com/yocto-labs/recipegen/internal/recipe"
)

// newGenerator is replaced in tests to pin the generation date.
var newGenerator = func() *recipe.Generator {
	return recipe.NewGenerator()
}

func runGenerate(cmd *cobra.Command, flags *recipeFlags, dryRun bool) error {
	req, outputDir, err := flags.request(cmd)
	if err != nil {
		return err
	}

	gen := newGenerator()
	out := cmd.OutOrStdout()

	if dryRun {
		content, err := gen.Render(req)
		if err != nil {
			return translateError(err)
		}
		fmt.Fprint(out, content)
		return nil
	}

	path, err := gen.Write(req, outputDir)
	if err != nil {
		return translateError(err)
	}

	output.Debug("recipe written", "type", req.Kind, "path", path)

	fmt.Fprintln(out, output.FormatCheckmark("Generated recipe: "+output.StyleNoun.Render(path)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderSteps("Next steps:", nextSteps(path, req.Name)))

	return nil
}

// nextSteps lists the manual edits every generated recipe still needs.
func nextSteps(path, name string) []output.Step {
	return []output.Step{
		{Text: "Update LICENSE checksum in " + path},
		{Text: "Adjust SRC_URI to point to actual source"},
		{Text: "Add dependencies (DEPENDS, RDEPENDS)"},
		{Text: "Test with: bitbake " + name},
	}
}
