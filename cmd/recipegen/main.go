// Package main is the entry point for the recipegen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/yocto-labs/recipegen/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Errors already reported by the command layer format to "".
		if msg := cmd.FormatError(err); msg != "" {
			fmt.Fprint(os.Stderr, msg)
		}
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
