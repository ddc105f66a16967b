package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hexen",
	Short: "Hexen language front end",
	Long: `hexen parses and type-checks Hexen source files.

Hexen is a small statically-typed language with a comptime-aware type
system: integer and float literals stay abstract until the context they
appear in pins them to a concrete type. This tool implements the
lexer, parser, and semantic analyzer stages — it does not execute
programs.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
