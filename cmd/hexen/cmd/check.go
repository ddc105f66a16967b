package cmd

import (
	"fmt"
	"os"

	"github.com/kiinaq/hexen-sub005/pkg/hexen"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and semantically analyze a Hexen source file",
	Long: `Parse and type-check a Hexen program.

Runs the full front end — lexer, parser, semantic analyzer — and
reports every diagnostic found, in source order. Exits non-zero if any
diagnostic was produced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	result := hexen.Compile(input, filename)
	if !result.OK() {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e.Format(true))
			fmt.Fprintln(os.Stderr)
		}
		return fmt.Errorf("check failed with %d error(s)", len(result.Errors))
	}

	fmt.Println("OK")
	return nil
}
