package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kiinaq/hexen-sub005/pkg/hexen"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Hexen source file and print its AST",
	Long: `Parse Hexen source code and display it.

If no file is given, reads from stdin. No semantic analysis is
performed: a program with type errors but valid syntax prints here
with no diagnostics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the AST structure instead of re-rendering source")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	program, errs := hexen.Parse(input, filename)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Format(true))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if parseDumpAST {
		dumpProgram(program)
	} else {
		fmt.Println(program.String())
	}
	return nil
}

func readInput(args []string) (input, filename string, err error) {
	if len(args) > 0 {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("error reading file: %w", readErr)
		}
		return string(data), args[0], nil
	}
	data, readErr := io.ReadAll(os.Stdin)
	if readErr != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", readErr)
	}
	return string(data), "", nil
}
