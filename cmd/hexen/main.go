// Command hexen is the Hexen front-end CLI: parse and type-check Hexen
// source files.
package main

import (
	"fmt"
	"os"

	"github.com/kiinaq/hexen-sub005/cmd/hexen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
