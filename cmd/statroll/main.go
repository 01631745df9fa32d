// Command statroll rolls ability scores until they satisfy a set of
// constraints.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/statroll/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "statroll: %v\n", err)
	}
	os.Exit(cli.GetExitCode(err))
}
