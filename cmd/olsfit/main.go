// Command olsfit performs ordinary least squares regression on delimited text
// files, or benchmarks the solver on random data.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/olsfit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
