// Command fdr applies Benjamini-Hochberg FDR correction to p-values read
// from the arguments or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fdr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
