// Command vecfield builds, queries and persists 2-D vector field datasets.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/vecfield/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
