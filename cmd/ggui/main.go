// Command ggui runs, renders and inspects ggui pages.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/ggui/cmd/ggui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
