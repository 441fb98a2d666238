// fs-automation batch-updates Freshservice tickets listed in a CSV file.
package main

import (
	"os"

	"github.com/randy-hsiao/freshservice-automation/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
