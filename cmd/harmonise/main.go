// Command harmonise normalises CSV files against a schema.
package main

import (
	"os"

	"github.com/digital-land/harmonise-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
