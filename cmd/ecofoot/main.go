// Command ecofoot estimates a household's annual carbon footprint from
// lifestyle answers and scores trail-survey engagement.
package main

import (
	"os"

	"github.com/greensteps/ecofoot/internal/cli"
	"github.com/greensteps/ecofoot/pkg/version"
)

func main() {
	if err := run(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

// run builds the root command and executes it.
func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
