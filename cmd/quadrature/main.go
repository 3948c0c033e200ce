// SPDX-License-Identifier: MIT

// Command quadrature evaluates the fixed-step quadrature rules from the
// command line.
package main

import (
	"os"

	"github.com/katalvlaran/quadrature/cmd/quadrature/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
