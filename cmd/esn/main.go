// SPDX-License-Identifier: MIT

// Command esn drives, trains and evaluates an Echo State Network.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/reservoir/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
