// Command hackathon runs the idea/package pipeline and verifies its checksums.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/hackathon/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
