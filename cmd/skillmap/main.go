package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var cliErr *cli.CLIError
		if errors.As(err, &cliErr) {
			if cliErr.Hint != "" {
				fmt.Fprintf(os.Stderr, "hint: %s\n", cliErr.Hint)
			}
			os.Exit(cliErr.ExitCode)
		}
		os.Exit(1)
	}
}
