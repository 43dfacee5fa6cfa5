package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/todo/cmd"
	"github.com/thenoetrevino/todo/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures; anything else is printed here
		var exitErr *cli.ExitStatusError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
