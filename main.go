package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/filieres/cmd"
	"github.com/thenoetrevino/filieres/internal/cli"
)

func main() {
	err := cmd.Execute()

	// ExitCodeErrors were already reported by the command that failed
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
