package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/huddle/cmd"
	"github.com/thenoetrevino/huddle/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err == nil {
		return
	}

	// Command failures were already reported by the output formatter
	var statusErr *cli.StatusError
	if !errors.As(err, &statusErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
