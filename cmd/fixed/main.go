package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tychoish/fixed/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()

	// commands report their own ExitErrors
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	os.Exit(cli.GetExitCode(err))
}
