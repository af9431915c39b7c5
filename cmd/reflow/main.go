package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/reflow/internal/cmd"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and returns the process exit status.
func run(args []string) int {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	// Failed runs have already logged their diagnostics
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var argErr *cmd.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintf(os.Stderr, "Usage: %s\n", rootCmd.UseLine())
	}
	return 1
}
