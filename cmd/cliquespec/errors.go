package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	exitUsage          = 2
	exitCounterexample = 3
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

// exactArgs is cobra.ExactArgs with a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError("%s: accepts %d arg(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs with a usage exit code.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError("%s: requires at least %d arg(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}
