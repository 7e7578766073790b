package cli

import (
	"fmt"
	"io"
	"strings"
)

// runAttempts builds the handler for the attempts command.
func runAttempts(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		e, err := loadEnv()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start: %v\n", err)
			return ExitError
		}
		records, err := e.recorder.List()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list attempts: %v\n", err)
			return ExitError
		}
		renderAttemptsPlain(stdout, records)
		return ExitOK
	}
}
