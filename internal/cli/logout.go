package cli

import (
	"fmt"
	"io"
	"strings"

	"wikiquiz/internal/workflow"
)

// runLogout builds the handler for the logout command.
func runLogout(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Logout failed: %v\n", err)
			return ExitError
		}
		if !e.loggedIn() {
			fmt.Fprintln(stdout, "Not logged in")
			return ExitOK
		}

		auth := workflow.Auth{Client: e.client, Tokens: e.tokens}
		if err := auth.Logout(); err != nil {
			fmt.Fprintf(stderr, "Logout failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintln(stdout, "Logged out")
		return ExitOK
	}
}
