package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"wikiquiz/internal/workflow"
)

// runRegister builds the handler for the register command.
func runRegister(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		email := flags.String("email", "", "Account email")
		fullName := flags.String("name", "", "Full name (optional)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		e, err := loadEnv()
		if err != nil {
			fmt.Fprintf(stderr, "Registration failed: %v\n", err)
			return ExitError
		}

		reader := credentialReader()
		address := strings.TrimSpace(*email)
		if address == "" {
			address, err = promptString(reader, stdout, "Email")
			if err != nil {
				fmt.Fprintf(stderr, "Registration failed: %v\n", err)
				return ExitError
			}
		}
		password, err := promptPassword(reader, stdout, "Password")
		if err != nil {
			fmt.Fprintf(stderr, "Registration failed: %v\n", err)
			return ExitError
		}

		auth := workflow.Auth{Client: e.client, Tokens: e.tokens}
		if err := auth.Register(context.Background(), address, password, strings.TrimSpace(*fullName)); err != nil {
			fmt.Fprintln(stderr, workflow.RegisterFailedMessage)
			return ExitError
		}

		fmt.Fprintf(stdout, "Registered and logged in as %s\n", address)
		return ExitOK
	}
}
