package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"wikiquiz/internal/workflow"
)

// authInput overrides stdin for credential prompts in tests.
var authInput io.Reader

// credentialReader returns the reader credential prompts consume.
func credentialReader() *bufio.Reader {
	in := authInput
	if in == nil {
		in = os.Stdin
	}
	return bufio.NewReader(in)
}

// runLogin builds the handler for the login command.
func runLogin(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		email := flags.String("email", "", "Account email")
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
			fmt.Fprintf(stderr, "Login failed: %v\n", err)
			return ExitError
		}

		reader := credentialReader()
		address := strings.TrimSpace(*email)
		if address == "" {
			address, err = promptString(reader, stdout, "Email")
			if err != nil {
				fmt.Fprintf(stderr, "Login failed: %v\n", err)
				return ExitError
			}
		}
		password, err := promptPassword(reader, stdout, "Password")
		if err != nil {
			fmt.Fprintf(stderr, "Login failed: %v\n", err)
			return ExitError
		}

		auth := workflow.Auth{Client: e.client, Tokens: e.tokens}
		if err := auth.Login(context.Background(), address, password); err != nil {
			fmt.Fprintln(stderr, workflow.LoginFailedMessage)
			return ExitError
		}

		fmt.Fprintf(stdout, "Logged in as %s\n", address)
		return ExitOK
	}
}
