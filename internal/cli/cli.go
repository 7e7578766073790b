package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  wikiquiz <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"wikiquiz <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("generate", "Generate a quiz from a Wikipedia article", []string{
		"wikiquiz generate [--url <wikipedia-url>] [--ui auto|live|plain]",
	}, runGenerate),
	command("history", "Browse previously generated quizzes", []string{
		"wikiquiz history [--ui auto|live|plain]",
		"wikiquiz history --show <quiz-id>",
		"wikiquiz history --delete <quiz-id> [--yes]",
	}, runHistory),
	command("attempts", "List locally recorded quiz attempts", []string{
		"wikiquiz attempts",
	}, runAttempts),
	command("login", "Log in and store the session token", []string{
		"wikiquiz login [--email <email>]",
	}, runLogin),
	command("register", "Create an account and log in", []string{
		"wikiquiz register [--email <email>] [--name <full-name>]",
	}, runRegister),
	command("logout", "Discard the stored session token", []string{
		"wikiquiz logout",
	}, runLogout),
	command("validate", "Validate the config file", []string{
		"wikiquiz validate [--config <path>]",
	}, runValidate),
}
