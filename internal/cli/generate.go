package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"wikiquiz/internal/quiz"
	"wikiquiz/internal/ui"
	"wikiquiz/internal/workflow"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		articleURL := flags.String("url", "", "Wikipedia article URL")
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
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

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		e, err := loadEnv()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start: %v\n", err)
			return ExitError
		}

		if decision.useLive {
			app := ui.NewApp(e.client, &workflow.Notifier{}, e.recorder, ui.Options{
				NoColor:      e.cfg.NoColor,
				StartTab:     ui.TabGenerate,
				InitialURL:   strings.TrimSpace(*articleURL),
				AutoGenerate: strings.TrimSpace(*articleURL) != "",
				LoggedIn:     e.loggedIn(),
			})
			if err := runProgram(app); err != nil {
				fmt.Fprintf(stderr, "UI failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		return generatePlain(e, *articleURL, stdout, stderr)
	}
}

// generatePlain runs one generation request and prints the quiz with its
// answer key.
func generatePlain(e env, articleURL string, stdout, stderr io.Writer) int {
	state, url, ok := workflow.NewGenerateState().SetInput(articleURL).Submit()
	if !ok {
		fmt.Fprintln(stderr, state.Message)
		return ExitUsage
	}

	result, err := e.client.Generate(context.Background(), url)
	if err == nil {
		if vErr := quiz.Validate(result); vErr != nil {
			err = fmt.Errorf("malformed quiz: %w", vErr)
		}
	}
	if err != nil {
		state = state.Fail(err)
		fmt.Fprintln(stderr, state.Message)
		return ExitError
	}

	fmt.Fprintln(stdout, workflow.GeneratedMessage)
	renderQuizPlain(stdout, result)
	return ExitOK
}
