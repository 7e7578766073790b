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

// runQuizProgram starts the single-quiz program.
var runQuizProgram = ui.RunQuiz

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		showID := flags.String("show", "", "Open a quiz by identifier")
		deleteID := flags.String("delete", "", "Delete a quiz by identifier")
		skipConfirm := flags.Bool("yes", false, "Skip the delete confirmation")
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
		if *showID != "" && *deleteID != "" {
			fmt.Fprintln(stderr, "--show and --delete are mutually exclusive")
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
		if !e.loggedIn() {
			fmt.Fprintln(stderr, `Login required. Run "wikiquiz login" first.`)
			return ExitError
		}

		switch {
		case *showID != "":
			return showQuiz(e, *showID, decision.useLive, stdout, stderr)
		case *deleteID != "":
			return deleteQuiz(e, *deleteID, *skipConfirm, stdout, stderr)
		}

		if decision.useLive {
			app := ui.NewApp(e.client, &workflow.Notifier{}, e.recorder, ui.Options{
				NoColor:  e.cfg.NoColor,
				StartTab: ui.TabHistory,
				LoggedIn: true,
			})
			if err := runProgram(app); err != nil {
				fmt.Fprintf(stderr, "UI failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		items, err := e.client.History(context.Background())
		if err != nil {
			fmt.Fprintln(stderr, workflow.HistoryLoadFailed)
			return ExitError
		}
		renderHistoryPlain(stdout, items)
		return ExitOK
	}
}

// showQuiz fetches a quiz by identifier and either opens the answering
// view or prints it.
func showQuiz(e env, id string, live bool, stdout, stderr io.Writer) int {
	result, err := e.client.QuizDetails(context.Background(), id)
	if err == nil {
		if vErr := quiz.Validate(result); vErr != nil {
			err = fmt.Errorf("malformed quiz: %w", vErr)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, workflow.HistoryDetailsFailed)
		return ExitError
	}
	if live {
		if err := runQuizProgram(ui.NewQuizApp(result, e.recorder, e.cfg.NoColor)); err != nil {
			fmt.Fprintf(stderr, "UI failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
	renderQuizPlain(stdout, result)
	return ExitOK
}

// deleteQuiz removes a quiz by identifier after confirmation.
func deleteQuiz(e env, id string, skipConfirm bool, stdout, stderr io.Writer) int {
	if !skipConfirm {
		confirmed, err := promptYesNo(credentialReader(), stdout, fmt.Sprintf("Delete quiz %s? This cannot be undone.", id))
		if err != nil {
			fmt.Fprintf(stderr, "Delete failed: %v\n", err)
			return ExitError
		}
		if !confirmed {
			fmt.Fprintln(stdout, "Aborted")
			return ExitOK
		}
	}
	if err := e.client.DeleteQuiz(context.Background(), id); err != nil {
		fmt.Fprintln(stderr, workflow.HistoryDeleteFailed)
		return ExitError
	}
	fmt.Fprintln(stdout, "Quiz deleted")
	return ExitOK
}
