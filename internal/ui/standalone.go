package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wikiquiz/internal/attempts"
	"wikiquiz/internal/quiz"
)

// QuizApp presents a single already-fetched quiz, outside the tabbed
// program. Used when a quiz is opened directly by identifier.
type QuizApp struct {
	view   quizView
	status string
	styles Styles
}

// NewQuizApp builds the single-quiz model.
func NewQuizApp(q quiz.Quiz, recorder *attempts.Recorder, noColor bool) QuizApp {
	styles := newStyles(noColor)
	return QuizApp{view: newQuizView(q, styles, recorder), styles: styles}
}

// Init implements tea.Model.
func (a QuizApp) Init() tea.Cmd { return nil }

// Update routes keys to the answering view; ctrl+c and esc quit.
func (a QuizApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case attemptSavedMsg:
		if typed.err != nil {
			a.status = "Failed to record attempt locally"
		} else {
			a.status = "Attempt recorded"
		}
		return a, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.view, cmd = a.view.update(typed)
		return a, cmd
	}
	return a, nil
}

// View renders the quiz and the quit hint.
func (a QuizApp) View() string {
	parts := []string{a.view.view()}
	if a.status != "" {
		parts = append(parts, a.styles.Hint.Render(a.status))
	}
	parts = append(parts, a.styles.Hint.Render("esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RunQuiz executes the single-quiz model as a Bubble Tea program.
func RunQuiz(app QuizApp) error {
	_, err := tea.NewProgram(app).Run()
	return err
}
