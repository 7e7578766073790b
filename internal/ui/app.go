// Package ui implements the interactive terminal client using Bubble Tea.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wikiquiz/internal/api"
	"wikiquiz/internal/attempts"
	"wikiquiz/internal/workflow"
)

// Tab identifies the active view.
type Tab int

const (
	// TabGenerate is the quiz-generation view.
	TabGenerate Tab = iota
	// TabHistory is the saved-quizzes view.
	TabHistory
)

// Options configures the app model.
type Options struct {
	NoColor    bool
	StartTab   Tab
	InitialURL string
	// AutoGenerate submits the initial URL immediately on start.
	AutoGenerate bool
	// LoggedIn enables the history view and its initial refresh.
	LoggedIn bool
}

// App is the root Bubble Tea model: the tab bar and the two workflows.
type App struct {
	client   *api.Client
	notifier *workflow.Notifier
	styles   Styles

	tab      Tab
	generate generateView
	history  historyView
	status   string
	loggedIn bool

	initCmds []tea.Cmd
}

// NewApp wires the root model. The notifier links generation success to
// history refreshes; it may be nil when no history consumer exists.
func NewApp(client *api.Client, notifier *workflow.Notifier, recorder *attempts.Recorder, opts Options) App {
	styles := newStyles(opts.NoColor)
	app := App{
		client:   client,
		notifier: notifier,
		styles:   styles,
		tab:      opts.StartTab,
		generate: newGenerateView(opts.InitialURL, styles, recorder),
		history:  newHistoryView(styles, recorder),
		loggedIn: opts.LoggedIn,
	}
	if opts.AutoGenerate && opts.InitialURL != "" {
		var cmd tea.Cmd
		app.generate, cmd = app.generate.submit(client)
		if cmd != nil {
			app.initCmds = append(app.initCmds, cmd)
		}
	}
	if opts.LoggedIn {
		var cmd tea.Cmd
		app.history, cmd = app.history.refresh(client)
		if cmd != nil {
			app.initCmds = append(app.initCmds, cmd)
		}
	}
	return app
}

// Init starts the commands queued during construction.
func (a App) Init() tea.Cmd {
	if len(a.initCmds) == 0 {
		return nil
	}
	return tea.Batch(a.initCmds...)
}

// Update routes messages to the active workflows. Request results always
// reach their owning view regardless of the visible tab, so an answer
// arriving while the user is elsewhere is not lost.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab", "shift+tab":
			if a.tab == TabGenerate {
				a.tab = TabHistory
			} else {
				a.tab = TabGenerate
			}
			return a, nil
		}
		return a.updateActive(msg)

	case generateResultMsg:
		var cmd tea.Cmd
		a.generate, cmd = a.generate.update(typed, a.client)
		if typed.err == nil {
			return a, tea.Batch(cmd, publishCmd(a.notifier))
		}
		return a, cmd

	case historyRefreshMsg:
		if !a.loggedIn {
			return a, nil
		}
		var cmd tea.Cmd
		a.history, cmd = a.history.refresh(a.client)
		return a, cmd

	case historyResultMsg, detailResultMsg, deleteResultMsg:
		var cmd tea.Cmd
		a.history, cmd = a.history.update(msg, a.client)
		return a, cmd

	case attemptSavedMsg:
		if typed.err != nil {
			a.status = "Failed to record attempt locally"
		} else {
			a.status = "Attempt recorded"
		}
		return a, nil
	}

	return a.updateActive(msg)
}

// updateActive forwards a message to the visible tab.
func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.tab {
	case TabGenerate:
		a.generate, cmd = a.generate.update(msg, a.client)
	case TabHistory:
		if a.loggedIn {
			a.history, cmd = a.history.update(msg, a.client)
		}
	}
	return a, cmd
}

// View renders the header, tab bar, and the active tab.
func (a App) View() string {
	header := a.styles.Title.Render("📚 Wiki Quiz Generator")
	subtitle := a.styles.Subtitle.Render("Generate interactive quizzes from Wikipedia articles")
	tabs := a.renderTabs()

	var body string
	switch a.tab {
	case TabGenerate:
		body = a.generate.view()
	case TabHistory:
		if a.loggedIn {
			body = a.history.view()
		} else {
			body = a.styles.Hint.Render("Login required. Run \"wikiquiz login\" first.")
		}
	}

	parts := []string{header, subtitle, tabs, ""}
	if a.status != "" {
		parts = append(parts, a.styles.Hint.Render(a.status))
	}
	parts = append(parts, body, "", a.styles.Hint.Render("tab switch view · ctrl+c quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTabs shows the tab bar with the active tab highlighted.
func (a App) renderTabs() string {
	generate := a.styles.TabInactive.Render("Generate Quiz")
	history := a.styles.TabInactive.Render("History")
	if a.tab == TabGenerate {
		generate = a.styles.TabActive.Render("Generate Quiz")
	} else {
		history = a.styles.TabActive.Render("History")
	}
	return generate + "  " + history
}

// Run executes the app as a Bubble Tea program, wiring the notifier so
// generation-completed events refresh the history view.
func Run(app App) error {
	program := tea.NewProgram(app)
	if app.notifier != nil {
		app.notifier.Subscribe(func() {
			program.Send(historyRefreshMsg{})
		})
	}
	_, err := program.Run()
	return err
}
