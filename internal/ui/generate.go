package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wikiquiz/internal/api"
	"wikiquiz/internal/attempts"
	"wikiquiz/internal/workflow"
)

// generateFocus identifies which part of the generate tab has the keys.
type generateFocus int

const (
	focusInput generateFocus = iota
	focusQuiz
)

// generateView is the Generate tab: URL input, request state, and the
// answering view for the generated quiz.
type generateView struct {
	input    textinput.Model
	spin     spinner.Model
	state    workflow.GenerateState
	quiz     *quizView
	focus    generateFocus
	styles   Styles
	recorder *attempts.Recorder
}

// newGenerateView builds the Generate tab, optionally prefilled with a
// URL.
func newGenerateView(initialURL string, styles Styles, recorder *attempts.Recorder) generateView {
	input := textinput.New()
	input.Placeholder = "https://en.wikipedia.org/wiki/Alan_Turing"
	input.Prompt = "URL> "
	input.SetValue(initialURL)
	input.Focus()
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	return generateView{
		input:    input,
		spin:     spin,
		state:    workflow.NewGenerateState().SetInput(initialURL),
		styles:   styles,
		recorder: recorder,
	}
}

// loading reports whether a generation request is in flight.
func (v generateView) loading() bool {
	return v.state.Phase == workflow.GenerateLoading
}

// submit runs the pre-flight validation and issues the request command.
// The input control is disabled while one is in flight.
func (v generateView) submit(client *api.Client) (generateView, tea.Cmd) {
	next, url, ok := v.state.SetInput(v.input.Value()).Submit()
	v.state = next
	if !ok {
		return v, nil
	}
	v.quiz = nil
	v.input.Blur()
	return v, tea.Batch(generateCmd(client, url), v.spin.Tick)
}

// update handles keys and request results for the Generate tab.
func (v generateView) update(msg tea.Msg, client *api.Client) (generateView, tea.Cmd) {
	switch typed := msg.(type) {
	case spinner.TickMsg:
		if !v.loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(typed)
		return v, cmd

	case generateResultMsg:
		if typed.err != nil {
			v.state = v.state.Fail(typed.err)
			v.input.SetValue(v.state.Input)
			v.input.Focus()
			return v, nil
		}
		v.state = v.state.Complete(typed.quiz)
		v.input.SetValue("")
		v.input.Blur()
		view := newQuizView(typed.quiz, v.styles, v.recorder)
		v.quiz = &view
		v.focus = focusQuiz
		return v, nil

	case tea.KeyMsg:
		return v.updateKey(typed, client)
	}
	return v, nil
}

// updateKey routes a key press to the input field or the quiz view.
func (v generateView) updateKey(msg tea.KeyMsg, client *api.Client) (generateView, tea.Cmd) {
	if v.loading() {
		return v, nil
	}
	if v.focus == focusInput {
		switch msg.String() {
		case "enter":
			return v.submit(client)
		case "esc":
			if v.quiz != nil {
				v.input.Blur()
				v.focus = focusQuiz
			}
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.state = v.state.SetInput(v.input.Value())
		return v, cmd
	}

	switch msg.String() {
	case "u":
		v.focus = focusInput
		v.input.Focus()
		return v, nil
	}
	if v.quiz != nil {
		view, cmd := v.quiz.update(msg)
		v.quiz = &view
		return v, cmd
	}
	return v, nil
}

// view renders the Generate tab.
func (v generateView) view() string {
	var b []byte
	write := func(s string) { b = append(b, s...) }

	write(v.styles.SectionHeader.Render("Enter Wikipedia Article URL") + "\n")
	write(v.input.View() + "\n")
	if v.quiz == nil && !v.loading() {
		write(v.styles.Hint.Render("Example URLs:") + "\n")
		write(v.styles.Hint.Render("  https://en.wikipedia.org/wiki/Alan_Turing") + "\n")
		write(v.styles.Hint.Render("  https://en.wikipedia.org/wiki/Python_(programming_language)") + "\n")
		write(v.styles.Hint.Render("  https://en.wikipedia.org/wiki/Climate_change") + "\n")
	}

	switch v.state.Phase {
	case workflow.GenerateLoading:
		write("\n" + v.spin.View() + " Scraping article and generating quiz..." + "\n")
	case workflow.GenerateSuccess:
		write(v.styles.Success.Render(v.state.Message) + "\n")
	case workflow.GenerateError:
		write(v.styles.Error.Render(v.state.Message) + "\n")
	}

	if v.quiz != nil {
		write("\n" + v.quiz.view())
		if v.focus == focusQuiz {
			write("\n" + v.styles.Hint.Render("u edit URL"))
		}
	}
	return string(b)
}
