package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"wikiquiz/internal/api"
	"wikiquiz/internal/attempts"
	"wikiquiz/internal/quiz"
	"wikiquiz/internal/workflow"
)

// historyView is the History tab: the quiz listing, the delete
// confirmation prompt, and the detail view for a fetched quiz.
type historyView struct {
	state         workflow.HistoryState
	table         table.Model
	confirmID     string
	confirmTitle  string
	detail        *quizView
	loadingDetail bool
	styles        Styles
	recorder      *attempts.Recorder
}

// newHistoryView builds an empty History tab.
func newHistoryView(styles Styles, recorder *attempts.Recorder) historyView {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return historyView{
		state:    workflow.NewHistoryState(),
		table:    t,
		styles:   styles,
		recorder: recorder,
	}
}

// historyColumns defines the listing layout.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Title", Width: 36},
		{Title: "Article", Width: 26},
		{Title: "Generated", Width: 10},
		{Title: "Cached", Width: 6},
	}
}

// refresh starts a listing reload unless one is already in flight.
func (v historyView) refresh(client *api.Client) (historyView, tea.Cmd) {
	next, ok := v.state.StartLoad()
	v.state = next
	if !ok {
		return v, nil
	}
	return v, historyCmd(client)
}

// setRows mirrors the held collection into the table.
func (v historyView) setRows() historyView {
	rows := make([]table.Row, 0, len(v.state.Items))
	for _, item := range v.state.Items {
		rows = append(rows, table.Row{
			item.Title,
			articleSlug(item.URL),
			formatDate(item.CreatedAt),
			formatCached(item.IsCached),
		})
	}
	v.table.SetRows(rows)
	return v
}

// selected returns the summary under the cursor.
func (v historyView) selected() (quiz.Summary, bool) {
	index := v.table.Cursor()
	if index < 0 || index >= len(v.state.Items) {
		return quiz.Summary{}, false
	}
	return v.state.Items[index], true
}

// update handles keys and request results for the History tab.
func (v historyView) update(msg tea.Msg, client *api.Client) (historyView, tea.Cmd) {
	switch typed := msg.(type) {
	case historyResultMsg:
		if typed.err != nil {
			v.state = v.state.LoadFailed()
			return v, nil
		}
		v.state = v.state.Loaded(typed.items)
		return v.setRows(), nil

	case detailResultMsg:
		v.loadingDetail = false
		if typed.err != nil {
			v.state = v.state.DetailsFailed()
			return v, nil
		}
		view := newQuizView(typed.quiz, v.styles, v.recorder)
		v.detail = &view
		return v, nil

	case deleteResultMsg:
		if typed.err != nil {
			v.state = v.state.RemoveFailed()
			return v, nil
		}
		v.state = v.state.Removed(typed.id)
		return v.setRows(), nil

	case tea.KeyMsg:
		return v.updateKey(typed, client)
	}
	return v, nil
}

// updateKey routes a key press depending on what is on screen.
func (v historyView) updateKey(msg tea.KeyMsg, client *api.Client) (historyView, tea.Cmd) {
	if v.detail != nil {
		if msg.String() == "esc" {
			v.detail = nil
			return v, nil
		}
		view, cmd := v.detail.update(msg)
		v.detail = &view
		return v, cmd
	}

	if v.confirmID != "" {
		switch msg.String() {
		case "y", "Y":
			id := v.confirmID
			v.confirmID = ""
			v.confirmTitle = ""
			return v, deleteCmd(client, id)
		case "n", "N", "esc":
			v.confirmID = ""
			v.confirmTitle = ""
		}
		return v, nil
	}

	switch msg.String() {
	case "r":
		return v.refresh(client)
	case "enter":
		if item, ok := v.selected(); ok && !v.loadingDetail {
			v.loadingDetail = true
			return v, detailCmd(client, item.ID)
		}
		return v, nil
	case "d", "delete":
		if item, ok := v.selected(); ok {
			v.confirmID = item.ID
			v.confirmTitle = item.Title
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// view renders the History tab.
func (v historyView) view() string {
	if v.detail != nil {
		return v.detail.view() + "\n" + v.styles.Hint.Render("esc back to history")
	}

	var b strings.Builder
	if v.state.Message != "" {
		b.WriteString(v.styles.Error.Render(v.state.Message) + "\n")
	}
	if v.state.Loading {
		b.WriteString("Loading quizzes..." + "\n")
	}
	if len(v.state.Items) == 0 && !v.state.Loading {
		b.WriteString(v.styles.SectionHeader.Render("No quizzes yet") + "\n")
		b.WriteString("Generate your first quiz to see it here!" + "\n")
		return b.String()
	}

	b.WriteString(v.styles.SectionHeader.Render(fmt.Sprintf("Previous Quizzes (%d)", len(v.state.Items))) + "\n")
	b.WriteString(v.table.View() + "\n")
	if v.confirmID != "" {
		prompt := fmt.Sprintf("Delete %q? This cannot be undone. (y/n)", v.confirmTitle)
		b.WriteString(v.styles.Error.Render(prompt) + "\n")
	} else {
		b.WriteString(v.styles.Hint.Render("enter details · d delete · r refresh"))
	}
	return b.String()
}
