package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wikiquiz/internal/attempts"
	"wikiquiz/internal/quiz"
)

// quizView presents one quiz and its answering session. The cursor moves
// over the questions plus a final submit/reset row.
type quizView struct {
	session  quiz.Session
	cursor   int
	styles   Styles
	recorder *attempts.Recorder
}

// newQuizView starts an answering view for a quiz. A nil recorder skips
// local attempt records.
func newQuizView(q quiz.Quiz, styles Styles, recorder *attempts.Recorder) quizView {
	return quizView{session: quiz.NewSession(q), styles: styles, recorder: recorder}
}

// questionCount returns the number of questions in the displayed quiz.
func (v quizView) questionCount() int {
	return len(v.session.Quiz.Quiz)
}

// update handles a key press. Submitting returns a command that records
// the attempt locally.
func (v quizView) update(msg tea.KeyMsg) (quizView, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < v.questionCount() {
			v.cursor++
		}
	case "left", "h":
		v.session = v.cycleOption(-1)
	case "right", "l":
		v.session = v.cycleOption(1)
	case "enter", " ":
		if v.cursor == v.questionCount() {
			if v.session.Submitted {
				v.session = v.session.Reset()
				v.cursor = 0
			} else {
				v.session = v.session.Submit()
				return v, recordAttemptCmd(v.recorder, v.session)
			}
		} else if v.cursor < v.questionCount()-1 {
			v.cursor++
		} else {
			v.cursor = v.questionCount()
		}
	case "r":
		if v.session.Submitted {
			v.session = v.session.Reset()
			v.cursor = 0
		}
	default:
		if index, ok := optionKey(msg.String()); ok && v.cursor < v.questionCount() {
			options := v.session.Quiz.Quiz[v.cursor].Options
			if index < len(options) {
				v.session = v.session.Select(v.cursor, options[index])
			}
		}
	}
	return v, nil
}

// cycleOption moves the focused question's selection by delta, wrapping
// around the option list.
func (v quizView) cycleOption(delta int) quiz.Session {
	if v.cursor >= v.questionCount() {
		return v.session
	}
	options := v.session.Quiz.Quiz[v.cursor].Options
	if len(options) == 0 {
		return v.session
	}
	current := -1
	if selected, ok := v.session.Selected(v.cursor); ok {
		for i, option := range options {
			if option == selected {
				current = i
				break
			}
		}
	}
	next := current + delta
	if next < 0 {
		next = len(options) - 1
	}
	if next >= len(options) {
		next = 0
	}
	return v.session.Select(v.cursor, options[next])
}

// optionKey maps a digit key to a 0-based option index.
func optionKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	value, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return value - 1, true
}

// view renders the article info, the questions, and the controls.
func (v quizView) view() string {
	var sections []string
	sections = append(sections, v.renderArticle())
	sections = append(sections, v.renderQuestions())
	if topics := v.renderRelatedTopics(); topics != "" {
		sections = append(sections, topics)
	}
	sections = append(sections, v.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderArticle shows the title, summary, entities, and section list.
func (v quizView) renderArticle() string {
	q := v.session.Quiz
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(q.Title) + "\n")
	if q.Summary != "" {
		b.WriteString(v.styles.Subtitle.Render(q.Summary) + "\n")
	}
	entities := renderEntities(q.KeyEntities, v.styles)
	if entities != "" {
		b.WriteString(entities)
	}
	if len(q.Sections) > 0 {
		b.WriteString(v.styles.SectionHeader.Render("Article sections: "))
		b.WriteString(strings.Join(q.Sections, " · ") + "\n")
	}
	return b.String()
}

// renderEntities shows the non-empty entity categories.
func renderEntities(entities quiz.KeyEntities, styles Styles) string {
	var b strings.Builder
	categories := []struct {
		name  string
		items []string
	}{
		{"People", entities.People},
		{"Organizations", entities.Organizations},
		{"Locations", entities.Locations},
	}
	for _, category := range categories {
		if len(category.items) == 0 {
			continue
		}
		b.WriteString(styles.SectionHeader.Render(category.name+": "))
		b.WriteString(strings.Join(category.items, ", ") + "\n")
	}
	return b.String()
}

// renderQuestions shows every question with its options and, once
// submitted, the correct answers and explanations.
func (v quizView) renderQuestions() string {
	var b strings.Builder
	count := v.questionCount()
	b.WriteString(v.styles.SectionHeader.Render(fmt.Sprintf("Quiz (%d questions)", count)) + "\n")
	if v.session.Submitted {
		score := fmt.Sprintf("Your Score: %d / %d (%d%%)", v.session.Score, count, v.session.Percent())
		b.WriteString(v.styles.Score.Render(score) + "\n")
	}
	for i, question := range v.session.Quiz.Quiz {
		b.WriteString(v.renderQuestion(i, question))
	}
	return b.String()
}

// renderQuestion shows one question card.
func (v quizView) renderQuestion(index int, question quiz.Question) string {
	var b strings.Builder
	header := fmt.Sprintf("Question %d", index+1)
	if question.Difficulty != "" {
		header += " " + v.styles.Badge.Render("["+question.Difficulty+"]")
	}
	marker := "  "
	if v.cursor == index {
		marker = "▸ "
		header = v.styles.QuestionFocused.Render(header)
	}
	b.WriteString("\n" + marker + header + "\n")
	b.WriteString("  " + question.Question + "\n")
	selected, hasSelection := v.session.Selected(index)
	for o, option := range question.Options {
		b.WriteString("  " + v.renderOption(question, option, o, selected, hasSelection) + "\n")
	}
	if v.session.Submitted && question.Explanation != "" {
		b.WriteString("  " + v.styles.Explanation.Render("Explanation: "+question.Explanation) + "\n")
	}
	return b.String()
}

// renderOption shows one choice with its letter and outcome markers. The
// correct answer is revealed only after submission.
func (v quizView) renderOption(question quiz.Question, option string, index int, selected string, hasSelection bool) string {
	letter := string(rune('A' + index))
	line := fmt.Sprintf("%s) %s", letter, option)
	isSelected := hasSelection && option == selected
	if !v.session.Submitted {
		if isSelected {
			return v.styles.OptionSelected.Render("[x] " + line)
		}
		return "[ ] " + line
	}
	switch {
	case option == question.Answer:
		return v.styles.OptionCorrect.Render("[✓] " + line)
	case isSelected:
		return v.styles.OptionIncorrect.Render("[✗] " + line)
	default:
		return "[ ] " + line
	}
}

// renderRelatedTopics shows further-reading links.
func (v quizView) renderRelatedTopics() string {
	topics := v.session.Quiz.RelatedTopics
	if len(topics) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + v.styles.SectionHeader.Render("Related topics") + "\n")
	for _, topic := range topics {
		link := "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(topic, " ", "_")
		b.WriteString("  " + topic + " " + v.styles.Hint.Render("("+link+")") + "\n")
	}
	return b.String()
}

// renderFooter shows the submit/reset control and key hints.
func (v quizView) renderFooter() string {
	control := "[ Submit Answers ]"
	if v.session.Submitted {
		control = "[ Try Again ]"
	}
	if v.cursor == v.questionCount() {
		control = v.styles.QuestionFocused.Render("▸ " + control)
	} else {
		control = "  " + control
	}
	hints := "↑/↓ question · ←/→ or 1-9 choose · enter submit"
	if v.session.Submitted {
		hints = "r try again"
	}
	return "\n" + control + "\n" + v.styles.Hint.Render(hints)
}
