package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the app.
type Styles struct {
	Title           lipgloss.Style
	Subtitle        lipgloss.Style
	TabActive       lipgloss.Style
	TabInactive     lipgloss.Style
	Error           lipgloss.Style
	Success         lipgloss.Style
	Hint            lipgloss.Style
	SectionHeader   lipgloss.Style
	QuestionFocused lipgloss.Style
	OptionSelected  lipgloss.Style
	OptionCorrect   lipgloss.Style
	OptionIncorrect lipgloss.Style
	Badge           lipgloss.Style
	Explanation     lipgloss.Style
	Score           lipgloss.Style
}

// newStyles builds the style set, or unstyled output when color is off.
func newStyles(noColor bool) Styles {
	if noColor {
		return Styles{}
	}
	return Styles{
		Title:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Subtitle:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TabActive:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("81")),
		TabInactive:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:           lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Hint:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		SectionHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		QuestionFocused: lipgloss.NewStyle().Bold(true),
		OptionSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		OptionCorrect:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		OptionIncorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Badge:           lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Explanation:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
		Score:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
	}
}
