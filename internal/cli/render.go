package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"wikiquiz/internal/attempts"
	"wikiquiz/internal/quiz"
)

// formatHistoryDate formats a generation timestamp for listings.
func formatHistoryDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// formatHistoryCached renders the cached marker for listings.
func formatHistoryCached(cached bool) string {
	if cached {
		return "Yes"
	}
	return "No"
}

// renderQuizPlain prints a quiz as text: the article info, the questions
// with lettered options, and an answer key.
func renderQuizPlain(w io.Writer, q quiz.Quiz) {
	fmt.Fprintf(w, "\n%s\n", q.Title)
	if q.Summary != "" {
		fmt.Fprintln(w, q.Summary)
	}
	if len(q.Sections) > 0 {
		fmt.Fprintf(w, "Sections: %s\n", strings.Join(q.Sections, ", "))
	}

	fmt.Fprintf(w, "\nQuiz (%d questions)\n", len(q.Quiz))
	for i, question := range q.Quiz {
		fmt.Fprintf(w, "\n%d. %s", i+1, question.Question)
		if question.Difficulty != "" {
			fmt.Fprintf(w, " [%s]", question.Difficulty)
		}
		fmt.Fprintln(w)
		for o, option := range question.Options {
			fmt.Fprintf(w, "   %c) %s\n", 'A'+o, option)
		}
	}

	fmt.Fprintln(w, "\nAnswer key")
	for i, question := range q.Quiz {
		fmt.Fprintf(w, "%d. %s\n", i+1, question.Answer)
		if question.Explanation != "" {
			fmt.Fprintf(w, "   %s\n", question.Explanation)
		}
	}

	if len(q.RelatedTopics) > 0 {
		fmt.Fprintf(w, "\nRelated topics: %s\n", strings.Join(q.RelatedTopics, ", "))
	}
}

// renderHistoryPlain prints the quiz listing as a text table.
func renderHistoryPlain(w io.Writer, items []quiz.Summary) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No quizzes yet")
		fmt.Fprintln(w, "Generate your first quiz to see it here!")
		return
	}
	fmt.Fprintf(w, "Previous Quizzes (%d)\n", len(items))
	fmt.Fprintf(w, "%-36s  %-38s  %-10s  %-6s\n", "ID", "Title", "Generated", "Cached")
	for _, item := range items {
		fmt.Fprintf(w, "%-36s  %-38s  %-10s  %-6s\n",
			item.ID, item.Title, formatHistoryDate(item.CreatedAt), formatHistoryCached(item.IsCached))
	}
}

// renderAttemptsPlain prints locally recorded attempts, newest first.
func renderAttemptsPlain(w io.Writer, records []attempts.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No attempts recorded yet")
		return
	}
	fmt.Fprintf(w, "Recorded attempts (%d)\n", len(records))
	for _, record := range records {
		fmt.Fprintf(w, "%s  %-38s  %d/%d (%d%%)\n",
			record.CreatedAt.Format("2006-01-02 15:04"), record.Title,
			record.Score, record.Total, record.Percent)
	}
}
