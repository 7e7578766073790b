package cucumber

import (
	"fmt"
	"strconv"
	"strings"

	"wikiquiz/internal/quiz"

	"github.com/cucumber/godog"
)

// aQuizWithQuestions builds an answering session from a question table
// with columns question, options (semicolon-separated), and answer.
func (s *featureState) aQuizWithQuestions(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one question")
	}
	q := quiz.Quiz{ID: "feature-quiz", Title: "Feature quiz"}
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 3 {
			return fmt.Errorf("expected 3 cells per question, got %d", len(row.Cells))
		}
		q.Quiz = append(q.Quiz, quiz.Question{
			Question: strings.TrimSpace(row.Cells[0].Value),
			Options:  strings.Split(strings.TrimSpace(row.Cells[1].Value), ";"),
			Answer:   strings.TrimSpace(row.Cells[2].Value),
		})
	}
	if err := quiz.Validate(q); err != nil {
		return fmt.Errorf("fixture quiz: %w", err)
	}
	s.session = quiz.NewSession(q)
	return nil
}

// iSelectForQuestion selects an option for a 1-based question number.
func (s *featureState) iSelectForQuestion(option, number string) error {
	index, err := strconv.Atoi(number)
	if err != nil {
		return fmt.Errorf("question number %q: %w", number, err)
	}
	s.session = s.session.Select(index-1, option)
	return nil
}

func (s *featureState) iSubmitMyAnswers() error {
	s.session = s.session.Submit()
	return nil
}

func (s *featureState) iTryAgain() error {
	s.session = s.session.Reset()
	return nil
}

func (s *featureState) myScoreIs(score, total string) error {
	wantScore, err := strconv.Atoi(score)
	if err != nil {
		return err
	}
	wantTotal, err := strconv.Atoi(total)
	if err != nil {
		return err
	}
	if !s.session.Submitted {
		return fmt.Errorf("session is not submitted")
	}
	if s.session.Score != wantScore {
		return fmt.Errorf("expected score %d, got %d", wantScore, s.session.Score)
	}
	if got := len(s.session.Quiz.Quiz); got != wantTotal {
		return fmt.Errorf("expected %d questions, got %d", wantTotal, got)
	}
	return nil
}

func (s *featureState) thePercentageIs(percent string) error {
	want, err := strconv.Atoi(percent)
	if err != nil {
		return err
	}
	if got := s.session.Percent(); got != want {
		return fmt.Errorf("expected %d%%, got %d%%", want, got)
	}
	return nil
}

func (s *featureState) theSessionIsNotSubmitted() error {
	if s.session.Submitted {
		return fmt.Errorf("expected an answering session")
	}
	return nil
}

func (s *featureState) noAnswersAreSelected() error {
	if len(s.session.Answers) != 0 {
		return fmt.Errorf("expected no selections, got %v", s.session.Answers)
	}
	return nil
}
