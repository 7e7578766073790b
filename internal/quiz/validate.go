package quiz

import "fmt"

// Validate reports whether a quiz is well formed: a non-empty question
// list where every question offers at least two distinct options and an
// answer that matches one of them exactly.
func Validate(q Quiz) error {
	if len(q.Quiz) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i, question := range q.Quiz {
		if err := validateQuestion(question); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// validateQuestion checks a single question's invariants.
func validateQuestion(q Question) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("expected at least 2 options, got %d", len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, option := range q.Options {
		if seen[option] {
			return fmt.Errorf("duplicate option %q", option)
		}
		seen[option] = true
	}
	if !seen[q.Answer] {
		return fmt.Errorf("answer %q is not among the options", q.Answer)
	}
	return nil
}
