package quiz

// Session tracks answer state for one displayed quiz. Transitions are
// value-receiver functions returning a new snapshot; presentation layers
// render snapshots and never mutate shared state.
type Session struct {
	Quiz      Quiz
	Answers   map[int]string
	Submitted bool
	Score     int
}

// NewSession starts an answering session for a quiz.
func NewSession(q Quiz) Session {
	return Session{Quiz: q, Answers: map[int]string{}}
}

// Select records the chosen option for a question, overwriting any prior
// selection for that index. It is a no-op once the session is submitted or
// when the index is out of range.
func (s Session) Select(index int, option string) Session {
	if s.Submitted || index < 0 || index >= len(s.Quiz.Quiz) {
		return s
	}
	answers := make(map[int]string, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[index] = option
	s.Answers = answers
	return s
}

// Submit freezes the answers and computes the score from whatever subset
// of questions has been answered. It is a no-op if already submitted.
func (s Session) Submit() Session {
	if s.Submitted {
		return s
	}
	s.Score = Score(s.Quiz, s.Answers)
	s.Submitted = true
	return s
}

// Reset clears all answers and returns the session to the answering state.
func (s Session) Reset() Session {
	s.Answers = map[int]string{}
	s.Submitted = false
	s.Score = 0
	return s
}

// Selected returns the option chosen for a question, if any.
func (s Session) Selected(index int) (string, bool) {
	option, ok := s.Answers[index]
	return option, ok
}

// Percent returns the rounded score percentage for the session.
func (s Session) Percent() int {
	return Percentage(s.Score, len(s.Quiz.Quiz))
}
