package quiz

import "math"

// Score counts the questions whose selected answer matches the correct
// answer exactly. Answers are keyed by 0-based question index; missing or
// out-of-range entries count as incorrect.
func Score(q Quiz, answers map[int]string) int {
	correct := 0
	for i, question := range q.Quiz {
		if selected, ok := answers[i]; ok && selected == question.Answer {
			correct++
		}
	}
	return correct
}

// Percentage converts a score over total questions to a rounded percent.
// A zero total yields 0 rather than dividing by zero.
func Percentage(score, total int) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}
