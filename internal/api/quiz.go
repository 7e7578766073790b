package api

import (
	"context"
	"net/http"
	"net/url"

	"wikiquiz/internal/quiz"
)

// Generate requests a quiz for a Wikipedia article URL. The bearer token
// is attached when present; the service accepts anonymous generation.
func (c *Client) Generate(ctx context.Context, articleURL string) (quiz.Quiz, error) {
	payload := struct {
		URL string `json:"url"`
	}{URL: articleURL}
	var result quiz.Quiz
	if err := c.do(ctx, http.MethodPost, "/api/quiz/generate", payload, true, &result); err != nil {
		return quiz.Quiz{}, err
	}
	return result, nil
}

// History lists the authenticated user's quizzes in service order.
func (c *Client) History(ctx context.Context) ([]quiz.Summary, error) {
	var result []quiz.Summary
	if err := c.do(ctx, http.MethodGet, "/api/history", nil, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// QuizDetails fetches the full quiz, including questions, by identifier.
func (c *Client) QuizDetails(ctx context.Context, id string) (quiz.Quiz, error) {
	var result quiz.Quiz
	if err := c.do(ctx, http.MethodGet, "/api/quiz/"+url.PathEscape(id), nil, true, &result); err != nil {
		return quiz.Quiz{}, err
	}
	return result, nil
}

// DeleteQuiz removes a quiz by identifier.
func (c *Client) DeleteQuiz(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/quiz/"+url.PathEscape(id), nil, true, nil)
}
