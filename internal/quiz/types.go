package quiz

import "time"

// KeyEntities groups named entities extracted from the source article.
type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// Question represents a single multiple-choice item within a quiz.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Difficulty  string   `json:"difficulty"`
}

// Quiz is the artifact returned by generation or a history lookup.
// It is immutable once received; answer state lives in Session.
type Quiz struct {
	ID            string      `json:"id,omitempty"`
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	KeyEntities   KeyEntities `json:"key_entities"`
	Sections      []string    `json:"sections"`
	Quiz          []Question  `json:"quiz"`
	RelatedTopics []string    `json:"related_topics"`
	CreatedAt     time.Time   `json:"created_at"`
	IsCached      bool        `json:"is_cached"`
	URL           string      `json:"url"`
}

// Summary is the lighter projection returned by the history listing.
// The service may omit the question list entirely.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	IsCached  bool      `json:"is_cached"`
}
