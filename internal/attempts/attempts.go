// Package attempts records scored quiz attempts on the local filesystem.
package attempts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"wikiquiz/internal/quiz"
)

// Record is one scored attempt at a quiz.
type Record struct {
	ID        string         `json:"id"`
	QuizID    string         `json:"quiz_id,omitempty"`
	Title     string         `json:"title"`
	URL       string         `json:"url,omitempty"`
	Answers   map[int]string `json:"answers"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Percent   int            `json:"percent"`
	CreatedAt time.Time      `json:"created_at"`
}

// Recorder writes and reads attempt records under a directory, one JSON
// file per attempt.
type Recorder struct {
	Dir   string
	Now   func() time.Time
	NewID func() string
}

// NewRecorder constructs a recorder for the given directory.
func NewRecorder(dir string) (*Recorder, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("attempts directory is required")
	}
	return &Recorder{
		Dir:   dir,
		Now:   time.Now,
		NewID: uuid.NewString,
	}, nil
}

// Record persists a submitted session as an attempt file and returns the
// written record.
func (r *Recorder) Record(session quiz.Session) (Record, error) {
	if !session.Submitted {
		return Record{}, fmt.Errorf("session is not submitted")
	}
	record := Record{
		ID:        r.NewID(),
		QuizID:    session.Quiz.ID,
		Title:     session.Quiz.Title,
		URL:       session.Quiz.URL,
		Answers:   session.Answers,
		Score:     session.Score,
		Total:     len(session.Quiz.Quiz),
		Percent:   session.Percent(),
		CreatedAt: r.Now().UTC(),
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return Record{}, fmt.Errorf("create attempts dir: %w", err)
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return Record{}, fmt.Errorf("marshal attempt: %w", err)
	}
	path := filepath.Join(r.Dir, record.ID+".json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return Record{}, fmt.Errorf("write attempt: %w", err)
	}
	return record, nil
}

// List returns all recorded attempts, newest first. A missing directory
// means no attempts yet.
func (r *Recorder) List() ([]Record, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read attempts dir: %w", err)
	}
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.Dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read attempt %s: %w", entry.Name(), err)
		}
		var record Record
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("decode attempt %s: %w", entry.Name(), err)
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}
