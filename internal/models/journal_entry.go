package models

import "time"

const (
	MoodPositive = "positive"
	MoodNeutral  = "neutral"
	MoodNegative = "negative"
)

// JournalEntry is a free-text daily note. The store does not enforce one
// entry per date.
type JournalEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Notes   string    `json:"notes"`
	Mood    string    `json:"mood,omitempty"`
	Lessons string    `json:"lessons,omitempty"`
}

func (e JournalEntry) DateKey() string {
	return e.Date.Format("2006-01-02")
}
