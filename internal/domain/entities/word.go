// Package entities contains domain entities used across the application.
package entities

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// masteredStreak is the number of correct answers in a row after which a word counts as mastered.
const masteredStreak = 3

// Progress holds learning statistics of a single word.
type Progress struct {
	Presented       int        // how many times the word was asked
	Correct         int        // how many of those answers were correct
	Streak          int        // series of correct answers in a row
	LastPresentedAt *time.Time // nullable
}

// Incorrect returns the number of wrong answers.
func (p Progress) Incorrect() int {
	return p.Presented - p.Correct
}

// Mastered reports whether the word has been answered correctly enough times in a row.
func (p Progress) Mastered() bool {
	return p.Streak >= masteredStreak
}

// Word represents a vocabulary entry from a user's personal dictionary.
// Word must not be copied after first use.
type Word struct {
	ID          uuid.UUID // stable unique identifier
	UserID      int64     // owner of the dictionary
	Language    string    // language tag of the translation, e.g. "es"
	Source      string    // text in the learner's language
	Translation string    // text in the language being learned
	CreatedAt   time.Time

	mu       sync.Mutex
	progress Progress
}

// NewWord creates a word with a fresh identifier and empty progress.
func NewWord(userID int64, language, source, translation string) *Word {
	return &Word{
		ID:          uuid.New(),
		UserID:      userID,
		Language:    language,
		Source:      source,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// Equal compares meaning-bearing fields only. Identity and progress are ignored.
func (w *Word) Equal(other *Word) bool {
	if w == nil || other == nil {
		return w == other
	}
	return w.Language == other.Language &&
		w.Source == other.Source &&
		w.Translation == other.Translation
}

// DisplayText returns the form of the word written in the given language.
func (w *Word) DisplayText(language string) string {
	if language == w.Language {
		return w.Translation
	}
	return w.Source
}

// RecordPresentation updates progress after the word was asked.
func (w *Word) RecordPresentation(wasCorrect bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	w.progress.Presented++
	if wasCorrect {
		w.progress.Correct++
		w.progress.Streak++
	} else {
		w.progress.Streak = 0
	}
	w.progress.LastPresentedAt = &now
}

// Progress returns a snapshot of the word's statistics.
func (w *Word) Progress() Progress {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.progress
}

// SetProgress replaces the statistics, used when restoring a word from storage.
func (w *Word) SetProgress(p Progress) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.progress = p
}
