package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
)

// ActiveQuestion is a matching question waiting for the user's answer.
type ActiveQuestion struct {
	ID        uuid.UUID
	Question  *entities.MatchingQuestion
	Target    *entities.Word // canonical word
	UserID    int64
	CreatedAt time.Time
}

// QuestionStorage provides in-memory storage for active questions by ID.
type QuestionStorage struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]*ActiveQuestion
}

// NewQuestionStorage creates a new QuestionStorage.
func NewQuestionStorage() *QuestionStorage {
	return &QuestionStorage{
		questions: make(map[uuid.UUID]*ActiveQuestion),
	}
}

// Store saves a question under its ID.
func (s *QuestionStorage) Store(q *ActiveQuestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[q.ID] = q
}

// Get retrieves a question without removing it.
func (s *QuestionStorage) Get(id uuid.UUID) (*ActiveQuestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.questions[id]
	return q, ok
}

// Take retrieves a question and removes it, so only one caller can answer it.
func (s *QuestionStorage) Take(id uuid.UUID) (*ActiveQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if ok {
		delete(s.questions, id)
	}
	return q, ok
}

// Delete removes a question.
func (s *QuestionStorage) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questions, id)
}

// DeleteOlderThan drops questions created before the cutoff and returns how many were removed.
func (s *QuestionStorage) DeleteOlderThan(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, q := range s.questions {
		if q.CreatedAt.Before(cutoff) {
			delete(s.questions, id)
			removed++
		}
	}
	return removed
}
