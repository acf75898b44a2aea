package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
)

var (
	ErrEmptyWord       = errors.New("word and translation must not be empty")
	ErrInvalidWordPair = errors.New("expected input like: word - translation")
)

var pairSeparators = []string{" - ", " — ", " – ", "="}

// WordService manages words of users' dictionaries.
type WordService struct {
	repository WordRepository
	language   string
}

// NewWordService creates a service that tags new words with language.
func NewWordService(repository WordRepository, language string) *WordService {
	return &WordService{repository: repository, language: language}
}

// AddWord adds a word to the user's dictionary unless a word with the same meaning exists.
func (s *WordService) AddWord(ctx context.Context, userID int64, source, translation string) (*entities.Word, error) {
	source, translation = normalize(source), normalize(translation)
	if source == "" || translation == "" {
		return nil, ErrEmptyWord
	}

	word := entities.NewWord(userID, s.language, source, translation)

	existing, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	for _, w := range existing {
		if w.Equal(word) {
			return nil, entities.ErrDuplicateWord
		}
	}

	if err := s.repository.Create(ctx, word); err != nil {
		return nil, err
	}

	return word, nil
}

// AddPair parses "word - translation" and adds it.
func (s *WordService) AddPair(ctx context.Context, userID int64, text string) (*entities.Word, error) {
	source, translation, err := ParseWordPair(text)
	if err != nil {
		return nil, err
	}
	return s.AddWord(ctx, userID, source, translation)
}

func (s *WordService) List(ctx context.Context, userID int64) ([]*entities.Word, error) {
	return s.repository.ListByUser(ctx, userID)
}

func (s *WordService) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	return s.repository.Delete(ctx, userID, id)
}

// ParseWordPair splits user input into source text and translation.
func ParseWordPair(text string) (source, translation string, err error) {
	for _, sep := range pairSeparators {
		if before, after, ok := strings.Cut(text, sep); ok {
			source, translation = normalize(before), normalize(after)
			if source == "" || translation == "" {
				return "", "", ErrEmptyWord
			}
			return source, translation, nil
		}
	}
	return "", "", ErrInvalidWordPair
}

// normalize trims and collapses whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
