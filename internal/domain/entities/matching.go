package entities

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrNoCandidates     = errors.New("matching question needs at least one candidate")
	ErrInvalidCandidate = errors.New("invalid candidate word")
	ErrNotACandidate    = errors.New("selected word is not one of the candidates")
	ErrChoiceOutOfRange = errors.New("choice index out of range")
	ErrUnanswered       = errors.New("question has not been answered")
	ErrAlreadyEvaluated = errors.New("question has already been evaluated")
)

const matchingHeader = "Match the following word to one of the choices:"

// ShuffleFunc permutes n elements using swap. rand.Shuffle and (*rand.Rand).Shuffle satisfy it.
type ShuffleFunc func(n int, swap func(i, j int))

// MatchingOption configures a MatchingQuestion.
type MatchingOption func(*MatchingQuestion)

// WithShuffle sets the shuffle used to build the presentation order.
func WithShuffle(fn ShuffleFunc) MatchingOption {
	return func(q *MatchingQuestion) {
		if fn != nil {
			q.shuffle = fn
		}
	}
}

// MatchingQuestion asks the learner to pick the right word out of a shuffled set of candidates.
type MatchingQuestion struct {
	language   string
	candidates []*Word // original order
	choices    []*Word // presentation order, fixed at construction
	shuffle    ShuffleFunc

	mu       sync.Mutex
	selected *Word
	state    QuestionState
}

var _ Question = (*MatchingQuestion)(nil)

// NewMatchingQuestion builds a question over the candidates for the given language.
func NewMatchingQuestion(language string, candidates []*Word, opts ...MatchingOption) (*MatchingQuestion, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	for i, c := range candidates {
		if c == nil {
			return nil, fmt.Errorf("candidate %d is nil: %w", i, ErrInvalidCandidate)
		}
	}

	q := &MatchingQuestion{
		language:   language,
		candidates: append([]*Word(nil), candidates...),
		shuffle:    rand.Shuffle,
		state:      StateUnanswered,
	}
	for _, opt := range opts {
		opt(q)
	}

	q.choices = append([]*Word(nil), candidates...)
	q.shuffle(len(q.choices), func(i, j int) {
		q.choices[i], q.choices[j] = q.choices[j], q.choices[i]
	})

	return q, nil
}

func (q *MatchingQuestion) Kind() QuestionKind {
	return QuestionKindMatching
}

func (q *MatchingQuestion) Language() string {
	return q.language
}

// Candidates returns the candidates in the order they were given.
func (q *MatchingQuestion) Candidates() []*Word {
	return append([]*Word(nil), q.candidates...)
}

// Choices returns the candidates in presentation order.
func (q *MatchingQuestion) Choices() []*Word {
	return append([]*Word(nil), q.choices...)
}

// Selected returns the recorded answer or nil.
func (q *MatchingQuestion) Selected() *Word {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.selected
}

func (q *MatchingQuestion) State() QuestionState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// RecordAnswer stores the learner's selection, overwriting a previous one.
// The selection must be equal to one of the candidates.
func (q *MatchingQuestion) RecordAnswer(selected *Word) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state == StateEvaluated {
		return ErrAlreadyEvaluated
	}
	if selected == nil {
		return ErrInvalidCandidate
	}
	if !q.isCandidate(selected) {
		return ErrNotACandidate
	}

	q.selected = selected
	q.state = StateAnswered
	return nil
}

// Choose records the choice at the given 0-based position of the presentation order.
func (q *MatchingQuestion) Choose(index int) error {
	if index < 0 || index >= len(q.choices) {
		return fmt.Errorf("choice %d of %d: %w", index, len(q.choices), ErrChoiceOutOfRange)
	}
	return q.RecordAnswer(q.choices[index])
}

// Evaluate compares the recorded answer with the correct word and updates
// progress of that word in the user's dictionary. It can succeed only once.
func (q *MatchingQuestion) Evaluate(correct *Word, user *User) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch q.state {
	case StateEvaluated:
		return false, ErrAlreadyEvaluated
	case StateUnanswered:
		return false, ErrUnanswered
	}

	if correct == nil || user == nil || user.Dictionary == nil {
		return false, ErrWordNotFound
	}

	stored, err := user.Dictionary.Lookup(correct.ID)
	if err != nil {
		return false, err
	}

	isCorrect := correct.Equal(q.selected)
	stored.RecordPresentation(isCorrect)
	q.state = StateEvaluated

	return isCorrect, nil
}

// Render lists the choices in presentation order, numbered from 1.
func (q *MatchingQuestion) Render() string {
	var b strings.Builder
	b.WriteString(matchingHeader)
	b.WriteByte('\n')

	for i, w := range q.choices {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(w.DisplayText(q.language))
		b.WriteByte('\n')
	}

	return b.String()
}

func (q *MatchingQuestion) isCandidate(w *Word) bool {
	for _, c := range q.candidates {
		if c.Equal(w) {
			return true
		}
	}
	return false
}
