package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-match-bot/internal/service"
	"github.com/aliskhannn/vocab-match-bot/internal/storage"
)

func newActiveQuestion(t *testing.T) *storage.ActiveQuestion {
	t.Helper()

	dog := entities.NewWord(1, "es", "dog", "perro")
	cat := entities.NewWord(1, "es", "cat", "gato")
	q, err := entities.NewMatchingQuestion("es", []*entities.Word{dog, cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &storage.ActiveQuestion{ID: uuid.New(), Question: q, Target: cat, UserID: 1}
}

func TestFormatQuestion(t *testing.T) {
	aq := newActiveQuestion(t)
	text := formatQuestion(aq)

	if !strings.Contains(text, "*cat*") {
		t.Errorf("expected prompt word in bold, got %q", text)
	}
	for i, w := range aq.Question.Choices() {
		line := md(fmt.Sprintf("%d. %s", i+1, w.Translation))
		if !strings.Contains(text, line) {
			t.Errorf("expected line %q in %q", line, text)
		}
	}
}

func TestBuildMatchAnswerKeyboard(t *testing.T) {
	aq := newActiveQuestion(t)
	kb := buildMatchAnswerKeyboard(aq)

	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(kb.InlineKeyboard))
	}
	for i, row := range kb.InlineKeyboard {
		data := *row[0].CallbackData
		id, index, err := parseMatchAnswer(decodeCallback(data))
		if err != nil || id != aq.ID || index != i {
			t.Errorf("row %d: unexpected callback %q", i, data)
		}
	}
}

func TestFormatAnswerFeedback(t *testing.T) {
	cat := entities.NewWord(1, "es", "cat", "gato")

	ok := formatAnswerFeedback(&service.AnswerResult{Correct: true, Target: cat, Progress: entities.Progress{Presented: 1, Correct: 1, Streak: 1}})
	if !strings.Contains(ok, "Correct") || strings.Contains(ok, "Wrong") {
		t.Errorf("unexpected feedback %q", ok)
	}

	wrong := formatAnswerFeedback(&service.AnswerResult{Correct: false, Target: cat, Progress: entities.Progress{Presented: 1}})
	if !strings.Contains(wrong, "Wrong") || !strings.Contains(wrong, "gato") {
		t.Errorf("unexpected feedback %q", wrong)
	}
}

func TestFormatWords(t *testing.T) {
	if got := formatWords(nil); got != md(msgEmptyDictionary) {
		t.Errorf("unexpected empty dictionary text %q", got)
	}

	got := formatWords([]*entities.Word{entities.NewWord(1, "es", "dog", "perro")})
	if !strings.Contains(got, md("1. dog — perro (0/0)")) {
		t.Errorf("unexpected words text %q", got)
	}
}

func TestBuildProgressBar(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{current: 0, total: 0, want: "[░░░░]"},
		{current: 1, total: 2, want: "[██░░]"},
		{current: 3, total: 2, want: "[████]"},
	}

	for _, tt := range tests {
		if got := buildProgressBar(tt.current, tt.total, 4); got != tt.want {
			t.Errorf("buildProgressBar(%d, %d): expected %q, got %q", tt.current, tt.total, tt.want, got)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err   error
		want  string
		known bool
	}{
		{err: service.ErrNotEnoughWords, want: msgNotEnoughWords, known: true},
		{err: fmt.Errorf("wrapped: %w", entities.ErrDuplicateWord), want: msgDuplicateWord, known: true},
		{err: service.ErrQuestionNotFound, want: msgQuestionExpired, known: true},
		{err: entities.ErrAlreadyEvaluated, want: msgQuestionExpired, known: true},
		{err: entities.ErrChoiceOutOfRange, want: msgInvalidChoice, known: true},
		{err: entities.ErrWordNotFound, want: msgWordNotFound, known: true},
		{err: errors.New("boom"), want: msgInternalError, known: false},
	}

	for _, tt := range tests {
		got, known := userMessage(tt.err)
		if got != tt.want || known != tt.known {
			t.Errorf("userMessage(%v): expected %q/%v, got %q/%v", tt.err, tt.want, tt.known, got, known)
		}
	}
}
