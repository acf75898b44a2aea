package entities

import (
	"time"

	"github.com/google/uuid"
)

// MatchAnswer represents an evaluated matching question.
// It tracks which word was asked, what the user picked, and whether it was right.
type MatchAnswer struct {
	ID         int64     // unique answer ID
	QuestionID uuid.UUID // ID of the matching question
	UserID     int64     // user ID who answered
	WordID     uuid.UUID // canonical word of the question
	SelectedID uuid.UUID // word chosen by the user
	Choices    int       // number of candidates shown
	IsCorrect  bool      // whether the answer was correct
	AnsweredAt time.Time // timestamp when the answer was evaluated
}

// NewMatchAnswer creates an answer record for a question and the user's selection.
func NewMatchAnswer(questionID uuid.UUID, userID int64, correct, selected *Word, choices int, isCorrect bool) *MatchAnswer {
	return &MatchAnswer{
		QuestionID: questionID,
		UserID:     userID,
		WordID:     correct.ID,
		SelectedID: selected.ID,
		Choices:    choices,
		IsCorrect:  isCorrect,
		AnsweredAt: time.Now(),
	}
}
