package telegram

import (
	"context"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-match-bot/internal/service"
	"github.com/aliskhannn/vocab-match-bot/internal/storage"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

type WordService interface {
	AddPair(ctx context.Context, userID int64, text string) (*entities.Word, error)
	List(ctx context.Context, userID int64) ([]*entities.Word, error)
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
}

type MatchingService interface {
	NewQuestion(ctx context.Context, userID int64) (*storage.ActiveQuestion, error)
	Answer(ctx context.Context, userID int64, questionID uuid.UUID, index int) (*service.AnswerResult, error)
}

type ProgressService interface {
	GetProgressSummary(ctx context.Context, userID int64) (*service.ProgressSummary, error)
}
