package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-match-bot/internal/storage"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

type WordRepository interface {
	Create(ctx context.Context, word *entities.Word) error
	ListByUser(ctx context.Context, userID int64) ([]*entities.Word, error)
	UpdateProgress(ctx context.Context, word *entities.Word) error
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
}

type AnswerRepository interface {
	Save(ctx context.Context, a *entities.MatchAnswer) error
}

// Transactor runs fn atomically; repositories called with fn's ctx join the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuestionStorage keeps questions that wait for an answer.
type QuestionStorage interface {
	Store(q *storage.ActiveQuestion)
	Take(id uuid.UUID) (*storage.ActiveQuestion, bool)
	Get(id uuid.UUID) (*storage.ActiveQuestion, bool)
}
