package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-match-bot/internal/infra/postgres"
)

// AnswerRepository stores evaluated matching questions.
type AnswerRepository struct {
	db postgres.DBTX
}

func NewAnswerRepository(db postgres.DBTX) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Save appends an answer to the log and sets its ID.
func (r *AnswerRepository) Save(ctx context.Context, a *entities.MatchAnswer) error {
	query := `
		INSERT INTO match_answers (
			question_id, user_id, word_id, selected_id, choices, is_correct, answered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := postgres.Conn(ctx, r.db).QueryRow(
		ctx,
		query,
		a.QuestionID,
		a.UserID,
		a.WordID,
		a.SelectedID,
		a.Choices,
		a.IsCorrect,
		a.AnsweredAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}

	return nil
}
