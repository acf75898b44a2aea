package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-match-bot/internal/infra/postgres"
)

const uniqueViolation = "23505"

// WordRepository provides access to dictionary words and their progress.
type WordRepository struct {
	db postgres.DBTX
}

// NewWordRepository creates a new WordRepository with the provided database pool.
func NewWordRepository(db postgres.DBTX) *WordRepository {
	return &WordRepository{db: db}
}

// Create inserts a new word with its current progress.
func (r *WordRepository) Create(ctx context.Context, word *entities.Word) error {
	query := `
		INSERT INTO words (
			id, user_id, language, source_text, translation,
			presented, correct_count, streak, last_presented_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	p := word.Progress()
	_, err := postgres.Conn(ctx, r.db).Exec(
		ctx,
		query,
		word.ID,
		word.UserID,
		word.Language,
		word.Source,
		word.Translation,
		p.Presented,
		p.Correct,
		p.Streak,
		p.LastPresentedAt,
		word.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entities.ErrDuplicateWord
		}
		return fmt.Errorf("create word: %w", err)
	}

	return nil
}

// ListByUser returns all words of the user's dictionary, oldest first.
func (r *WordRepository) ListByUser(ctx context.Context, userID int64) ([]*entities.Word, error) {
	query := `
		SELECT id, user_id, language, source_text, translation,
		       presented, correct_count, streak, last_presented_at, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	var words []*entities.Word
	for rows.Next() {
		w := new(entities.Word)
		var p entities.Progress
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Language, &w.Source, &w.Translation,
			&p.Presented, &p.Correct, &p.Streak, &p.LastPresentedAt, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.SetProgress(p)
		words = append(words, w)
	}

	return words, rows.Err()
}

// UpdateProgress writes the word's current progress counters.
func (r *WordRepository) UpdateProgress(ctx context.Context, word *entities.Word) error {
	query := `
		UPDATE words SET
			presented = $3,
			correct_count = $4,
			streak = $5,
			last_presented_at = $6
		WHERE id = $1 AND user_id = $2
	`

	p := word.Progress()
	tag, err := postgres.Conn(ctx, r.db).Exec(
		ctx,
		query,
		word.ID,
		word.UserID,
		p.Presented,
		p.Correct,
		p.Streak,
		p.LastPresentedAt,
	)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrWordNotFound
	}

	return nil
}

// Delete removes a word from the user's dictionary.
func (r *WordRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, "DELETE FROM words WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrWordNotFound
	}

	return nil
}

// Get returns a single word of the user.
func (r *WordRepository) Get(ctx context.Context, userID int64, id uuid.UUID) (*entities.Word, error) {
	query := `
		SELECT id, user_id, language, source_text, translation,
		       presented, correct_count, streak, last_presented_at, created_at
		FROM words
		WHERE id = $1 AND user_id = $2
	`

	w := new(entities.Word)
	var p entities.Progress
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, id, userID).Scan(
		&w.ID, &w.UserID, &w.Language, &w.Source, &w.Translation,
		&p.Presented, &p.Correct, &p.Streak, &p.LastPresentedAt, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrWordNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}

	w.SetProgress(p)
	return w, nil
}
