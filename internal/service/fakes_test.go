package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
)

// fakeWordRepo mimics a database: reads return fresh copies, writes copy progress back.
type fakeWordRepo struct {
	mu      sync.Mutex
	words   []*entities.Word
	listErr error
	updated int
}

func copyWord(w *entities.Word) *entities.Word {
	c := &entities.Word{
		ID:          w.ID,
		UserID:      w.UserID,
		Language:    w.Language,
		Source:      w.Source,
		Translation: w.Translation,
		CreatedAt:   w.CreatedAt,
	}
	c.SetProgress(w.Progress())
	return c
}

func (r *fakeWordRepo) Create(_ context.Context, word *entities.Word) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.words = append(r.words, copyWord(word))
	return nil
}

func (r *fakeWordRepo) ListByUser(_ context.Context, userID int64) ([]*entities.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []*entities.Word
	for _, w := range r.words {
		if w.UserID == userID {
			out = append(out, copyWord(w))
		}
	}
	return out, nil
}

func (r *fakeWordRepo) UpdateProgress(_ context.Context, word *entities.Word) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words {
		if w.ID == word.ID && w.UserID == word.UserID {
			w.SetProgress(word.Progress())
			r.updated++
			return nil
		}
	}
	return entities.ErrWordNotFound
}

func (r *fakeWordRepo) Delete(_ context.Context, userID int64, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, w := range r.words {
		if w.ID == id && w.UserID == userID {
			r.words = append(r.words[:i], r.words[i+1:]...)
			return nil
		}
	}
	return entities.ErrWordNotFound
}

func (r *fakeWordRepo) get(id uuid.UUID) *entities.Word {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words {
		if w.ID == id {
			return w
		}
	}
	return nil
}

type fakeAnswerRepo struct {
	answers []*entities.MatchAnswer
	err     error
}

func (r *fakeAnswerRepo) Save(_ context.Context, a *entities.MatchAnswer) error {
	if r.err != nil {
		return r.err
	}
	a.ID = int64(len(r.answers) + 1)
	r.answers = append(r.answers, a)
	return nil
}

type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fakeUserRepo struct {
	users     map[int64]*entities.User
	existsErr error
}

func (r *fakeUserRepo) Save(_ context.Context, user *entities.User) (bool, error) {
	_, ok := r.users[user.ID]
	r.users[user.ID] = user
	return !ok, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, userID int64) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.users[userID]
	return ok, nil
}

var errDB = errors.New("db is down")
