package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-match-bot/internal/storage"
)

var (
	ErrNotEnoughWords   = errors.New("not enough words to build a question")
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuestionNotOwned = errors.New("question belongs to another user")
)

const minWordsForQuestion = 2

// AnswerResult describes an evaluated matching question.
type AnswerResult struct {
	Correct  bool
	Target   *entities.Word
	Selected *entities.Word
	Progress entities.Progress // target's progress after the answer
}

// MatchingService creates matching questions from users' dictionaries and scores answers.
type MatchingService struct {
	words     WordRepository
	answers   AnswerRepository
	tx        Transactor
	questions QuestionStorage
	generator *CandidateGenerator
	shuffle   entities.ShuffleFunc
	choices   int
	logger    *zap.Logger
}

func NewMatchingService(
	words WordRepository,
	answers AnswerRepository,
	tx Transactor,
	questions QuestionStorage,
	generator *CandidateGenerator,
	choices int,
	logger *zap.Logger,
) *MatchingService {
	return &MatchingService{
		words:     words,
		answers:   answers,
		tx:        tx,
		questions: questions,
		generator: generator,
		shuffle:   rand.Shuffle,
		choices:   choices,
		logger:    logger,
	}
}

// WithShuffle replaces the shuffle used for target selection and presentation order.
func (s *MatchingService) WithShuffle(fn entities.ShuffleFunc) *MatchingService {
	s.shuffle = fn
	return s
}

// NewQuestion builds a matching question for the least practised word of the user.
func (s *MatchingService) NewQuestion(ctx context.Context, userID int64) (*storage.ActiveQuestion, error) {
	words, err := s.words.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	if len(words) < minWordsForQuestion {
		return nil, ErrNotEnoughWords
	}

	target := s.pickTarget(words)

	pool := make([]*entities.Word, 0, len(words))
	for _, w := range words {
		if w.Language == target.Language {
			pool = append(pool, w)
		}
	}

	candidates := s.generator.Generate(target, pool, s.choices)
	if len(candidates) < minWordsForQuestion {
		return nil, ErrNotEnoughWords
	}

	q, err := entities.NewMatchingQuestion(target.Language, candidates, entities.WithShuffle(s.shuffle))
	if err != nil {
		return nil, fmt.Errorf("new matching question: %w", err)
	}

	aq := &storage.ActiveQuestion{
		ID:        uuid.New(),
		Question:  q,
		Target:    target,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.questions.Store(aq)

	s.logger.Debug("matching question created",
		zap.Int64("user_id", userID),
		zap.String("question_id", aq.ID.String()),
		zap.String("word_id", target.ID.String()),
		zap.Int("choices", len(candidates)),
	)

	return aq, nil
}

// Answer records the choice at index, scores it and persists the word's progress.
// A question can be answered once.
func (s *MatchingService) Answer(ctx context.Context, userID int64, questionID uuid.UUID, index int) (*AnswerResult, error) {
	aq, ok := s.questions.Get(questionID)
	if !ok {
		return nil, ErrQuestionNotFound
	}
	if aq.UserID != userID {
		return nil, ErrQuestionNotOwned
	}

	aq, ok = s.questions.Take(questionID)
	if !ok {
		return nil, ErrQuestionNotFound
	}

	q := aq.Question
	if err := q.Choose(index); err != nil {
		// Let the user pick again.
		s.questions.Store(aq)
		return nil, err
	}

	res := &AnswerResult{
		Target:   aq.Target,
		Selected: q.Selected(),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		words, err := s.words.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		user := entities.NewUser(userID, 0)
		user.Dictionary = entities.NewDictionary(words...)

		res.Correct, err = q.Evaluate(aq.Target, user)
		if err != nil {
			return err
		}

		stored, err := user.Dictionary.Lookup(aq.Target.ID)
		if err != nil {
			return err
		}
		res.Progress = stored.Progress()

		if err := s.words.UpdateProgress(ctx, stored); err != nil {
			return err
		}

		answer := entities.NewMatchAnswer(aq.ID, userID, aq.Target, res.Selected, len(q.Choices()), res.Correct)
		return s.answers.Save(ctx, answer)
	})
	if err != nil {
		s.logger.Error("failed to evaluate matching question",
			zap.Int64("user_id", userID),
			zap.String("question_id", questionID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("matching question answered",
		zap.Int64("user_id", userID),
		zap.String("question_id", questionID.String()),
		zap.Bool("correct", res.Correct),
	)

	return res, nil
}

// pickTarget returns a word with the fewest presentations, ties broken at random.
func (s *MatchingService) pickTarget(words []*entities.Word) *entities.Word {
	shuffled := append([]*entities.Word(nil), words...)
	s.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	target := shuffled[0]
	least := target.Progress().Presented
	for _, w := range shuffled[1:] {
		if p := w.Progress().Presented; p < least {
			target, least = w, p
		}
	}
	return target
}
