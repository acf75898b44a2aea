package service

import (
	"context"
)

type ProgressService struct {
	repository WordRepository
}

func NewProgressService(repository WordRepository) *ProgressService {
	return &ProgressService{repository: repository}
}

// ProgressSummary aggregates a user's learning statistics.
type ProgressSummary struct {
	Words     int     // words in the dictionary
	Practised int     // words asked at least once
	Mastered  int     // words answered correctly several times in a row
	Answers   int     // total answers
	Correct   int     // correct answers
	Accuracy  float64 // percentage of correct answers
}

func (s *ProgressService) GetProgressSummary(ctx context.Context, userID int64) (*ProgressSummary, error) {
	words, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &ProgressSummary{Words: len(words)}
	for _, w := range words {
		p := w.Progress()
		if p.Presented > 0 {
			summary.Practised++
		}
		if p.Mastered() {
			summary.Mastered++
		}
		summary.Answers += p.Presented
		summary.Correct += p.Correct
	}

	if summary.Answers > 0 {
		summary.Accuracy = float64(summary.Correct) / float64(summary.Answers) * 100
	}

	return summary, nil
}
