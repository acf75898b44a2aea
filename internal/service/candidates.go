package service

import (
	"math/rand"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
)

// CandidateGenerator picks candidate words for matching questions.
type CandidateGenerator struct {
	shuffle entities.ShuffleFunc
}

// NewCandidateGenerator creates a generator. A nil shuffle means rand.Shuffle.
func NewCandidateGenerator(shuffle entities.ShuffleFunc) *CandidateGenerator {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &CandidateGenerator{shuffle: shuffle}
}

// Generate returns the target plus up to count-1 distractors from pool.
// Distractors never equal the target or each other; the target is always first.
func (g *CandidateGenerator) Generate(target *entities.Word, pool []*entities.Word, count int) []*entities.Word {
	if count < 1 {
		count = 1
	}

	candidates := make([]*entities.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != target.ID {
			candidates = append(candidates, w)
		}
	}

	// Shuffle candidates
	g.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	out := make([]*entities.Word, 0, count)
	out = append(out, target)

	for _, candidate := range candidates {
		if len(out) >= count {
			break
		}

		// Avoid duplicates
		isDuplicate := false
		for _, existing := range out {
			if existing.Equal(candidate) {
				isDuplicate = true
				break
			}
		}

		if !isDuplicate {
			out = append(out, candidate)
		}
	}

	return out
}
