package service

import (
	"math/rand"
	"testing"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
)

func TestCandidateGenerator_Generate(t *testing.T) {
	target := entities.NewWord(1, "es", "cat", "gato")
	pool := []*entities.Word{
		entities.NewWord(1, "es", "dog", "perro"),
		target,
		entities.NewWord(1, "es", "cat", "gato"), // same meaning as target
		entities.NewWord(1, "es", "sun", "sol"),
		entities.NewWord(1, "es", "sun", "sol"), // duplicate distractor
		entities.NewWord(1, "es", "house", "casa"),
	}

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "fewer than pool", count: 3, want: 3},
		{name: "all distinct", count: 4, want: 4},
		{name: "more than distinct words", count: 10, want: 4},
		{name: "zero means target only", count: 0, want: 1},
	}

	g := NewCandidateGenerator(rand.New(rand.NewSource(1)).Shuffle)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Generate(target, pool, tt.count)
			if len(got) != tt.want {
				t.Fatalf("expected %d candidates, got %d", tt.want, len(got))
			}
			if got[0] != target {
				t.Error("expected target first")
			}
			for i := range got {
				for j := i + 1; j < len(got); j++ {
					if got[i].Equal(got[j]) {
						t.Errorf("candidates %d and %d are equal", i, j)
					}
				}
			}
		})
	}
}
