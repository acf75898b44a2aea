package entities

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestWord_Equal(t *testing.T) {
	base := NewWord(1, "es", "dog", "perro")

	tests := []struct {
		name  string
		other *Word
		want  bool
	}{
		{name: "same meaning, other id", other: NewWord(2, "es", "dog", "perro"), want: true},
		{name: "other translation", other: NewWord(1, "es", "dog", "can"), want: false},
		{name: "other source", other: NewWord(1, "es", "hound", "perro"), want: false},
		{name: "other language", other: NewWord(1, "pt", "dog", "perro"), want: false},
		{name: "nil", other: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWord_EqualIgnoresProgress(t *testing.T) {
	a := NewWord(1, "es", "dog", "perro")
	b := NewWord(1, "es", "dog", "perro")
	b.RecordPresentation(true)

	if !a.Equal(b) {
		t.Error("progress must not affect equality")
	}
}

func TestWord_DisplayText(t *testing.T) {
	w := NewWord(1, "es", "dog", "perro")

	if got := w.DisplayText("es"); got != "perro" {
		t.Errorf("expected translation, got %q", got)
	}
	if got := w.DisplayText("en"); got != "dog" {
		t.Errorf("expected source text, got %q", got)
	}
}

func TestWord_RecordPresentation(t *testing.T) {
	w := NewWord(1, "es", "dog", "perro")

	for _, correct := range []bool{true, true, true} {
		w.RecordPresentation(correct)
	}
	p := w.Progress()
	if p.Presented != 3 || p.Correct != 3 || p.Streak != 3 || !p.Mastered() {
		t.Errorf("unexpected progress after three correct answers: %+v", p)
	}
	if p.LastPresentedAt == nil {
		t.Error("expected LastPresentedAt to be set")
	}

	w.RecordPresentation(false)
	p = w.Progress()
	if p.Presented != 4 || p.Correct != 3 || p.Streak != 0 || p.Incorrect() != 1 || p.Mastered() {
		t.Errorf("unexpected progress after a wrong answer: %+v", p)
	}
}

func TestWord_RecordPresentationConcurrent(t *testing.T) {
	w := NewWord(1, "es", "dog", "perro")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w.RecordPresentation(i%2 == 0)
		}(i)
	}
	wg.Wait()

	if p := w.Progress(); p.Presented != 100 || p.Correct != 50 {
		t.Errorf("expected 100 presentations and 50 correct, got %+v", p)
	}
}

func TestDictionary(t *testing.T) {
	dog := NewWord(1, "es", "dog", "perro")
	cat := NewWord(1, "es", "cat", "gato")
	d := NewDictionary(dog, cat)

	if d.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", d.Len())
	}

	got, err := d.Lookup(cat.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cat {
		t.Error("lookup must return the stored instance")
	}

	if _, err := d.Lookup(uuid.New()); !errors.Is(err, ErrWordNotFound) {
		t.Errorf("expected ErrWordNotFound, got %v", err)
	}

	d.Add(dog)
	words := d.Words()
	if len(words) != 2 || words[0] != dog || words[1] != cat {
		t.Error("expected insertion order without duplicates")
	}
}
