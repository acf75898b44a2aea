package entities

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrWordNotFound  = errors.New("word not found")
	ErrDuplicateWord = errors.New("word already exists")
)

// Dictionary is a user's personal set of words keyed by word ID.
// It is the only place where word progress lives.
type Dictionary struct {
	mu    sync.RWMutex
	words map[uuid.UUID]*Word
	order []uuid.UUID
}

// NewDictionary creates a dictionary holding the given words.
func NewDictionary(words ...*Word) *Dictionary {
	d := &Dictionary{
		words: make(map[uuid.UUID]*Word, len(words)),
	}
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// Add puts a word into the dictionary, replacing an entry with the same ID.
func (d *Dictionary) Add(w *Word) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.words[w.ID]; !ok {
		d.order = append(d.order, w.ID)
	}
	d.words[w.ID] = w
}

// Lookup returns the stored word with the given ID.
func (d *Dictionary) Lookup(id uuid.UUID) (*Word, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	w, ok := d.words[id]
	if !ok {
		return nil, fmt.Errorf("lookup %s: %w", id, ErrWordNotFound)
	}
	return w, nil
}

// Words returns all words in insertion order.
func (d *Dictionary) Words() []*Word {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Word, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.words[id])
	}
	return out
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
