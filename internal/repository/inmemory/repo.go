// Package inmemory is a process-local note store with the same contract as the
// PostgreSQL repository. It backs use-case and handler tests.
package inmemory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
)

type Repo struct {
	mu     sync.Mutex
	now    func() time.Time
	nextID int64
	notes  map[int64]entity.Note
}

func New() *Repo {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Repo {
	return &Repo{
		now:   now,
		notes: make(map[int64]entity.Note),
	}
}

func (r *Repo) ListNotes(_ context.Context, userID int64) ([]entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]entity.Note, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			notes = append(notes, clone(n))
		}
	}

	slices.SortFunc(notes, func(a, b entity.Note) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return notes, nil
}

func (r *Repo) GetNote(_ context.Context, id, userID int64) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return clone(n), nil
}

func (r *Repo) CreateNote(_ context.Context, userID int64, title string, content *string) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	n := entity.Note{
		ID:        r.nextID,
		UserID:    userID,
		Title:     title,
		Content:   copyPtr(content),
		CreatedAt: r.now(),
	}
	r.notes[n.ID] = n

	return clone(n), nil
}

func (r *Repo) UpdateNote(_ context.Context, id, userID int64, title string, content *string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return 0, nil
	}

	now := r.now()
	n.Title = title
	n.Content = copyPtr(content)
	n.UpdatedAt = &now
	r.notes[id] = n

	return 1, nil
}

func (r *Repo) DeleteNote(_ context.Context, id, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return 0, nil
	}
	delete(r.notes, id)

	return 1, nil
}

// Len reports the number of stored notes across all users.
func (r *Repo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.notes)
}

func clone(n entity.Note) entity.Note {
	n.Content = copyPtr(n.Content)
	n.UpdatedAt = copyPtr(n.UpdatedAt)
	return n
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p
	return &v
}
