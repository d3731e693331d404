package repository

import (
	"context"
	"errors"

	"github.com/notedrop/notedrop-go/internal/model"
)

var (
	ErrNoteNotFound = errors.New("note not found")
)

// NoteRepository handles note persistence over the flat-file store.
type NoteRepository struct {
	notes *Collection[model.Note]
}

// NewNoteRepository creates a NoteRepository backed by the file at path.
func NewNoteRepository(path string) *NoteRepository {
	return &NoteRepository{notes: NewCollection[model.Note](path)}
}

// ListByOwner returns the notes created by the given owner email.
func (r *NoteRepository) ListByOwner(ctx context.Context, owner string) ([]model.Note, error) {
	notes, err := r.notes.Load()
	if err != nil {
		return nil, err
	}

	owned := []model.Note{}
	for _, n := range notes {
		if n.CreatedBy == owner {
			owned = append(owned, n)
		}
	}
	return owned, nil
}

// GetOwned returns the note with the given id if it was created by
// owner. An existing note owned by someone else is reported as not
// found, never as forbidden.
func (r *NoteRepository) GetOwned(ctx context.Context, id int64, owner string) (model.Note, error) {
	notes, err := r.notes.Load()
	if err != nil {
		return model.Note{}, err
	}

	for _, n := range notes {
		if n.ID == id && n.CreatedBy == owner {
			return n, nil
		}
	}
	return model.Note{}, ErrNoteNotFound
}

// Create appends a new note.
func (r *NoteRepository) Create(ctx context.Context, note model.Note) error {
	return r.notes.Mutate(func(notes []model.Note) ([]model.Note, error) {
		return append(notes, note), nil
	})
}

// Put replaces the stored note carrying the same id.
func (r *NoteRepository) Put(ctx context.Context, note model.Note) error {
	return r.notes.Mutate(func(notes []model.Note) ([]model.Note, error) {
		for i, n := range notes {
			if n.ID == note.ID {
				notes[i] = note
				return notes, nil
			}
		}
		return nil, ErrNoteNotFound
	})
}

// Delete removes the note with the given id regardless of owner.
// Deleting an id that is not present is a no-op, not an error.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	return r.notes.Mutate(func(notes []model.Note) ([]model.Note, error) {
		kept := notes[:0]
		for _, n := range notes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		return kept, nil
	})
}
