package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedrop/notedrop-go/internal/model"
)

func newTestNoteRepo(t *testing.T) *NoteRepository {
	t.Helper()
	return NewNoteRepository(filepath.Join(t.TempDir(), "notes.json"))
}

func TestNoteRepositoryEmptyOnFirstRun(t *testing.T) {
	repo := newTestNoteRepo(t)

	notes, err := repo.ListByOwner(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepositoryListByOwner(t *testing.T) {
	repo := newTestNoteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.Note{ID: 1, Title: "A1", Discription: "a", CreatedBy: "alice@example.com"}))
	require.NoError(t, repo.Create(ctx, model.Note{ID: 2, Title: "B1", Discription: "b", CreatedBy: "bob@example.com"}))
	require.NoError(t, repo.Create(ctx, model.Note{ID: 3, Title: "A2", Discription: "a", CreatedBy: "alice@example.com"}))

	notes, err := repo.ListByOwner(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "A1", notes[0].Title)
	assert.Equal(t, "A2", notes[1].Title)
}

func TestNoteRepositoryGetOwned(t *testing.T) {
	repo := newTestNoteRepo(t)
	ctx := context.Background()

	note := model.Note{ID: 1, Title: "T", Discription: "D", CreatedBy: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, note))

	got, err := repo.GetOwned(ctx, 1, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, note, got)

	// Someone else's note reads as absent, not forbidden.
	_, err = repo.GetOwned(ctx, 1, "bob@example.com")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = repo.GetOwned(ctx, 999, "alice@example.com")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepositoryPut(t *testing.T) {
	repo := newTestNoteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.Note{ID: 1, Title: "old", Discription: "old", CreatedBy: "alice@example.com"}))

	updated := model.Note{ID: 1, Title: "new", Discription: "old", CreatedBy: "alice@example.com"}
	require.NoError(t, repo.Put(ctx, updated))

	got, err := repo.GetOwned(ctx, 1, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestNoteRepositoryPutUnknownID(t *testing.T) {
	repo := newTestNoteRepo(t)

	err := repo.Put(context.Background(), model.Note{ID: 999, Title: "T", Discription: "D"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepositoryDelete(t *testing.T) {
	repo := newTestNoteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.Note{ID: 1, Title: "T", Discription: "D", CreatedBy: "alice@example.com"}))

	// Delete is by id alone; the owner is not consulted.
	require.NoError(t, repo.Delete(ctx, 1))

	notes, err := repo.ListByOwner(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepositoryDeleteAbsentID(t *testing.T) {
	repo := newTestNoteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.Note{ID: 1, Title: "T", Discription: "D", CreatedBy: "alice@example.com"}))
	require.NoError(t, repo.Delete(ctx, 999))

	notes, err := repo.ListByOwner(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}
