package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
)

type tickingClock struct {
	t time.Time
}

func (c *tickingClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func TestRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &tickingClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	repo := NewWithClock(clock.Now)

	content := "milk"
	note, err := repo.CreateNote(ctx, 1, "Groceries", &content)
	require.NoError(t, err)
	assert.EqualValues(t, 1, note.ID)

	content = "changed outside"
	got, err := repo.GetNote(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "milk", *got.Content)

	_, err = repo.GetNote(ctx, note.ID, 2)
	require.ErrorIs(t, err, entity.ErrNoteNotFound)

	affected, err := repo.UpdateNote(ctx, note.ID, 1, "Groceries!", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = repo.GetNote(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, got.Content)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	affected, err = repo.DeleteNote(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
	assert.Zero(t, repo.Len())

	affected, err = repo.DeleteNote(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestRepo_ListOrdersNewestFirstWithIDTieBreak(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewWithClock(func() time.Time { return fixed })

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.CreateNote(ctx, 1, title, nil)
		require.NoError(t, err)
	}

	notes, err := repo.ListNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "c", notes[0].Title)
	assert.Equal(t, "a", notes[2].Title)
}
