package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/internal/migrations"
	"github.com/evgeniy-krivenko/notes-api/pkg/database"
)

const testDSNEnv = "NOTES_TEST_DB_DSN"

var errRollback = errors.New("rollback")

func openPostgres(t *testing.T) *database.Database {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.Up(ctx, pool))

	return database.NewDatabase(pool)
}

// runPostgres runs f inside a transaction that is always rolled back.
func runPostgres(t *testing.T, f func(ctx context.Context, repo *Repo)) {
	t.Helper()

	db := openPostgres(t)
	err := db.RunInTx(context.Background(), func(ctx context.Context) error {
		f(ctx, New(db))
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)
}

// insertNoteAt bypasses the store so created_at can be pinned. now() is frozen
// for the whole transaction, which would leave ordering to the id tie-break.
func insertNoteAt(t *testing.T, ctx context.Context, userID int64, title string, createdAt time.Time) int64 {
	t.Helper()

	tx := database.TxFromContext(ctx)
	require.NotNil(t, tx)

	var id int64
	err := tx.QueryRow(ctx,
		"INSERT INTO notes (user_id, title, created_at) VALUES ($1, $2, $3) RETURNING id",
		userID, title, createdAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func TestPostgres_CreateListGet(t *testing.T) {
	runPostgres(t, func(ctx context.Context, repo *Repo) {
		content := "milk"
		created, err := repo.CreateNote(ctx, 1001, "Groceries", &content)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Nil(t, created.UpdatedAt)

		notes, err := repo.ListNotes(ctx, 1001)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Groceries", notes[0].Title)
		assert.Equal(t, "milk", *notes[0].Content)

		got, err := repo.GetNote(ctx, created.ID, 1001)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestPostgres_NewestFirst(t *testing.T) {
	runPostgres(t, func(ctx context.Context, repo *Repo) {
		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		// Newer rows get lower ids so only created_at can produce the expected order.
		newest := insertNoteAt(t, ctx, 1002, "newest", base.Add(time.Hour))
		middle := insertNoteAt(t, ctx, 1002, "middle", base)
		oldest := insertNoteAt(t, ctx, 1002, "oldest", base.Add(-time.Hour))

		notes, err := repo.ListNotes(ctx, 1002)
		require.NoError(t, err)
		require.Len(t, notes, 3)
		assert.Equal(t, []int64{newest, middle, oldest}, []int64{notes[0].ID, notes[1].ID, notes[2].ID})
		assert.True(t, notes[0].CreatedAt.Equal(base.Add(time.Hour)))
	})
}

func TestPostgres_SameCreatedAtTieBreak(t *testing.T) {
	runPostgres(t, func(ctx context.Context, repo *Repo) {
		first, err := repo.CreateNote(ctx, 1006, "first", nil)
		require.NoError(t, err)
		second, err := repo.CreateNote(ctx, 1006, "second", nil)
		require.NoError(t, err)
		require.True(t, first.CreatedAt.Equal(second.CreatedAt))

		notes, err := repo.ListNotes(ctx, 1006)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, second.ID, notes[0].ID)
		assert.Equal(t, first.ID, notes[1].ID)
	})
}

func TestPostgres_OwnerScoping(t *testing.T) {
	runPostgres(t, func(ctx context.Context, repo *Repo) {
		note, err := repo.CreateNote(ctx, 1003, "mine", nil)
		require.NoError(t, err)

		_, err = repo.GetNote(ctx, note.ID, 1004)
		require.ErrorIs(t, err, entity.ErrNoteNotFound)

		foreign, err := repo.ListNotes(ctx, 1004)
		require.NoError(t, err)
		assert.Empty(t, foreign)

		affected, err := repo.UpdateNote(ctx, note.ID, 1004, "stolen", nil)
		require.NoError(t, err)
		assert.Zero(t, affected)

		affected, err = repo.DeleteNote(ctx, note.ID, 1004)
		require.NoError(t, err)
		assert.Zero(t, affected)

		got, err := repo.GetNote(ctx, note.ID, 1003)
		require.NoError(t, err)
		assert.Equal(t, "mine", got.Title)
		assert.Nil(t, got.UpdatedAt)
	})
}

func TestPostgres_UpdateDelete(t *testing.T) {
	runPostgres(t, func(ctx context.Context, repo *Repo) {
		note, err := repo.CreateNote(ctx, 1005, "draft", nil)
		require.NoError(t, err)

		content := "body"
		affected, err := repo.UpdateNote(ctx, note.ID, 1005, "final", &content)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		got, err := repo.GetNote(ctx, note.ID, 1005)
		require.NoError(t, err)
		assert.Equal(t, "final", got.Title)
		require.NotNil(t, got.UpdatedAt)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
		assert.True(t, note.CreatedAt.Equal(got.CreatedAt))

		affected, err = repo.UpdateNote(ctx, 999999999, 1005, "ghost", nil)
		require.NoError(t, err)
		assert.Zero(t, affected)

		affected, err = repo.DeleteNote(ctx, note.ID, 1005)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		_, err = repo.GetNote(ctx, note.ID, 1005)
		require.ErrorIs(t, err, entity.ErrNoteNotFound)
	})
}

func TestPostgres_UpdateAfterCommit(t *testing.T) {
	db := openPostgres(t)
	repo := New(db)
	ctx := context.Background()
	const userID = 1007

	note, err := repo.CreateNote(ctx, userID, "draft", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = repo.DeleteNote(context.Background(), note.ID, userID)
	})

	time.Sleep(20 * time.Millisecond)

	affected, err := repo.UpdateNote(ctx, note.ID, userID, "final", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := repo.GetNote(ctx, note.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt), "updated_at %v must be after created_at %v", got.UpdatedAt, got.CreatedAt)
	assert.True(t, note.CreatedAt.Equal(got.CreatedAt))
}
