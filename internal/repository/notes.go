package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/internal/repository/converter"
	notesrepo "github.com/evgeniy-krivenko/notes-api/internal/repository/notes/gen"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

// withQueries scopes one connection to f and releases it on every exit path.
func (r *Repo) withQueries(ctx context.Context, f func(notesrepo.Querier) error) error {
	conn, release, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return f(notesrepo.New(conn))
}

func (r *Repo) ListNotes(ctx context.Context, userID int64) ([]entity.Note, error) {
	var rows []notesrepo.Note
	err := r.withQueries(ctx, func(q notesrepo.Querier) (err error) {
		rows, err = q.ListNotesByUserID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %v", err)
	}

	return converter.ConvertNotesToEntity(rows), nil
}

func (r *Repo) GetNote(ctx context.Context, id, userID int64) (entity.Note, error) {
	var row notesrepo.Note
	err := r.withQueries(ctx, func(q notesrepo.Querier) (err error) {
		row, err = q.GetNote(ctx, notesrepo.GetNoteParams{ID: id, UserID: userID})
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %v", err)
	}

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) CreateNote(ctx context.Context, userID int64, title string, content *string) (entity.Note, error) {
	var row notesrepo.Note
	err := r.withQueries(ctx, func(q notesrepo.Querier) (err error) {
		row, err = q.CreateNote(ctx, notesrepo.CreateNoteParams{
			UserID:  userID,
			Title:   title,
			Content: converter.ConvertStringToText(content),
		})
		return err
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %v", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserID(userID), slogx.NoteID(row.ID))

	return converter.ConvertNoteToEntity(row), nil
}

// UpdateNote reports the number of rows touched. Zero is not an error.
func (r *Repo) UpdateNote(ctx context.Context, id, userID int64, title string, content *string) (int64, error) {
	var affected int64
	err := r.withQueries(ctx, func(q notesrepo.Querier) (err error) {
		affected, err = q.UpdateNote(ctx, notesrepo.UpdateNoteParams{
			ID:      id,
			UserID:  userID,
			Title:   title,
			Content: converter.ConvertStringToText(content),
		})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("update note: %v", err)
	}

	return affected, nil
}

// DeleteNote reports the number of rows removed. Zero is not an error.
func (r *Repo) DeleteNote(ctx context.Context, id, userID int64) (int64, error) {
	var affected int64
	err := r.withQueries(ctx, func(q notesrepo.Querier) (err error) {
		affected, err = q.DeleteNote(ctx, notesrepo.DeleteNoteParams{ID: id, UserID: userID})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete note: %v", err)
	}

	return affected, nil
}
