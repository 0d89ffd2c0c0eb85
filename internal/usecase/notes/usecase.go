package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

type notesRepository interface {
	ListNotes(ctx context.Context, userID int64) ([]entity.Note, error)
	GetNote(ctx context.Context, id, userID int64) (entity.Note, error)
	CreateNote(ctx context.Context, userID int64, title string, content *string) (entity.Note, error)
	UpdateNote(ctx context.Context, id, userID int64, title string, content *string) (int64, error)
	DeleteNote(ctx context.Context, id, userID int64) (int64, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListNotes(ctx context.Context, userID int64) ([]entity.Note, error) {
	notes, err := u.repo.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase list notes: %w", err)
	}

	return notes, nil
}

func (u *Usecase) GetNote(ctx context.Context, id, userID int64) (entity.Note, error) {
	note, err := u.repo.GetNote(ctx, id, userID)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

// CreateNote is the only operation that checks the title.
func (u *Usecase) CreateNote(ctx context.Context, userID int64, title string, content *string) (entity.Note, error) {
	if err := entity.ValidateTitle(title); err != nil {
		return entity.Note{}, err
	}

	note, err := u.repo.CreateNote(ctx, userID, title, content)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.UserID(userID), slogx.NoteID(note.ID))
	return note, nil
}

// UpdateNote succeeds even when nothing matched id and userID.
func (u *Usecase) UpdateNote(ctx context.Context, id, userID int64, title string, content *string) error {
	affected, err := u.repo.UpdateNote(ctx, id, userID, title, content)
	if err != nil {
		return fmt.Errorf("usecase update note: %w", err)
	}

	if affected == 0 {
		slogx.Debug(ctx, "update matched no note", slogx.UserID(userID), slogx.NoteID(id))
	}

	return nil
}

// DeleteNote succeeds even when nothing matched id and userID.
func (u *Usecase) DeleteNote(ctx context.Context, id, userID int64) error {
	affected, err := u.repo.DeleteNote(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	if affected == 0 {
		slogx.Debug(ctx, "delete matched no note", slogx.UserID(userID), slogx.NoteID(id))
	}

	return nil
}
