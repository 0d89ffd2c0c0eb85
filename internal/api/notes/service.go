package notes

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/evgeniy-krivenko/notes-api/internal/ctxtr"
	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	v1 "github.com/evgeniy-krivenko/notes-api/pkg/api/notes/v1"
)

type notesUsecase interface {
	ListNotes(ctx context.Context, userID int64) ([]entity.Note, error)
	GetNote(ctx context.Context, id, userID int64) (entity.Note, error)
	CreateNote(ctx context.Context, userID int64, title string, content *string) (entity.Note, error)
	UpdateNote(ctx context.Context, id, userID int64, title string, content *string) error
	DeleteNote(ctx context.Context, id, userID int64) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	usecase  notesUsecase       `option:"mandatory" validate:"required"`
	resolver ctxtr.UserResolver `option:"mandatory" validate:"required"`
}

// Service exposes the notes use case over HTTP.
type Service struct {
	Options
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes service options: %v", err)
	}

	return &Service{Options: opts}, nil
}

// Register mounts the notes endpoints under /api/notes.
func (s *Service) Register(r chi.Router) {
	r.Route(v1.BasePath, func(r chi.Router) {
		r.Use(ctxtr.Middleware(s.resolver))

		r.Get("/", s.listNotes)
		r.Post("/", s.createNote)
		r.Get("/{id}", s.getNote)
		r.Put("/{id}", s.updateNote)
		r.Delete("/{id}", s.deleteNote)
	})
}
