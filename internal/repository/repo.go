package repository

import (
	"context"

	"github.com/evgeniy-krivenko/notes-api/pkg/database"
)

type acquirer interface {
	Acquire(ctx context.Context) (database.Tx, func(), error)
}

// Repo is the note store. Every call holds one connection for a single statement.
type Repo struct {
	db acquirer
}

func New(db acquirer) *Repo {
	return &Repo{db: db}
}
