package entity

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrTitleRequired = errors.New("title is required")
)

type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ValidateTitle rejects titles that are empty after trimming whitespace.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}

	return nil
}
