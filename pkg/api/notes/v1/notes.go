// Package v1 holds the JSON contract of the /api/notes endpoints.
package v1

import "time"

const BasePath = "/api/notes"

// TitleRequiredMessage is the plain-text body of a 400 response to a create without a title.
const TitleRequiredMessage = "Title is required"

type Note struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Title     string     `json:"title"`
	Content   *string    `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type CreateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content,omitempty"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content,omitempty"`
}
