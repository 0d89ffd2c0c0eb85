package converter

import (
	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	v1 "github.com/evgeniy-krivenko/notes-api/pkg/api/notes/v1"
)

func ConvertNoteToAPI(note entity.Note) v1.Note {
	return v1.Note{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ConvertNotesToAPI never returns nil so an empty list encodes as [].
func ConvertNotesToAPI(notes []entity.Note) []v1.Note {
	res := make([]v1.Note, 0, len(notes))
	for _, n := range notes {
		res = append(res, ConvertNoteToAPI(n))
	}

	return res
}
