package converter

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	notesrepo "github.com/evgeniy-krivenko/notes-api/internal/repository/notes/gen"
)

func ConvertNoteToEntity(row notesrepo.Note) entity.Note {
	return entity.Note{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Content:   ConvertTextToString(row.Content),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: ConvertTimestamptzToTime(row.UpdatedAt),
	}
}

func ConvertNotesToEntity(rows []notesrepo.Note) []entity.Note {
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, ConvertNoteToEntity(row))
	}

	return notes
}

func ConvertTimestamptzToTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time
	return &v
}

func ConvertTextToString(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	v := t.String
	return &v
}

func ConvertStringToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}
