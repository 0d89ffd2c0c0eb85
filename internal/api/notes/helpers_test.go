package notes

import (
	"encoding/json"
	"strconv"

	v1 "github.com/evgeniy-krivenko/notes-api/pkg/api/notes/v1"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decodeNotes(body string) ([]v1.Note, error) {
	var notes []v1.Note
	err := json.Unmarshal([]byte(body), &notes)
	return notes, err
}
