package notes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/evgeniy-krivenko/notes-api/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/notes-api/internal/ctxtr"
	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	v1 "github.com/evgeniy-krivenko/notes-api/pkg/api/notes/v1"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

func (s *Service) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	notes, err := s.usecase.ListNotes(r.Context(), userID)
	if err != nil {
		internalError(w, r, "list notes", err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ConvertNotesToAPI(notes))
}

func (s *Service) getNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	id, ok := noteID(w, r)
	if !ok {
		return
	}

	note, err := s.usecase.GetNote(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		internalError(w, r, "get note", err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ConvertNoteToAPI(note))
}

func (s *Service) createNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req v1.CreateNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Title == nil {
		http.Error(w, v1.TitleRequiredMessage, http.StatusBadRequest)
		return
	}

	note, err := s.usecase.CreateNote(r.Context(), userID, *req.Title, req.Content)
	if err != nil {
		if errors.Is(err, entity.ErrTitleRequired) {
			http.Error(w, v1.TitleRequiredMessage, http.StatusBadRequest)
			return
		}
		internalError(w, r, "create note", err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ConvertNoteToAPI(note))
}

// updateNote stores the request as is. A null title is written as an empty one.
func (s *Service) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	id, ok := noteID(w, r)
	if !ok {
		return
	}

	var req v1.UpdateNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var title string
	if req.Title != nil {
		title = *req.Title
	}

	if err := s.usecase.UpdateNote(r.Context(), id, userID, title, req.Content); err != nil {
		internalError(w, r, "update note", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Service) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	id, ok := noteID(w, r)
	if !ok {
		return
	}

	if err := s.usecase.DeleteNote(r.Context(), id, userID); err != nil {
		internalError(w, r, "delete note", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func requestUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := ctxtr.UserID(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}

	return userID, true
}

func noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slogx.Debug(r.Context(), "decode request body", slogx.Err(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slogx.Warn(r.Context(), "write response", slogx.Err(err))
	}
}

// internalError answers with a bare 500 and keeps the cause in the log only.
func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	userID, _ := ctxtr.UserID(r.Context())
	slogx.Error(r.Context(), op, slogx.UserID(userID), slogx.Err(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
