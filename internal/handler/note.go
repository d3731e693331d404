package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/notedrop/notedrop-go/internal/middleware"
	"github.com/notedrop/notedrop-go/internal/model"
	"github.com/notedrop/notedrop-go/internal/service"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	service *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{service: svc}
}

// HandleCreateNote handles POST /create-note requests.
func (h *NoteHandler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.SessionUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("Request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	note, err := h.service.Create(r.Context(), user.Email, req)
	if err != nil {
		if errors.Is(err, service.ErrFieldsRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse("All fields required"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server Error"))
		return
	}

	writeJSON(w, http.StatusOK, model.NoteResponse{
		Message: "Note created",
		Success: true,
		Note:    note,
	})
}

// HandleGetNotes handles GET /get-notes requests. Only the caller's own
// notes come back.
func (h *NoteHandler) HandleGetNotes(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.SessionUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	notes, err := h.service.List(r.Context(), user.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server Error"))
		return
	}

	writeJSON(w, http.StatusOK, model.NotesResponse{
		Success: true,
		Notes:   notes,
	})
}

// HandleUpdateNote handles PATCH /update-note/{noteId} requests.
func (h *NoteHandler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.SessionUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	// A non-numeric id can never match a stored note, so it takes the
	// same not-found path as an unknown one.
	noteID, err := strconv.ParseInt(chi.URLParam(r, "noteId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("Note not found"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("Request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	note, err := h.service.Update(r.Context(), user.Email, noteID, req)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Note not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server Error"))
		return
	}

	writeJSON(w, http.StatusOK, model.NoteResponse{
		Message: "Note updated",
		Success: true,
		Note:    note,
	})
}

// HandleDeleteNote handles DELETE /delete-note/{noteId} requests.
// Deletion is by id alone, without an ownership check, and reports
// success even when the id does not exist. Both behaviors are part of
// the API contract; see DESIGN.md before changing either.
func (h *NoteHandler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.SessionUserFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	// Unparsable ids match nothing and fall through to the same
	// success response as an absent id.
	noteID, _ := strconv.ParseInt(chi.URLParam(r, "noteId"), 10, 64)

	if err := h.service.Delete(r.Context(), noteID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server Error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Note deleted", Success: true})
}
