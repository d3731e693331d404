package model

// Note represents a note as persisted in the note store. The json keys,
// including the historical "discription" spelling and the denormalized
// "createdBy" owner email, are part of the stored-data contract and must
// not be renamed.
type Note struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Discription string `json:"discription"`
	CreatedBy   string `json:"createdBy"`
}

// CreateNoteRequest represents a note creation request. Both fields are
// required.
type CreateNoteRequest struct {
	Title       string `json:"title"`
	Discription string `json:"discription"`
}

// UpdateNoteRequest represents a partial note update. An empty field
// keeps the stored value.
type UpdateNoteRequest struct {
	Title       string `json:"title"`
	Discription string `json:"discription"`
}

// NoteResponse is the envelope returned when a single note is created or
// updated.
type NoteResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Note    Note   `json:"note"`
}

// NotesResponse is the envelope returned by the list endpoint.
type NotesResponse struct {
	Success bool   `json:"success"`
	Notes   []Note `json:"notes"`
}
