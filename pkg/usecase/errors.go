package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrNoteNotFound = errors.New("note not found")

	// Validation errors, rejected before any external call is made
	ErrEmptyNote     = errors.New("note text or images are required")
	ErrEmptyMessage  = errors.New("message is required")
	ErrMissingNoteID = errors.New("note id is required for append")
	ErrNotConfigured = errors.New("required service is not configured")
)

// Context keys for error values
const (
	NoteIDKey    = "note_id"
	PartIndexKey = "part_index"
)
