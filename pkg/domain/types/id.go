package types

import (
	"github.com/google/uuid"
)

// UserID identifies the owner of notes and taxonomy records. It is opaque to
// this service; the authentication layer decides what it contains.
type UserID string

func (u UserID) String() string {
	return string(u)
}

// NoteID is a UUID-based identifier for Note
type NoteID string

// NewNoteID generates a new UUID v4 NoteID
func NewNoteID() NoteID {
	return NoteID(uuid.New().String())
}

func (n NoteID) String() string {
	return string(n)
}
