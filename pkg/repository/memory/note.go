package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

type noteRepository struct {
	mu    sync.RWMutex
	notes map[types.UserID]map[types.NoteID]*model.Note
}

func newNoteRepository() *noteRepository {
	return &noteRepository{
		notes: make(map[types.UserID]map[types.NoteID]*model.Note),
	}
}

func (r *noteRepository) Put(ctx context.Context, userID types.UserID, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.notes[userID] == nil {
		r.notes[userID] = make(map[types.NoteID]*model.Note)
	}
	r.notes[userID][note.ID] = note.Clone()
	return nil
}

func (r *noteRepository) Get(ctx context.Context, userID types.UserID, id types.NoteID) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[userID][id]
	if !exists {
		return nil, goerr.Wrap(types.ErrRecordNotFound, "note not found", goerr.V("id", id))
	}

	return note.Clone(), nil
}

func (r *noteRepository) List(ctx context.Context, userID types.UserID) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Note, 0, len(r.notes[userID]))
	for _, note := range r.notes[userID] {
		result = append(result, note.Clone())
	}

	return result, nil
}

func (r *noteRepository) Delete(ctx context.Context, userID types.UserID, id types.NoteID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[userID][id]; !exists {
		return goerr.Wrap(types.ErrRecordNotFound, "note not found", goerr.V("id", id))
	}

	delete(r.notes[userID], id)
	return nil
}
