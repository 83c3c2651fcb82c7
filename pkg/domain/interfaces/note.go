package interfaces

import (
	"context"

	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

// NoteRepository persists notes per user. Put is a full overwrite of the
// record under the note's ID; Get and Delete return types.ErrRecordNotFound
// when the note does not exist.
type NoteRepository interface {
	Put(ctx context.Context, userID types.UserID, note *model.Note) error
	Get(ctx context.Context, userID types.UserID, id types.NoteID) (*model.Note, error)
	List(ctx context.Context, userID types.UserID) ([]*model.Note, error)
	Delete(ctx context.Context, userID types.UserID, id types.NoteID) error
}
