package interfaces

import (
	"context"

	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

// TaxonomyRepository persists the per-user category set under a single
// well-known record. Get returns types.ErrRecordNotFound when the user has no
// persisted taxonomy yet; Put is a full overwrite.
type TaxonomyRepository interface {
	Get(ctx context.Context, userID types.UserID) ([]string, error)
	Put(ctx context.Context, userID types.UserID, categories []string) error
}
