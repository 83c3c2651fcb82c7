package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

type taxonomyRepository struct {
	mu         sync.RWMutex
	categories map[types.UserID][]string
}

func newTaxonomyRepository() *taxonomyRepository {
	return &taxonomyRepository{
		categories: make(map[types.UserID][]string),
	}
}

func (r *taxonomyRepository) Get(ctx context.Context, userID types.UserID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories, exists := r.categories[userID]
	if !exists {
		return nil, goerr.Wrap(types.ErrRecordNotFound, "taxonomy not found", goerr.V("user", userID))
	}

	return slices.Clone(categories), nil
}

func (r *taxonomyRepository) Put(ctx context.Context, userID types.UserID, categories []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[userID] = slices.Clone(categories)
	return nil
}
