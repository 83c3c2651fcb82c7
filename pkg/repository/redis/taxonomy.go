package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

type taxonomyRepository struct {
	client *redis.Client
}

func newTaxonomyRepository(client *redis.Client) *taxonomyRepository {
	return &taxonomyRepository{client: client}
}

func taxonomyKey(userID types.UserID) string {
	return fmt.Sprintf("taxonomy:%s", userID)
}

func (r *taxonomyRepository) Get(ctx context.Context, userID types.UserID) ([]string, error) {
	data, err := r.client.Get(ctx, taxonomyKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, goerr.Wrap(types.ErrRecordNotFound, "taxonomy not found", goerr.V("user", userID))
		}
		return nil, goerr.Wrap(err, "failed to get taxonomy", goerr.V("user", userID))
	}

	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal taxonomy", goerr.V("user", userID))
	}

	return categories, nil
}

func (r *taxonomyRepository) Put(ctx context.Context, userID types.UserID, categories []string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal taxonomy", goerr.V("user", userID))
	}

	if err := r.client.Set(ctx, taxonomyKey(userID), data, 0).Err(); err != nil {
		return goerr.Wrap(err, "failed to put taxonomy", goerr.V("user", userID))
	}

	return nil
}
