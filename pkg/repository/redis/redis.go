package redis

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
)

// Redis is a repository backend storing notes and taxonomy as JSON values.
// Useful when a managed Firestore instance is not available but a Redis one is.
type Redis struct {
	client   *redis.Client
	note     *noteRepository
	taxonomy *taxonomyRepository
}

var _ interfaces.Repository = &Redis{}

func New(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:                  addr,
		Password:              password,
		DB:                    db,
		ContextTimeoutEnabled: true,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", addr))
	}

	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client. Tests use this with miniredis.
func NewWithClient(client *redis.Client) *Redis {
	return &Redis{
		client:   client,
		note:     newNoteRepository(client),
		taxonomy: newTaxonomyRepository(client),
	}
}

func (r *Redis) Note() interfaces.NoteRepository {
	return r.note
}

func (r *Redis) Taxonomy() interfaces.TaxonomyRepository {
	return r.taxonomy
}

func (r *Redis) Close() error {
	return r.client.Close()
}
