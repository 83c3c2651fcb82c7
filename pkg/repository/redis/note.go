package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

type noteRepository struct {
	client *redis.Client
}

func newNoteRepository(client *redis.Client) *noteRepository {
	return &noteRepository{client: client}
}

func noteKey(userID types.UserID, id types.NoteID) string {
	return fmt.Sprintf("note:%s:%s", userID, id)
}

// noteIndexKey holds the set of note IDs per user so List does not need a
// full keyspace scan.
func noteIndexKey(userID types.UserID) string {
	return fmt.Sprintf("notes:%s", userID)
}

func (r *noteRepository) Put(ctx context.Context, userID types.UserID, note *model.Note) error {
	data, err := json.Marshal(note)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal note", goerr.V("id", note.ID))
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, noteKey(userID, note.ID), data, 0)
	pipe.SAdd(ctx, noteIndexKey(userID), string(note.ID))
	if _, err := pipe.Exec(ctx); err != nil {
		return goerr.Wrap(err, "failed to put note", goerr.V("id", note.ID))
	}

	return nil
}

func (r *noteRepository) Get(ctx context.Context, userID types.UserID, id types.NoteID) (*model.Note, error) {
	data, err := r.client.Get(ctx, noteKey(userID, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, goerr.Wrap(types.ErrRecordNotFound, "note not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get note", goerr.V("id", id))
	}

	var note model.Note
	if err := json.Unmarshal(data, &note); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal note", goerr.V("id", id))
	}

	return &note, nil
}

func (r *noteRepository) List(ctx context.Context, userID types.UserID) ([]*model.Note, error) {
	ids, err := r.client.SMembers(ctx, noteIndexKey(userID)).Result()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list note index", goerr.V("user", userID))
	}

	results := make([]*model.Note, len(ids))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for i, id := range ids {
		eg.Go(func() error {
			note, err := r.Get(egCtx, userID, types.NoteID(id))
			if err != nil {
				// Index entries may outlive their value under concurrent deletes.
				if errors.Is(err, types.ErrRecordNotFound) {
					return nil
				}
				return err
			}
			results[i] = note
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	notes := make([]*model.Note, 0, len(results))
	for _, note := range results {
		if note != nil {
			notes = append(notes, note)
		}
	}

	return notes, nil
}

func (r *noteRepository) Delete(ctx context.Context, userID types.UserID, id types.NoteID) error {
	removed, err := r.client.Del(ctx, noteKey(userID, id)).Result()
	if err != nil {
		return goerr.Wrap(err, "failed to delete note", goerr.V("id", id))
	}
	if removed == 0 {
		return goerr.Wrap(types.ErrRecordNotFound, "note not found", goerr.V("id", id))
	}

	if err := r.client.SRem(ctx, noteIndexKey(userID), string(id)).Err(); err != nil {
		return goerr.Wrap(err, "failed to remove note from index", goerr.V("id", id))
	}

	return nil
}
