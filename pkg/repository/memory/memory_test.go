package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"github.com/secmon-lab/inkwell/pkg/repository/memory"
)

func newNote(title string) *model.Note {
	return model.NewNote(&model.Extraction{
		Title:      title,
		Content:    "content of " + title,
		Summary:    "summary",
		Categories: []string{"Work"},
	}, 1)
}

func TestNoteCRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	note := newNote("first")
	gt.NoError(t, repo.Note().Put(ctx, "alice", note)).Required()

	got, err := repo.Note().Get(ctx, "alice", note.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Title).Equal("first")

	// Stored copy is isolated from later caller mutation.
	note.Title = "mutated"
	got, err = repo.Note().Get(ctx, "alice", note.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Title).Equal("first")

	gt.NoError(t, repo.Note().Delete(ctx, "alice", note.ID)).Required()

	_, err = repo.Note().Get(ctx, "alice", note.ID)
	gt.Bool(t, errors.Is(err, types.ErrRecordNotFound)).True()
}

func TestNoteList(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.Note().Put(ctx, "alice", newNote("a"))).Required()
	gt.NoError(t, repo.Note().Put(ctx, "alice", newNote("b"))).Required()
	gt.NoError(t, repo.Note().Put(ctx, "bob", newNote("c"))).Required()

	notes, err := repo.Note().List(ctx, "alice")
	gt.NoError(t, err).Required()
	gt.Array(t, notes).Length(2)

	notes, err = repo.Note().List(ctx, "carol")
	gt.NoError(t, err).Required()
	gt.Array(t, notes).Length(0)
}

func TestNotePutOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	note := newNote("v1")
	gt.NoError(t, repo.Note().Put(ctx, "alice", note)).Required()

	updated := note.Clone()
	updated.Title = "v2"
	gt.NoError(t, repo.Note().Put(ctx, "alice", updated)).Required()

	got, err := repo.Note().Get(ctx, "alice", note.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Title).Equal("v2")

	notes, err := repo.Note().List(ctx, "alice")
	gt.NoError(t, err).Required()
	gt.Array(t, notes).Length(1)
}

func TestDeleteMissingNote(t *testing.T) {
	repo := memory.New()

	err := repo.Note().Delete(context.Background(), "alice", "no-such-id")
	gt.Bool(t, errors.Is(err, types.ErrRecordNotFound)).True()
}

func TestTaxonomy(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.Taxonomy().Get(ctx, "alice")
	gt.Bool(t, errors.Is(err, types.ErrRecordNotFound)).True()

	gt.NoError(t, repo.Taxonomy().Put(ctx, "alice", []string{"Work", "Ideas"})).Required()

	got, err := repo.Taxonomy().Get(ctx, "alice")
	gt.NoError(t, err).Required()
	gt.Array(t, got).Equal([]string{"Work", "Ideas"})

	// Per-user isolation
	_, err = repo.Taxonomy().Get(ctx, "bob")
	gt.Bool(t, errors.Is(err, types.ErrRecordNotFound)).True()
}
