package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"github.com/secmon-lab/inkwell/pkg/service/extract"
	"github.com/secmon-lab/inkwell/pkg/service/taxonomy"
	"github.com/secmon-lab/inkwell/pkg/utils/async"
	"github.com/secmon-lab/inkwell/pkg/utils/logging"
)

// NoteUseCase drives note construction: chunk planning, sequential dispatch,
// per-chunk extraction and the merge into the persisted note.
type NoteUseCase struct {
	repo      interfaces.Repository
	extractor *extract.Service
	taxonomy  *taxonomy.Service

	maxImagesPerChunk int
	maxPayloadBytes   int
}

// CreateFromText ingests a plain text note in a single model call.
func (uc *NoteUseCase) CreateFromText(ctx context.Context, userID types.UserID, text string) (*model.Note, error) {
	if text == "" {
		return nil, goerr.Wrap(ErrEmptyNote, "empty text submission")
	}
	if uc.extractor == nil {
		return nil, goerr.Wrap(ErrNotConfigured, "extraction model is not configured")
	}

	ex, err := uc.extractChunk(ctx, userID, text, nil)
	if err != nil {
		return nil, err
	}

	note := model.NewNote(ex, 1)
	if err := uc.repo.Note().Put(ctx, userID, note); err != nil {
		return nil, goerr.Wrap(err, "failed to persist note")
	}

	uc.mergeTaxonomyAsync(ctx, userID, ex.Categories)
	return note, nil
}

// IngestImages ingests a submission of one or more images. Oversized
// submissions are split into ordered chunks, dispatched strictly one at a
// time: chunk 0 allocates the note ID every later chunk references, and the
// merge is not commutative. On a chunk failure the remaining plan is
// abandoned and the note stays partial; the error names the failed part so
// the caller can resubmit it via AppendChunk.
func (uc *NoteUseCase) IngestImages(ctx context.Context, userID types.UserID, images []model.Image, contextHint string) (*model.Note, error) {
	if len(images) == 0 {
		return nil, goerr.Wrap(ErrEmptyNote, "empty image submission")
	}
	if uc.extractor == nil {
		return nil, goerr.Wrap(ErrNotConfigured, "extraction model is not configured")
	}

	chunks := model.PlanChunks(images, uc.maxImagesPerChunk, uc.maxPayloadBytes)
	logging.From(ctx).Info("planned note ingestion",
		"user", userID, "images", len(images), "chunks", len(chunks))

	note, err := uc.createFromChunk(ctx, userID, chunks[0], contextHint)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to process first chunk")
	}

	for _, chunk := range chunks[1:] {
		chunk.NoteID = note.ID
		chunk.ContextHint = contextHint

		note, err = uc.AppendChunk(ctx, userID, chunk)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to process chunk",
				goerr.V(NoteIDKey, chunk.NoteID), goerr.V(PartIndexKey, chunk.PartIndex))
		}
	}

	return note, nil
}

// createFromChunk runs chunk 0: extraction against a taxonomy snapshot taken
// before this chunk's categories are folded in, then creation of the note
// record that later chunks will merge into.
func (uc *NoteUseCase) createFromChunk(ctx context.Context, userID types.UserID, chunk model.Chunk, contextHint string) (*model.Note, error) {
	content := firstChunkInstruction(chunk)
	if contextHint != "" {
		content += "\n" + contextHint
	}

	ex, err := uc.extractChunk(ctx, userID, content, chunk.Images)
	if err != nil {
		return nil, err
	}

	note := model.NewNote(ex, chunk.TotalParts)
	if err := uc.repo.Note().Put(ctx, userID, note); err != nil {
		return nil, goerr.Wrap(err, "failed to persist note")
	}

	uc.mergeTaxonomyAsync(ctx, userID, ex.Categories)
	return note, nil
}

// AppendChunk merges one later chunk into an existing note with append
// semantics. Re-appending an already applied part index is a no-op returning
// the current note, so a client retry after a dropped connection cannot
// double-append.
func (uc *NoteUseCase) AppendChunk(ctx context.Context, userID types.UserID, chunk model.Chunk) (*model.Note, error) {
	if chunk.NoteID == "" {
		return nil, goerr.Wrap(ErrMissingNoteID, "append chunk without note id")
	}
	if len(chunk.Images) == 0 {
		return nil, goerr.Wrap(ErrEmptyNote, "append chunk without images")
	}
	if uc.extractor == nil {
		return nil, goerr.Wrap(ErrNotConfigured, "extraction model is not configured")
	}

	note, err := uc.getNote(ctx, userID, chunk.NoteID)
	if err != nil {
		return nil, err
	}

	if note.HasPart(chunk.PartIndex) {
		logging.From(ctx).Warn("chunk already applied, skipping",
			"note_id", note.ID, "part_index", chunk.PartIndex)
		return note, nil
	}

	content := appendChunkInstruction(chunk)
	if chunk.ContextHint != "" {
		content += "\n" + chunk.ContextHint
	}

	ex, err := uc.extractChunk(ctx, userID, content, chunk.Images)
	if err != nil {
		return nil, err
	}

	note.ApplyChunk(chunk.PartIndex, ex)
	if err := uc.repo.Note().Put(ctx, userID, note); err != nil {
		return nil, goerr.Wrap(err, "failed to persist merged note", goerr.V(NoteIDKey, note.ID))
	}

	uc.mergeTaxonomyAsync(ctx, userID, ex.Categories)
	return note, nil
}

// EditInput carries the fields of an out-of-band note edit. Nil pointers
// leave the corresponding field untouched. When Images are supplied they are
// run through the same extraction path and the result replaces the extracted
// fields wholesale: the edit path has replace semantics, unlike the append
// path's accumulate semantics.
type EditInput struct {
	Title      *string
	Content    *string
	Summary    *string
	Categories []string
	Images     []model.Image
}

// Edit overwrites fields of an existing note.
func (uc *NoteUseCase) Edit(ctx context.Context, userID types.UserID, id types.NoteID, input EditInput) (*model.Note, error) {
	note, err := uc.getNote(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if len(input.Images) > 0 {
		if uc.extractor == nil {
			return nil, goerr.Wrap(ErrNotConfigured, "extraction model is not configured")
		}
		ex, err := uc.extractChunk(ctx, userID, "Image content below:", input.Images)
		if err != nil {
			return nil, err
		}
		note.ReplaceExtraction(ex)
		uc.mergeTaxonomyAsync(ctx, userID, ex.Categories)
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Summary != nil {
		note.Summary = *input.Summary
	}
	if input.Categories != nil {
		note.Categories = slices.Clone(input.Categories)
		uc.mergeTaxonomyAsync(ctx, userID, input.Categories)
	}
	note.Touch()

	if err := uc.repo.Note().Put(ctx, userID, note); err != nil {
		return nil, goerr.Wrap(err, "failed to persist edited note", goerr.V(NoteIDKey, id))
	}

	return note, nil
}

// Get returns one note by ID.
func (uc *NoteUseCase) Get(ctx context.Context, userID types.UserID, id types.NoteID) (*model.Note, error) {
	return uc.getNote(ctx, userID, id)
}

// List returns the user's notes, newest first.
func (uc *NoteUseCase) List(ctx context.Context, userID types.UserID) ([]*model.Note, error) {
	notes, err := uc.repo.Note().List(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notes")
	}

	slices.SortFunc(notes, func(a, b *model.Note) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return notes, nil
}

// Delete removes a note.
func (uc *NoteUseCase) Delete(ctx context.Context, userID types.UserID, id types.NoteID) error {
	if err := uc.repo.Note().Delete(ctx, userID, id); err != nil {
		if errors.Is(err, types.ErrRecordNotFound) {
			return goerr.Wrap(ErrNoteNotFound, "cannot delete", goerr.V(NoteIDKey, id))
		}
		return goerr.Wrap(err, "failed to delete note", goerr.V(NoteIDKey, id))
	}
	return nil
}

// Categories returns the user's current taxonomy.
func (uc *NoteUseCase) Categories(ctx context.Context, userID types.UserID) []string {
	return uc.taxonomy.Read(ctx, userID)
}

func (uc *NoteUseCase) getNote(ctx context.Context, userID types.UserID, id types.NoteID) (*model.Note, error) {
	note, err := uc.repo.Note().Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, types.ErrRecordNotFound) {
			return nil, goerr.Wrap(ErrNoteNotFound, "note lookup failed", goerr.V(NoteIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get note", goerr.V(NoteIDKey, id))
	}
	return note, nil
}

// extractChunk snapshots the taxonomy and runs one extraction call.
func (uc *NoteUseCase) extractChunk(ctx context.Context, userID types.UserID, content string, images []model.Image) (*model.Extraction, error) {
	allowed := uc.taxonomy.Read(ctx, userID)
	return uc.extractor.Extract(ctx, extract.Input{
		Content:           content,
		Images:            images,
		AllowedCategories: allowed,
	})
}

// mergeTaxonomyAsync folds newly extracted categories into the shared
// taxonomy off the request path. The merge may race with another chunk's
// merge for the same user and lose entries; the note's own categories are
// already persisted, so the race never loses note data and never blocks or
// fails ingestion.
func (uc *NoteUseCase) mergeTaxonomyAsync(ctx context.Context, userID types.UserID, categories []string) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.taxonomy.Merge(ctx, userID, categories)
	})
}

func firstChunkInstruction(chunk model.Chunk) string {
	if chunk.TotalParts > 1 {
		return fmt.Sprintf("Combine content from all images below (part 1 of %d):", chunk.TotalParts)
	}
	if len(chunk.Images) > 1 {
		return "Combine content from all images below:"
	}
	return "Image content below:"
}

func appendChunkInstruction(chunk model.Chunk) string {
	return fmt.Sprintf("Additional content from images, part %d of %d:", chunk.PartIndex+1, chunk.TotalParts)
}
