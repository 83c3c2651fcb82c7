package model

import (
	"slices"
	"time"

	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

// Note is the persisted unit produced by merging one or more chunks of a
// submission. Title authority belongs to the first chunk: later chunks append
// to Content and Summary but never touch Title.
type Note struct {
	ID         types.NoteID `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Summary    string       `json:"summary"`
	Categories []string     `json:"categories"`

	// TotalParts is the chunk count declared by the submission that created
	// this note. AppliedParts records which part indexes have been folded in,
	// so that a resubmitted chunk does not double-append.
	TotalParts   int   `json:"totalParts"`
	AppliedParts []int `json:"appliedParts,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// NewNote builds a note from the first chunk's extraction result.
func NewNote(ex *Extraction, totalParts int) *Note {
	if totalParts < 1 {
		totalParts = 1
	}
	return &Note{
		ID:           types.NewNoteID(),
		Title:        ex.Title,
		Content:      ex.Content,
		Summary:      ex.Summary,
		Categories:   dedupeCategories(ex.Categories),
		TotalParts:   totalParts,
		AppliedParts: []int{0},
		CreatedAt:    time.Now().UTC(),
	}
}

// IsComplete reports whether every declared part has been applied. A note that
// is not complete is still readable and listable; it only indicates more
// chunks are expected.
func (n *Note) IsComplete() bool {
	return len(n.AppliedParts) >= n.TotalParts
}

// HasPart reports whether the given part index has already been applied.
func (n *Note) HasPart(partIndex int) bool {
	return slices.Contains(n.AppliedParts, partIndex)
}

// ApplyChunk folds a later chunk's extraction into the note with append
// semantics: content joined with a blank line, summary space-joined,
// categories unioned. Title is left untouched.
func (n *Note) ApplyChunk(partIndex int, ex *Extraction) {
	if ex.Content != "" {
		if n.Content != "" {
			n.Content += "\n\n" + ex.Content
		} else {
			n.Content = ex.Content
		}
	}
	if ex.Summary != "" {
		if n.Summary != "" {
			n.Summary += " " + ex.Summary
		} else {
			n.Summary = ex.Summary
		}
	}
	n.Categories = dedupeCategories(append(n.Categories, ex.Categories...))
	if !n.HasPart(partIndex) {
		n.AppliedParts = append(n.AppliedParts, partIndex)
		slices.Sort(n.AppliedParts)
	}
	n.UpdatedAt = time.Now().UTC()
}

// ReplaceExtraction overwrites the extracted fields with a fresh extraction
// result. Used by the edit path, which has replace semantics rather than the
// append semantics of ApplyChunk.
func (n *Note) ReplaceExtraction(ex *Extraction) {
	n.Title = ex.Title
	n.Content = ex.Content
	n.Summary = ex.Summary
	n.Categories = dedupeCategories(ex.Categories)
	n.UpdatedAt = time.Now().UTC()
}

// Touch marks the note as updated. Edit paths that change fields without
// going through ApplyChunk or ReplaceExtraction call this.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the note.
func (n *Note) Clone() *Note {
	copied := *n
	copied.Categories = slices.Clone(n.Categories)
	copied.AppliedParts = slices.Clone(n.AppliedParts)
	return &copied
}

// dedupeCategories removes duplicates preserving first-seen order.
func dedupeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	result := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		result = append(result, c)
	}
	return result
}
