package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
)

func TestNewNote(t *testing.T) {
	ex := &model.Extraction{
		Title:      "Thermodynamics",
		Content:    "Heat flows from hot to cold.",
		Summary:    "Second law basics.",
		Categories: []string{"Science"},
	}

	note := model.NewNote(ex, 3)

	gt.String(t, string(note.ID)).NotEqual("")
	gt.Value(t, note.Title).Equal("Thermodynamics")
	gt.Value(t, note.TotalParts).Equal(3)
	gt.Array(t, note.AppliedParts).Equal([]int{0})
	gt.Bool(t, note.IsComplete()).False()
	gt.Bool(t, note.HasPart(0)).True()
	gt.Bool(t, note.HasPart(1)).False()
}

func TestNoteApplyChunk(t *testing.T) {
	note := model.NewNote(&model.Extraction{
		Title:      "Lecture notes",
		Content:    "Part one text.",
		Summary:    "Covers the intro.",
		Categories: []string{"Science", "Ideas"},
	}, 2)

	note.ApplyChunk(1, &model.Extraction{
		Title:      "Ignored title",
		Content:    "Part two text.",
		Summary:    "Covers the details.",
		Categories: []string{"Ideas", "Math"},
	})

	// Title keeps the first chunk's value, the rest accumulates.
	gt.Value(t, note.Title).Equal("Lecture notes")
	gt.Value(t, note.Content).Equal("Part one text.\n\nPart two text.")
	gt.Value(t, note.Summary).Equal("Covers the intro. Covers the details.")
	gt.Array(t, note.Categories).Equal([]string{"Science", "Ideas", "Math"})
	gt.Array(t, note.AppliedParts).Equal([]int{0, 1})
	gt.Bool(t, note.IsComplete()).True()
}

func TestNoteApplyChunkOutOfOrderIndex(t *testing.T) {
	note := model.NewNote(&model.Extraction{
		Title:      "t",
		Content:    "a",
		Summary:    "s1",
		Categories: []string{"Work"},
	}, 3)

	note.ApplyChunk(2, &model.Extraction{Content: "c", Summary: "s3", Categories: []string{"Work"}})
	note.ApplyChunk(1, &model.Extraction{Content: "b", Summary: "s2", Categories: []string{"Work"}})

	gt.Array(t, note.AppliedParts).Equal([]int{0, 1, 2})
	gt.Bool(t, note.IsComplete()).True()
	// Merge order is arrival order, not part order.
	gt.Value(t, note.Content).Equal("a\n\nc\n\nb")
}

func TestNoteReplaceExtraction(t *testing.T) {
	note := model.NewNote(&model.Extraction{
		Title:      "Old",
		Content:    "Old content.",
		Summary:    "Old summary.",
		Categories: []string{"Personal"},
	}, 1)

	note.ReplaceExtraction(&model.Extraction{
		Title:      "New",
		Content:    "New content.",
		Summary:    "New summary.",
		Categories: []string{"Work"},
	})

	gt.Value(t, note.Title).Equal("New")
	gt.Value(t, note.Content).Equal("New content.")
	gt.Value(t, note.Summary).Equal("New summary.")
	gt.Array(t, note.Categories).Equal([]string{"Work"})
}

func TestNoteTouch(t *testing.T) {
	note := model.NewNote(&model.Extraction{
		Title:      "t",
		Content:    "c",
		Summary:    "s",
		Categories: []string{"Work"},
	}, 1)

	gt.Bool(t, note.UpdatedAt.IsZero()).True()

	note.Touch()
	gt.Bool(t, note.UpdatedAt.IsZero()).False()
}

func TestNoteClone(t *testing.T) {
	note := model.NewNote(&model.Extraction{
		Title:      "t",
		Content:    "c",
		Summary:    "s",
		Categories: []string{"Ideas"},
	}, 2)

	clone := note.Clone()
	clone.Categories[0] = "Changed"
	clone.AppliedParts[0] = 99

	gt.Value(t, note.Categories[0]).Equal("Ideas")
	gt.Value(t, note.AppliedParts[0]).Equal(0)
}

func TestMergeCategories(t *testing.T) {
	merged := model.MergeCategories(
		[]string{"Work", "Ideas"},
		[]string{"Ideas", "Astronomy", "Work"},
	)

	gt.Array(t, merged).Equal([]string{"Astronomy", "Ideas", "Work"})

	// Merging the result again changes nothing.
	gt.Array(t, model.MergeCategories(merged, []string{"Astronomy"})).Equal(merged)
}
