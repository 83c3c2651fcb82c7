package extract

import (
	"github.com/secmon-lab/inkwell/pkg/domain/model"
)

// Input represents one chunk's worth of material for extraction.
type Input struct {
	// Content is the raw note text, or a short descriptive instruction when
	// the actual content arrives as attached images.
	Content string
	Images  []model.Image

	// AllowedCategories biases the model toward reusing the user's existing
	// taxonomy. It is advisory: the model may still fall back to
	// "Miscellaneous" or invent a new name.
	AllowedCategories []string
}

// ParseMode tags which stage of the parser produced the result.
type ParseMode int

const (
	// ParseModeDirect means the whole response decoded as a JSON object.
	ParseModeDirect ParseMode = iota
	// ParseModeRecovered means the JSON was pulled out of a markdown code
	// fence the model added despite instructions.
	ParseModeRecovered
)

func (m ParseMode) String() string {
	switch m {
	case ParseModeDirect:
		return "direct"
	case ParseModeRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// ParseResult is a successfully decoded and tagged model response.
type ParseResult struct {
	Mode       ParseMode
	Extraction *model.Extraction
}
