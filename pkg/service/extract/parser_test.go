package extract_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/inkwell/pkg/service/extract"
)

func TestParseResponseDirect(t *testing.T) {
	raw := `{
		"title": "Grocery list",
		"content": "Milk, eggs, bread",
		"summary": "Things to buy",
		"categories": ["Tasks"]
	}`

	result, err := extract.ParseResponse(raw)
	gt.NoError(t, err).Required()

	gt.Value(t, result.Mode).Equal(extract.ParseModeDirect)
	gt.Value(t, result.Extraction.Title).Equal("Grocery list")
	gt.Array(t, result.Extraction.Categories).Equal([]string{"Tasks"})
}

func TestParseResponseRecoveredFromFence(t *testing.T) {
	raw := "Here is the extracted note:\n```json\n" +
		`{"title": "t", "content": "c", "summary": "s", "categories": ["Work"]}` +
		"\n```\nLet me know if you need anything else!"

	result, err := extract.ParseResponse(raw)
	gt.NoError(t, err).Required()

	gt.Value(t, result.Mode).Equal(extract.ParseModeRecovered)
	gt.Value(t, result.Extraction.Content).Equal("c")
}

func TestParseResponseFenceCaseInsensitive(t *testing.T) {
	raw := "```JSON\n" +
		`{"title": "t", "content": "c", "summary": "s", "categories": ["Work"]}` +
		"\n```"

	result, err := extract.ParseResponse(raw)
	gt.NoError(t, err).Required()
	gt.Value(t, result.Mode).Equal(extract.ParseModeRecovered)
}

func TestParseResponseProseFails(t *testing.T) {
	_, err := extract.ParseResponse("I could not read the image, sorry.")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, extract.ErrParseFailed)).True()
}

func TestParseResponseMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no summary", `{"title": "t", "content": "c", "categories": ["Work"]}`},
		{"no title", `{"content": "c", "summary": "s", "categories": ["Work"]}`},
		{"no categories", `{"title": "t", "content": "c", "summary": "s"}`},
		{"empty content", `{"title": "t", "content": "", "summary": "s", "categories": ["Work"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extract.ParseResponse(tt.raw)
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, extract.ErrMissingField)).True()
		})
	}
}

func TestParseResponseMissingFieldsInFence(t *testing.T) {
	raw := "```json\n" + `{"title": "t", "content": "c", "summary": "s"}` + "\n```"

	_, err := extract.ParseResponse(raw)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, extract.ErrMissingField)).True()
}
