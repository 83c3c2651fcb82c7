package extract_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/service/extract"
)

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) Generate(ctx context.Context, instruction string, images []model.Image) (string, error) {
	s.prompt = instruction
	return s.response, s.err
}

func TestServiceExtract(t *testing.T) {
	client := &stubClient{
		response: `{"title": "t", "content": "c", "summary": "s", "categories": ["Work"]}`,
	}
	svc := extract.New(client)

	ex, err := svc.Extract(context.Background(), extract.Input{
		Content:           "note text",
		AllowedCategories: []string{"Work", "Ideas"},
	})
	gt.NoError(t, err).Required()

	gt.Value(t, ex.Title).Equal("t")
	gt.Bool(t, strings.Contains(client.prompt, `["Work","Ideas"]`)).True()
	gt.Bool(t, strings.Contains(client.prompt, "note text")).True()
}

func TestServiceExtractModelError(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	svc := extract.New(client)

	_, err := svc.Extract(context.Background(), extract.Input{Content: "x"})
	gt.Error(t, err)
}

func TestServiceExtractInvalidResponse(t *testing.T) {
	client := &stubClient{response: "not json at all"}
	svc := extract.New(client)

	_, err := svc.Extract(context.Background(), extract.Input{Content: "x"})
	gt.Bool(t, errors.Is(err, extract.ErrParseFailed)).True()
}
