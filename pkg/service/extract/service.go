package extract

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/utils/logging"
)

// Service turns one chunk of note material into a validated extraction
// result: build the prompt, invoke the model, parse and validate the
// response. It has no state beyond the model client.
type Service struct {
	client interfaces.ModelClient
}

func New(client interfaces.ModelClient) *Service {
	return &Service{client: client}
}

func (s *Service) Extract(ctx context.Context, input Input) (*model.Extraction, error) {
	prompt := BuildPrompt(input.Content, input.AllowedCategories)

	raw, err := s.client.Generate(ctx, prompt, input.Images)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content from model")
	}

	result, err := ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	if result.Mode == ParseModeRecovered {
		logging.From(ctx).Warn("model response was fenced despite instructions", "mode", result.Mode.String())
	}

	return result.Extraction, nil
}
