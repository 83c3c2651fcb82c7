package interfaces

import (
	"context"

	"github.com/secmon-lab/inkwell/pkg/domain/model"
)

// ModelClient is the opaque model-invocation collaborator: a structured
// instruction plus zero or more attached images yields free-form response
// text. Text-only and image-only calls are both valid.
type ModelClient interface {
	Generate(ctx context.Context, instruction string, images []model.Image) (string, error)
}
