package gemini

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"google.golang.org/genai"
)

// DefaultModel is the multimodal Gemini model used for note extraction.
const DefaultModel = "gemini-2.0-flash"

// Client implements the model-invocation contract over the Gemini API.
// Images are attached as inline parts of a single user turn.
type Client struct {
	client    *genai.Client
	modelName string
}

var _ interfaces.ModelClient = &Client{}

type Option func(*Client)

func WithModel(name string) Option {
	return func(c *Client) {
		c.modelName = name
	}
}

func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.New("gemini API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gemini client")
	}

	c := &Client{
		client:    gc,
		modelName: DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Generate(ctx context.Context, instruction string, images []model.Image) (string, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(instruction))
	for _, img := range images {
		mimeType := img.MimeType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		parts = append(parts, genai.NewPartFromBytes(img.Data, mimeType))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content", goerr.V("model", c.modelName))
	}

	text := resp.Text()
	if text == "" {
		return "", goerr.New("empty response from model", goerr.V("model", c.modelName))
	}

	return text, nil
}
