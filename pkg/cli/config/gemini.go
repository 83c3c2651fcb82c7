package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
	"github.com/secmon-lab/inkwell/pkg/service/gemini"
	"github.com/urfave/cli/v3"
)

// Gemini holds configuration for the Gemini extraction client
type Gemini struct {
	apiKey string
	model  string
}

// Flags returns CLI flags for Gemini configuration
func (g *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Category:    "Gemini",
			Usage:       "Gemini API key for note extraction",
			Sources:     cli.EnvVars("INKWELL_GEMINI_API_KEY"),
			Destination: &g.apiKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Category:    "Gemini",
			Usage:       "Gemini model for note extraction",
			Value:       gemini.DefaultModel,
			Sources:     cli.EnvVars("INKWELL_GEMINI_MODEL"),
			Destination: &g.model,
		},
	}
}

// LogValue returns log attributes for the Gemini configuration
func (g *Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("api_key_set", g.apiKey != ""),
		slog.String("model", g.model),
	)
}

// Configure creates a new Gemini extraction client from the configured flags.
// Returns nil if no API key is configured (note ingestion will be disabled).
func (g *Gemini) Configure(ctx context.Context) (interfaces.ModelClient, error) {
	if g.apiKey == "" {
		return nil, nil
	}

	client, err := gemini.New(ctx, g.apiKey, gemini.WithModel(g.model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client")
	}

	return client, nil
}
