package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/urfave/cli/v3"
)

// Chat holds configuration for the chat assistant LLM client
type Chat struct {
	projectID string
	location  string
}

// Flags returns CLI flags for chat assistant configuration
func (c *Chat) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "chat-gemini-project",
			Category:    "Chat",
			Usage:       "Google Cloud project ID for the chat assistant",
			Sources:     cli.EnvVars("INKWELL_CHAT_GEMINI_PROJECT"),
			Destination: &c.projectID,
		},
		&cli.StringFlag{
			Name:        "chat-gemini-location",
			Category:    "Chat",
			Usage:       "Google Cloud location for the chat assistant",
			Value:       "us-central1",
			Sources:     cli.EnvVars("INKWELL_CHAT_GEMINI_LOCATION"),
			Destination: &c.location,
		},
	}
}

// LogValue returns log attributes for the chat configuration
func (c *Chat) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", c.projectID),
		slog.String("location", c.location),
	)
}

// Configure creates a new LLM client for the chat assistant.
// Returns nil if projectID is not configured (chat will be disabled).
func (c *Chat) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if c.projectID == "" {
		return nil, nil
	}

	client, err := gemini.New(ctx, c.projectID, c.location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create chat LLM client")
	}

	return client, nil
}
