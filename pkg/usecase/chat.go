package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

const chatSystemPrompt = "You are a helpful assistant for a note-taking app."

// ChatUseCase answers free-form questions grounded on the user's full note
// collection. Each question is a fresh single-turn session.
type ChatUseCase struct {
	repo interfaces.Repository
	llm  gollem.LLMClient
}

func (uc *ChatUseCase) Ask(ctx context.Context, userID types.UserID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", goerr.Wrap(ErrEmptyMessage, "empty chat message")
	}
	if uc.llm == nil {
		return "", goerr.Wrap(ErrNotConfigured, "chat model is not configured")
	}

	notes, err := uc.repo.Note().List(ctx, userID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to load notes for chat")
	}

	ssn, err := uc.llm.NewSession(ctx, gollem.WithSessionSystemPrompt(chatSystemPrompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create chat session")
	}

	resp, err := ssn.GenerateContent(ctx, gollem.Text(buildChatPrompt(notes, message)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate chat response")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("chat model returned no text")
	}

	return resp.Texts[0], nil
}

func buildChatPrompt(notes []*model.Note, message string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are an assistant with access to the user's notes. Today is %s.\n",
		time.Now().Format(time.DateOnly))
	sb.WriteString("Here are all the user's notes:\n")
	for _, n := range notes {
		title := n.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&sb, "Title: %s\n", title)
		fmt.Fprintf(&sb, "Content: %s\n", n.Content)
		fmt.Fprintf(&sb, "Summary: %s\n", n.Summary)
		fmt.Fprintf(&sb, "Categories: %s\n", strings.Join(n.Categories, ", "))
		fmt.Fprintf(&sb, "Created: %s\n", n.CreatedAt.Format(time.RFC3339))
		updated := "unknown"
		if !n.UpdatedAt.IsZero() {
			updated = n.UpdatedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(&sb, "Updated: %s\n", updated)
		sb.WriteString("---\n")
	}

	fmt.Fprintf(&sb, "\nThe user says: %q\n\n", message)
	sb.WriteString("Answer as helpfully as possible, using the notes as context.")

	return sb.String()
}
