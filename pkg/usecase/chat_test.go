package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/repository/memory"
	"github.com/secmon-lab/inkwell/pkg/usecase"
)

func TestChatEmptyMessage(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)

	_, err := uc.Chat.Ask(context.Background(), "alice", "  ")
	gt.Bool(t, errors.Is(err, usecase.ErrEmptyMessage)).True()
}

func TestChatNotConfigured(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)

	_, err := uc.Chat.Ask(context.Background(), "alice", "what did I write yesterday?")
	gt.Bool(t, errors.Is(err, usecase.ErrNotConfigured)).True()
}

func TestChatPromptTimestamps(t *testing.T) {
	fresh := model.NewNote(&model.Extraction{
		Title:      "Never edited",
		Content:    "c",
		Summary:    "s",
		Categories: []string{"Work"},
	}, 1)

	edited := fresh.Clone()
	edited.Title = "Edited"
	edited.Touch()

	prompt := usecase.BuildChatPromptForTest([]*model.Note{fresh, edited}, "hi")

	// A never-edited note has no update date to offer the model.
	gt.Bool(t, strings.Contains(prompt, "Updated: unknown")).True()
	gt.Bool(t, strings.Contains(prompt, "Updated: "+edited.UpdatedAt.Format(time.RFC3339))).True()
	gt.Bool(t, strings.Contains(prompt, "Updated: 0001-01-01")).False()
}
