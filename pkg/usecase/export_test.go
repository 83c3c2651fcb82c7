package usecase

import "github.com/secmon-lab/inkwell/pkg/domain/model"

// BuildChatPromptForTest exposes the chat context prompt builder for testing
func BuildChatPromptForTest(notes []*model.Note, message string) string {
	return buildChatPrompt(notes, message)
}
