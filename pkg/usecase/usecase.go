package usecase

import (
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/service/extract"
	"github.com/secmon-lab/inkwell/pkg/service/taxonomy"
)

type UseCases struct {
	repo interfaces.Repository

	modelClient       interfaces.ModelClient
	chatClient        gollem.LLMClient
	taxonomyDefaults  []string
	maxImagesPerChunk int
	maxPayloadBytes   int

	Note *NoteUseCase
	Chat *ChatUseCase
}

type Option func(*UseCases)

// WithModelClient sets the extraction model client. Without it, note
// ingestion is disabled (CRUD on existing notes still works).
func WithModelClient(client interfaces.ModelClient) Option {
	return func(uc *UseCases) {
		uc.modelClient = client
	}
}

// WithChatClient enables the chat assistant over the user's notes.
func WithChatClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.chatClient = client
	}
}

// WithTaxonomyDefaults overrides the built-in default category set.
func WithTaxonomyDefaults(categories []string) Option {
	return func(uc *UseCases) {
		uc.taxonomyDefaults = categories
	}
}

// WithChunkPolicy overrides the submission splitting bounds.
func WithChunkPolicy(maxImagesPerChunk, maxPayloadBytes int) Option {
	return func(uc *UseCases) {
		uc.maxImagesPerChunk = maxImagesPerChunk
		uc.maxPayloadBytes = maxPayloadBytes
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:              repo,
		maxImagesPerChunk: model.DefaultMaxImagesPerChunk,
		maxPayloadBytes:   model.DefaultMaxPayloadBytes,
	}

	for _, opt := range opts {
		opt(uc)
	}

	taxonomySvc := taxonomy.New(repo.Taxonomy(), uc.taxonomyDefaults)

	var extractor *extract.Service
	if uc.modelClient != nil {
		extractor = extract.New(uc.modelClient)
	}

	uc.Note = &NoteUseCase{
		repo:              repo,
		extractor:         extractor,
		taxonomy:          taxonomySvc,
		maxImagesPerChunk: uc.maxImagesPerChunk,
		maxPayloadBytes:   uc.maxPayloadBytes,
	}
	uc.Chat = &ChatUseCase{
		repo: repo,
		llm:  uc.chatClient,
	}

	return uc
}
