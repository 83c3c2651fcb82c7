package model

import (
	"encoding/base64"

	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

// Default chunking policy. Two images per model call keeps each call's latency
// and payload under the upstream request ceiling regardless of how many pages
// a submission has.
const (
	DefaultMaxImagesPerChunk = 2
	DefaultMaxPayloadBytes   = 6 << 20
)

// Image is one attached image payload as received from the caller.
type Image struct {
	Data     []byte
	MimeType string
	Name     string
}

// encodedSize approximates the image's contribution to a serialized request
// body, where payloads travel base64-encoded.
func (i Image) encodedSize() int {
	return base64.StdEncoding.EncodedLen(len(i.Data))
}

// Chunk is one ordered slice of a multi-image submission, processed as a
// single model call. It is ephemeral: owned by the caller for the duration of
// one ingestion call and never persisted.
type Chunk struct {
	Images      []Image
	PartIndex   int
	TotalParts  int
	NoteID      types.NoteID // empty for part 0, set once part 0 allocates it
	ContextHint string
}

// PlanChunks splits an image sequence into ordered chunks of at most
// maxImagesPerChunk images, preserving the original order. A group also ends
// early when adding the next image would push its serialized size past
// maxPayloadBytes. A submission that fits both bounds stays a single chunk,
// which is semantically identical to chunk 0 of a multi-chunk plan.
func PlanChunks(images []Image, maxImagesPerChunk, maxPayloadBytes int) []Chunk {
	if len(images) == 0 {
		return nil
	}
	if maxImagesPerChunk < 1 {
		maxImagesPerChunk = DefaultMaxImagesPerChunk
	}
	if maxPayloadBytes < 1 {
		maxPayloadBytes = DefaultMaxPayloadBytes
	}

	var groups [][]Image
	var current []Image
	currentSize := 0
	for _, img := range images {
		overCount := len(current) >= maxImagesPerChunk
		overSize := len(current) > 0 && currentSize+img.encodedSize() > maxPayloadBytes
		if overCount || overSize {
			groups = append(groups, current)
			current = nil
			currentSize = 0
		}
		current = append(current, img)
		currentSize += img.encodedSize()
	}
	groups = append(groups, current)

	chunks := make([]Chunk, 0, len(groups))
	for i, g := range groups {
		chunks = append(chunks, Chunk{
			Images:     g,
			PartIndex:  i,
			TotalParts: len(groups),
		})
	}
	return chunks
}
