package ai

import (
	"context"
)

// ChunkFunc receives one text chunk as it arrives from the model.
// Returning an error aborts the stream.
type ChunkFunc func(chunk string) error

// Client is the interface to the external completion provider. The stream
// is finite and non-restartable; consuming it twice means two upstream calls.
type Client interface {
	// StreamCompletion sends a system + user prompt pair and forwards the
	// generated text to fn chunk by chunk. Cancelling ctx aborts the
	// upstream request.
	StreamCompletion(ctx context.Context, systemPrompt, userPrompt string, fn ChunkFunc) error
}
