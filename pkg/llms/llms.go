// Package llms defines the provider-neutral chat types used by the
// orchestration loop: conversation messages, tool declarations, and the
// Model interface implemented by the Gemini client.
package llms

import (
	"context"
)

// ProviderType is the type of provider.
type ProviderType string

const (
	// ProviderGoogleAI is the type of provider.
	ProviderGoogleAI ProviderType = "GOOGLEAI"
)

// Model is an interface chat models implement.
type Model interface {
	// GetName returns the model name used for generation.
	GetName() string
	// GetProviderType returns the type of provider.
	GetProviderType() ProviderType
	// GenerateContent asks the model to generate content from a sequence of
	// messages. Messages are sent in order; the model's view of the
	// conversation is exactly the order given.
	GenerateContent(ctx context.Context, messages []Message, options ...CallOption) (*ContentResponse, error)
}
