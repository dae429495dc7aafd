package services

import (
	"context"
	"errors"

	"github.com/example/wanderlust/internal/models"
)

// Configuration errors. They are detected before any network call and never retried.
var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not configured; set it in the server environment")
	ErrInvalidAPIKey = errors.New("the configured GEMINI_API_KEY was rejected; check the server environment")
)

// ErrEmptyPrompt is returned when there is nothing to send.
var ErrEmptyPrompt = errors.New("prompt is empty")

// GenerateRequest is one call to a text generation backend.
type GenerateRequest struct {
	SystemInstruction string
	History           []models.ChatMessage
	Prompt            string
}

// GenerateResult is the text of a completion plus its grounding citations.
type GenerateResult struct {
	Text    string
	Sources []models.Source
}

// Generator produces grounded text completions. Failures are *retry.RemoteError
// values or one of the configuration errors above.
type Generator interface {
	// Configured reports whether a credential is available.
	Configured() bool
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// IsConfigError reports whether err means the AI credential is missing or invalid.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingAPIKey) || errors.Is(err, ErrInvalidAPIKey)
}
