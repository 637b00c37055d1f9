package repositories

import (
	"context"
	"errors"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
)

// ErrService marks a gateway transport or quota failure. The provider's own
// message is surfaced to the caller unchanged; calls are never retried.
var ErrService = errors.New("language model service failure")

// LanguageModelGateway is the external language-model calling capability.
// Invoke receives the full accumulated history in call order plus the new
// turn, and returns the model's text reply.
type LanguageModelGateway interface {
	Invoke(ctx context.Context, history []*entities.Turn, turn *entities.Turn) (string, error)

	// ProviderName returns a short provider label (e.g. "Gemini", "OpenAI").
	ProviderName() string

	Close() error
}
