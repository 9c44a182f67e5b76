// Package insight is the seam between the domain and the hosted
// text-generation model. It formats prompts from domain snapshots, makes one
// bounded call with no retries, and normalizes every failure (transport,
// status, malformed JSON) into an "unavailable" result so a slow or broken
// model can never fail a view or touch the store.
package insight

import (
	"context"
	"errors"
)

// ErrUnavailable is the sentinel for any failed or unusable model response.
// It never crosses the gateway boundary raw; callers get a Result with
// Available=false instead.
var ErrUnavailable = errors.New("insight unavailable")

// Provider produces completion text for a prompt. Implementations must honor
// the context deadline and must not retry.
type Provider interface {
	// Generate returns the model's text for the prompt. wantJSON asks the
	// model to emit a bare JSON object.
	Generate(ctx context.Context, prompt string, wantJSON bool) (string, error)
}
