// Package llm abstracts the external generation capability behind a small
// interface so the parsing core can be constructed with a fake in tests and
// is never coupled to one provider's SDK.
package llm

import (
	"context"
	"encoding/json"
)

// Request carries everything one structured completion needs: the system
// instruction, the user text, and the strict output schema the reply must
// satisfy. Temperature is kept low because parsing is an extraction task,
// not open generation.
type Request struct {
	Instruction string
	Input       string
	Schema      json.RawMessage
	SchemaName  string
	Temperature float32
}

// Client is the generation capability. Complete performs exactly one
// completion call and returns the raw reply text; it never retries.
type Client interface {
	// Complete sends one request and returns the model's raw reply.
	Complete(ctx context.Context, req Request) (string, error)

	// Provider names the backing service for logging.
	Provider() string
}
