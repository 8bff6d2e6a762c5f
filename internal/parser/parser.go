// Package parser drives one natural-language message through the generation
// capability and the completeness policy, always yielding a well-formed
// outcome. It is stateless per request: the anchor date is computed fresh
// each time, there is no shared cache, and concurrent use needs no
// coordination.
package parser

import (
	"context"
	"strings"
	"time"

	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/llm"
	"github.com/saicharanbm/finTrack/internal/logging"
	"github.com/saicharanbm/finTrack/internal/parsererror"
	"github.com/saicharanbm/finTrack/internal/policy"
	"github.com/saicharanbm/finTrack/internal/prompt"
	"github.com/saicharanbm/finTrack/internal/schema"
)

// Extraction favors reproducibility over variation.
const temperature = 0.1

const schemaName = "transaction_parse"

// Messages surfaced to callers for the failure kinds that never expose
// internal detail.
const (
	emptyInputMessage = "Message cannot be empty. Please describe the transaction, for example: 'spent 250 on lunch'."
	apologyMessage    = "Sorry, that message could not be understood. Please try rephrasing it."
)

// Parser is the end-to-end request handler for natural-language parsing.
// The generation capability is injected, never imported as a singleton.
type Parser struct {
	capability llm.Client
	log        logging.Logger
	now        func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the clock used to compute the anchor date. Tests use
// it to pin relative-date resolution.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New constructs a Parser around a generation capability.
func New(capability llm.Client, log logging.Logger, opts ...Option) *Parser {
	p := &Parser{
		capability: capability,
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse handles one user message and returns either a success outcome with
// candidate transactions or an incomplete outcome with an explanation.
// Faults from the capability and contract violations are logged with their
// distinct kinds but surfaced uniformly as an apology, so callers never see
// an unstructured error.
func (p *Parser) Parse(ctx context.Context, text string) policy.Outcome {
	if strings.TrimSpace(text) == "" {
		inputErr := &parsererror.InputError{Reason: "message is empty"}
		p.log.Debug("rejecting input before any external call",
			logging.Field{Key: logging.FieldOperation, Value: "parse"},
			logging.Field{Key: logging.FieldReason, Value: "input_empty"},
			logging.Field{Key: logging.FieldError, Value: inputErr.Error()})
		return policy.Incomplete(emptyInputMessage)
	}

	// One anchor per request so every relative date in the message resolves
	// consistently, even across a midnight boundary in a long-lived process.
	anchor := dateutils.Truncate(p.now())

	instruction, err := prompt.Build(anchor)
	if err != nil {
		p.log.Error("building instruction failed",
			logging.Field{Key: logging.FieldOperation, Value: "parse"},
			logging.Field{Key: logging.FieldError, Value: err.Error()})
		return policy.Incomplete(apologyMessage)
	}

	raw, err := p.capability.Complete(ctx, llm.Request{
		Instruction: instruction,
		Input:       text,
		Schema:      schema.ResponseSchema,
		SchemaName:  schemaName,
		Temperature: temperature,
	})
	if err != nil {
		p.log.Warn("generation capability failed",
			logging.Field{Key: logging.FieldOperation, Value: "parse"},
			logging.Field{Key: logging.FieldProvider, Value: p.capability.Provider()},
			logging.Field{Key: logging.FieldReason, Value: "transport_failure"},
			logging.Field{Key: logging.FieldError, Value: err.Error()})
		return policy.Incomplete(apologyMessage)
	}

	resp, err := schema.Decode(raw)
	if err == nil {
		err = resp.Validate()
	}
	if err != nil {
		violation := &parsererror.ContractViolationError{RawSnippet: parsererror.Snippet(raw), Err: err}
		p.log.Warn("model reply violated the output contract",
			logging.Field{Key: logging.FieldOperation, Value: "parse"},
			logging.Field{Key: logging.FieldProvider, Value: p.capability.Provider()},
			logging.Field{Key: logging.FieldReason, Value: "contract_violation"},
			logging.Field{Key: logging.FieldError, Value: violation.Error()})
		return policy.Incomplete(apologyMessage)
	}

	// A self-reported incomplete is the model telling us the input was
	// insufficient; its message passes through untouched.
	if resp.Type == schema.TypeIncomplete {
		p.log.Info("model reported incomplete input",
			logging.Field{Key: logging.FieldOperation, Value: "parse"},
			logging.Field{Key: logging.FieldReason, Value: "semantic_incomplete"})
		return policy.Incomplete(resp.Message)
	}

	outcome := policy.Evaluate(text, resp.Candidates(anchor), anchor)
	p.log.Info("parse completed",
		logging.Field{Key: logging.FieldOperation, Value: "parse"},
		logging.Field{Key: logging.FieldOutcome, Value: string(outcome.Status)},
		logging.Field{Key: logging.FieldCount, Value: len(outcome.Transactions)})
	return outcome
}
