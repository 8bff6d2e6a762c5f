// Package parsererror defines the error taxonomy of the parsing core.
// The orchestrator converts all of these into a well-formed outcome before
// they reach a caller, but keeps the kinds distinct for logging so the
// reliability of the generation capability stays observable.
package parsererror

import "fmt"

// InputError reports user input rejected before any external call.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// ContractViolationError reports a model reply that failed the schema
// contract. This signals the generation capability misbehaved, which is a
// different failure from the user's input being insufficient.
type ContractViolationError struct {
	RawSnippet string
	Err        error
}

func (e *ContractViolationError) Error() string {
	if e.RawSnippet != "" {
		return fmt.Sprintf("model reply violated the output contract: %v. Reply snippet: '%s'", e.Err, e.RawSnippet)
	}
	return fmt.Sprintf("model reply violated the output contract: %v", e.Err)
}

func (e *ContractViolationError) Unwrap() error {
	return e.Err
}

// TransportError reports the generation capability being unreachable or
// returning a fault. Retrying is the transport collaborator's decision,
// never the parsing core's.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation capability (%s) failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Snippet truncates raw model output for inclusion in error messages.
func Snippet(raw string) string {
	const max = 120
	if len(raw) <= max {
		return raw
	}
	return raw[:max] + "..."
}
