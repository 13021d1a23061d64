package core

import "context"

// Payload is the structured value exchanged with workers. It is the decoded
// form of the JSON document a remote function receives and returns.
type Payload map[string]any

// ErrorPayload builds the conventional error object a failed invocation
// yields. Callers detect failure by the presence of the "error" key, never
// by a Go error crossing the invoker boundary.
func ErrorPayload(msg string) Payload {
	return Payload{"error": msg}
}

// ErrorMessage returns the error message carried by the payload, if any.
// The second return reports whether the payload represents a failure.
func (p Payload) ErrorMessage() (string, bool) {
	v, ok := p["error"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}

// IsError reports whether the payload carries the "error" key.
func (p Payload) IsError() bool {
	_, ok := p.ErrorMessage()
	return ok
}

// String returns the string value stored under key, or "" when absent or of
// a different type.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Clone returns a shallow copy so callers can mutate results without
// affecting the original payload.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	cp := make(Payload, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}

// Handle is the opaque result of invoking a worker with an empty
// initialization payload. The orchestrator treats it purely as an identifier
// to pass into the task registry; it is created per run and discarded after.
type Handle Payload

// Worker is the single-method contract every pipeline stage satisfies. A
// Worker is a stateless remote function: it receives a structured payload
// and returns a structured payload. Implementations must be safe for
// concurrent use and should respect ctx cancellation on blocking work.
//
// The business logic behind a worker (receipt parsing, expiration
// estimation, demand forecasting, recipe recommendation) is owned elsewhere;
// this module only defines the envelope that invokes it reliably.
type Worker interface {
	// Name returns the unique worker identifier used for routing.
	Name() string

	// Description returns a human-readable summary of the worker's purpose.
	Description() string

	// Run executes the worker. A returned error is translated by the
	// invoker into an error payload; it never reaches the orchestrator
	// as a Go error.
	Run(ctx context.Context, input Payload) (Payload, error)
}
