// Package model defines the minimal reasoning interface the grocery workers
// use for their out-of-scope business logic (receipt parsing, expiration
// estimation, recipe recommendation). Workers only need one-shot
// completions, so the interface is synchronous and non-streaming; provider
// adapters live in the openai and anthropic subpackages.
package model

import "context"

// Request is a normalized one-shot completion request.
type Request struct {
	// Instructions prime the model with the worker's role, goal and
	// backstory.
	Instructions string `json:"instructions"`
	// Input is the task-specific prompt.
	Input string `json:"input"`
}

// Response is the completed model output.
type Response struct {
	Text string `json:"text"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the interface workers drive generation through.
type Model interface {
	// Complete performs a single blocking completion.
	Complete(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// Mock is a lightweight in-memory Model for tests and examples. It records
// the last request and answers with a fixed response or error.
type Mock struct {
	Response    string
	Err         error
	LastRequest Request
}

// Complete implements Model.
func (m *Mock) Complete(_ context.Context, req Request) (Response, error) {
	m.LastRequest = req
	if m.Err != nil {
		return Response{}, m.Err
	}
	return Response{Text: m.Response}, nil
}

// Info implements Model.
func (m *Mock) Info() Info {
	return Info{Name: "mock", Provider: "mock"}
}
