// Package util provides small internal helpers shared across packages:
// identifier generation and lightweight payload validation.
package util

import "github.com/google/uuid"

// NewID returns a random identifier for correlating orchestration runs and
// worker invocations in logs.
func NewID() string {
	return uuid.NewString()
}
