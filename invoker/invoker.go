// Package invoker dispatches named remote workers with structured payloads.
// Invocations are synchronous, blocking and single attempt; any transport or
// remote-side fault is converted into an error payload ({"error": message})
// rather than propagated, so callers detect failure by inspecting the
// payload, never by catching a Go error.
package invoker

import (
	"context"

	"github.com/hupe1980/grocerymesh/core"
)

// Invoker dispatches a named worker with a payload and returns its response.
// Implementations never return a Go error: all faults become error payloads.
type Invoker interface {
	Invoke(ctx context.Context, workerName string, payload core.Payload) core.Payload
}
