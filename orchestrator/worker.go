package orchestrator

import (
	"context"

	"github.com/hupe1980/grocerymesh/core"
)

// DefaultWorkerName identifies the orchestrator when it is itself deployed
// as an invocable worker.
const DefaultWorkerName = "grocery_orchestrator"

// Worker exposes the orchestrator as an invocable entry point. An event
// carrying an "action" field is treated as the caller-supplied store
// request; anything else triggers the fixed sample run.
type Worker struct {
	orchestrator *Orchestrator
}

// Compile-time interface assertion.
var _ core.Worker = (*Worker)(nil)

// NewWorker wraps o as a worker.
func NewWorker(o *Orchestrator) *Worker {
	return &Worker{orchestrator: o}
}

// Name returns the worker identifier used for routing.
func (w *Worker) Name() string { return DefaultWorkerName }

// Description summarizes the worker for diagnostics.
func (w *Worker) Description() string {
	return "Coordinates the grocery worker fleet and executes inventory requests."
}

// Run implements core.Worker; the run never faults past this boundary.
func (w *Worker) Run(ctx context.Context, input core.Payload) (core.Payload, error) {
	var storeRequest core.Payload
	if input.String("action") != "" {
		storeRequest = input
	}
	return w.orchestrator.Run(ctx, storeRequest).Payload(), nil
}
