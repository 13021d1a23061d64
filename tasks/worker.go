package tasks

import (
	"context"

	"github.com/hupe1980/grocerymesh/core"
)

// DefaultWorkerName is the worker identifier the orchestrator invokes the
// task registry under.
const DefaultWorkerName = "grocery_tasks"

// Worker exposes the registry as an invocable worker: the request payload
// carries one handle per role key, the response envelope carries the task
// descriptions keyed by task name, or a 400 error object when a handle is
// missing.
type Worker struct {
	registry *Registry
	name     string
}

// Compile-time interface assertion.
var _ core.Worker = (*Worker)(nil)

// NewWorker wraps registry as a named worker.
func NewWorker(registry *Registry) *Worker {
	return &Worker{registry: registry, name: DefaultWorkerName}
}

// Name returns the worker identifier used for routing.
func (w *Worker) Name() string { return w.name }

// Description summarizes the worker for diagnostics.
func (w *Worker) Description() string {
	return "Defines the pipeline's task descriptors from resolved worker handles."
}

// Run implements core.Worker by building the descriptors and returning the
// envelope in payload form.
func (w *Worker) Run(_ context.Context, input core.Payload) (core.Payload, error) {
	return w.HandleRequest(input).Payload(), nil
}

// HandleRequest extracts the four role handles from the event and answers
// with the task descriptions, or a 400 envelope when any handle is absent.
func (w *Worker) HandleRequest(event core.Payload) core.Envelope {
	handles := make(map[string]core.Handle, len(Roles))
	for _, role := range Roles {
		if h := handleFromValue(event[role]); h != nil {
			handles[role] = h
		}
	}

	defined, err := w.registry.Define(handles)
	if err != nil {
		return core.BadRequest(err.Error())
	}

	body := make(map[string]string, len(defined))
	for _, task := range defined {
		body[task.Name] = task.Description
	}
	return core.OK(body)
}

// handleFromValue interprets an event value as a worker handle. Maps become
// handles directly (an empty map counts as absent); any other non-nil value
// is wrapped so opaque identifiers still pass validation.
func handleFromValue(v any) core.Handle {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if len(t) == 0 {
			return nil
		}
		return core.Handle(t)
	case core.Payload:
		if len(t) == 0 {
			return nil
		}
		return core.Handle(t)
	case string:
		if t == "" {
			return nil
		}
		return core.Handle{"id": t}
	default:
		return core.Handle{"value": v}
	}
}
