package store

import (
	"context"
	"encoding/json"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/logging"
)

// DefaultWorkerName is the worker identifier the orchestrator resolves the
// database function under.
const DefaultWorkerName = "grocery_database"

// Recognized store actions.
const (
	ActionAdd    = "add_grocery_item"
	ActionGet    = "get_grocery_item_details"
	ActionUpdate = "update_grocery_item"
	ActionRemove = "remove_grocery_item"
	ActionList   = "list_all_grocery_items"
	ActionAdjust = "adjust_inventory_quantity"
)

// WorkerOptions configures the store worker adapter.
type WorkerOptions struct {
	Name   string
	Logger logging.Logger
}

// Worker exposes the Inventory as an invocable worker. The input event
// carries an "action" discriminator plus the action's fields; the response
// is the standard envelope with the result JSON-encoded into the body.
type Worker struct {
	inventory *Inventory
	name      string
	logger    logging.Logger
}

// Compile-time interface assertion.
var _ core.Worker = (*Worker)(nil)

// NewWorker wraps inventory as a named worker.
func NewWorker(inventory *Inventory, optFns ...func(o *WorkerOptions)) *Worker {
	opts := WorkerOptions{Name: DefaultWorkerName, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Worker{inventory: inventory, name: opts.Name, logger: logging.OrNoOp(opts.Logger)}
}

// Name returns the worker identifier used for routing.
func (w *Worker) Name() string { return w.name }

// Description summarizes the worker for task definitions and diagnostics.
func (w *Worker) Description() string {
	return "Persists grocery inventory records and serves conditional and partial updates."
}

// Run implements core.Worker by dispatching the event and returning the
// envelope in payload form.
func (w *Worker) Run(ctx context.Context, input core.Payload) (core.Payload, error) {
	return w.HandleAction(ctx, input).Payload(), nil
}

// HandleAction dispatches the event to the matching inventory operation.
// Every recognized action answers with status 200 and the result string in
// the body; an unrecognized action yields the literal "Invalid action",
// still at status 200.
func (w *Worker) HandleAction(ctx context.Context, event core.Payload) core.Envelope {
	action := event.String("action")
	w.logger.Debug("store.worker.action", "action", action)

	var result Result
	switch action {
	case ActionAdd:
		result = w.inventory.Add(ctx, stringArg(event, "item_details"))
	case ActionGet:
		result = w.inventory.Get(ctx, event.String("item_id"))
	case ActionUpdate:
		result = w.inventory.Update(ctx, stringArg(event, "item_update"))
	case ActionRemove:
		result = w.inventory.Remove(ctx, event.String("item_id"))
	case ActionList:
		result = w.inventory.List(ctx, event.String("category"))
	case ActionAdjust:
		result = w.inventory.AdjustQuantity(ctx, event.String("item_id"), event["quantity_change"])
	default:
		result = Result{Message: "Invalid action"}
	}

	if !result.OK() {
		w.logger.Warn("store.worker.failed", "action", action, "kind", string(result.Kind), "message", result.Message)
	}
	return core.OK(result.Message)
}

// stringArg fetches a structured-text argument. Native structured input is
// accepted too and re-encoded, so callers may pass either a JSON string or
// the decoded record.
func stringArg(event core.Payload, key string) string {
	switch v := event[key].(type) {
	case string:
		return v
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}
