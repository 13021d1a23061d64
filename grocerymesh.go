// Package grocerymesh provides a high-level façade over the grocery
// orchestration subsystem: the inventory store, the worker invoker, the
// task registry and the orchestrator. Most applications interact with this
// package by:
//  1. Creating a GroceryMesh via New() (optionally overriding the default
//     in-memory table, local invoker or logger)
//  2. Registering additional workers (or replacing the default fleet)
//  3. Running orchestrations via Orchestrate, or talking to the store
//     directly via Inventory()
//
// The façade delegates control flow to orchestrator.Orchestrator while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments supply a durable Table
// implementation and a remote Invoker.
package grocerymesh

import (
	"context"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/invoker"
	"github.com/hupe1980/grocerymesh/logging"
	"github.com/hupe1980/grocerymesh/orchestrator"
	"github.com/hupe1980/grocerymesh/store"
	"github.com/hupe1980/grocerymesh/tasks"
	"github.com/hupe1980/grocerymesh/worker"
)

// Options configures the GroceryMesh instance.
type Options struct {
	// Table backs the inventory store. Defaults to an in-memory table.
	Table store.Table
	// Invoker dispatches workers. Defaults to a local invoker preloaded
	// with the four role workers, the task registry worker and the store
	// worker.
	Invoker invoker.Invoker
	// WorkerNames overrides the worker name each role resolves through.
	WorkerNames map[string]string
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// GroceryMesh aggregates the orchestrator and its collaborators.
type GroceryMesh struct {
	inventory    *store.Inventory
	local        *invoker.Local // nil when a custom invoker is supplied
	orchestrator *orchestrator.Orchestrator
}

// New creates a GroceryMesh with optional overrides. Any unset collaborator
// is initialized with its in-process default.
func New(optFns ...func(o *Options)) *GroceryMesh {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := logging.OrNoOp(opts.Logger)

	table := opts.Table
	if table == nil {
		table = store.NewInMemoryTable()
	}
	inventory := store.NewInventory(table, func(o *store.Options) { o.Logger = logger })

	var local *invoker.Local
	inv := opts.Invoker
	if inv == nil {
		local = invoker.NewLocal(func(o *invoker.LocalOptions) { o.Logger = logger })
		for _, w := range worker.PipelineRoles() {
			local.Register(w)
		}
		local.Register(tasks.NewWorker(tasks.NewRegistry(func(o *tasks.RegistryOptions) { o.Logger = logger })))
		local.Register(store.NewWorker(inventory, func(o *store.WorkerOptions) { o.Logger = logger }))
		inv = local
	}

	orch := orchestrator.New(inv, func(o *orchestrator.Options) {
		o.WorkerNames = opts.WorkerNames
		o.Logger = logger
	})

	return &GroceryMesh{inventory: inventory, local: local, orchestrator: orch}
}

// RegisterWorker adds (or replaces) a worker in the default local fleet.
// It is a no-op when a custom invoker was supplied.
func (m *GroceryMesh) RegisterWorker(w core.Worker) {
	if m.local != nil {
		m.local.Register(w)
	}
}

// Orchestrate executes one orchestration run. A nil storeRequest runs the
// fixed sample unit of work.
func (m *GroceryMesh) Orchestrate(ctx context.Context, storeRequest core.Payload) core.Envelope {
	return m.orchestrator.Run(ctx, storeRequest)
}

// Inventory returns the store service for direct access.
func (m *GroceryMesh) Inventory() *store.Inventory {
	return m.inventory
}
