// Package orchestrator implements the top-level control flow of the grocery
// management system: resolve the four worker roles to handles, build the
// task pipeline, execute a store request, and aggregate everything into a
// single response envelope. Any fault anywhere downstream collapses to one
// 500 envelope; callers never see a raw fault.
package orchestrator

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/internal/util"
	"github.com/hupe1980/grocerymesh/invoker"
	"github.com/hupe1980/grocerymesh/logging"
	"github.com/hupe1980/grocerymesh/store"
	"github.com/hupe1980/grocerymesh/tasks"
)

// Options configures the orchestrator.
type Options struct {
	// WorkerNames maps each pipeline role to the name of its backing
	// worker. Defaults to the role names themselves.
	WorkerNames map[string]string
	// TasksWorker is the name of the task registry worker.
	TasksWorker string
	// DatabaseWorker is the name of the inventory store worker.
	DatabaseWorker string
	// Logger for run diagnostics.
	Logger logging.Logger
}

// Orchestrator coordinates one stateless run per invocation. It holds no
// mutable state across runs and is safe for concurrent use.
type Orchestrator struct {
	invoker        invoker.Invoker
	workerNames    map[string]string
	tasksWorker    string
	databaseWorker string
	logger         logging.Logger
}

// New constructs an Orchestrator on top of an invoker. All collaborators
// are injected; there are no package-level singletons.
func New(inv invoker.Invoker, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		TasksWorker:    tasks.DefaultWorkerName,
		DatabaseWorker: store.DefaultWorkerName,
		Logger:         logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	names := make(map[string]string, len(tasks.Roles))
	for _, role := range tasks.Roles {
		names[role] = role
		if n, ok := opts.WorkerNames[role]; ok && n != "" {
			names[role] = n
		}
	}

	return &Orchestrator{
		invoker:        inv,
		workerNames:    names,
		tasksWorker:    opts.TasksWorker,
		databaseWorker: opts.DatabaseWorker,
		logger:         logging.OrNoOp(opts.Logger),
	}
}

// SampleAddRequest is the fixed example unit of work executed when a run is
// started without a caller-supplied store request.
func SampleAddRequest() core.Payload {
	details, _ := json.Marshal(map[string]any{
		"item_id":    "601",
		"name":       "Coconut",
		"category":   "Fruit",
		"quantity":   100,
		"unit_price": 1.50,
	})
	return core.Payload{
		"action":       store.ActionAdd,
		"item_details": string(details),
	}
}

// Run executes one orchestration: resolve, define pipeline, execute the
// store request, aggregate. A nil storeRequest runs the fixed sample add.
func (o *Orchestrator) Run(ctx context.Context, storeRequest core.Payload) core.Envelope {
	runID := util.NewID()
	o.logger.Info("orchestrator.run.start", "run_id", runID)

	// 1. Resolve all four roles concurrently; they are independent and the
	// registry joins on all of them anyway.
	handles := o.resolve(ctx)

	// 2. Define the pipeline from the resolved handles. Resolution results
	// are passed through unchecked; the registry's all-or-nothing
	// validation is the failure gate for missing handles.
	tasksEvent := make(core.Payload, len(handles))
	for role, h := range handles {
		tasksEvent[role] = map[string]any(h)
	}
	tasksResp := o.invoker.Invoke(ctx, o.tasksWorker, tasksEvent)

	// 3. Execute the unit of work against the store worker.
	if storeRequest == nil {
		storeRequest = SampleAddRequest()
	}
	storeResp := o.invoker.Invoke(ctx, o.databaseWorker, storeRequest)

	// 4. Aggregate. One error anywhere collapses the run.
	if msg, failed := o.firstFault(handles, tasksResp, storeResp); failed {
		o.logger.Error("orchestrator.run.failed", "run_id", runID, "error", msg)
		return core.ServerError(msg)
	}

	o.logger.Info("orchestrator.run.done", "run_id", runID)
	return core.OK(map[string]any{
		"message":         "Grocery Management System executed successfully!",
		"tasks_result":    map[string]any(tasksResp),
		"add_item_result": map[string]any(storeResp),
	})
}

// resolve invokes every role's backing worker with an empty initialization
// payload, fanning out concurrently and joining before returning.
func (o *Orchestrator) resolve(ctx context.Context) map[string]core.Handle {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		handles = make(map[string]core.Handle, len(tasks.Roles))
	)

	for _, role := range tasks.Roles {
		wg.Add(1)
		go func(role string) {
			defer wg.Done()
			resp := o.invoker.Invoke(ctx, o.workerNames[role], core.Payload{})
			mu.Lock()
			handles[role] = core.Handle(resp)
			mu.Unlock()
		}(role)
	}

	wg.Wait()
	return handles
}

// firstFault scans every stage result for the error convention: resolution
// payloads and direct error payloads first, then error bodies carried in
// non-2xx envelopes.
func (o *Orchestrator) firstFault(handles map[string]core.Handle, stages ...core.Payload) (string, bool) {
	for _, role := range tasks.Roles {
		if msg, ok := core.Payload(handles[role]).ErrorMessage(); ok {
			return msg, true
		}
	}
	for _, stage := range stages {
		if msg, ok := stage.ErrorMessage(); ok {
			return msg, true
		}
		env, ok := core.EnvelopeFromPayload(stage)
		if !ok || env.StatusCode < http.StatusBadRequest {
			continue
		}
		var body map[string]any
		if err := env.DecodeBody(&body); err == nil {
			if msg, ok := core.Payload(body).ErrorMessage(); ok {
				return msg, true
			}
		}
		return env.Body, true
	}
	return "", false
}
