package orchestrator

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/invoker"
	"github.com/hupe1980/grocerymesh/store"
	"github.com/hupe1980/grocerymesh/tasks"
	"github.com/hupe1980/grocerymesh/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFleet(t *testing.T) (*invoker.Local, *store.InMemoryTable) {
	t.Helper()
	local := invoker.NewLocal()
	for _, w := range worker.PipelineRoles() {
		local.Register(w)
	}
	local.Register(tasks.NewWorker(tasks.NewRegistry()))

	table := store.NewInMemoryTable()
	local.Register(store.NewWorker(store.NewInventory(table)))
	return local, table
}

func TestOrchestrator_SuccessfulRun(t *testing.T) {
	local, table := newTestFleet(t)
	o := New(local)

	env := o.Run(context.Background(), nil)
	require.Equal(t, http.StatusOK, env.StatusCode)

	var body map[string]any
	require.NoError(t, env.DecodeBody(&body))
	assert.Equal(t, "Grocery Management System executed successfully!", body["message"])

	addResult, ok := body["add_item_result"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, addResult["body"], "Successfully added grocery item: Coconut")

	tasksResult, ok := body["tasks_result"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, tasksResult["body"], "manage_inventory_task")

	// The sample record is persisted with exact integral quantity.
	item, err := table.GetItem(context.Background(), "601")
	require.NoError(t, err)
	assert.Equal(t, "Coconut", item["name"])
}

func TestOrchestrator_CallerSuppliedStoreRequest(t *testing.T) {
	local, table := newTestFleet(t)
	o := New(local)

	env := o.Run(context.Background(), core.Payload{
		"action":       store.ActionAdd,
		"item_details": `{"item_id":"7","name":"Eggs","category":"Dairy","quantity":12,"unit_price":0.3}`,
	})
	require.Equal(t, http.StatusOK, env.StatusCode)

	item, err := table.GetItem(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Eggs", item["name"])
}

func TestOrchestrator_MissingRoleCollapsesTo500(t *testing.T) {
	// Leave one role unregistered: its resolution answers with an error
	// payload, the run collapses to a single 500.
	local := invoker.NewLocal()
	for _, w := range worker.PipelineRoles() {
		if w.Name() == tasks.RoleWasteReductionSpecialist {
			continue
		}
		local.Register(w)
	}
	local.Register(tasks.NewWorker(tasks.NewRegistry()))
	local.Register(store.NewWorker(store.NewInventory(store.NewInMemoryTable())))

	env := New(local).Run(context.Background(), nil)
	assert.Equal(t, http.StatusInternalServerError, env.StatusCode)

	var body map[string]string
	require.NoError(t, env.DecodeBody(&body))
	assert.Contains(t, body["error"], tasks.RoleWasteReductionSpecialist)
}

type faultingInvoker struct {
	inner invoker.Invoker
	fail  map[string]string
}

func (f *faultingInvoker) Invoke(ctx context.Context, name string, payload core.Payload) core.Payload {
	if msg, ok := f.fail[name]; ok {
		return core.ErrorPayload(msg)
	}
	return f.inner.Invoke(ctx, name, payload)
}

func TestOrchestrator_DownstreamErrorPayloadSurfacesInResponse(t *testing.T) {
	local, _ := newTestFleet(t)
	inv := &faultingInvoker{inner: local, fail: map[string]string{tasks.RoleDemandForecaster: "boom"}}

	env := New(inv).Run(context.Background(), nil)
	assert.Equal(t, http.StatusInternalServerError, env.StatusCode)
	assert.Contains(t, env.Body, "boom")
}

func TestOrchestrator_StoreWorkerFaultCollapsesTo500(t *testing.T) {
	local, _ := newTestFleet(t)
	inv := &faultingInvoker{inner: local, fail: map[string]string{store.DefaultWorkerName: "table offline"}}

	env := New(inv).Run(context.Background(), nil)
	assert.Equal(t, http.StatusInternalServerError, env.StatusCode)
	assert.Contains(t, env.Body, "table offline")
}

// barrierInvoker blocks every role resolution until all four are in flight,
// so the test fails fast if resolution ever becomes sequential again.
type barrierInvoker struct {
	inner   invoker.Invoker
	arrived *sync.WaitGroup
	ready   chan struct{}
}

func (b *barrierInvoker) Invoke(ctx context.Context, name string, payload core.Payload) core.Payload {
	if slices.Contains(tasks.Roles, name) {
		b.arrived.Done()
		select {
		case <-b.ready:
		case <-time.After(2 * time.Second):
			return core.ErrorPayload("resolution was not concurrent")
		}
	}
	return b.inner.Invoke(ctx, name, payload)
}

func TestOrchestrator_ResolutionFansOut(t *testing.T) {
	local, _ := newTestFleet(t)

	var arrived sync.WaitGroup
	arrived.Add(len(tasks.Roles))
	ready := make(chan struct{})
	go func() {
		arrived.Wait()
		close(ready)
	}()

	inv := &barrierInvoker{inner: local, arrived: &arrived, ready: ready}
	env := New(inv).Run(context.Background(), nil)
	assert.Equal(t, http.StatusOK, env.StatusCode)
}

func TestOrchestrator_RoleWorkerNameOverrides(t *testing.T) {
	local := invoker.NewLocal()
	// Register the forecaster under a deployment-specific name.
	forecaster := worker.NewDemandForecaster()
	local.Register(&renamed{Worker: forecaster, name: "forecaster-prod"})
	for _, w := range worker.PipelineRoles() {
		if w.Name() != tasks.RoleDemandForecaster {
			local.Register(w)
		}
	}
	local.Register(tasks.NewWorker(tasks.NewRegistry()))
	local.Register(store.NewWorker(store.NewInventory(store.NewInMemoryTable())))

	o := New(local, func(opts *Options) {
		opts.WorkerNames = map[string]string{tasks.RoleDemandForecaster: "forecaster-prod"}
	})
	env := o.Run(context.Background(), nil)
	assert.Equal(t, http.StatusOK, env.StatusCode)
}

type renamed struct {
	core.Worker
	name string
}

func (r *renamed) Name() string { return r.name }

func TestWorker_EntryPoint(t *testing.T) {
	local, table := newTestFleet(t)
	w := NewWorker(New(local))

	out, err := w.Run(context.Background(), core.Payload{
		"action":       store.ActionAdd,
		"item_details": `{"item_id":"9","name":"Rice","category":"Pantry","quantity":1,"unit_price":2}`,
	})
	require.NoError(t, err)
	env, ok := core.EnvelopeFromPayload(out)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, env.StatusCode)

	_, err = table.GetItem(context.Background(), "9")
	assert.NoError(t, err)

	// No action discriminator: the fixed sample run executes.
	out, err = w.Run(context.Background(), core.Payload{})
	require.NoError(t, err)
	_, err = table.GetItem(context.Background(), "601")
	assert.NoError(t, err)
}
