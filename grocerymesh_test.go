package grocerymesh

import (
	"context"
	"net/http"
	"testing"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroceryMesh_EndToEnd(t *testing.T) {
	ctx := context.Background()
	mesh := New()

	env := mesh.Orchestrate(ctx, nil)
	require.Equal(t, http.StatusOK, env.StatusCode)

	var body map[string]any
	require.NoError(t, env.DecodeBody(&body))
	assert.Equal(t, "Grocery Management System executed successfully!", body["message"])

	// The sample coconut record is readable through the store service with
	// its integral quantity intact.
	res := mesh.Inventory().Get(ctx, "601")
	require.True(t, res.OK(), res.Message)
	assert.Contains(t, res.Message, `"quantity": 100`)
}

func TestGroceryMesh_RegisterWorkerOverridesFleet(t *testing.T) {
	mesh := New()
	mesh.RegisterWorker(&failingWorker{name: "demand_forecaster"})

	env := mesh.Orchestrate(context.Background(), nil)
	assert.Equal(t, http.StatusInternalServerError, env.StatusCode)
	assert.Contains(t, env.Body, "boom")
}

func TestGroceryMesh_CustomTable(t *testing.T) {
	table := store.NewInMemoryTable()
	mesh := New(func(o *Options) { o.Table = table })

	res := mesh.Inventory().Add(context.Background(), `{"item_id":"1","name":"Milk","category":"Dairy","quantity":2,"unit_price":3.5}`)
	require.True(t, res.OK(), res.Message)

	item, err := table.GetItem(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Milk", item["name"])
}

type failingWorker struct{ name string }

func (f *failingWorker) Name() string        { return f.name }
func (f *failingWorker) Description() string { return "always fails" }
func (f *failingWorker) Run(context.Context, core.Payload) (core.Payload, error) {
	return core.ErrorPayload("boom"), nil
}
