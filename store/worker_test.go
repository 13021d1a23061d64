package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker() *Worker {
	return NewWorker(NewInventory(NewInMemoryTable()))
}

func decodeMessage(t *testing.T, env core.Envelope) string {
	t.Helper()
	var msg string
	require.NoError(t, env.DecodeBody(&msg))
	return msg
}

func TestWorker_AddAndGetActions(t *testing.T) {
	ctx := context.Background()
	w := newTestWorker()

	env := w.HandleAction(ctx, core.Payload{
		"action":       ActionAdd,
		"item_details": `{"item_id":"601","name":"Coconut","category":"Fruit","quantity":100,"unit_price":1.50}`,
	})
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "Successfully added grocery item: Coconut", decodeMessage(t, env))

	env = w.HandleAction(ctx, core.Payload{"action": ActionGet, "item_id": "601"})
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Contains(t, decodeMessage(t, env), `"quantity": 100`)
}

func TestWorker_AcceptsNativeStructuredInput(t *testing.T) {
	ctx := context.Background()
	w := newTestWorker()

	env := w.HandleAction(ctx, core.Payload{
		"action": ActionAdd,
		"item_details": map[string]any{
			"item_id": "601", "name": "Coconut", "category": "Fruit",
			"quantity": 100, "unit_price": 1.5,
		},
	})
	assert.Equal(t, "Successfully added grocery item: Coconut", decodeMessage(t, env))
}

func TestWorker_UpdateRemoveListAdjust(t *testing.T) {
	ctx := context.Background()
	w := newTestWorker()
	w.HandleAction(ctx, core.Payload{
		"action":       ActionAdd,
		"item_details": `{"item_id":"1","name":"Milk","category":"Dairy","quantity":2,"unit_price":3.5}`,
	})

	env := w.HandleAction(ctx, core.Payload{"action": ActionUpdate, "item_update": `{"item_id":"1","category":"Beverages"}`})
	assert.Equal(t, "Successfully updated grocery item with item_id: 1", decodeMessage(t, env))

	env = w.HandleAction(ctx, core.Payload{"action": ActionAdjust, "item_id": "1", "quantity_change": float64(5)})
	assert.Contains(t, decodeMessage(t, env), "New quantity: 7")

	env = w.HandleAction(ctx, core.Payload{"action": ActionList, "category": "Beverages"})
	assert.Contains(t, decodeMessage(t, env), "Milk")

	env = w.HandleAction(ctx, core.Payload{"action": ActionRemove, "item_id": "1"})
	assert.Equal(t, "Successfully removed grocery item with item_id: 1", decodeMessage(t, env))

	env = w.HandleAction(ctx, core.Payload{"action": ActionList})
	assert.Equal(t, "No grocery items found.", decodeMessage(t, env))
}

func TestWorker_InvalidActionStillStatus200(t *testing.T) {
	// Unrecognized actions are not surfaced as a distinct status.
	env := newTestWorker().HandleAction(context.Background(), core.Payload{"action": "explode"})
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "Invalid action", decodeMessage(t, env))
}

func TestWorker_RunNeverReturnsError(t *testing.T) {
	w := newTestWorker()
	out, err := w.Run(context.Background(), core.Payload{"action": ActionAdd, "item_details": "{broken"})
	require.NoError(t, err)
	env, ok := core.EnvelopeFromPayload(out)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Contains(t, env.Body, "Invalid JSON format")
}
