package store

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTable_PutOverwritesAndClones(t *testing.T) {
	ctx := context.Background()
	table := NewInMemoryTable()

	item := Item{KeyAttribute: "1", "name": "Milk", "quantity": decimal.NewFromInt(2)}
	require.NoError(t, table.PutItem(ctx, item))

	// Mutating the input after Put must not affect stored state.
	item["name"] = "Cheese"
	got, err := table.GetItem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Milk", got["name"])

	// Last writer wins on the same key.
	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "1", "name": "Butter"}))
	got, err = table.GetItem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Butter", got["name"])
	_, hasQty := got["quantity"]
	assert.False(t, hasQty, "put replaces the whole record")
}

func TestInMemoryTable_PutRequiresKey(t *testing.T) {
	err := NewInMemoryTable().PutItem(context.Background(), Item{"name": "Milk"})
	assert.Error(t, err)
}

func TestInMemoryTable_UpdateMergesOrCreates(t *testing.T) {
	ctx := context.Background()
	table := NewInMemoryTable()

	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "1", "name": "Milk", "category": "Dairy"}))
	require.NoError(t, table.UpdateItem(ctx, "1", map[string]any{"category": "Beverages"}))

	got, err := table.GetItem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Beverages", got["category"])
	assert.Equal(t, "Milk", got["name"])

	// Updating a missing key creates a partial record.
	require.NoError(t, table.UpdateItem(ctx, "2", map[string]any{"name": "Eggs"}))
	got, err = table.GetItem(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "2", got.Key())
	assert.Equal(t, "Eggs", got["name"])
}

func TestInMemoryTable_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	table := NewInMemoryTable()
	assert.NoError(t, table.DeleteItem(ctx, "ghost"))

	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "1", "name": "Milk"}))
	assert.NoError(t, table.DeleteItem(ctx, "1"))
	_, err := table.GetItem(ctx, "1")
	assert.Equal(t, ErrNotFound, err)
}

func TestInMemoryTable_ScanFilter(t *testing.T) {
	ctx := context.Background()
	table := NewInMemoryTable()
	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "2", "category": "Fruit"}))
	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "1", "category": "Dairy"}))

	all, err := table.Scan(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Deterministic key order.
	assert.Equal(t, "1", all[0].Key())

	fruit, err := table.Scan(ctx, func(it Item) bool { return it["category"] == "Fruit" })
	require.NoError(t, err)
	require.Len(t, fruit, 1)
	assert.Equal(t, "2", fruit[0].Key())
}

func TestInMemoryTable_AddToAttribute(t *testing.T) {
	ctx := context.Background()
	table := NewInMemoryTable()
	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "1", "quantity": decimal.NewFromInt(10)}))

	next, err := table.AddToAttribute(ctx, "1", "quantity", decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, "15", next.String())

	// Negative deltas are not clamped.
	next, err = table.AddToAttribute(ctx, "1", "quantity", decimal.NewFromInt(-20))
	require.NoError(t, err)
	assert.Equal(t, "-5", next.String())

	_, err = table.AddToAttribute(ctx, "ghost", "quantity", decimal.NewFromInt(1))
	assert.Equal(t, ErrNotFound, err)

	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "2", "quantity": "ten"}))
	_, err = table.AddToAttribute(ctx, "2", "quantity", decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestInMemoryTable_ConcurrentAdjustmentsDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	table := NewInMemoryTable()
	require.NoError(t, table.PutItem(ctx, Item{KeyAttribute: "1", "quantity": decimal.NewFromInt(10)}))

	var wg sync.WaitGroup
	deltas := []int64{5, -2, 5, -2, 5, -2, 5, -2}
	for _, d := range deltas {
		wg.Add(1)
		go func(d int64) {
			defer wg.Done()
			_, err := table.AddToAttribute(ctx, "1", "quantity", decimal.NewFromInt(d))
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()

	got, err := table.GetItem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "22", got["quantity"].(decimal.Decimal).String())
}
