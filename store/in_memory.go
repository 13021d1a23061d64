package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// InMemoryTable is a volatile Table implementation keeping records in a
// process-local map. It is safe for concurrent access and best suited for
// tests and single-process deployments. Items are cloned on both write and
// read to prevent external mutation of internal state.
type InMemoryTable struct {
	mu    sync.RWMutex
	items map[string]Item
}

// Compile-time interface assertion.
var _ Table = (*InMemoryTable)(nil)

// NewInMemoryTable constructs an empty in-memory table.
func NewInMemoryTable() *InMemoryTable {
	return &InMemoryTable{items: make(map[string]Item)}
}

// PutItem stores a clone of the record, overwriting any existing record with
// the same key.
func (t *InMemoryTable) PutItem(_ context.Context, item Item) error {
	key := item.Key()
	if key == "" {
		return fmt.Errorf("item has no %s", KeyAttribute)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items[key] = item.Clone()
	return nil
}

// UpdateItem merges fields into the stored record, creating the record when
// absent. Fields not mentioned are left untouched.
func (t *InMemoryTable) UpdateItem(_ context.Context, key string, fields map[string]any) error {
	if key == "" {
		return fmt.Errorf("empty %s", KeyAttribute)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	item, ok := t.items[key]
	if !ok {
		item = Item{KeyAttribute: key}
		t.items[key] = item
	}
	for k, v := range fields {
		if k == KeyAttribute {
			continue
		}
		item[k] = cloneValue(v)
	}
	return nil
}

// DeleteItem removes the record; deleting a missing key is a no-op.
func (t *InMemoryTable) DeleteItem(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.items, key)
	return nil
}

// GetItem returns a clone of the record or ErrNotFound.
func (t *InMemoryTable) GetItem(_ context.Context, key string) (Item, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	return item.Clone(), nil
}

// Scan returns clones of every record matching filter, ordered by key so
// output is deterministic.
func (t *InMemoryTable) Scan(_ context.Context, filter func(Item) bool) ([]Item, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		item := t.items[k]
		if filter == nil || filter(item) {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}

// AddToAttribute applies the increment under the write lock, so concurrent
// adjustments to the same key never lose updates.
func (t *InMemoryTable) AddToAttribute(_ context.Context, key, attribute string, delta decimal.Decimal) (decimal.Decimal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	item, ok := t.items[key]
	if !ok {
		return decimal.Decimal{}, ErrNotFound
	}
	current, ok := item[attribute].(decimal.Decimal)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("attribute %s is not a number", attribute)
	}
	next := current.Add(delta)
	item[attribute] = next
	return next, nil
}
