// Package store implements the grocery inventory: a key-value table keyed by
// item identifier with partial-field update semantics, the Inventory service
// exposing the six store operations with errors-as-values, and a worker
// adapter that makes the store invocable like any other remote function.
package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// KeyAttribute is the primary key field of every inventory record.
const KeyAttribute = "item_id"

// ErrNotFound is returned by table implementations when no record exists for
// the given key.
var ErrNotFound = errors.New("item not found")

// Item is a persisted grocery record. Numeric fields are held as exact
// decimals; free-form extra fields may be attached via partial update.
type Item map[string]any

// Key returns the item's primary key value.
func (it Item) Key() string {
	s, _ := it[KeyAttribute].(string)
	return s
}

// Clone returns a deep copy covering nested maps and slices so callers can
// mutate results without affecting stored state.
func (it Item) Clone() Item {
	if it == nil {
		return nil
	}
	return Item(cloneValue(map[string]any(it)).(map[string]any))
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, elem := range t {
			cp[k] = cloneValue(elem)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, elem := range t {
			cp[i] = cloneValue(elem)
		}
		return cp
	default:
		return v
	}
}

// Table is the persistence seam of the inventory. Implementations must make
// every method atomic with respect to concurrent callers; in particular
// AddToAttribute applies the increment server-side, never as a caller-side
// read-modify-write.
type Table interface {
	// PutItem writes the record, overwriting any existing record with the
	// same key (last-writer-wins, no uniqueness check).
	PutItem(ctx context.Context, item Item) error

	// UpdateItem merges the given fields into the record, leaving fields
	// not mentioned untouched. A missing record is created from the fields
	// (merge-or-create).
	UpdateItem(ctx context.Context, key string, fields map[string]any) error

	// DeleteItem removes the record. Deleting a missing key is not an
	// error.
	DeleteItem(ctx context.Context, key string) error

	// GetItem returns the record or ErrNotFound.
	GetItem(ctx context.Context, key string) (Item, error)

	// Scan returns every record matching filter; a nil filter matches all.
	Scan(ctx context.Context, filter func(Item) bool) ([]Item, error)

	// AddToAttribute atomically adds delta to the named numeric attribute
	// and returns the new value. Returns ErrNotFound when the record does
	// not exist and an error when the attribute is absent or non-numeric.
	AddToAttribute(ctx context.Context, key, attribute string, delta decimal.Decimal) (decimal.Decimal, error)
}
