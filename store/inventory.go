package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/grocerymesh/codec"
	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/internal/util"
	"github.com/hupe1980/grocerymesh/logging"
)

// requiredFields must all be present and non-empty when a record is created.
var requiredFields = []string{KeyAttribute, "name", "category", "quantity", "unit_price"}

// Result is the outcome of a store operation: the user-visible message plus
// a machine-readable kind so callers can branch on the failure category
// instead of substring-matching. Kind is empty on success; a not-found
// lookup carries KindNotFound but is still rendered as a plain message.
type Result struct {
	Message string
	Kind    core.Kind
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Kind == "" }

func fail(kind core.Kind, format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), Kind: kind}
}

func ok(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Options configures the Inventory service.
type Options struct {
	Logger logging.Logger
}

// Inventory exposes the grocery store operations over a Table. Every
// operation catches faults internally and converts them to a descriptive
// Result; no operation returns a Go error to its caller.
type Inventory struct {
	table  Table
	logger logging.Logger
}

// NewInventory constructs an Inventory backed by table. The table handle is
// injected explicitly; there are no package-level singletons.
func NewInventory(table Table, optFns ...func(o *Options)) *Inventory {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Inventory{table: table, logger: logging.OrNoOp(opts.Logger)}
}

// Add parses itemDetails (a JSON record) and writes it keyed by item_id,
// overwriting any existing record with the same key. All five required
// fields must be present and non-empty; quantity and unit_price are
// converted to exact decimals before persistence.
func (inv *Inventory) Add(ctx context.Context, itemDetails string) Result {
	var item map[string]any
	if err := json.Unmarshal([]byte(itemDetails), &item); err != nil {
		return fail(core.KindValidation, "Error: Invalid JSON format. Please provide item details in JSON format.")
	}

	if err := util.RequireFields(item, requiredFields); err != nil {
		return fail(core.KindValidation, "Error: Required fields ('item_id', 'name', 'category', 'quantity', 'unit_price') cannot be empty.")
	}

	for _, field := range []string{"quantity", "unit_price"} {
		d, err := codec.ToDecimal(item[field])
		if err != nil {
			return fail(core.KindValidation, "Error adding grocery item: %v", err)
		}
		item[field] = d
	}

	if err := inv.table.PutItem(ctx, Item(item)); err != nil {
		inv.logger.Error("store.add.failed", "item_id", item[KeyAttribute], "error", err.Error())
		return fail(core.KindInternal, "Error adding grocery item: %v", err)
	}

	inv.logger.Info("store.add", "item_id", item[KeyAttribute])
	return ok("Successfully added grocery item: %v", item["name"])
}

// Update applies a partial update built from every field of itemUpdate
// except item_id. Numeric values are converted to exact decimals, everything
// else passes through verbatim. Fields not mentioned are left untouched;
// updating a missing key creates a partial record (merge-or-create).
func (inv *Inventory) Update(ctx context.Context, itemUpdate string) Result {
	var update map[string]any
	if err := json.Unmarshal([]byte(itemUpdate), &update); err != nil {
		return fail(core.KindValidation, "Error: Invalid JSON format. Please provide the item update in JSON format.")
	}

	itemID, _ := update[KeyAttribute].(string)
	if itemID == "" {
		return fail(core.KindValidation, "Error: item_id is required to update an item.")
	}

	fields := make(map[string]any, len(update))
	for k, v := range update {
		if k == KeyAttribute {
			continue
		}
		if codec.IsNumber(v) {
			d, err := codec.ToDecimal(v)
			if err != nil {
				return fail(core.KindValidation, "Error updating grocery item: %v", err)
			}
			fields[k] = d
			continue
		}
		fields[k] = v
	}

	if len(fields) == 0 {
		return fail(core.KindValidation, "Error: No updates provided for the item.")
	}

	if err := inv.table.UpdateItem(ctx, itemID, fields); err != nil {
		inv.logger.Error("store.update.failed", "item_id", itemID, "error", err.Error())
		return fail(core.KindInternal, "Error updating grocery item: %v", err)
	}

	inv.logger.Info("store.update", "item_id", itemID, "fields", len(fields))
	return ok("Successfully updated grocery item with item_id: %s", itemID)
}

// Remove deletes the record by key. Removing a missing key succeeds
// (idempotent).
func (inv *Inventory) Remove(ctx context.Context, itemID string) Result {
	if itemID == "" {
		return fail(core.KindValidation, "Error: item_id is required to remove an item.")
	}
	if err := inv.table.DeleteItem(ctx, itemID); err != nil {
		return fail(core.KindInternal, "Error removing grocery item: %v", err)
	}
	inv.logger.Info("store.remove", "item_id", itemID)
	return ok("Successfully removed grocery item with item_id: %s", itemID)
}

// Get returns the record as indented JSON with numeric fields normalized
// (integral decimals come back as integers). A missing record yields a
// not-found message, not an error.
func (inv *Inventory) Get(ctx context.Context, itemID string) Result {
	if itemID == "" {
		return fail(core.KindValidation, "Error: item_id is required to retrieve item details.")
	}

	item, err := inv.table.GetItem(ctx, itemID)
	if err == ErrNotFound {
		return fail(core.KindNotFound, "Grocery item with item_id '%s' not found.", itemID)
	}
	if err != nil {
		return fail(core.KindInternal, "Error retrieving grocery item details: %v", err)
	}

	body, err := json.MarshalIndent(codec.Normalize(map[string]any(item)), "", "  ")
	if err != nil {
		return fail(core.KindInternal, "Error retrieving grocery item details: %v", err)
	}
	return ok("%s", body)
}

// List scans the table, optionally filtered to records whose category
// exactly equals category (case-sensitive). An empty result yields a plain
// message rather than an empty array.
func (inv *Inventory) List(ctx context.Context, category string) Result {
	var filter func(Item) bool
	if category != "" {
		filter = func(it Item) bool {
			c, _ := it["category"].(string)
			return c == category
		}
	}

	items, err := inv.table.Scan(ctx, filter)
	if err != nil {
		return fail(core.KindInternal, "Error listing grocery items: %v", err)
	}
	if len(items) == 0 {
		return fail(core.KindNotFound, "No grocery items found.")
	}

	normalized := make([]any, len(items))
	for i, it := range items {
		normalized[i] = codec.Normalize(map[string]any(it))
	}
	body, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return fail(core.KindInternal, "Error listing grocery items: %v", err)
	}
	return ok("%s", body)
}

// AdjustQuantity atomically adds quantityChange (a signed integer) to the
// stored quantity and reports the new value. Negative deltas are permitted
// and not clamped at zero. The increment is applied at the table level, so
// concurrent adjustments to the same key never lose updates.
func (inv *Inventory) AdjustQuantity(ctx context.Context, itemID string, quantityChange any) Result {
	delta, isInt := asInteger(quantityChange)
	if itemID == "" || !isInt {
		return fail(core.KindValidation, "Error: item_id and quantity_change (integer) are required.")
	}

	next, err := inv.table.AddToAttribute(ctx, itemID, "quantity", delta)
	if err != nil {
		inv.logger.Error("store.adjust.failed", "item_id", itemID, "error", err.Error())
		return fail(core.KindInternal, "Error adjusting inventory quantity: %v", err)
	}

	inv.logger.Info("store.adjust", "item_id", itemID, "new_quantity", next.String())
	return ok("Successfully adjusted inventory quantity for item_id: %s. New quantity: %v", itemID, codec.Normalize(next))
}
