package entities

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrEmptyItemName = errors.New("item name must not be empty")
)

// AuditAction identifies the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	AuditActionAdd    AuditAction = "add"
	AuditActionRemove AuditAction = "remove"
	AuditActionLoad   AuditAction = "load"
)

// Item is a named good with its current stock quantity.
type Item struct {
	Name     string `json:"name" db:"name"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// AuditEntry records a single inventory mutation.
type AuditEntry struct {
	ID        uuid.UUID   `json:"id"`
	Action    AuditAction `json:"action"`
	Item      string      `json:"item"`
	Quantity  int         `json:"quantity"`
	Resulting int         `json:"resulting"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewAuditEntry builds a timestamped entry for a mutation on item.
func NewAuditEntry(action AuditAction, item string, qty, resulting int) AuditEntry {
	return AuditEntry{
		ID:        uuid.New(),
		Action:    action,
		Item:      item,
		Quantity:  qty,
		Resulting: resulting,
		CreatedAt: time.Now().UTC(),
	}
}

// Inventory is a mapping from item name to a positive quantity.
//
// Iteration over items follows insertion order: the order in which names
// first entered the mapping. An entry whose quantity drops to zero or
// below is removed entirely, never stored as zero, so every stored
// quantity is strictly positive.
type Inventory struct {
	quantities map[string]int
	order      []string
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{quantities: make(map[string]int)}
}

// Add increases the quantity of the named item by qty, creating the entry
// if needed. A result of zero or less removes the entry, so adding a zero
// quantity to an absent item leaves it absent. It returns the stored
// quantity after the operation (0 when the entry was pruned).
func (inv *Inventory) Add(name string, qty int) (int, error) {
	if name == "" {
		return 0, ErrEmptyItemName
	}

	current, exists := inv.quantities[name]
	next := current + qty
	if next <= 0 {
		if exists {
			inv.delete(name)
		}
		return 0, nil
	}

	if !exists {
		inv.order = append(inv.order, name)
	}
	inv.quantities[name] = next
	return next, nil
}

// Remove decreases the quantity of the named item by qty. When the result
// is zero or below the entry is deleted regardless of how far it
// undershoots. It returns the remaining quantity (0 after deletion) and
// ErrItemNotFound when the item is absent.
func (inv *Inventory) Remove(name string, qty int) (int, error) {
	if name == "" {
		return 0, ErrEmptyItemName
	}

	current, exists := inv.quantities[name]
	if !exists {
		return 0, ErrItemNotFound
	}

	remaining := current - qty
	if remaining <= 0 {
		inv.delete(name)
		return 0, nil
	}

	inv.quantities[name] = remaining
	return remaining, nil
}

// Quantity returns the stored quantity for the named item, or 0 when it
// is absent.
func (inv *Inventory) Quantity(name string) int {
	return inv.quantities[name]
}

// Contains reports whether the named item has an entry.
func (inv *Inventory) Contains(name string) bool {
	_, ok := inv.quantities[name]
	return ok
}

// Len returns the number of distinct items.
func (inv *Inventory) Len() int {
	return len(inv.quantities)
}

// Items returns all entries in insertion order.
func (inv *Inventory) Items() []Item {
	items := make([]Item, 0, len(inv.order))
	for _, name := range inv.order {
		items = append(items, Item{Name: name, Quantity: inv.quantities[name]})
	}
	return items
}

// LowItems returns the names of items whose quantity is strictly below
// threshold, in insertion order. An item exactly at the threshold is not
// low.
func (inv *Inventory) LowItems(threshold int) []string {
	low := make([]string, 0)
	for _, name := range inv.order {
		if inv.quantities[name] < threshold {
			low = append(low, name)
		}
	}
	return low
}

// Snapshot returns a copy of the mapping suitable for persistence.
func (inv *Inventory) Snapshot() map[string]int {
	out := make(map[string]int, len(inv.quantities))
	for name, qty := range inv.quantities {
		out[name] = qty
	}
	return out
}

// Replace clears the inventory and repopulates it from data. Entries with
// a zero or negative quantity are pruned, keeping the positive-quantity
// invariant even when the persisted form carried zeros. The new insertion
// order is sorted by name, since the source mapping carries no order of
// its own.
func (inv *Inventory) Replace(data map[string]int) {
	inv.quantities = make(map[string]int, len(data))
	inv.order = inv.order[:0]
	for name, qty := range data {
		if name == "" || qty <= 0 {
			continue
		}
		inv.quantities[name] = qty
		inv.order = append(inv.order, name)
	}
	sort.Strings(inv.order)
}

func (inv *Inventory) delete(name string) {
	delete(inv.quantities, name)
	for i, n := range inv.order {
		if n == name {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
}
