package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAddAccumulates(t *testing.T) {
	inv := NewInventory()

	for _, qty := range []int{3, 4, 5} {
		_, err := inv.Add("apple", qty)
		require.NoError(t, err)
	}

	assert.Equal(t, 12, inv.Quantity("apple"))
}

func TestInventoryAddZeroCreatesNoEntry(t *testing.T) {
	inv := NewInventory()

	qty, err := inv.Add("pear", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, qty)
	assert.False(t, inv.Contains("pear"))
	assert.Equal(t, 0, inv.Len())
}

func TestInventoryAddRejectsEmptyName(t *testing.T) {
	inv := NewInventory()

	_, err := inv.Add("", 5)
	assert.ErrorIs(t, err, ErrEmptyItemName)
}

func TestInventoryNegativeAddPrunesEntry(t *testing.T) {
	inv := NewInventory()

	_, err := inv.Add("apple", 3)
	require.NoError(t, err)

	qty, err := inv.Add("apple", -5)
	require.NoError(t, err)

	assert.Equal(t, 0, qty)
	assert.False(t, inv.Contains("apple"))
}

func TestInventoryRemove(t *testing.T) {
	inv := NewInventory()
	_, err := inv.Add("apple", 10)
	require.NoError(t, err)

	remaining, err := inv.Remove("apple", 3)
	require.NoError(t, err)
	assert.Equal(t, 7, remaining)
	assert.Equal(t, 7, inv.Quantity("apple"))
}

func TestInventoryRemoveMissingItem(t *testing.T) {
	inv := NewInventory()

	_, err := inv.Remove("orange", 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestInventoryOverRemoveDeletesEntry(t *testing.T) {
	inv := NewInventory()
	_, err := inv.Add("banana", 2)
	require.NoError(t, err)

	remaining, err := inv.Remove("banana", 100)
	require.NoError(t, err)

	assert.Equal(t, 0, remaining)
	assert.False(t, inv.Contains("banana"))
}

func TestInventoryExactRemoveDeletesEntry(t *testing.T) {
	inv := NewInventory()
	_, err := inv.Add("banana", 2)
	require.NoError(t, err)

	remaining, err := inv.Remove("banana", 2)
	require.NoError(t, err)

	assert.Equal(t, 0, remaining)
	assert.False(t, inv.Contains("banana"))
}

func TestInventoryQuantityAbsentIsZero(t *testing.T) {
	inv := NewInventory()
	assert.Equal(t, 0, inv.Quantity("ghost"))
}

func TestInventoryQuantitiesStayPositive(t *testing.T) {
	inv := NewInventory()

	_, _ = inv.Add("a", 5)
	_, _ = inv.Add("b", 1)
	_, _ = inv.Add("a", -2)
	_, _ = inv.Remove("b", 1)
	_, _ = inv.Add("c", 0)
	_, _ = inv.Remove("a", 10)
	_, _ = inv.Add("d", 7)

	for _, item := range inv.Items() {
		assert.Greater(t, item.Quantity, 0, "item %s", item.Name)
	}
}

func TestInventoryLowItemsThresholdIsStrict(t *testing.T) {
	inv := NewInventory()
	_, _ = inv.Add("low", 4)
	_, _ = inv.Add("boundary", 5)
	_, _ = inv.Add("high", 6)

	assert.Equal(t, []string{"low"}, inv.LowItems(5))
}

func TestInventoryItemsInsertionOrder(t *testing.T) {
	inv := NewInventory()
	_, _ = inv.Add("zebra", 1)
	_, _ = inv.Add("apple", 2)
	_, _ = inv.Add("mango", 3)
	_, _ = inv.Add("zebra", 1) // increment must not reorder

	items := inv.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "zebra", items[0].Name)
	assert.Equal(t, "apple", items[1].Name)
	assert.Equal(t, "mango", items[2].Name)
}

func TestInventoryReinsertMovesToEnd(t *testing.T) {
	inv := NewInventory()
	_, _ = inv.Add("first", 1)
	_, _ = inv.Add("second", 1)
	_, _ = inv.Remove("first", 1)
	_, _ = inv.Add("first", 1)

	items := inv.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Name)
	assert.Equal(t, "first", items[1].Name)
}

func TestInventoryReplacePrunesNonPositive(t *testing.T) {
	inv := NewInventory()
	_, _ = inv.Add("stale", 9)

	inv.Replace(map[string]int{"apple": 7, "pear": 0, "rotten": -2, "banana": 1})

	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, 7, inv.Quantity("apple"))
	assert.Equal(t, 1, inv.Quantity("banana"))
	assert.False(t, inv.Contains("pear"))
	assert.False(t, inv.Contains("stale"))

	// Replacement order is sorted by name.
	items := inv.Items()
	assert.Equal(t, "apple", items[0].Name)
	assert.Equal(t, "banana", items[1].Name)
}

func TestInventorySnapshotIsACopy(t *testing.T) {
	inv := NewInventory()
	_, _ = inv.Add("apple", 7)

	snap := inv.Snapshot()
	snap["apple"] = 100

	assert.Equal(t, 7, inv.Quantity("apple"))
}

func TestAuditTrailEviction(t *testing.T) {
	trail := NewAuditTrail(2)

	trail.Record(NewAuditEntry(AuditActionAdd, "a", 1, 1))
	trail.Record(NewAuditEntry(AuditActionAdd, "b", 1, 1))
	trail.Record(NewAuditEntry(AuditActionAdd, "c", 1, 1))

	entries := trail.Recent(0)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Item)
	assert.Equal(t, "c", entries[1].Item)
}

func TestAuditTrailRecentLimit(t *testing.T) {
	trail := NewAuditTrail(10)
	for _, name := range []string{"a", "b", "c"} {
		trail.Record(NewAuditEntry(AuditActionAdd, name, 1, 1))
	}

	entries := trail.Recent(2)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Item)
	assert.Equal(t, "c", entries[1].Item)
}
