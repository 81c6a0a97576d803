package ports

import (
	"context"

	"github.com/stockroom/core/internal/domain/entities"
)

// InventoryRepository defines the interface for persisting inventory snapshots
type InventoryRepository interface {
	// Load reads the persisted snapshot. A missing backing store is not an
	// error: implementations return an empty map so the caller starts from
	// an empty inventory.
	Load(ctx context.Context) (map[string]int, error)
	// Save overwrites the backing store with the given items.
	Save(ctx context.Context, items []entities.Item) error
}
