package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/stockroom/core/internal/domain/entities"
	"github.com/stockroom/core/internal/ports"
)

// PostgresRepository persists inventory snapshots in the stock_items table.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a Postgres-backed inventory repository.
func NewPostgresRepository(db *sqlx.DB) ports.InventoryRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) (map[string]int, error) {
	query := `SELECT name, quantity FROM stock_items`

	var items []entities.Item
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	data := make(map[string]int, len(items))
	for _, item := range items {
		data[item.Name] = item.Quantity
	}

	return data, nil
}

// Save replaces the stored snapshot with the given items in a single
// transaction, matching the overwrite semantics of the file backend.
func (r *PostgresRepository) Save(ctx context.Context, items []entities.Item) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stock_items`); err != nil {
		return fmt.Errorf("clear inventory: %w", err)
	}

	insert := `INSERT INTO stock_items (name, quantity) VALUES ($1, $2)`
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, insert, item.Name, item.Quantity); err != nil {
			return fmt.Errorf("insert item %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}

	return nil
}
