package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stockroom/core/internal/domain/entities"
	"github.com/stockroom/core/internal/infrastructure/logger"
	"github.com/stockroom/core/internal/ports"
)

// InventoryService owns the live inventory and applies mutations to it.
// The domain Inventory is single-owner state; the mutex only serializes
// the concurrent callers the HTTP adapter brings with it.
type InventoryService struct {
	mu        sync.Mutex
	inventory *entities.Inventory
	audit     *entities.AuditTrail
	repo      ports.InventoryRepository
	logger    *logger.Logger
}

// NewInventoryService creates a new inventory service starting from an
// empty inventory.
func NewInventoryService(repo ports.InventoryRepository, auditCapacity int, log *logger.Logger) *InventoryService {
	return &InventoryService{
		inventory: entities.NewInventory(),
		audit:     entities.NewAuditTrail(auditCapacity),
		repo:      repo,
		logger:    log.WithComponent("inventory"),
	}
}

// AddItem increases the stock of the named item and records the mutation
// in the audit trail.
func (s *InventoryService) AddItem(ctx context.Context, req ports.AddItemRequest) (*ports.ItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resulting, err := s.inventory.Add(req.Name, req.Quantity)
	if err != nil {
		s.logger.Errorw("Add item rejected", "item", req.Name, "error", err)
		return nil, err
	}

	s.audit.Record(entities.NewAuditEntry(entities.AuditActionAdd, req.Name, req.Quantity, resulting))
	s.logger.Infow("Added item", "item", req.Name, "quantity", req.Quantity, "new_quantity", resulting)

	return &ports.ItemResponse{
		Name:     req.Name,
		Quantity: resulting,
		Removed:  resulting == 0,
	}, nil
}

// RemoveItem decreases the stock of the named item. Removing more than is
// present deletes the entry entirely. An absent item is benign and
// surfaces as ErrItemNotFound after a warning log.
func (s *InventoryService) RemoveItem(ctx context.Context, req ports.RemoveItemRequest) (*ports.ItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, err := s.inventory.Remove(req.Name, req.Quantity)
	if err != nil {
		if errors.Is(err, entities.ErrItemNotFound) {
			s.logger.Warnw("Remove requested for unknown item", "item", req.Name)
		} else {
			s.logger.Errorw("Remove item rejected", "item", req.Name, "error", err)
		}
		return nil, err
	}

	s.audit.Record(entities.NewAuditEntry(entities.AuditActionRemove, req.Name, req.Quantity, remaining))
	if remaining == 0 {
		s.logger.Infow("Item removed from inventory", "item", req.Name)
	} else {
		s.logger.Infow("Decreased item", "item", req.Name, "quantity", req.Quantity, "new_quantity", remaining)
	}

	return &ports.ItemResponse{
		Name:     req.Name,
		Quantity: remaining,
		Removed:  remaining == 0,
	}, nil
}

// GetQuantity returns the stored quantity for the named item, or 0 when
// it is absent.
func (s *InventoryService) GetQuantity(ctx context.Context, name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Quantity(name)
}

// LowStock returns the names of items with quantity strictly below the
// threshold, in insertion order.
func (s *InventoryService) LowStock(ctx context.Context, threshold int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.LowItems(threshold)
}

// Report logs one line per item and returns the items in insertion order.
func (s *InventoryService) Report(ctx context.Context) []entities.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.inventory.Items()
	s.logger.Infow("Items report", "items", len(items))
	for _, item := range items {
		s.logger.Infow("Item", "name", item.Name, "quantity", item.Quantity)
	}
	return items
}

// Save persists the current inventory through the repository.
func (s *InventoryService) Save(ctx context.Context) error {
	s.mu.Lock()
	items := s.inventory.Items()
	s.mu.Unlock()

	if err := s.repo.Save(ctx, items); err != nil {
		s.logger.Errorw("Failed to save inventory", "error", err)
		return fmt.Errorf("save inventory: %w", err)
	}

	return nil
}

// Load replaces the live inventory with the persisted snapshot. A missing
// backing store produces an empty inventory and is not an error.
func (s *InventoryService) Load(ctx context.Context) error {
	data, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Errorw("Failed to load inventory", "error", err)
		return fmt.Errorf("load inventory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inventory.Replace(data)
	s.audit.Record(entities.NewAuditEntry(entities.AuditActionLoad, "", 0, s.inventory.Len()))
	s.logger.Infow("Loaded inventory", "items", s.inventory.Len())
	return nil
}

// Audit returns up to limit recent audit entries, oldest first.
func (s *InventoryService) Audit(ctx context.Context, limit int) []entities.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audit.Recent(limit)
}
