package ports

import (
	"context"

	"github.com/stockroom/core/internal/domain/entities"
)

// DefaultLowStockThreshold is applied when a caller does not supply one.
const DefaultLowStockThreshold = 5

// InventoryService interface for inventory operations
type InventoryService interface {
	AddItem(ctx context.Context, req AddItemRequest) (*ItemResponse, error)
	RemoveItem(ctx context.Context, req RemoveItemRequest) (*ItemResponse, error)
	GetQuantity(ctx context.Context, name string) int
	LowStock(ctx context.Context, threshold int) []string
	Report(ctx context.Context) []entities.Item
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	Audit(ctx context.Context, limit int) []entities.AuditEntry
}

// AuthService interface for operator authentication
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// Request/Response Types

type AddItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Quantity int    `json:"quantity"`
}

type RemoveItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// ItemResponse reports the state of an item after a mutation. Removed is
// true when the operation pruned the entry from the inventory.
type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Removed  bool   `json:"removed"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenClaims carries the validated identity extracted from a token.
type TokenClaims struct {
	Subject string `json:"subject"`
}
