package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/stockroom/core/internal/domain/entities"
	"github.com/stockroom/core/internal/infrastructure/logger"
	"github.com/stockroom/core/internal/ports"
)

// FileRepository persists the inventory as a pretty-printed JSON object
// mapping item name to quantity, e.g. {"apple": 7}.
type FileRepository struct {
	path   string
	logger *logger.Logger
}

// NewFileRepository creates a repository backed by the given file path.
func NewFileRepository(path string, log *logger.Logger) ports.InventoryRepository {
	return &FileRepository{path: path, logger: log.WithComponent("file_repository")}
}

// Load reads the snapshot from disk. A missing file yields an empty map
// and no error. A file that is not valid JSON, not an object at the top
// level, or carries values that cannot be coerced to integers is treated
// as corruption: it also yields an empty map, logged at warn level, so
// the caller restarts from an empty inventory rather than failing.
func (r *FileRepository) Load(ctx context.Context) (map[string]int, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Infow("Inventory file not found, starting empty", "path", r.path)
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("read inventory file: %w", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		r.logger.Warnw("Inventory file is not a JSON object, resetting", "path", r.path, "error", err)
		return map[string]int{}, nil
	}

	data := make(map[string]int, len(decoded))
	for name, value := range decoded {
		qty, err := coerceQuantity(value)
		if err != nil {
			r.logger.Warnw("Inventory file carries a non-integer quantity, resetting",
				"path", r.path, "item", name, "error", err)
			return map[string]int{}, nil
		}
		data[name] = qty
	}

	return data, nil
}

// Save overwrites the file with the given items.
func (r *FileRepository) Save(ctx context.Context, items []entities.Item) error {
	snapshot := make(map[string]int, len(items))
	for _, item := range items {
		snapshot[item.Name] = item.Quantity
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write inventory file: %w", err)
	}

	r.logger.Infow("Saved inventory", "path", r.path, "items", len(items))
	return nil
}

// coerceQuantity converts whatever the JSON decoder produced into an
// integer quantity. Fractional numbers are truncated and numeric strings
// are parsed; anything else is rejected.
func coerceQuantity(value interface{}) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case string:
		qty, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("quantity %q is not an integer", v)
		}
		return qty, nil
	default:
		return 0, fmt.Errorf("quantity has unsupported type %T", value)
	}
}
