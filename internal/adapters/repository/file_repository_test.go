package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/core/internal/domain/entities"
	"github.com/stockroom/core/internal/infrastructure/logger"
)

func newTestFileRepository(t *testing.T) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	repo := NewFileRepository(path, logger.NewNop()).(*FileRepository)
	return repo, path
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo, _ := newTestFileRepository(t)
	ctx := context.Background()

	items := []entities.Item{
		{Name: "apple", Quantity: 7},
		{Name: "banana", Quantity: 2},
	}
	require.NoError(t, repo.Save(ctx, items))

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"apple": 7, "banana": 2}, data)
}

func TestFileRepositorySaveOverwrites(t *testing.T) {
	repo, _ := newTestFileRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []entities.Item{{Name: "old", Quantity: 1}}))
	require.NoError(t, repo.Save(ctx, []entities.Item{{Name: "new", Quantity: 3}}))

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"new": 3}, data)
}

func TestFileRepositorySaveIsPrettyPrinted(t *testing.T) {
	repo, path := newTestFileRepository(t)

	require.NoError(t, repo.Save(context.Background(), []entities.Item{{Name: "apple", Quantity: 7}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"apple\": 7")
	assert.True(t, json.Valid(raw))
}

func TestFileRepositoryLoadMissingFile(t *testing.T) {
	repo, _ := newTestFileRepository(t)

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileRepositoryLoadRejectsArray(t *testing.T) {
	repo, path := newTestFileRepository(t)
	require.NoError(t, os.WriteFile(path, []byte(`["apple", 7]`), 0o644))

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileRepositoryLoadRejectsInvalidJSON(t *testing.T) {
	repo, path := newTestFileRepository(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"apple": `), 0o644))

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileRepositoryLoadCoercesValues(t *testing.T) {
	repo, path := newTestFileRepository(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"apple": 7.9, "banana": "3"}`), 0o644))

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"apple": 7, "banana": 3}, data)
}

func TestFileRepositoryLoadRejectsUncoercibleValue(t *testing.T) {
	repo, path := newTestFileRepository(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"apple": true}`), 0o644))

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileRepositoryLoadKeepsZeroValues(t *testing.T) {
	// Pruning of zero quantities is the inventory's job, not the file's.
	repo, path := newTestFileRepository(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"apple": 7, "pear": 0}`), 0o644))

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"apple": 7, "pear": 0}, data)
}
