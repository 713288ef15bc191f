package seenfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	store := NewStore(path)

	ids := map[string]struct{}{"222": {}, "111": {}, "333": {}}
	require.NoError(t, store.Save(context.Background(), ids))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ids, loaded)

	// файл — отсортированный человекочитаемый JSON-список
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk []string
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, []string{"111", "222", "333"}, onDisk)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	loaded, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStoreLoadCoercesNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	require.NoError(t, os.WriteFile(path, []byte(`["123", 456]`), 0o644))

	loaded, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"123": {}, "456": {}}, loaded)
}

func TestStoreLoadNonListPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ids": ["1"]}`), 0o644))

	loaded, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
