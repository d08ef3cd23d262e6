package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreFind(t *testing.T) {
	store := NewMemoryStore(SeedRecipes())
	ctx := context.Background()

	all, err := store.Find(ctx, nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	indian, err := store.Find(ctx, Contains(FieldCuisine, "indian"), 0, 0)
	require.NoError(t, err)
	assert.Len(t, indian, 3)

	// Catalog order is slice order.
	assert.Equal(t, "Vegetable Biryani", indian[0].Name)
	assert.Equal(t, "Chicken Tikka Masala", indian[1].Name)
	assert.Equal(t, "Gulab Jamun", indian[2].Name)
}

func TestMemoryStoreLimitAndSkip(t *testing.T) {
	store := NewMemoryStore(SeedRecipes())
	ctx := context.Background()

	page, err := store.Find(ctx, nil, 3, 0)
	require.NoError(t, err)
	assert.Len(t, page, 3)

	next, err := store.Find(ctx, nil, 3, 3)
	require.NoError(t, err)
	require.Len(t, next, 3)
	assert.NotEqual(t, page[0].ID, next[0].ID)
}

func TestMemoryStoreCount(t *testing.T) {
	store := NewMemoryStore(SeedRecipes())

	n, err := store.Count(context.Background(), Equals(FieldDietTags, "vegan"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestMemoryStoreGet(t *testing.T) {
	seeds := SeedRecipes()
	store := NewMemoryStore(seeds)
	ctx := context.Background()

	got, err := store.Get(ctx, seeds[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seeds[0].Name, got.Name)

	_, err = store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreHonorsContext(t *testing.T) {
	store := NewMemoryStore(SeedRecipes())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Find(ctx, nil, 0, 0)
	assert.Error(t, err)
}
