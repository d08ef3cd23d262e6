package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreEmptyLoads(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ratings, err := store.LoadRatings(ctx)
	require.NoError(t, err)
	assert.Empty(t, ratings)

	features, err := store.LoadFeatures(ctx)
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestMemoryStoreRoundTripIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ratings := map[string]map[string]float64{"u1": {"r1": 4.5}}
	require.NoError(t, store.SaveRatings(ctx, ratings))

	// Mutating the caller's map after saving must not leak into the store.
	ratings["u1"]["r1"] = 1.0

	loaded, err := store.LoadRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.5, loaded["u1"]["r1"])

	// Nor must mutating a loaded copy.
	loaded["u1"]["r1"] = 2.0
	again, err := store.LoadRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.5, again["u1"]["r1"])
}

func TestMemoryStoreFeaturesRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	features := map[string]FeatureVector{"r1": {"cuisine:indian": 1.0, "time": 0.5}}
	require.NoError(t, store.SaveFeatures(ctx, features))

	loaded, err := store.LoadFeatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, features, loaded)
}
