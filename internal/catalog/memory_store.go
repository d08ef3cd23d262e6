package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/platefinder/backend/internal/models"
)

// MemoryStore evaluates predicates over an in-memory slice. It backs the
// built-in seed catalog the engine falls back to when the database is
// unreachable, and it is the store used by unit tests. Slice order is the
// catalog order.
type MemoryStore struct {
	recipes []models.Recipe
}

// NewMemoryStore creates a store over the given recipes. The slice is copied
// so later mutations by the caller do not leak into query results.
func NewMemoryStore(recipes []models.Recipe) *MemoryStore {
	copied := make([]models.Recipe, len(recipes))
	copy(copied, recipes)
	return &MemoryStore{recipes: copied}
}

// Find returns the recipes matching p in catalog order, honoring skip and
// limit. A limit of 0 or less means no limit.
func (s *MemoryStore) Find(ctx context.Context, p Predicate, limit, skip int) ([]models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var results []models.Recipe
	skipped := 0
	for i := range s.recipes {
		if !Matches(p, &s.recipes[i]) {
			continue
		}
		if skipped < skip {
			skipped++
			continue
		}
		results = append(results, s.recipes[i])
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

// Get returns the recipe with the given ID, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range s.recipes {
		if s.recipes[i].ID == id {
			recipe := s.recipes[i]
			return &recipe, nil
		}
	}
	return nil, ErrNotFound
}

// Count returns the number of recipes matching p.
func (s *MemoryStore) Count(ctx context.Context, p Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int64
	for i := range s.recipes {
		if Matches(p, &s.recipes[i]) {
			n++
		}
	}
	return n, nil
}
