package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/platefinder/backend/internal/models"
)

// ErrNotFound is returned by Get when no recipe has the requested ID.
var ErrNotFound = errors.New("catalog: recipe not found")

// Store is the query contract the retrieval engine holds against a recipe
// catalog. A nil predicate matches every recipe. Find returns recipes in a
// deterministic catalog order so that callers relying on stable ranking see
// reproducible tie-breaks.
type Store interface {
	Find(ctx context.Context, p Predicate, limit, skip int) ([]models.Recipe, error)
	Count(ctx context.Context, p Predicate) (int64, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
}
