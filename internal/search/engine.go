package search

import (
	"context"
	"log"
	"time"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/models"
)

// Engine runs the three retrieval modes (relaxation search, weighted ranking,
// pantry matching) against a catalog store. Every operation is a pure
// function of the preference input and the catalog snapshot; independent
// calls share nothing and may run in parallel.
type Engine struct {
	store    catalog.Store
	fallback catalog.Store
	opts     Options
}

// Options tunes an Engine. Zero values select the defaults.
type Options struct {
	// PageSize bounds the result list of every mode. Default 10.
	PageSize int
	// MaxRelaxationSteps caps how many constraints a search may drop before
	// jumping to the minimal-query fallbacks. Default 3.
	MaxRelaxationSteps int
	// PoolSize bounds the candidate pool fetched for ranking and pantry
	// matching. Default 500.
	PoolSize int
	// StoreTimeout bounds each individual catalog query; an expired query
	// degrades the call to the seed catalog instead of hanging the caller.
	// Default 3s.
	StoreTimeout time.Duration
	// MinMatchFraction is the pantry coverage threshold. Default 0.6.
	MinMatchFraction float64
}

func (o *Options) applyDefaults() {
	if o.PageSize <= 0 {
		o.PageSize = 10
	}
	if o.MaxRelaxationSteps <= 0 {
		o.MaxRelaxationSteps = 3
	}
	if o.PoolSize <= 0 {
		o.PoolSize = 500
	}
	if o.StoreTimeout <= 0 {
		o.StoreTimeout = 3 * time.Second
	}
	if o.MinMatchFraction <= 0 {
		o.MinMatchFraction = 0.6
	}
}

// NewEngine creates an engine over the given store. The built-in seed catalog
// becomes the fallback store for the duration of any call whose store queries
// fail.
func NewEngine(store catalog.Store, opts Options) *Engine {
	opts.applyDefaults()
	return &Engine{
		store:    store,
		fallback: catalog.NewMemoryStore(catalog.SeedRecipes()),
		opts:     opts,
	}
}

// querySession issues bounded store queries for a single engine call. The
// first failed query switches the rest of the call to the seed catalog; the
// session never surfaces a store error to the engine.
type querySession struct {
	engine   *Engine
	store    catalog.Store
	degraded bool
}

func (e *Engine) session() *querySession {
	return &querySession{engine: e, store: e.store}
}

func (q *querySession) find(ctx context.Context, p catalog.Predicate, limit int) []models.Recipe {
	results, err := q.findOnce(ctx, q.store, p, limit)
	if err == nil {
		return results
	}
	if !q.degraded {
		log.Printf("catalog store unavailable, serving from seed recipes: %v", err)
		q.degraded = true
		q.store = q.engine.fallback
		if results, err = q.findOnce(ctx, q.store, p, limit); err == nil {
			return results
		}
	}
	return nil
}

func (q *querySession) findOnce(ctx context.Context, store catalog.Store, p catalog.Predicate, limit int) ([]models.Recipe, error) {
	qctx, cancel := context.WithTimeout(ctx, q.engine.opts.StoreTimeout)
	defer cancel()
	return store.Find(qctx, p, limit, 0)
}
