package search

import (
	"context"

	"github.com/platefinder/backend/internal/models"
)

// SearchResult is the outcome of a relaxation search. Relaxed lists the keys
// that had to be dropped, in the order they were dropped; it is empty when
// the full constraint set matched. An empty Results with a full Relaxed list
// only happens against an empty catalog.
type SearchResult struct {
	Results []models.Recipe `json:"results"`
	Relaxed []Key           `json:"relaxed"`
}

// Search retrieves recipes for a preference map, progressively relaxing
// constraints when the full set matches nothing. The chain is: full
// predicate, stepwise relaxation in RelaxationOrder (bounded by
// MaxRelaxationSteps), a diet-only minimal query when diet was stated, and
// finally an unfiltered sample with every key reported relaxed. The call is
// total: it returns a well-formed (possibly empty) result, never an error.
func (e *Engine) Search(ctx context.Context, prefs Preferences) SearchResult {
	sess := e.session()
	limit := e.opts.PageSize

	results := sess.find(ctx, BuildPredicate(prefs), limit)
	if len(results) > 0 {
		return SearchResult{Results: results, Relaxed: []Key{}}
	}

	relaxed := []Key{}
	remaining := prefs.Clone()
	for _, k := range RelaxationOrder {
		if !remaining.Has(k) {
			continue
		}
		delete(remaining, k)
		relaxed = append(relaxed, k)

		results = sess.find(ctx, BuildPredicate(remaining), limit)
		if len(results) > 0 {
			return SearchResult{Results: results, Relaxed: relaxed}
		}
		if len(relaxed) >= e.opts.MaxRelaxationSteps {
			break
		}
	}

	// Relaxation budget exhausted. Keep the one constraint that matters most
	// and retry with diet alone.
	if diet, ok := prefs[KeyDiet]; ok {
		results = sess.find(ctx, BuildPredicate(Preferences{KeyDiet: diet}), limit)
		if len(results) > 0 {
			for _, k := range prefs.sortedKeys() {
				if k != KeyDiet && !containsKey(relaxed, k) {
					relaxed = append(relaxed, k)
				}
			}
			return SearchResult{Results: results, Relaxed: relaxed}
		}
	}

	// Last resort: an unfiltered sample of the catalog.
	results = sess.find(ctx, nil, limit)
	return SearchResult{Results: results, Relaxed: prefs.sortedKeys()}
}

func containsKey(keys []Key, k Key) bool {
	for _, have := range keys {
		if have == k {
			return true
		}
	}
	return false
}
