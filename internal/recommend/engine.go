package recommend

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/platefinder/backend/internal/models"
)

// Recommender is an item-based collaborative filter over sparse recipe
// feature vectors. Feature vectors and the derived similarity matrix are the
// only shared mutable state in the system; mutations rebuild the matrix in
// full and swap it in under the write lock, so readers always see either the
// old matrix or the new one, never a half-built mix. Catalogs are ingested in
// batch, so full recomputation is acceptable.
type Recommender struct {
	mu       sync.RWMutex
	store    Store
	features map[string]FeatureVector
	ratings  map[string]map[string]float64
	sim      map[string]map[string]float64
}

// NewRecommender creates an empty recommender backed by the given persistence
// store.
func NewRecommender(store Store) *Recommender {
	return &Recommender{
		store:    store,
		features: make(map[string]FeatureVector),
		ratings:  make(map[string]map[string]float64),
		sim:      make(map[string]map[string]float64),
	}
}

// Load restores the persisted rating and feature tables and computes the
// similarity matrix. Call once at startup.
func (r *Recommender) Load(ctx context.Context) error {
	ratings, err := r.store.LoadRatings(ctx)
	if err != nil {
		return fmt.Errorf("load user ratings: %w", err)
	}
	features, err := r.store.LoadFeatures(ctx)
	if err != nil {
		return fmt.Errorf("load recipe features: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ratings != nil {
		r.ratings = ratings
	}
	if features != nil {
		r.features = features
	}
	r.sim = buildSimilarity(r.features)
	log.Printf("recommender loaded: %d users, %d recipes", len(r.ratings), len(r.features))
	return nil
}

// IndexCatalog replaces every recipe's feature vector from the given catalog
// snapshot and recomputes the similarity matrix once. The feature table is
// rewritten in full afterwards.
func (r *Recommender) IndexCatalog(ctx context.Context, recipes []models.Recipe) error {
	features := make(map[string]FeatureVector, len(recipes))
	for i := range recipes {
		features[recipes[i].ID.String()] = ExtractFeatures(&recipes[i])
	}

	r.mu.Lock()
	r.features = features
	r.sim = buildSimilarity(features)
	r.mu.Unlock()

	return r.store.SaveFeatures(ctx, features)
}

// UpdateRecipe refreshes one recipe's feature vector. The full matrix is
// rebuilt before the method returns; similarity queries never serve a stale
// row for an updated recipe.
func (r *Recommender) UpdateRecipe(ctx context.Context, recipe *models.Recipe) error {
	r.mu.Lock()
	r.features[recipe.ID.String()] = ExtractFeatures(recipe)
	snapshot := r.copyFeaturesLocked()
	r.sim = buildSimilarity(r.features)
	r.mu.Unlock()

	return r.store.SaveFeatures(ctx, snapshot)
}

// RecordRating stores one user's rating of one recipe and rewrites the rating
// table in full.
func (r *Recommender) RecordRating(ctx context.Context, userID, recipeID string, rating float64) error {
	r.mu.Lock()
	userRatings, ok := r.ratings[userID]
	if !ok {
		userRatings = make(map[string]float64)
		r.ratings[userID] = userRatings
	}
	userRatings[recipeID] = rating
	snapshot := r.copyRatingsLocked()
	r.mu.Unlock()

	return r.store.SaveRatings(ctx, snapshot)
}

// Similarity returns the cosine similarity between two recipes, 1.0 for a
// recipe against itself, 0 for unknown pairs.
func (r *Recommender) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sim[a][b]
}

// SimilarRecipes returns up to n recipe IDs most similar to the given recipe,
// descending, excluding the recipe itself. Ties break by recipe ID so the
// result is deterministic. Unknown recipes yield nothing.
func (r *Recommender) SimilarRecipes(recipeID string, n int) []string {
	r.mu.RLock()
	row, ok := r.sim[recipeID]
	if !ok {
		r.mu.RUnlock()
		return nil
	}
	type scored struct {
		id  string
		sim float64
	}
	candidates := make([]scored, 0, len(row))
	for id, s := range row {
		if id != recipeID {
			candidates = append(candidates, scored{id, s})
		}
	}
	r.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].sim != candidates[j].sim {
			return candidates[i].sim > candidates[j].sim
		}
		return candidates[i].id < candidates[j].id
	})
	if n > 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids
}

// PredictRating estimates how the user would rate the recipe from their
// rating history, weighting each past rating by its recipe's similarity to
// the target. ok is false when the user has no ratings with nonzero
// similarity to the target; in that case there is no prediction, not a zero
// one.
func (r *Recommender) PredictRating(userID, recipeID string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.predictLocked(userID, recipeID)
}

func (r *Recommender) predictLocked(userID, recipeID string) (float64, bool) {
	userRatings := r.ratings[userID]
	if len(userRatings) == 0 {
		return 0, false
	}

	var numerator, denominator float64
	for ratedID, rating := range userRatings {
		sim := r.sim[ratedID][recipeID]
		if ratedID == recipeID {
			sim = 1.0
		}
		if sim == 0 {
			continue
		}
		numerator += sim * rating
		if sim < 0 {
			denominator += -sim
		} else {
			denominator += sim
		}
	}
	if denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}

// Recommend predicts a rating for every recipe the user has not rated and
// returns the top n recipe IDs by predicted rating, descending, ties broken
// by recipe ID.
func (r *Recommender) Recommend(userID string, n int) []string {
	r.mu.RLock()
	userRatings := r.ratings[userID]
	type scored struct {
		id     string
		rating float64
	}
	var predictions []scored
	for recipeID := range r.features {
		if _, rated := userRatings[recipeID]; rated {
			continue
		}
		if predicted, ok := r.predictLocked(userID, recipeID); ok {
			predictions = append(predictions, scored{recipeID, predicted})
		}
	}
	r.mu.RUnlock()

	sort.Slice(predictions, func(i, j int) bool {
		if predictions[i].rating != predictions[j].rating {
			return predictions[i].rating > predictions[j].rating
		}
		return predictions[i].id < predictions[j].id
	})
	if n > 0 && len(predictions) > n {
		predictions = predictions[:n]
	}
	ids := make([]string, len(predictions))
	for i, p := range predictions {
		ids[i] = p.id
	}
	return ids
}

// UserRatings returns a copy of one user's rating map.
func (r *Recommender) UserRatings(userID string) map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]float64, len(r.ratings[userID]))
	for id, rating := range r.ratings[userID] {
		out[id] = rating
	}
	return out
}

func (r *Recommender) copyFeaturesLocked() map[string]FeatureVector {
	out := make(map[string]FeatureVector, len(r.features))
	for id, fv := range r.features {
		copied := make(FeatureVector, len(fv))
		for name, v := range fv {
			copied[name] = v
		}
		out[id] = copied
	}
	return out
}

func (r *Recommender) copyRatingsLocked() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(r.ratings))
	for user, m := range r.ratings {
		copied := make(map[string]float64, len(m))
		for id, v := range m {
			copied[id] = v
		}
		out[user] = copied
	}
	return out
}

// buildSimilarity computes the full pairwise matrix. Self-similarity is 1.0
// by definition; off-diagonal entries are computed once and mirrored.
func buildSimilarity(features map[string]FeatureVector) map[string]map[string]float64 {
	ids := make([]string, 0, len(features))
	for id := range features {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sim := make(map[string]map[string]float64, len(ids))
	for _, id := range ids {
		sim[id] = map[string]float64{id: 1.0}
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			s := Cosine(features[ids[i]], features[ids[j]])
			sim[ids[i]][ids[j]] = s
			sim[ids[j]][ids[i]] = s
		}
	}
	return sim
}
