package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store persists the recommender's auxiliary state: a user-rating table and a
// recipe-feature table, each a flat map keyed by identifier. Both tables are
// loaded once at startup and rewritten in full after each mutation; there is
// no partial-write format.
type Store interface {
	LoadRatings(ctx context.Context) (map[string]map[string]float64, error)
	SaveRatings(ctx context.Context, ratings map[string]map[string]float64) error
	LoadFeatures(ctx context.Context) (map[string]FeatureVector, error)
	SaveFeatures(ctx context.Context, features map[string]FeatureVector) error
}

const (
	ratingsKey  = "recommend:user_ratings"
	featuresKey = "recommend:recipe_features"
)

// RedisStore keeps each table as one JSON document in Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) LoadRatings(ctx context.Context) (map[string]map[string]float64, error) {
	data, err := s.client.Get(ctx, ratingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return make(map[string]map[string]float64), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", ratingsKey, err)
	}
	var ratings map[string]map[string]float64
	if err := json.Unmarshal(data, &ratings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ratingsKey, err)
	}
	return ratings, nil
}

func (s *RedisStore) SaveRatings(ctx context.Context, ratings map[string]map[string]float64) error {
	data, err := json.Marshal(ratings)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ratingsKey, err)
	}
	if err := s.client.Set(ctx, ratingsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", ratingsKey, err)
	}
	return nil
}

func (s *RedisStore) LoadFeatures(ctx context.Context) (map[string]FeatureVector, error) {
	data, err := s.client.Get(ctx, featuresKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return make(map[string]FeatureVector), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", featuresKey, err)
	}
	var features map[string]FeatureVector
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("decode %s: %w", featuresKey, err)
	}
	return features, nil
}

func (s *RedisStore) SaveFeatures(ctx context.Context, features map[string]FeatureVector) error {
	data, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("encode %s: %w", featuresKey, err)
	}
	if err := s.client.Set(ctx, featuresKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", featuresKey, err)
	}
	return nil
}

// MemoryStore is the Store used in tests and when Redis is not configured.
type MemoryStore struct {
	mu       sync.Mutex
	ratings  map[string]map[string]float64
	features map[string]FeatureVector
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ratings:  make(map[string]map[string]float64),
		features: make(map[string]FeatureVector),
	}
}

func (s *MemoryStore) LoadRatings(ctx context.Context) (map[string]map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]map[string]float64, len(s.ratings))
	for user, m := range s.ratings {
		copied := make(map[string]float64, len(m))
		for id, v := range m {
			copied[id] = v
		}
		out[user] = copied
	}
	return out, nil
}

func (s *MemoryStore) SaveRatings(ctx context.Context, ratings map[string]map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = make(map[string]map[string]float64, len(ratings))
	for user, m := range ratings {
		copied := make(map[string]float64, len(m))
		for id, v := range m {
			copied[id] = v
		}
		s.ratings[user] = copied
	}
	return nil
}

func (s *MemoryStore) LoadFeatures(ctx context.Context) (map[string]FeatureVector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]FeatureVector, len(s.features))
	for id, fv := range s.features {
		copied := make(FeatureVector, len(fv))
		for name, v := range fv {
			copied[name] = v
		}
		out[id] = copied
	}
	return out, nil
}

func (s *MemoryStore) SaveFeatures(ctx context.Context, features map[string]FeatureVector) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.features = make(map[string]FeatureVector, len(features))
	for id, fv := range features {
		copied := make(FeatureVector, len(fv))
		for name, v := range fv {
			copied[name] = v
		}
		s.features[id] = copied
	}
	return nil
}
