package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefinder/backend/internal/models"
)

// GormStore compiles predicate trees to SQL against the recipes table.
// Postgres is the production dialect; SQLite is supported for tests, with the
// same JSONB text-cast switch the rest of the codebase uses.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Find(ctx context.Context, p Predicate, limit, skip int) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})
	if p != nil {
		sql, args, err := s.compile(p)
		if err != nil {
			return nil, err
		}
		query = query.Where(sql, args...)
	}

	// Deterministic catalog order for stable downstream ranking.
	query = query.Order("created_at, id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if skip > 0 {
		query = query.Offset(skip)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("catalog find: %w", err)
	}
	return recipes, nil
}

func (s *GormStore) Count(ctx context.Context, p Predicate) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})
	if p != nil {
		sql, args, err := s.compile(p)
		if err != nil {
			return 0, err
		}
		query = query.Where(sql, args...)
	}

	var n int64
	if err := query.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("catalog count: %w", err)
	}
	return n, nil
}

func (s *GormStore) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog get: %w", err)
	}
	return &recipe, nil
}

func (s *GormStore) postgres() bool {
	return s.db.Dialector.Name() == "postgres"
}

// column returns the SQL expression for a field, casting JSONB arrays to text
// on Postgres so substring operators apply.
func (s *GormStore) column(f Field) string {
	if listField(f) && s.postgres() {
		return string(f) + "::text"
	}
	return string(f)
}

func (s *GormStore) compile(p Predicate) (string, []interface{}, error) {
	switch n := p.(type) {
	case Leaf:
		return s.compileLeaf(n)
	case And:
		return s.compileGroup(n.Preds, " AND ")
	case Or:
		return s.compileGroup(n.Preds, " OR ")
	case Not:
		sql, args, err := s.compile(n.Pred)
		if err != nil {
			return "", nil, err
		}
		return "NOT (" + sql + ")", args, nil
	}
	return "", nil, fmt.Errorf("catalog: unknown predicate node %T", p)
}

func (s *GormStore) compileGroup(preds []Predicate, sep string) (string, []interface{}, error) {
	if len(preds) == 0 {
		// An empty AND matches everything, an empty OR nothing.
		if sep == " AND " {
			return "1=1", nil, nil
		}
		return "1=0", nil, nil
	}

	parts := make([]string, 0, len(preds))
	var args []interface{}
	for _, p := range preds {
		sql, a, err := s.compile(p)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, "("+sql+")")
		args = append(args, a...)
	}
	return strings.Join(parts, sep), args, nil
}

func (s *GormStore) compileLeaf(l Leaf) (string, []interface{}, error) {
	sql, args, err := s.compileLeafOp(l)
	if err != nil {
		return "", nil, err
	}
	if l.Negate {
		sql = "NOT (" + sql + ")"
	}
	return sql, args, nil
}

func (s *GormStore) compileLeafOp(l Leaf) (string, []interface{}, error) {
	col := s.column(l.Field)

	if numericField(l.Field) {
		switch l.Op {
		case OpEquals:
			return col + " = ?", []interface{}{l.Num}, nil
		case OpLessThan:
			return col + " < ?", []interface{}{l.Num}, nil
		case OpGreaterThan:
			return col + " > ?", []interface{}{l.Num}, nil
		}
		return "", nil, fmt.Errorf("catalog: op %d not supported on numeric field %s", l.Op, l.Field)
	}

	switch l.Op {
	case OpEquals:
		if listField(l.Field) {
			// Match a whole JSON array element, e.g. %"vegetarian"%.
			return "LOWER(" + col + ") LIKE ?", []interface{}{`%"` + strings.ToLower(l.Str) + `"%`}, nil
		}
		return "LOWER(" + col + ") = ?", []interface{}{strings.ToLower(l.Str)}, nil

	case OpContains:
		return "LOWER(" + col + ") LIKE ?", []interface{}{"%" + strings.ToLower(l.Str) + "%"}, nil

	case OpRegex:
		if s.postgres() {
			return col + " ~* ?", []interface{}{l.Str}, nil
		}
		// SQLite has no regexp operator by default; the alternation patterns
		// used by the engine degrade cleanly to OR-ed substring matches.
		terms := strings.Split(l.Str, "|")
		parts := make([]string, 0, len(terms))
		args := make([]interface{}, 0, len(terms))
		for _, t := range terms {
			parts = append(parts, "LOWER("+col+") LIKE ?")
			args = append(args, "%"+strings.ToLower(t)+"%")
		}
		return "(" + strings.Join(parts, " OR ") + ")", args, nil

	case OpIn:
		if listField(l.Field) {
			parts := make([]string, 0, len(l.Set))
			args := make([]interface{}, 0, len(l.Set))
			for _, v := range l.Set {
				parts = append(parts, "LOWER("+col+") LIKE ?")
				args = append(args, `%"`+strings.ToLower(v)+`"%`)
			}
			return "(" + strings.Join(parts, " OR ") + ")", args, nil
		}
		lowered := make([]string, len(l.Set))
		for i, v := range l.Set {
			lowered[i] = strings.ToLower(v)
		}
		return "LOWER(" + col + ") IN ?", []interface{}{lowered}, nil
	}

	return "", nil, fmt.Errorf("catalog: op %d not supported on field %s", l.Op, l.Field)
}
