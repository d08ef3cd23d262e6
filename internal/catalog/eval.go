package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/platefinder/backend/internal/models"
)

// Matches evaluates a predicate tree directly against a recipe. This is the
// in-process twin of the SQL compilation in GormStore; the memory store and
// the seed-set fallback run on it.
func Matches(p Predicate, r *models.Recipe) bool {
	if p == nil {
		return true
	}
	switch n := p.(type) {
	case Leaf:
		return matchLeaf(n, r)
	case And:
		for _, c := range n.Preds {
			if !Matches(c, r) {
				return false
			}
		}
		return true
	case Or:
		for _, c := range n.Preds {
			if Matches(c, r) {
				return true
			}
		}
		return false
	case Not:
		return !Matches(n.Pred, r)
	}
	return false
}

func matchLeaf(l Leaf, r *models.Recipe) bool {
	var matched bool
	if numericField(l.Field) {
		matched = matchNumeric(l, fieldNumber(l.Field, r))
	} else {
		matched = matchStrings(l, fieldStrings(l.Field, r))
	}
	if l.Negate {
		return !matched
	}
	return matched
}

func matchNumeric(l Leaf, v float64) bool {
	switch l.Op {
	case OpEquals:
		return v == l.Num
	case OpLessThan:
		return v < l.Num
	case OpGreaterThan:
		return v > l.Num
	case OpIn:
		for _, s := range l.Set {
			if n, err := strconv.ParseFloat(s, 64); err == nil && n == v {
				return true
			}
		}
	}
	return false
}

func matchStrings(l Leaf, values []string) bool {
	want := strings.ToLower(l.Str)
	switch l.Op {
	case OpEquals:
		for _, v := range values {
			if strings.EqualFold(v, l.Str) {
				return true
			}
		}
	case OpContains:
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), want) {
				return true
			}
		}
	case OpRegex:
		re, err := regexp.Compile("(?i)" + l.Str)
		if err != nil {
			return false
		}
		for _, v := range values {
			if re.MatchString(v) {
				return true
			}
		}
	case OpIn:
		for _, v := range values {
			for _, s := range l.Set {
				if strings.EqualFold(v, s) {
					return true
				}
			}
		}
	}
	return false
}

// fieldStrings returns the string values a text leaf inspects: a single
// element for scalar columns, every element for list columns.
func fieldStrings(f Field, r *models.Recipe) []string {
	switch f {
	case FieldName:
		return []string{r.Name}
	case FieldDescription:
		return []string{r.Description}
	case FieldCuisine:
		return []string{r.Cuisine}
	case FieldCourse:
		return []string{r.Course}
	case FieldIngredients:
		return r.Ingredients
	case FieldDietTags:
		return r.DietTags
	}
	return nil
}

func fieldNumber(f Field, r *models.Recipe) float64 {
	switch f {
	case FieldTotalTime:
		return float64(r.TotalTimeMins)
	case FieldCalories:
		return r.Calories
	case FieldProtein:
		return r.Protein
	case FieldCarbs:
		return r.Carbs
	case FieldFat:
		return r.Fat
	}
	return 0
}
