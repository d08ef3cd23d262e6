package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a single catalog entry. Recipes are ingested in bulk and are
// read-only from the engine's point of view; search and ranking produce
// derived views and never rewrite the stored row. The ingredient list order
// is preserved by every transform (scaling, substitution).
type Recipe struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	Cuisine      string           `gorm:"size:100;index" json:"cuisine"`
	Course       string           `gorm:"size:100;index" json:"course"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	// DietTags are independent labels; a recipe may carry several at once
	// (e.g. both "vegetarian" and "gluten-free").
	DietTags      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"diet_tags"`
	TotalTimeMins int              `gorm:"index" json:"total_time_mins"`
	Taste         string           `gorm:"size:100" json:"taste,omitempty"`
	Rating        float64          `gorm:"type:float" json:"rating,omitempty"`
	Servings      int              `json:"servings,omitempty"`
	Calories      float64          `gorm:"type:float" json:"calories,omitempty"`
	Protein       float64          `gorm:"type:float" json:"protein,omitempty"`
	Carbs         float64          `gorm:"type:float" json:"carbs,omitempty"`
	Fat           float64          `gorm:"type:float" json:"fat,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}
