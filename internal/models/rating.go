package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRating records one user's rating of one recipe. The recommendation
// engine keeps its own flat in-memory copy of these; the table is the durable
// record.
type RecipeRating struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_recipe_ratings_user_recipe,unique" json:"user_id"`
	RecipeID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_recipe_ratings_user_recipe,unique" json:"recipe_id"`
	Rating    float64        `gorm:"not null" json:"rating"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RecipeRating) TableName() string {
	return "recipe_ratings"
}

// BeforeCreate assigns an ID when the database has no uuid default, as with
// the SQLite dialect used in tests.
func (r *RecipeRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
