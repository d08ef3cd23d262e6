package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/database"
)

// Seeds the catalog database with the built-in recipe set. Safe to run more
// than once; existing rows are updated in place by ID.
func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	recipes := catalog.SeedRecipes()
	for i := range recipes {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&recipes[i]).Error
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", recipes[i].Name, err)
		}
		fmt.Printf("Seeded %s\n", recipes[i].Name)
	}

	log.Printf("Seeded %d recipes", len(recipes))
}
