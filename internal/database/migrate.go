package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pageza/recipe-api/backend/internal/model"
)

// Migrate creates the recipes table and its indexes when they are missing
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	log.Printf("[Database] Recipes table ready (%s)", db.Dialector.Name())
	return nil
}
