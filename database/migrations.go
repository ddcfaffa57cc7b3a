package database

import (
	"log"

	"github.com/kavia-common/simple-to-do-list-311518-311527/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the tasks table. Invoked explicitly from
// Setup before the handler accepts requests, never as an import side effect.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Task{},
	)
	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}
