package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"belarro/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// Migrate is split out so tests can run it against an in-memory database
// without the fatal-on-error behavior.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Product{},
		&entities.Kitchen{},
		&entities.StandingOrder{},
		&entities.OrderRecord{},
		&entities.User{},
		&entities.Submission{},
		&entities.Article{},
	)
}
