package storage

import (
	"github.com/PranzNi/RPG-NURSE/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database and keeps the schema updated
// via AutoMigrate. The database file is created on first use.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Account{}); err != nil {
		return nil, err
	}
	return db, nil
}
