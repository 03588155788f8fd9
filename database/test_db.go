package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitTestDB opens an isolated in-memory sqlite database with the service schema.
func InitTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		panic("failed to connect test database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic("failed to access test database handle")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		panic("failed to migrate test database")
	}
	return db
}

func CloseTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
