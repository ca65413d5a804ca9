package config

import (
	"log"
	"os"
	"sync"

	"civiclink-be/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// ConnectDB opens the database and runs migrations. Uses the file named by
// DB_PATH, or a shared in-memory database when unset.
func ConnectDB() *gorm.DB {
	once.Do(func() {
		dsn := os.Getenv("DB_PATH")
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}

		d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := Migrate(d); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		log.Println("Connected to database!")
		db = d
	})

	return db
}

// Migrate creates or updates the schema for all entities.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&models.Citizen{},
		&models.MLA{},
		&models.Organization{},
		&models.Issue{},
		&models.Support{},
	)
}

// DB returns the active database handle, connecting on first use.
func DB() *gorm.DB {
	if db == nil {
		return ConnectDB()
	}
	return db
}

// SetDB swaps the active handle. Used by tests to run against an isolated
// in-memory database.
func SetDB(d *gorm.DB) {
	db = d
}
