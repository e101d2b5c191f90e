package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

var DB *gorm.DB

// ConnectDatabase opens the configured database and runs auto migrations.
// Postgres is the default; DB_DRIVER=sqlite switches to a local file for
// development (DB_PATH, default sumatest.db).
func ConnectDatabase() {
	var dialector gorm.Dialector

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "sumatest.db"
		}
		dialector = sqlite.Open(path)
		log.Println("Connecting to SQLite...")
	} else {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL environment variable not set")
		}
		dialector = postgres.Open(dsn)
		log.Println("Connecting to PostgreSQL...")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Match{}); err != nil {
		log.Fatal("Auto migration failed: ", err)
	}

	DB = db
}
