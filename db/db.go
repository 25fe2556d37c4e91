package db

import (
	"critichub/models"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=critichub password=postgres sslmode=disable"
	}

	var openErr error
	DB, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if openErr != nil {
		log.Fatal("failed to connect to the database:", openErr)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates or updates the schema. Split out from InitDB so tests can
// run it against their own handle.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.User{}, &models.Admin{}, &models.Game{}, &models.Review{})
}
