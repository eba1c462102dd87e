package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"airline_reservation/internal/models"
)

// OpenDB connects to the configured database and ensures the schema
// exists. SQLite is the default; set DB_DRIVER=postgres to run against a
// Postgres server. The handle is returned to the caller, which owns the
// wiring — there is no package-level connection.
func OpenDB() *gorm.DB {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	var dialector gorm.Dialector
	switch getEnv("DB_DRIVER", "sqlite") {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "password"),
			getEnv("DB_NAME", "airline"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_SSLMODE", "disable"),
			getEnv("DB_TIMEZONE", "UTC"),
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(getEnv("DB_PATH", "airline_reservation.db"))
	}

	// TranslateError maps driver-specific unique violations onto
	// gorm.ErrDuplicatedKey across both backends.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Flight{}, &models.Booking{}); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	return db
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
