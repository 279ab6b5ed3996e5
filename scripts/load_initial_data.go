package main

import (
	"fmt"
	"log"
	"time"

	"myjobs/internal/config"
	"myjobs/internal/database"
	"myjobs/internal/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := seed.ReadDir("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read YAML files: %v", err)
	}

	summary, err := seed.Load(db, data)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("📋 View sources: %d created, %d total", summary.ViewSources, len(data.ViewSources))
	log.Printf("📋 Users: %d created, %d total", summary.Users, len(data.Users))
	log.Printf("📋 Companies: %d created, %d total", summary.Companies, len(data.Companies))
	log.Printf("📋 Business units: %d created", summary.Units)
	log.Printf("📋 Sites: %d created, %d total", summary.Sites, len(data.Sites))
	log.Printf("📋 Products: %d created, %d total", summary.Products, len(data.Products))
	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts, database.PrimaryModels()...)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
