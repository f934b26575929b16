package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"
	tlog "project-tracker-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	file := flag.String("file", "scripts/data/seed.yaml", "YAML fixture to load")
	attempts := flag.Int("attempts", 60, "database connection attempts before giving up")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	tlog.Setup(cfg.LogLevel, false)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DatabaseURL, *attempts, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	fixture, err := readFixture(*file)
	if err != nil {
		logrus.Fatalf("Failed to read fixture: %v", err)
	}

	stats, err := newLoader(db).Load(context.Background(), fixture)
	if err != nil {
		logrus.Fatalf("Failed to load fixture: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":           stats.Users,
		"projects":        stats.Projects,
		"modules":         stats.Modules,
		"tasks":           stats.Tasks,
		"project_members": stats.ProjectMembers,
		"team_members":    stats.TeamMembers,
	}).Info("Initial data loaded")
}

// connectWithRetry attempts to initialize the DB with retries to wait for database readiness.
func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
