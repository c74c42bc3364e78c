package postgres_test

import (
	"os"
	"testing"

	"yotracker/config"
	"yotracker/pkg/storage/postgres"
)

// go test -v --run TestCreateDatabase
func TestCreateDatabase(t *testing.T) {
	if os.Getenv("YOTRACKER_TEST_POSTGRES_HOST") == "" {
		t.Skip("YOTRACKER_TEST_POSTGRES_HOST not set")
	}

	cfg := config.PostgresConfig{
		Host:     os.Getenv("YOTRACKER_TEST_POSTGRES_HOST"),
		Port:     5432,
		User:     "postgres",
		Password: os.Getenv("YOTRACKER_TEST_POSTGRES_PASSWORD"),
		DBName:   "test_yotracker_db",
		SSLMode:  "disable",
	}

	if err := postgres.CreateDatabase(cfg, "dev"); err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	// second call finds the database and is a no-op
	if err := postgres.CreateDatabase(cfg, "dev"); err != nil {
		t.Fatalf("create database is not idempotent: %v", err)
	}
}
