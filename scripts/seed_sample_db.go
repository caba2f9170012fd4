// Rebuilds the SQL sandbox sample database from scratch.
//
// The main application seeds the sample database automatically on first
// start; this script is only needed to reset it after experiments.
//
// Usage: go run scripts/seed_sample_db.go
package main

import (
	"log"
	"os"

	"learnpath_backend/internal/config"
	"learnpath_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Sandbox.Path == "" {
		log.Fatal("sandbox.path is not configured")
	}

	if err := os.Remove(cfg.Sandbox.Path); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove old sample database: %v", err)
	}

	if _, err := database.InitSampleDB(&cfg.Sandbox); err != nil {
		log.Fatalf("Failed to seed sample database: %v", err)
	}

	log.Printf("Sample database rebuilt at %s", cfg.Sandbox.Path)
}
