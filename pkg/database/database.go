package database

import (
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Driver errors become gorm sentinels, so the unique-email
		// constraint maps to ErrDuplicatedKey like the memory store.
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.QuizAttempt{},
		&model.WeakArea{},
		&model.VarkResponse{},
		&model.Quest{},
		&model.ContentItem{},
		&model.UserProgress{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default content catalogue, inserted once.
	var count int64
	db.Model(&model.ContentItem{}).Count(&count)
	if count == 0 {
		for _, item := range DefaultContent() {
			db.Create(&item)
		}
	}

	return db, nil
}

// DefaultContent is the built-in catalogue; both stores seed from it.
func DefaultContent() []model.ContentItem {
	return []model.ContentItem{
		{Title: "Variables and Types, Animated", Type: "video", Topic: "cs101", Description: "A visual walkthrough of values and bindings", URL: "/content/cs101-vars.mp4", DurationMin: 12},
		{Title: "Control Flow Diagrams", Type: "diagram", Topic: "cs101", Description: "Branching and loops as flowcharts", URL: "/content/cs101-flow.svg", DurationMin: 5},
		{Title: "Spot the Chart Error", Type: "visual_quiz", Topic: "math101", Description: "Pick the plot that matches the function", URL: "/content/math101-vq", DurationMin: 8},
		{Title: "Programming Basics Explained", Type: "audio", Topic: "cs101", Description: "A podcast-style primer", URL: "/content/cs101-audio.mp3", DurationMin: 20},
		{Title: "Why Recursion Feels Hard", Type: "discussion", Topic: "cs102", Description: "Community thread on mental models", URL: "/content/cs102-thread", DurationMin: 10},
		{Title: "Pointers and Memory, In Prose", Type: "text", Topic: "cs102", Description: "A long-form article", URL: "/content/cs102-memory", DurationMin: 18},
		{Title: "Big-O Reference Sheet", Type: "cheatsheet", Topic: "ds101", Description: "One page of complexity classes", URL: "/content/ds101-bigo.pdf", DurationMin: 3},
		{Title: "Set Theory Notes", Type: "pdf", Topic: "math101", Description: "Printable lecture notes", URL: "/content/math101-sets.pdf", DurationMin: 25},
		{Title: "Build a Linked List", Type: "coding", Topic: "ds101", Description: "Guided implementation task", URL: "/content/ds101-ll", DurationMin: 30},
		{Title: "Loop Practice Problems", Type: "exercise", Topic: "cs101", Description: "Ten short drills", URL: "/content/cs101-drills", DurationMin: 15},
		{Title: "Graph Basics Quick Check", Type: "quiz", Topic: "ds101", Description: "Five-question recall quiz", URL: "/content/ds101-quiz", DurationMin: 6},
	}
}
