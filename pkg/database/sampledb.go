package database

import (
	"learnpath_backend/internal/config"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitSampleDB opens (and on first run seeds) the standalone database the
// SQL sandbox queries. It is kept separate from the application database so
// sandbox SELECTs can never touch user data.
func InitSampleDB(cfg *config.SandboxConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS artists (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			country TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS albums (
			id INTEGER PRIMARY KEY,
			artist_id INTEGER NOT NULL REFERENCES artists(id),
			title TEXT NOT NULL,
			year INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS tracks (
			id INTEGER PRIMARY KEY,
			album_id INTEGER NOT NULL REFERENCES albums(id),
			name TEXT NOT NULL,
			duration_sec INTEGER
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return nil, err
		}
	}

	var count int64
	db.Raw("SELECT COUNT(*) FROM artists").Scan(&count)
	if count == 0 {
		seed := []string{
			`INSERT INTO artists (id, name, country) VALUES
				(1, 'The Bit Shifters', 'US'),
				(2, 'Null Pointer Exception', 'DE'),
				(3, 'Lambda Calculus', 'JP'),
				(4, 'The Recursions', 'UK')`,
			`INSERT INTO albums (id, artist_id, title, year) VALUES
				(1, 1, 'Left Shift', 2019),
				(2, 1, 'Overflow', 2021),
				(3, 2, 'Segfault Serenade', 2020),
				(4, 3, 'Pure Functions', 2018),
				(5, 4, 'Base Case', 2022)`,
			`INSERT INTO tracks (id, album_id, name, duration_sec) VALUES
				(1, 1, 'Two To The Left', 201),
				(2, 1, 'Carry Bit Blues', 245),
				(3, 2, 'Stack Smash', 189),
				(4, 3, 'Dereference Me', 222),
				(5, 4, 'No Side Effects', 310),
				(6, 5, 'Termination Proof', 264)`,
		}
		for _, stmt := range seed {
			if err := db.Exec(stmt).Error; err != nil {
				return nil, err
			}
		}
		log.Println("Sample database seeded")
	}

	return db, nil
}
