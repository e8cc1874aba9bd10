// Package db provides sqlite-backed storage for barbers, appointments,
// schedule rules and client restrictions.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps sql.DB for the scheduling service.
type DB struct {
	*sql.DB
}

// NewDB opens the database at path and runs migrations.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := createTables(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS barbers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			specialties TEXT,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS working_hours (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			barber_id TEXT NOT NULL,
			weekday TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			FOREIGN KEY (barber_id) REFERENCES barbers(id)
		)`,

		`CREATE TABLE IF NOT EXISTS services (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			duration INTEGER NOT NULL,
			price REAL NOT NULL DEFAULT 0,
			category TEXT,
			is_active BOOLEAN NOT NULL DEFAULT 1
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			client_name TEXT,
			barber_id TEXT NOT NULL,
			barber_name TEXT,
			service_id TEXT NOT NULL,
			service_name TEXT,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			duration INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'scheduled',
			price REAL NOT NULL DEFAULT 0,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (barber_id) REFERENCES barbers(id)
		)`,

		`CREATE TABLE IF NOT EXISTS schedule_rules (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			barber_id TEXT,
			start_date TEXT NOT NULL,
			end_date TEXT,
			start_time TEXT,
			end_time TEXT,
			recurrence TEXT,
			reason TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS client_restrictions (
			client_id TEXT PRIMARY KEY,
			reason TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_appointments_barber_date ON appointments(barber_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_client ON appointments(client_id)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_working_hours_barber ON working_hours(barber_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rules_barber ON schedule_rules(barber_id)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}
