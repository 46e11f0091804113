package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Plan table
		CREATE TABLE IF NOT EXISTS plan (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			kind VARCHAR(10) NOT NULL,
			name VARCHAR(100) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			start_year INTEGER NOT NULL,
			end_year INTEGER NOT NULL,
			status VARCHAR(10) NOT NULL,
			annual_return FLOAT,
			premium_amount FLOAT,
			premium_frequency VARCHAR(10),
			maturity_value FLOAT,
			total_invested FLOAT NOT NULL DEFAULT 0,
			current_value FLOAT NOT NULL DEFAULT 0,
			total_returns FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Plan year table
		CREATE TABLE IF NOT EXISTS plan_year (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			plan_id VARCHAR(36) NOT NULL,
			year INTEGER NOT NULL,
			contributions TEXT NOT NULL,
			year_start_value FLOAT NOT NULL DEFAULT 0,
			year_end_value FLOAT NOT NULL DEFAULT 0,
			yearly_return FLOAT NOT NULL DEFAULT 0,
			override_value FLOAT,
			override_active BOOLEAN NOT NULL DEFAULT FALSE,
			FOREIGN KEY(plan_id) REFERENCES plan(id) ON DELETE CASCADE,
			CONSTRAINT unique_plan_year UNIQUE (plan_id, year)
		);

		CREATE INDEX IF NOT EXISTS ix_plan_year_plan_id ON plan_year (plan_id);
	`

	_, err := db.Exec(schema)
	return err
}
