package export

import (
	"database/sql"
	"fmt"
)

// SQLiteFile is the exported database's file name.
const SQLiteFile = "gdp.sqlite3"

var schemaStatements = []string{
	`CREATE TABLE cities (
		name TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		region TEXT NOT NULL,
		region_label TEXT NOT NULL,
		gdp_2023 REAL NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE year_records (
		city TEXT NOT NULL REFERENCES cities(name),
		year INTEGER NOT NULL,
		gdp REAL NOT NULL,
		tech REAL NOT NULL,
		energy REAL NOT NULL,
		real_estate REAL NOT NULL,
		PRIMARY KEY (city, year)
	)`,
	`CREATE TABLE culture_items (
		position INTEGER PRIMARY KEY,
		icon TEXT NOT NULL,
		title TEXT NOT NULL,
		detail TEXT NOT NULL
	)`,
	`CREATE TABLE meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE INDEX idx_year_records_year ON year_records(year)`,
	`CREATE VIEW city_distribution AS
		SELECT name, region, gdp_2023 AS value,
			gdp_2023 * 100.0 / (SELECT SUM(gdp_2023) FROM cities) AS share
		FROM cities
		ORDER BY position`,
}

// CreateSchema creates the export tables and views.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// InsertMetaValue upserts one metadata entry.
func InsertMetaValue(db *sql.DB, key, value string) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// OptimizeDatabase compacts the file and refreshes planner statistics.
func OptimizeDatabase(db *sql.DB, pageSize int) error {
	if pageSize > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA page_size = %d", pageSize)); err != nil {
			return fmt.Errorf("set page size: %w", err)
		}
	}
	if _, err := db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	if _, err := db.Exec("ANALYZE"); err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	return nil
}
