package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteExportConfig tunes the exported database.
type SQLiteExportConfig struct {
	PageSize int
}

// DefaultSQLiteExportConfig returns the standard export settings.
func DefaultSQLiteExportConfig() SQLiteExportConfig {
	return SQLiteExportConfig{PageSize: 4096}
}

// SQLiteExporter writes the dataset into a single SQLite file.
type SQLiteExporter struct {
	Data   Dataset
	Config SQLiteExportConfig
}

// NewSQLiteExporter creates an exporter with the default config.
func NewSQLiteExporter(d Dataset) *SQLiteExporter {
	return &SQLiteExporter{Data: d, Config: DefaultSQLiteExportConfig()}
}

// Export writes the database into outputDir and returns its path. An
// existing file is replaced.
func (e *SQLiteExporter) Export(ctx context.Context, outputDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	dbPath := filepath.Join(outputDir, SQLiteFile)
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("remove old database: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := CreateSchema(db); err != nil {
		return "", err
	}
	if err := e.insertCities(ctx, db); err != nil {
		return "", fmt.Errorf("insert cities: %w", err)
	}
	if err := e.insertCulture(ctx, db); err != nil {
		return "", fmt.Errorf("insert culture: %w", err)
	}
	if err := e.insertMeta(db); err != nil {
		return "", fmt.Errorf("insert meta: %w", err)
	}
	if err := OptimizeDatabase(db, e.Config.PageSize); err != nil {
		return "", err
	}
	return dbPath, nil
}

func (e *SQLiteExporter) insertCities(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cityStmt, err := tx.PrepareContext(ctx, `INSERT INTO cities (name, position, region, region_label, gdp_2023, description) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer cityStmt.Close()

	yearStmt, err := tx.PrepareContext(ctx, `INSERT INTO year_records (city, year, gdp, tech, energy, real_estate) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer yearStmt.Close()

	for i, c := range e.Data.Cities {
		if _, err := cityStmt.ExecContext(ctx, c.Name, i, string(c.Region), c.Region.Label(), c.GDP2023, c.Description); err != nil {
			return fmt.Errorf("city %s: %w", c.Name, err)
		}
		for r := range c.Years() {
			b := r.Breakdown
			if _, err := yearStmt.ExecContext(ctx, c.Name, r.Year, r.GDP, b.Tech, b.Energy, b.RealEstate); err != nil {
				return fmt.Errorf("city %s year %d: %w", c.Name, r.Year, err)
			}
		}
	}
	return tx.Commit()
}

func (e *SQLiteExporter) insertCulture(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO culture_items (position, icon, title, detail) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, item := range e.Data.Culture {
		if _, err := stmt.ExecContext(ctx, i, item.Icon, item.Title, item.Detail); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (e *SQLiteExporter) insertMeta(db *sql.DB) error {
	meta := map[string]string{
		"title":        e.Data.Title,
		"generated_at": e.Data.GeneratedAt.UTC().Format(time.RFC3339),
		"city_count":   strconv.Itoa(len(e.Data.Cities)),
		"schema":       "1",
	}
	for k, v := range meta {
		if err := InsertMetaValue(db, k, v); err != nil {
			return err
		}
	}
	return nil
}
