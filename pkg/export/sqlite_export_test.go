package export

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteExport(t *testing.T) {
	d := testDataset(t)
	dir := t.TempDir()

	path, err := NewSQLiteExporter(d).Export(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SQLiteFile), path)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var cities int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM cities`).Scan(&cities))
	assert.Equal(t, len(d.Cities), cities)

	wantYears := 0
	for _, c := range d.Cities {
		wantYears += c.Len()
	}
	var years int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM year_records`).Scan(&years))
	assert.Equal(t, wantYears, years)

	var culture int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM culture_items`).Scan(&culture))
	assert.Equal(t, len(d.Culture), culture)

	var count string
	require.NoError(t, db.QueryRow(`SELECT value FROM meta WHERE key = 'city_count'`).Scan(&count))
	assert.Equal(t, "10", count)
}

func TestSQLiteDistributionView(t *testing.T) {
	d := smallDataset(t)
	path, err := NewSQLiteExporter(d).Export(context.Background(), t.TempDir())
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT name, region, value, share FROM city_distribution`)
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		name, region string
		value, share float64
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.name, &r.region, &r.value, &r.share))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []row{
		{name: "Alpha City", region: "North", value: 100, share: 25},
		{name: "Beta", region: "South", value: 300, share: 75},
	}, got)
}

func TestSQLiteExportReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SQLiteFile), []byte("not a database"), 0o644))

	path, err := NewSQLiteExporter(smallDataset(t)).Export(context.Background(), dir)
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM cities`).Scan(&n))
	assert.Equal(t, 2, n)
}
