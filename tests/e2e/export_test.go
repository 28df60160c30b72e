package main_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestEndToEndExportAll(t *testing.T) {
	bin := buildGvBinary(t)
	outDir := filepath.Join(t.TempDir(), "export")

	out, err := gvCommand(t, bin, "export", "--format", "all", "--out", outDir).CombinedOutput()
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}

	for _, p := range []string{
		filepath.Join(outDir, "report.md"),
		filepath.Join(outDir, "gdp.sqlite3"),
		filepath.Join(outDir, "distribution.svg"),
		filepath.Join(outDir, "trend-西安.svg"),
		filepath.Join(outDir, "trend-西安.png"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("missing export artifact %s: %v", p, err)
		}
	}

	report, err := os.ReadFile(filepath.Join(outDir, "report.md"))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(report), "## 西安") {
		t.Errorf("report missing city section")
	}

	db, err := sql.Open("sqlite3", filepath.Join(outDir, "gdp.sqlite3"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var total float64
	if err := db.QueryRow(`SELECT SUM(share) FROM city_distribution`).Scan(&total); err != nil {
		t.Fatalf("query view: %v", err)
	}
	if total < 99.99 || total > 100.01 {
		t.Errorf("shares sum to %.4f, want 100", total)
	}
}

func TestEndToEndExportNonInteractiveDefaultsToAll(t *testing.T) {
	bin := buildGvBinary(t)
	outDir := filepath.Join(t.TempDir(), "export")

	// Stdin is not a terminal under exec, so no prompt is shown.
	out, err := gvCommand(t, bin, "export", "--out", outDir).CombinedOutput()
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(outDir, "distribution.svg")); err != nil {
		t.Fatalf("svg not written: %v", err)
	}
}
