// Package export writes static renditions of the catalog projections: a
// markdown report, a SQLite database and SVG/PNG charts. Exports are
// snapshots of the dataset, never of interactive state.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/catalog"
	"github.com/econlens/gdp_viewer/pkg/model"
)

// Format names one kind of export output.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatSQLite   Format = "sqlite"
	FormatSVG      Format = "svg"
	FormatPNG      Format = "png"
)

// AllFormats lists every format in the order they are reported.
var AllFormats = []Format{FormatMarkdown, FormatSQLite, FormatSVG, FormatPNG}

// ParseFormats parses a comma separated format list. "all" selects every
// format. Duplicates are dropped and order follows AllFormats.
func ParseFormats(s string) ([]Format, error) {
	want := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch {
		case part == "":
			continue
		case part == "all":
			for _, f := range AllFormats {
				want[f] = true
			}
		case slices.Contains(AllFormats, Format(part)):
			want[Format(part)] = true
		default:
			return nil, fmt.Errorf("unknown export format %q", part)
		}
	}
	if len(want) == 0 {
		return nil, errors.New("no export format given")
	}

	var out []Format
	for _, f := range AllFormats {
		if want[f] {
			out = append(out, f)
		}
	}
	return out, nil
}

// Dataset is everything an exporter renders.
type Dataset struct {
	Title        string
	Cities       []model.City
	Culture      []model.CultureItem
	Distribution []analysis.DistributionPoint
	Palette      []string
	GeneratedAt  time.Time
}

// NewDataset snapshots cat for export.
func NewDataset(cat *catalog.Catalog, palette []string) Dataset {
	cities := cat.Cities()
	return Dataset{
		Title:        "陕西省 GDP 数据报告",
		Cities:       cities,
		Culture:      cat.Culture(),
		Distribution: analysis.Distribution(cities),
		Palette:      slices.Clone(palette),
		GeneratedAt:  time.Now(),
	}
}

// colorAt cycles through the palette by index.
func (d Dataset) colorAt(i int) string {
	return paletteColor(d.Palette, i)
}

// Result is the outcome of one format's export.
type Result struct {
	Format Format
	Files  []string
	Err    error
}

// Runner writes several formats into one directory in parallel.
type Runner struct {
	data   Dataset
	outDir string
	logger zerolog.Logger
}

// NewRunner creates a runner writing data into outDir.
func NewRunner(data Dataset, outDir string) *Runner {
	return &Runner{data: data, outDir: outDir, logger: zerolog.Nop()}
}

// SetLogger sets the logger used to report written files and failures.
func (r *Runner) SetLogger(logger zerolog.Logger) {
	r.logger = logger
}

// Run exports every format concurrently. A failing format does not stop the
// others; its error is kept in its Result and also folded into the returned
// error. Cancelling ctx stops exporters between files.
func (r *Runner) Run(ctx context.Context, formats []Format) ([]Result, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	results := make([]Result, len(formats))
	var mu sync.Mutex

	var g errgroup.Group
	for i, f := range formats {
		g.Go(func() error {
			files, err := r.export(ctx, f)

			mu.Lock()
			results[i] = Result{Format: f, Files: files, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // failures are kept per format in results

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			r.logger.Error().Err(res.Err).Str("format", string(res.Format)).Msg("export failed")
			errs = append(errs, fmt.Errorf("%s: %w", res.Format, res.Err))
			continue
		}
		r.logger.Info().Str("format", string(res.Format)).Strs("files", res.Files).Msg("export written")
	}
	if len(errs) > 0 {
		return results, fmt.Errorf("%d of %d exports failed: %w", len(errs), len(results), errors.Join(errs...))
	}
	return results, nil
}

func (r *Runner) export(ctx context.Context, f Format) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch f {
	case FormatMarkdown:
		path, err := SaveMarkdownToFile(r.data, r.outDir)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	case FormatSQLite:
		path, err := NewSQLiteExporter(r.data).Export(ctx, r.outDir)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	case FormatSVG:
		return WriteSVGCharts(ctx, r.data, r.outDir)
	case FormatPNG:
		return WritePNGCharts(ctx, r.data, r.outDir)
	}
	return nil, fmt.Errorf("unknown export format %q", f)
}

// createSlug turns a city name into a file and anchor friendly token. Letters
// of any script are kept.
func createSlug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(sb.String(), "-")
	if slug == "" {
		return "city"
	}
	return slug
}
