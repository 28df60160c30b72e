package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econlens/gdp_viewer/pkg/catalog"
	"github.com/econlens/gdp_viewer/pkg/model"
)

func history(gdp ...float64) []model.YearRecord {
	out := make([]model.YearRecord, len(gdp))
	for i, g := range gdp {
		out[i] = model.YearRecord{
			Year:      2021 + i,
			GDP:       g,
			Breakdown: model.Breakdown{Tech: 30, Energy: 30, RealEstate: 40},
		}
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	assert.Equal(t, 10, cat.Len())
	assert.Equal(t, "西安", cat.First().Name)
	assert.Len(t, cat.Culture(), 4)

	for _, city := range cat.Cities() {
		assert.NoError(t, city.Validate(), city.Name)
		last, ok := city.Last()
		require.True(t, ok)
		assert.Equal(t, 2023, last.Year, city.Name)
		assert.InDelta(t, city.GDP2023, last.GDP, 0.001, city.Name)
	}

	again, err := catalog.Default()
	require.NoError(t, err)
	assert.Same(t, cat, again)
}

func TestLookup(t *testing.T) {
	cat, err := catalog.New([]model.City{
		model.NewCity("CityA", model.RegionNorth, 100, "", history(90, 100)),
		model.NewCity("CityB", model.RegionSouth, 200, "", history(150, 200)),
	}, nil)
	require.NoError(t, err)

	city, err := cat.Lookup("CityB")
	require.NoError(t, err)
	assert.Equal(t, 200.0, city.GDP2023)
	assert.Equal(t, 1, cat.IndexOf("CityB"))

	_, err = cat.Lookup("Nowhere")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, -1, cat.IndexOf("Nowhere"))

	assert.Equal(t, []string{"CityA", "CityB"}, cat.Names())
}

func TestCatalogIsReadOnly(t *testing.T) {
	cat, err := catalog.New([]model.City{
		model.NewCity("CityA", model.RegionNorth, 100, "", history(100)),
	}, []model.CultureItem{{Icon: "*", Title: "T", Detail: "D"}})
	require.NoError(t, err)

	cities := cat.Cities()
	cities[0].Name = "Mutated"
	culture := cat.Culture()
	culture[0].Title = "Mutated"

	assert.Equal(t, "CityA", cat.First().Name)
	assert.Equal(t, "T", cat.Culture()[0].Title)
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		cities  []model.City
		wantErr error
	}{
		{"empty", nil, model.ErrInvalidCatalog},
		{"duplicate", []model.City{
			model.NewCity("A", model.RegionNorth, 1, "", history(1)),
			model.NewCity("A", model.RegionNorth, 1, "", history(1)),
		}, model.ErrInvalidCatalog},
		{"empty history", []model.City{
			model.NewCity("A", model.RegionNorth, 1, "", nil),
		}, model.ErrEmptyHistory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(tt.cities, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAllIteratesInOrder(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	var names []string
	for i, city := range cat.All() {
		assert.Equal(t, len(names), i)
		names = append(names, city.Name)
	}
	assert.Equal(t, cat.Names(), names)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.yaml")
	data := `cities:
  - name: CityA
    region: Central
    gdp2023: 100
    history:
      - {year: 2022, gdp: 90, breakdown: {tech: 30, energy: 30, realEstate: 40}}
      - {year: 2023, gdp: 100, breakdown: {tech: 31, energy: 30, realEstate: 39}}
culture:
  - icon: "*"
    title: Heritage
    detail: Old town.
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, "Heritage", cat.Culture()[0].Title)

	_, err = catalog.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsDescendingYears(t *testing.T) {
	data := `cities:
  - name: CityA
    region: North
    gdp2023: 100
    history:
      - {year: 2023, gdp: 100, breakdown: {tech: 30, energy: 30, realEstate: 40}}
      - {year: 2022, gdp: 90, breakdown: {tech: 30, energy: 30, realEstate: 40}}
`
	_, err := catalog.Parse([]byte(data))
	assert.ErrorIs(t, err, model.ErrInvalidCatalog)
}

func TestParseRejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		name    string
		gdp2023 string
		tech    string
	}{
		{"nan gdp2023", ".nan", "30"},
		{"infinite gdp2023", ".inf", "30"},
		{"nan share", "100", ".nan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `cities:
  - name: CityA
    region: North
    gdp2023: ` + tt.gdp2023 + `
    history:
      - {year: 2023, gdp: 100, breakdown: {tech: ` + tt.tech + `, energy: 30, realEstate: 40}}
`
			_, err := catalog.Parse([]byte(data))
			assert.ErrorIs(t, err, model.ErrInvalidCatalog)
		})
	}
}
