package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/econlens/gdp_viewer/pkg/model"
)

//go:embed data/shaanxi.yaml
var shaanxiYAML []byte

// document is the on-disk shape of a catalog file.
type document struct {
	Cities  []cityDoc           `yaml:"cities"`
	Culture []model.CultureItem `yaml:"culture"`
}

type cityDoc struct {
	Name        string             `yaml:"name"`
	Region      model.Region       `yaml:"region"`
	GDP2023     float64            `yaml:"gdp2023"`
	Description string             `yaml:"description"`
	History     []model.YearRecord `yaml:"history"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded Shaanxi dataset. It is parsed once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(shaanxiYAML)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded catalog: %w", defaultErr)
		}
	})
	return defaultCat, defaultErr
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes YAML catalog data and validates it with New.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cities := make([]model.City, 0, len(doc.Cities))
	for _, cd := range doc.Cities {
		cities = append(cities, model.NewCity(cd.Name, cd.Region, cd.GDP2023, cd.Description, cd.History))
	}
	return New(cities, doc.Culture)
}
