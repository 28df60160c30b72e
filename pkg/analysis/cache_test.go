package analysis_test

import (
	"testing"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
)

func TestCacheMemoizesByName(t *testing.T) {
	a := model.NewCity("A", model.RegionNorth, 2, "", []model.YearRecord{rec(2022, 1, 10, 10, 80), rec(2023, 2, 20, 10, 70)})
	b := model.NewCity("B", model.RegionSouth, 4, "", []model.YearRecord{rec(2023, 4, 5, 5, 90)})

	c := analysis.NewCache()
	first := c.Get(a)
	second := c.Get(a)
	c.Get(b)

	hits, misses := c.Stats()
	if hits != 1 || misses != 2 {
		t.Errorf("hits=%d misses=%d, want 1/2", hits, misses)
	}
	if len(first.Trend) != 2 || first.Latest.Tech != 20 {
		t.Errorf("projection = %+v", first)
	}
	if len(second.Trend) != len(first.Trend) {
		t.Error("cached projection differs from first computation")
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	a := model.NewCity("A", model.RegionNorth, 2, "", []model.YearRecord{rec(2022, 1, 10, 10, 80), rec(2023, 2, 20, 10, 70)})
	c := analysis.NewCache()

	p := c.Get(a)
	p.Trend[0].GDP = 1000
	p.Growth.YoY[0] = -1

	again := c.Get(a)
	if again.Trend[0].GDP != 1 {
		t.Errorf("cache entry mutated through returned slice: %v", again.Trend[0].GDP)
	}
	if again.Growth.YoY[0] != 100 {
		t.Errorf("YoY mutated: %v", again.Growth.YoY[0])
	}
}

func TestCacheRecordsEmptyHistoryError(t *testing.T) {
	c := analysis.NewCache()
	p := c.Get(model.NewCity("Ghost", model.RegionSouth, 0, "", nil))
	if p.LatestErr == nil {
		t.Error("expected LatestErr for empty history")
	}
}
