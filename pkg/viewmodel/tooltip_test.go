package viewmodel

import (
	"strings"
	"testing"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
)

func TestFormatTooltip(t *testing.T) {
	tests := []struct {
		name  string
		point analysis.ChartPoint
		want  []string
		not   []string
	}{
		{
			name: "year",
			point: analysis.YearPoint{Year: 2020, GDP: 10020.4,
				Breakdown: model.Breakdown{Tech: 30, Energy: 40, RealEstate: 30}},
			want: []string{"2020年 GDP: 10020.40 亿", "科技创新 30%", "能源工业 40%", "房产基建 30%"},
			not:  []string{"偏差"},
		},
		{
			name: "year with drift",
			point: analysis.YearPoint{Year: 2021, GDP: 1,
				Breakdown: model.Breakdown{Tech: 30, Energy: 40, RealEstate: 25}},
			want: []string{"构成合计偏差 5.0%"},
		},
		{
			name:  "distribution",
			point: analysis.DistributionPoint{Name: "西安", Value: 12010.756},
			want:  []string{"西安: 12010.76 亿"},
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTooltip(tt.point)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("tooltip %q missing %q", got, w)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(got, n) {
					t.Errorf("tooltip %q should not contain %q", got, n)
				}
			}
			if tt.point == nil && got != "" {
				t.Errorf("nil point: %q", got)
			}
		})
	}
}

func TestPaletteColorAt(t *testing.T) {
	p := Palette{"a", "b", "c"}
	for i, want := range []string{"a", "b", "c", "a", "b"} {
		if got := p.ColorAt(i); got != want {
			t.Errorf("ColorAt(%d) = %q, want %q", i, got, want)
		}
	}
	if got := p.ColorAt(-1); got != "c" {
		t.Errorf("ColorAt(-1) = %q", got)
	}
	if got := Palette(nil).ColorAt(3); got != "" {
		t.Errorf("empty palette: %q", got)
	}
	if got := DefaultPalette.Colors(9); got[7] != DefaultPalette[0] || len(got) != 9 {
		t.Errorf("Colors(9) = %v", got)
	}
}
