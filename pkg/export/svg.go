package export

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
)

// DistributionSVGFile is the donut chart's file name.
const DistributionSVGFile = "distribution.svg"

const (
	chartWidth  = 640
	chartHeight = 360
	chartMargin = 48
)

// WriteSVGCharts writes the distribution donut and one trend chart per city.
func WriteSVGCharts(ctx context.Context, d Dataset, dir string) ([]string, error) {
	var files []string
	if err := ctx.Err(); err != nil {
		return files, err
	}

	path := filepath.Join(dir, DistributionSVGFile)
	if err := writeFile(path, func(w io.Writer) error {
		return WriteDistributionSVG(w, d.Distribution, d.Palette)
	}); err != nil {
		return files, err
	}
	files = append(files, path)

	for i, c := range d.Cities {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		path := filepath.Join(dir, fmt.Sprintf("trend-%s.svg", createSlug(c.Name)))
		color := d.colorAt(i)
		if err := writeFile(path, func(w io.Writer) error {
			return WriteTrendSVG(w, c, color)
		}); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

// WriteDistributionSVG draws the 2023 GDP shares as a donut with a legend.
func WriteDistributionSVG(w io.Writer, points []analysis.DistributionPoint, palette []string) error {
	canvas := svg.New(w)
	canvas.Start(chartWidth, chartHeight)
	canvas.Rect(0, 0, chartWidth, chartHeight, "fill:white")
	canvas.Text(chartWidth/2, 28, "2023 GDP 分布", "text-anchor:middle;font-size:18px;font-family:sans-serif")

	cx, cy := chartHeight/2, chartHeight/2+12
	outer, inner := 130.0, 70.0
	total := analysis.Total(points)
	shares := analysis.Shares(points)

	angle := -math.Pi / 2
	for i, p := range points {
		color := paletteColor(palette, i)
		if total > 0 && p.Value > 0 {
			sweep := p.Value / total * 2 * math.Pi
			canvas.Path(donutSlice(float64(cx), float64(cy), outer, inner, angle, angle+sweep),
				"fill:"+color+";stroke:white;stroke-width:1")
			angle += sweep
		}

		ly := 70 + i*24
		canvas.Rect(chartHeight+24, ly-12, 14, 14, "fill:"+color)
		canvas.Text(chartHeight+46, ly, fmt.Sprintf("%s %.1f%%", p.Name, shares[i]),
			"font-size:13px;font-family:sans-serif")
	}
	canvas.Text(cx, cy+6, fmt.Sprintf("%.0f 亿", total), "text-anchor:middle;font-size:14px;font-family:sans-serif")

	canvas.End()
	return nil
}

// donutSlice returns the path data for a ring segment between two angles.
func donutSlice(cx, cy, outer, inner, from, to float64) string {
	// A full ring cannot be drawn as a single arc.
	if to-from >= 2*math.Pi-1e-9 {
		to = from + 2*math.Pi - 1e-4
	}
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	x0, y0 := cx+outer*math.Cos(from), cy+outer*math.Sin(from)
	x1, y1 := cx+outer*math.Cos(to), cy+outer*math.Sin(to)
	x2, y2 := cx+inner*math.Cos(to), cy+inner*math.Sin(to)
	x3, y3 := cx+inner*math.Cos(from), cy+inner*math.Sin(from)
	return fmt.Sprintf("M%.2f,%.2f A%.0f,%.0f 0 %d 1 %.2f,%.2f L%.2f,%.2f A%.0f,%.0f 0 %d 0 %.2f,%.2f Z",
		x0, y0, outer, outer, large, x1, y1, x2, y2, inner, inner, large, x3, y3)
}

// WriteTrendSVG draws a city's GDP history as a filled area chart.
func WriteTrendSVG(w io.Writer, city model.City, color string) error {
	series := analysis.TrendSeries(city)

	canvas := svg.New(w)
	canvas.Start(chartWidth, chartHeight)
	canvas.Rect(0, 0, chartWidth, chartHeight, "fill:white")
	canvas.Text(chartWidth/2, 28, city.Name+" GDP 趋势", "text-anchor:middle;font-size:18px;font-family:sans-serif")

	left, right := chartMargin, chartWidth-chartMargin/2
	top, bottom := chartMargin, chartHeight-chartMargin
	canvas.Line(left, bottom, right, bottom, "stroke:#9ca3af")
	canvas.Line(left, top, left, bottom, "stroke:#9ca3af")

	if len(series) == 0 {
		canvas.Text(chartWidth/2, chartHeight/2, "no history", "text-anchor:middle;font-family:sans-serif;fill:#6b7280")
		canvas.End()
		return nil
	}

	xs, ys := plotCoords(series, left, right, top, bottom)

	areaX := append(append([]int{xs[0]}, xs...), xs[len(xs)-1])
	areaY := append(append([]int{bottom}, ys...), bottom)
	canvas.Polygon(areaX, areaY, "fill:"+color+";fill-opacity:0.25;stroke:none")
	canvas.Polyline(xs, ys, "fill:none;stroke:"+color+";stroke-width:2")

	for i, r := range series {
		canvas.Circle(xs[i], ys[i], 3, "fill:"+color)
		canvas.Text(xs[i], bottom+18, fmt.Sprint(r.Year), "text-anchor:middle;font-size:11px;font-family:sans-serif")
		canvas.Text(xs[i], ys[i]-8, fmt.Sprintf("%.0f", r.GDP), "text-anchor:middle;font-size:10px;font-family:sans-serif;fill:#374151")
	}

	canvas.End()
	return nil
}

// plotCoords maps a series onto the plot rectangle. The y axis starts at zero.
func plotCoords(series []model.YearRecord, left, right, top, bottom int) (xs, ys []int) {
	peak := 0.0
	for _, r := range series {
		peak = max(peak, r.GDP)
	}
	if peak <= 0 {
		peak = 1
	}
	step := 0.0
	if len(series) > 1 {
		step = float64(right-left) / float64(len(series)-1)
	}
	for i, r := range series {
		x := left + int(math.Round(step*float64(i)))
		if len(series) == 1 {
			x = (left + right) / 2
		}
		y := bottom - int(math.Round(r.GDP/peak*float64(bottom-top)))
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func paletteColor(palette []string, i int) string {
	if len(palette) == 0 {
		return "#2563eb"
	}
	return palette[i%len(palette)]
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
