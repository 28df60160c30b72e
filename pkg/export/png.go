package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
)

// WritePNGCharts writes one raster trend chart per city.
func WritePNGCharts(ctx context.Context, d Dataset, dir string) ([]string, error) {
	var files []string
	for i, c := range d.Cities {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		path := filepath.Join(dir, fmt.Sprintf("trend-%s.png", createSlug(c.Name)))
		img := RenderTrendPNG(c, d.colorAt(i))
		if err := writeFile(path, func(w io.Writer) error {
			return encodePNG(w, img)
		}); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

// RenderTrendPNG rasterizes a city's GDP history. The bitmap font only covers
// ASCII so labels stay numeric.
func RenderTrendPNG(city model.City, color string) image.Image {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	left, right := chartMargin, chartWidth-chartMargin/2
	top, bottom := chartMargin, chartHeight-chartMargin

	dc.SetHexColor("#111827")
	dc.DrawStringAnchored("GDP (100M CNY)", chartWidth/2, 24, 0.5, 0.5)

	dc.SetHexColor("#9ca3af")
	dc.SetLineWidth(1)
	dc.DrawLine(float64(left), float64(bottom), float64(right), float64(bottom))
	dc.DrawLine(float64(left), float64(top), float64(left), float64(bottom))
	dc.Stroke()

	series := analysis.TrendSeries(city)
	if len(series) == 0 {
		dc.SetHexColor("#6b7280")
		dc.DrawStringAnchored("no history", chartWidth/2, chartHeight/2, 0.5, 0.5)
		return dc.Image()
	}

	xs, ys := plotCoords(series, left, right, top, bottom)

	dc.MoveTo(float64(xs[0]), float64(bottom))
	for i := range xs {
		dc.LineTo(float64(xs[i]), float64(ys[i]))
	}
	dc.LineTo(float64(xs[len(xs)-1]), float64(bottom))
	dc.ClosePath()
	dc.SetHexColor(color + "40")
	dc.Fill()

	dc.SetHexColor(color)
	dc.SetLineWidth(2)
	for i := range xs {
		if i == 0 {
			dc.MoveTo(float64(xs[i]), float64(ys[i]))
			continue
		}
		dc.LineTo(float64(xs[i]), float64(ys[i]))
	}
	dc.Stroke()

	for i, r := range series {
		x, y := float64(xs[i]), float64(ys[i])
		dc.SetHexColor(color)
		dc.DrawCircle(x, y, 3)
		dc.Fill()

		dc.SetHexColor("#374151")
		dc.DrawStringAnchored(fmt.Sprint(r.Year), x, float64(bottom)+16, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", r.GDP), x, y-12, 0.5, 0.5)
	}
	return dc.Image()
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
