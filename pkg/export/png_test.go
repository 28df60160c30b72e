package export

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTrendPNG(t *testing.T) {
	d := smallDataset(t)
	img := RenderTrendPNG(d.Cities[0], "#ef4444")

	b := img.Bounds()
	assert.Equal(t, chartWidth, b.Dx())
	assert.Equal(t, chartHeight, b.Dy())

	// The corner is background, the last data point is drawn in the series color.
	r, g, bl, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, bl})

	xs, ys := plotCoords(d.Cities[0].History(), chartMargin, chartWidth-chartMargin/2, chartMargin, chartHeight-chartMargin)
	r, _, _, _ = img.At(xs[len(xs)-1], ys[len(ys)-1]).RGBA()
	assert.Greater(t, r, uint32(0xc000))
}

func TestWritePNGCharts(t *testing.T) {
	d := smallDataset(t)
	dir := t.TempDir()

	files, err := WritePNGCharts(context.Background(), d, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "trend-alpha-city.png"),
		filepath.Join(dir, "trend-beta.png"),
	}, files)

	f, err := os.Open(files[1])
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, chartWidth, img.Bounds().Dx())
}
