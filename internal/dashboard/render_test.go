package dashboard

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("svg")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	f, err = ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)
	assert.Equal(t, "image/png", f.ContentType())

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestRenderPie(t *testing.T) {
	table := loadTestTable(t)

	tests := []struct {
		name string
		site string
	}{
		{"all sites", AllSites},
		{"single site", "KSC LC-39A"},
		{"site with no successes", "CCAFS LC-40"},
		{"unknown site", "Boca Chica"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" svg", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderPie(SuccessPie(table, tt.site), FormatSVG, &buf))
			assert.Contains(t, buf.String(), "<svg")
		})

		t.Run(tt.name+" png", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderPie(SuccessPie(table, tt.site), FormatPNG, &buf))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, pieWidth, img.Bounds().Dx())
			assert.Equal(t, pieHeight, img.Bounds().Dy())
		})
	}
}

func TestRenderScatter(t *testing.T) {
	table := loadTestTable(t)

	tests := []struct {
		name      string
		site      string
		low, high float64
	}{
		{"all sites", AllSites, 0, 10000},
		{"single site", "VAFB SLC-4E", 0, 10000},
		{"single point", "CCAFS SLC-40", 4400, 4400},
		{"no points", "Boca Chica", 0, 10000},
		{"inverted range", AllSites, 5000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name+" svg", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderScatter(PayloadScatter(table, tt.site, tt.low, tt.high), FormatSVG, &buf))
			assert.Contains(t, buf.String(), "<svg")
		})

		t.Run(tt.name+" png", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderScatter(PayloadScatter(table, tt.site, tt.low, tt.high), FormatPNG, &buf))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, scatterWidth, img.Bounds().Dx())
		})
	}
}

func TestAxisRange(t *testing.T) {
	lo, hi := axisRange(0, 10000)
	assert.Equal(t, -200.0, lo)
	assert.Equal(t, 10200.0, hi)

	lo, hi = axisRange(4400, 4400)
	assert.Equal(t, 3900.0, lo)
	assert.Equal(t, 4900.0, hi)

	lo, hi = axisRange(5000, 1000)
	assert.Less(t, lo, 1000.0)
	assert.Greater(t, hi, 5000.0)
}
