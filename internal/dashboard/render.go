package dashboard

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"launchdash.dev/internal/models"
)

// Format is an image encoding for rendered charts.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat maps a file extension to a Format.
func ParseFormat(ext string) (Format, error) {
	switch Format(ext) {
	case FormatSVG, FormatPNG:
		return Format(ext), nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", ext)
	}
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

const (
	pieWidth      = 640
	pieHeight     = 480
	scatterWidth  = 960
	scatterHeight = 480
)

var (
	palette = []drawing.Color{
		drawing.ColorFromHex("636efa"),
		drawing.ColorFromHex("ef553b"),
		drawing.ColorFromHex("00cc96"),
		drawing.ColorFromHex("ab63fa"),
		drawing.ColorFromHex("ffa15a"),
		drawing.ColorFromHex("19d3f3"),
		drawing.ColorFromHex("ff6692"),
		drawing.ColorFromHex("b6e880"),
		drawing.ColorFromHex("ff97ff"),
		drawing.ColorFromHex("fecb52"),
	}
	emptyColor = drawing.ColorFromHex("dddddd")
)

func paletteColor(i int) drawing.Color {
	return palette[i%len(palette)]
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// RenderPie draws the pie figure. Zero-valued slices are left out; a figure
// without any launches renders as a single grey "No launches" disc.
func RenderPie(fig models.PieFigure, format Format, w io.Writer) error {
	values := make([]chart.Value, 0, len(fig.Slices))
	for i, s := range fig.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: s.Label + " (" + strconv.FormatFloat(s.Value, 'f', -1, 64) + ")",
			Value: s.Value,
			Style: chart.Style{FillColor: paletteColor(i), StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 {
		values = []chart.Value{{
			Label: "No launches",
			Value: 1,
			Style: chart.Style{FillColor: emptyColor, StrokeColor: drawing.ColorWhite},
		}}
	}

	pie := chart.PieChart{
		Title:  fig.Title,
		Width:  pieWidth,
		Height: pieHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	if err := pie.Render(format.provider(), w); err != nil {
		return fmt.Errorf("error rendering %s: %w", fig.ID, err)
	}
	return nil
}

// RenderScatter draws the scatter figure with one coloured series per booster
// version category. The x axis always spans the selected payload range.
func RenderScatter(fig models.ScatterFigure, format Format, w io.Writer) error {
	xMin, xMax := axisRange(fig.PayloadRange[0], fig.PayloadRange[1])

	series := make([]chart.Series, 0, len(fig.Series)+1)
	for i, s := range fig.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.PayloadMassKg)
			ys = append(ys, float64(p.Class))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(paletteColor(i)),
		})
	}

	title := fig.Title
	if len(series) == 0 {
		// go-chart needs one visible series; this one draws nothing.
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xMin, xMax},
			YValues: []float64{0, 0},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: drawing.ColorTransparent,
			},
		})
		title += " (no launches)"
	}

	ch := chart.Chart{
		Title:  title,
		Width:  scatterWidth,
		Height: scatterHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  fig.XAxisTitle,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  fig.YAxisTitle,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	if len(fig.Series) > 0 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	if err := ch.Render(format.provider(), w); err != nil {
		return fmt.Errorf("error rendering %s: %w", fig.ID, err)
	}
	return nil
}

// axisRange pads the payload interval so points on the bounds stay visible
// and a degenerate interval still has a width.
func axisRange(low, high float64) (float64, float64) {
	if high < low {
		low, high = high, low
	}
	pad := (high - low) * 0.02
	if pad == 0 {
		pad = 500
	}
	return low - pad, high + pad
}
