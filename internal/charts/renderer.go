package charts

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Mansi358721/netflix-titles/internal/analytics"
	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
)

// Size is a chart size in inches
type Size struct {
	Width  float64
	Height float64
}

// Labels are the chart title and axis captions
type Labels struct {
	Title  string
	XLabel string
	YLabel string
}

// BarSpec describes a categorical bar chart. Bars are drawn in the order of
// Categories; horizontal charts put the first category on top.
type BarSpec struct {
	Labels
	Categories []string
	Values     []float64
	Palette    Palette
	Horizontal bool
	Size       Size
}

// LineSpec describes a line chart with a marker at every point
type LineSpec struct {
	Labels
	X     []float64
	Y     []float64
	Color color.Color
	Size  Size
	// IntegerX labels the x axis with whole numbers only
	IntegerX bool
}

// HistogramSpec describes a histogram with an optional density overlay
type HistogramSpec struct {
	Labels
	Distribution analytics.Distribution
	Color        color.Color
	Size         Size
}

// Renderer draws charts to image files. The file format follows the
// extension of the target path.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a renderer
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// Bar renders a vertical or horizontal bar chart with one palette colour
// per bar. An empty spec renders titled, empty axes.
func (r *Renderer) Bar(spec BarSpec, path string) error {
	if len(spec.Categories) != len(spec.Values) {
		return apperrors.NewRenderError(
			fmt.Sprintf("bar chart has %d categories but %d values", len(spec.Categories), len(spec.Values)), nil).
			WithContext("path", path)
	}

	p := newPlot(spec.Labels)
	if len(spec.Values) == 0 {
		emptyAxes(p)
		return r.save(p, spec.Size, path, 0)
	}

	categories, values := spec.Categories, spec.Values
	if spec.Horizontal {
		// the y axis grows upwards; reverse so the first category is on top
		categories = reversed(categories)
		values = reversedFloats(values)
	}

	colors := spec.Palette.Sample(len(values))
	if spec.Horizontal {
		colors = reversedColors(colors)
	}

	width := barWidth(spec.Size, len(values), spec.Horizontal)
	for i, v := range values {
		bars, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return apperrors.NewRenderError("failed to build bar chart", err).WithContext("path", path)
		}
		bars.XMin = float64(i)
		bars.Horizontal = spec.Horizontal
		bars.LineStyle.Width = 0
		if colors != nil {
			bars.Color = colors[i]
		}
		p.Add(bars)
	}

	if spec.Horizontal {
		p.NominalY(categories...)
	} else {
		p.NominalX(categories...)
	}
	return r.save(p, spec.Size, path, len(values))
}

// Line renders a line chart with circular markers
func (r *Renderer) Line(spec LineSpec, path string) error {
	if len(spec.X) != len(spec.Y) {
		return apperrors.NewRenderError(
			fmt.Sprintf("line chart has %d x values but %d y values", len(spec.X), len(spec.Y)), nil).
			WithContext("path", path)
	}

	p := newPlot(spec.Labels)
	if spec.IntegerX {
		p.X.Tick.Marker = integerTicks{}
	}
	if len(spec.X) == 0 {
		emptyAxes(p)
		return r.save(p, spec.Size, path, 0)
	}

	xys := make(plotter.XYs, len(spec.X))
	for i := range spec.X {
		xys[i].X = spec.X[i]
		xys[i].Y = spec.Y[i]
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return apperrors.NewRenderError("failed to build line chart", err).WithContext("path", path)
	}

	c := spec.Color
	if c == nil {
		c = Viridis[3]
	}
	line.Color = c
	line.Width = vg.Points(2)
	points.Shape = draw.CircleGlyph{}
	points.Color = c
	points.Radius = vg.Points(3.5)
	p.Add(line, points)
	p.Y.Min = math.Min(p.Y.Min, 0)

	return r.save(p, spec.Size, path, len(xys))
}

// Histogram renders pre-binned counts with the density curve drawn on top
func (r *Renderer) Histogram(spec HistogramSpec, path string) error {
	p := newPlot(spec.Labels)
	d := spec.Distribution
	if len(d.Bins) == 0 {
		emptyAxes(p)
		return r.save(p, spec.Size, path, 0)
	}

	c := spec.Color
	if c == nil {
		c = Red[0]
	}

	bins := make([]plotter.HistogramBin, len(d.Bins))
	for i, b := range d.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     d.BinWidth,
		FillColor: withAlpha(c, 0x99),
		LineStyle: plotter.DefaultLineStyle,
	}
	hist.LineStyle.Color = color.White
	p.Add(hist)

	if len(d.Density) > 0 {
		xys := make(plotter.XYs, len(d.Density))
		for i, pt := range d.Density {
			xys[i].X, xys[i].Y = pt.X, pt.Y
		}
		curve, err := plotter.NewLine(xys)
		if err != nil {
			return apperrors.NewRenderError("failed to build density curve", err).WithContext("path", path)
		}
		curve.Color = c
		curve.Width = vg.Points(2)
		p.Add(curve)
	}

	return r.save(p, spec.Size, path, d.N)
}

func (r *Renderer) save(p *plot.Plot, size Size, path string, points int) error {
	if size.Width <= 0 || size.Height <= 0 {
		return apperrors.NewRenderError("chart size must be positive", nil).WithContext("path", path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError("failed to create chart directory", err).WithContext("path", path)
		}
	}
	if err := p.Save(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, path); err != nil {
		return apperrors.NewRenderError("failed to save chart", err).WithContext("path", path)
	}

	r.logger.Debug("Chart saved",
		slog.String("path", path),
		slog.String("title", p.Title.Text),
		slog.Int("points", points))
	return nil
}

func newPlot(labels Labels) *plot.Plot {
	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.XLabel
	p.Y.Label.Text = labels.YLabel
	p.Add(plotter.NewGrid())
	return p
}

func emptyAxes(p *plot.Plot) {
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
}

// barWidth sizes bars to leave room between neighbours
func barWidth(size Size, n int, horizontal bool) vg.Length {
	extent := size.Width
	if horizontal {
		extent = size.Height
	}
	w := vg.Length(extent) * vg.Inch * 0.8 / vg.Length(n) * 0.8
	if w <= 0 {
		return vg.Points(1)
	}
	return w
}

type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	lo, hi := math.Ceil(min), math.Floor(max)
	if hi < lo {
		return nil
	}
	step := math.Max(1, math.Ceil((hi-lo)/10))
	var ticks []plot.Tick
	for v := lo; v <= hi; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func reversedFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func reversedColors(in []color.Color) []color.Color {
	out := make([]color.Color, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
