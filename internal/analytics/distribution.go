package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultDensityPoints is the number of points the density curve is
// evaluated on.
const DefaultDensityPoints = 200

// Bin is one histogram bucket. The last bin includes its upper edge.
type Bin struct {
	Min   float64
	Max   float64
	Count int
}

// Point is a sample of a curve
type Point struct {
	X float64
	Y float64
}

// Distribution is a histogram of a numeric sample with a density curve
// scaled to the histogram's counts.
type Distribution struct {
	N        int
	Min      float64
	Max      float64
	BinWidth float64
	Bins     []Bin
	Density  []Point
}

// NewDistribution bins values with AutoBins and overlays a KDE.
func NewDistribution(values []float64) Distribution {
	d := Distribution{N: len(values)}
	if len(values) == 0 {
		return d
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	d.Min, d.Max = sorted[0], sorted[len(sorted)-1]

	lo, hi := d.Min, d.Max
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	n := AutoBins(sorted)
	d.BinWidth = (hi - lo) / float64(n)
	d.Bins = make([]Bin, n)
	for i := range d.Bins {
		d.Bins[i].Min = lo + float64(i)*d.BinWidth
		d.Bins[i].Max = lo + float64(i+1)*d.BinWidth
	}
	d.Bins[n-1].Max = hi
	for _, v := range sorted {
		i := int((v - lo) / d.BinWidth)
		if i >= n {
			i = n - 1
		}
		d.Bins[i].Count++
	}

	scale := float64(len(values)) * d.BinWidth
	for _, p := range KDE(sorted, DefaultDensityPoints) {
		d.Density = append(d.Density, Point{X: p.X, Y: p.Y * scale})
	}
	return d
}

// AutoBins picks a histogram bin count the way numpy's "auto" estimator does:
// the smaller of the Sturges and Freedman-Diaconis bin widths.
func AutoBins(values []float64) int {
	n := len(values)
	if n == 0 {
		return 1
	}
	sorted := values
	if !sort.Float64sAreSorted(sorted) {
		sorted = append([]float64(nil), values...)
		sort.Float64s(sorted)
	}

	span := sorted[n-1] - sorted[0]
	if span == 0 {
		return 1
	}

	sturges := span / (math.Log2(float64(n)) + 1)
	width := sturges

	iqr := percentile(sorted, 0.75) - percentile(sorted, 0.25)
	if fd := 2 * iqr * math.Pow(float64(n), -1.0/3); fd > 0 {
		width = math.Min(width, fd)
	}

	return int(math.Ceil(span / width))
}

// percentile interpolates linearly between the closest ranks of a sorted sample
func percentile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// ScottBandwidth returns Scott's rule bandwidth for a Gaussian kernel
func ScottBandwidth(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return math.Pow(float64(len(values)), -0.2) * stat.StdDev(values, nil)
}

// KDE evaluates a Gaussian kernel density estimate of values on points evenly
// spaced samples across the data range. It returns nil when the sample has
// fewer than two values or no spread.
func KDE(values []float64, points int) []Point {
	bw := ScottBandwidth(values)
	if bw == 0 || math.IsNaN(bw) || points < 2 {
		return nil
	}

	xs := make([]float64, points)
	floats.Span(xs, floats.Min(values), floats.Max(values))

	curve := make([]Point, points)
	n := float64(len(values))
	for i, x := range xs {
		density := 0.0
		for _, v := range values {
			density += distuv.Normal{Mu: v, Sigma: bw}.Prob(x)
		}
		curve[i] = Point{X: x, Y: density / n}
	}
	return curve
}
