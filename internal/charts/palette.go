package charts

import (
	"fmt"
	"image/color"
	"math"
)

// Palette is an ordered list of colours sampled for bar charts
type Palette []color.Color

// Named palettes
var (
	Viridis = mustHex("#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725")
	Mako = mustHex("#0b0405", "#241a35", "#382a54", "#3e3f7e", "#395d9c",
		"#357ba2", "#3497a9", "#3fb6ad", "#6cd3ad", "#def5e5")
	Rocket = mustHex("#03051a", "#2b1a3e", "#4c1d4b", "#711f57", "#9b1b5b",
		"#cb1b4f", "#ea4d3e", "#f3795a", "#f6a481", "#faebdd")
	Red = mustHex("#d62728")
)

// Sample spreads n colours evenly across the palette
func (p Palette) Sample(n int) []color.Color {
	if n <= 0 || len(p) == 0 {
		return nil
	}
	out := make([]color.Color, n)
	if n == 1 {
		out[0] = p[len(p)/2]
		return out
	}
	for i := range out {
		idx := int(math.Round(float64(i) * float64(len(p)-1) / float64(n-1)))
		out[i] = p[idx]
	}
	return out
}

// ParseHex parses a "#rrggbb" colour
func ParseHex(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 0xff
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

func mustHex(values ...string) Palette {
	p := make(Palette, len(values))
	for i, v := range values {
		c, err := ParseHex(v)
		if err != nil {
			panic(err)
		}
		p[i] = c
	}
	return p
}
