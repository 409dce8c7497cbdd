package glyph

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint keywords accepted besides colors.
const (
	PaintNone         = "none"
	PaintCurrentColor = "currentColor"
)

// Style controls how Shape sizes and paints a glyph.
type Style struct {
	// Scaling multiplies the base scale of 1/0.75. Zero, negative and
	// non-finite values mean 1.
	Scaling float64

	// Fill and Stroke accept "none", "currentColor", #rgb, #rrggbb and
	// rgb(r, g, b). Anything else falls back to the default.
	Fill   string
	Stroke string

	// FillOpacity is clamped to [0, 1]. Nil means fully opaque.
	FillOpacity *float64

	// StrokeWidth is in design units; negative values mean 0.
	StrokeWidth float64
}

// DefaultStyle returns the style used when callers have no preference:
// filled with the current color and not stroked.
func DefaultStyle() Style {
	return Style{
		Scaling: 1,
		Fill:    PaintCurrentColor,
		Stroke:  PaintNone,
	}
}

// paint is a Style with every value checked and normalized.
type paint struct {
	scale       float64
	fill        string
	fillOpacity float64
	stroke      string
	strokeWidth float64
}

// baseScale converts design units to pixels at 0.75 points per pixel.
const baseScale = 1 / 0.75

func (s Style) normalize() paint {
	scaling := s.Scaling
	if scaling <= 0 || math.IsNaN(scaling) || math.IsInf(scaling, 0) {
		scaling = 1
	}

	opacity := 1.0
	if s.FillOpacity != nil && !math.IsNaN(*s.FillOpacity) {
		opacity = min(max(*s.FillOpacity, 0), 1)
	}

	width := s.StrokeWidth
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		width = 0
	}

	return paint{
		scale:       baseScale * scaling,
		fill:        NormalizeColor(s.Fill, PaintCurrentColor),
		fillOpacity: opacity,
		stroke:      NormalizeColor(s.Stroke, PaintNone),
		strokeWidth: width,
	}
}

// NormalizeColor returns c as a lowercase #rrggbb color or one of the
// paint keywords. It returns fallback when c cannot be parsed.
func NormalizeColor(c, fallback string) string {
	c = strings.TrimSpace(c)
	switch {
	case strings.EqualFold(c, PaintNone):
		return PaintNone
	case strings.EqualFold(c, PaintCurrentColor):
		return PaintCurrentColor
	case isHexColor(c):
		col, err := colorful.Hex(strings.ToLower(c))
		if err != nil {
			return fallback
		}
		return col.Hex()
	case strings.HasPrefix(strings.ToLower(c), "rgb(") && strings.HasSuffix(c, ")"):
		col, ok := parseRGB(c[len("rgb(") : len(c)-1])
		if !ok {
			return fallback
		}
		return col.Clamped().Hex()
	}
	return fallback
}

func isHexColor(c string) bool {
	if len(c) != 4 && len(c) != 7 || c[0] != '#' {
		return false
	}
	for _, r := range c[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// parseRGB parses the arguments of a CSS rgb() color. Components are
// either 0-255 or percentages.
func parseRGB(args string) (colorful.Color, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return colorful.Color{}, false
	}
	var rgb [3]float64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		scale := 255.0
		if pct, ok := strings.CutSuffix(p, "%"); ok {
			p, scale = pct, 100
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) {
			return colorful.Color{}, false
		}
		rgb[i] = v / scale
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true
}
