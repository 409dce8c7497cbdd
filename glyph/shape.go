package glyph

import (
	"strconv"
	"strings"
)

// Metrics is the SVG viewport of a shape, in scaled units.
type Metrics struct {
	XOrigin float64
	YOrigin float64
	Width   float64
	Height  float64
}

// Shape is a glyph outline rendered as SVG.
type Shape struct {
	// Path is the outline in design units, as SVG path data.
	Path    string
	Metrics Metrics
	// Scale is the factor the document applies to Path.
	Scale float64
	SVG   string
}

// NewShape renders the outline of the glyph r maps to. It returns nil when
// r is not mapped or the glyph has no outline segments.
func NewShape(src Source, r rune, style Style) *Shape {
	gid, ok := src.GlyphIndex(r)
	if !ok {
		return nil
	}

	b := NewPathBuilder()
	if !src.Outline(gid, b) || b.IsEmpty() {
		return nil
	}

	p := style.normalize()

	bbox, ok := src.GlyphBBox(gid)
	if !ok {
		bbox, _ = b.Bounds()
	}

	var width float64
	if adv, lsb, ok := src.HorizontalMetrics(gid); ok {
		width = float64(adv) * p.scale
	} else {
		width = (float64(bbox.Width()) + 2*float64(lsb)) * p.scale
	}

	m := Metrics{
		XOrigin: float64(bbox.XMin) * p.scale,
		YOrigin: -float64(bbox.YMax) * p.scale,
		Width:   max(width, 0),
		Height:  max(float64(bbox.Height())*p.scale, 0),
	}

	path := b.String()
	return &Shape{
		Path:    path,
		Metrics: m,
		Scale:   p.scale,
		SVG:     renderSVG(path, m, p),
	}
}

func renderSVG(path string, m Metrics, p paint) string {
	f := func(v float64) string { return formatFloat(v, 64) }
	w, h, s := f(m.Width), f(m.Height), f(p.scale)

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 `)
	sb.WriteString(f(m.YOrigin) + " " + w + " " + h)
	sb.WriteString(`" width="` + w + `pt" height="` + h + `pt">` + "\n")
	sb.WriteString(`  <g transform="scale(` + s + `, -` + s + `)">` + "\n")
	sb.WriteString(`    <path d="` + strings.TrimSpace(path) + `"`)
	sb.WriteString(` fill="` + p.fill + `"`)
	sb.WriteString(` fill-opacity="` + strconv.FormatFloat(p.fillOpacity, 'f', -1, 64) + `"`)
	sb.WriteString(` stroke="` + p.stroke + `"`)
	sb.WriteString(` stroke-width="` + f(p.strokeWidth) + `"/>` + "\n")
	sb.WriteString("  </g>\n</svg>\n")
	return sb.String()
}
