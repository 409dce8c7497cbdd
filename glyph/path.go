package glyph

import (
	"math"
	"strconv"
	"strings"
)

// PathSink receives the segments of a glyph outline in visitation order.
// Coordinates are in font design units with y pointing up.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(x1, y1, x, y float32)
	CubeTo(x1, y1, x2, y2, x, y float32)
	Close()
}

// Point is a position in font design units.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis-aligned box in font design units.
type Rect struct {
	XMin float32
	YMin float32
	XMax float32
	YMax float32
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float32 { return r.XMax - r.XMin }

// Height returns the vertical extent of r.
func (r Rect) Height() float32 { return r.YMax - r.YMin }

// PathBuilder is a PathSink that writes SVG path data.
//
// Every command is followed by a single space, so the output for a
// triangle reads "M 0 0 L 10 0 L 5 8 Z ". Numbers use the shortest
// representation that round-trips.
type PathBuilder struct {
	buf      strings.Builder
	segments int

	minX, minY float32
	maxX, maxY float32
}

// NewPathBuilder creates an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{
		minX: math.MaxFloat32, minY: math.MaxFloat32,
		maxX: -math.MaxFloat32, maxY: -math.MaxFloat32,
	}
}

// MoveTo implements PathSink.
func (b *PathBuilder) MoveTo(x, y float32) {
	b.command('M', x, y)
	b.updateBounds(x, y)
}

// LineTo implements PathSink.
func (b *PathBuilder) LineTo(x, y float32) {
	b.command('L', x, y)
	b.updateBounds(x, y)
}

// QuadTo implements PathSink.
func (b *PathBuilder) QuadTo(x1, y1, x, y float32) {
	b.command('Q', x1, y1, x, y)
	b.updateBounds(x1, y1)
	b.updateBounds(x, y)
}

// CubeTo implements PathSink.
func (b *PathBuilder) CubeTo(x1, y1, x2, y2, x, y float32) {
	b.command('C', x1, y1, x2, y2, x, y)
	b.updateBounds(x1, y1)
	b.updateBounds(x2, y2)
	b.updateBounds(x, y)
}

// Close implements PathSink.
func (b *PathBuilder) Close() {
	b.command('Z')
}

func (b *PathBuilder) command(verb byte, coords ...float32) {
	b.buf.WriteByte(verb)
	b.buf.WriteByte(' ')
	for _, c := range coords {
		b.buf.WriteString(formatFloat(float64(c), 32))
		b.buf.WriteByte(' ')
	}
	b.segments++
}

func (b *PathBuilder) updateBounds(x, y float32) {
	b.minX = min(b.minX, x)
	b.minY = min(b.minY, y)
	b.maxX = max(b.maxX, x)
	b.maxY = max(b.maxY, y)
}

// String returns the path data written so far.
func (b *PathBuilder) String() string { return b.buf.String() }

// Len returns the number of commands written, Close included.
func (b *PathBuilder) Len() int { return b.segments }

// IsEmpty reports whether no command was written.
func (b *PathBuilder) IsEmpty() bool { return b.segments == 0 }

// Bounds returns the box spanned by every on- and off-curve point seen.
// ok is false until a point was written.
func (b *PathBuilder) Bounds() (r Rect, ok bool) {
	if b.minX > b.maxX {
		return Rect{}, false
	}
	return Rect{XMin: b.minX, YMin: b.minY, XMax: b.maxX, YMax: b.maxY}, true
}

// formatFloat writes v in its shortest round-trip form, without exponent
// and without a trailing ".0".
func formatFloat(v float64, bitSize int) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}
