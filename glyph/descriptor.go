package glyph

// Descriptor is the per-glyph information returned for a codepoint.
// Optional fields are nil when the font does not provide them.
type Descriptor struct {
	ID                    GID
	Name                  *string
	BBox                  *Rect
	PhantomPoints         *[4]Point
	YOrigin               *int16
	VerticalAdvance       *uint16
	HorizontalAdvance     *uint16
	VerticalSideBearing   *int16
	HorizontalSideBearing *int16
	IsColor               bool
}

// Describe collects the descriptor of the glyph r maps to. It returns nil
// when r is not in the character map.
func Describe(src Source, r rune) *Descriptor {
	gid, ok := src.GlyphIndex(r)
	if !ok {
		return nil
	}

	d := &Descriptor{
		ID:      gid,
		IsColor: src.IsColor(gid),
	}
	if name := src.GlyphName(gid); name != "" {
		d.Name = &name
	}

	bbox, hasBBox := src.GlyphBBox(gid)
	if hasBBox {
		d.BBox = &bbox
	}

	hadv, lsb, hasH := src.HorizontalMetrics(gid)
	if hasH {
		d.HorizontalAdvance = &hadv
		d.HorizontalSideBearing = &lsb
	}

	vadv, tsb, hasV := src.VerticalMetrics(gid)
	if hasV {
		d.VerticalAdvance = &vadv
		d.VerticalSideBearing = &tsb
	}

	if y, ok := src.VerticalOrigin(gid); ok {
		d.YOrigin = &y
	}

	if src.HasTrueTypeOutlines() {
		d.PhantomPoints = phantomPoints(src, bbox, hadv, lsb, hasV, vadv, tsb)
	}
	return d
}

// phantomPoints computes the four TrueType phantom points: horizontal
// origin, advance width, top origin and advance height.
func phantomPoints(src Source, bbox Rect, hadv uint16, lsb int16, hasV bool, vadv uint16, tsb int16) *[4]Point {
	left := bbox.XMin - float32(lsb)
	right := left + float32(hadv)

	ascender, descender := src.LineExtents()
	top, bottom := float32(ascender), float32(descender)
	if hasV {
		top = bbox.YMax + float32(tsb)
		bottom = top - float32(vadv)
	}

	return &[4]Point{
		{X: left, Y: 0},
		{X: right, Y: 0},
		{X: 0, Y: top},
		{X: 0, Y: bottom},
	}
}
