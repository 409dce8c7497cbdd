package glyph

// GID is a glyph index.
type GID = uint16

// Source is the per-glyph view of a font.
type Source interface {
	// GlyphIndex maps r through the character map.
	GlyphIndex(r rune) (GID, bool)

	// GlyphName returns the PostScript name of gid, or "" if unknown.
	GlyphName(gid GID) string

	// GlyphBBox returns the bounding box stored in the font.
	GlyphBBox(gid GID) (Rect, bool)

	// Outline replays the outline of gid into sink. It reports false when
	// the glyph has no outline at all.
	Outline(gid GID, sink PathSink) bool

	// HorizontalMetrics returns the hmtx advance and left side bearing.
	HorizontalMetrics(gid GID) (advance uint16, sideBearing int16, ok bool)

	// VerticalMetrics returns the vmtx advance and top side bearing.
	VerticalMetrics(gid GID) (advance uint16, sideBearing int16, ok bool)

	// VerticalOrigin returns the VORG y-origin of gid.
	VerticalOrigin(gid GID) (int16, bool)

	// HasTrueTypeOutlines reports whether outlines come from a glyf table.
	HasTrueTypeOutlines() bool

	// LineExtents returns the hhea ascender and descender.
	LineExtents() (ascender, descender int16)

	// IsColor reports whether gid has COLR, SVG or bitmap data.
	IsColor(gid GID) bool
}
