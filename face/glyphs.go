package face

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/melt/glyph"
)

var _ glyph.Source = (*Handle)(nil)

// GlyphIndex implements glyph.Source.
func (h *Handle) GlyphIndex(r rune) (glyph.GID, bool) {
	gid, ok := h.Face.NominalGlyph(r)
	if !ok || gid > 0xFFFF {
		return 0, false
	}
	return glyph.GID(gid), true
}

// GlyphName implements glyph.Source.
func (h *Handle) GlyphName(gid glyph.GID) string {
	return h.Font.GlyphName(font.GID(gid))
}

// GlyphBBox implements glyph.Source.
func (h *Handle) GlyphBBox(gid glyph.GID) (glyph.Rect, bool) {
	ext, ok := h.Face.GlyphExtents(font.GID(gid))
	if !ok {
		return glyph.Rect{}, false
	}
	// YBearing is the top edge and Height is negative.
	return glyph.Rect{
		XMin: ext.XBearing,
		YMin: ext.YBearing + ext.Height,
		XMax: ext.XBearing + ext.Width,
		YMax: ext.YBearing,
	}, true
}

// Outline implements glyph.Source. Each contour is closed before the next
// one starts and after the last one.
func (h *Handle) Outline(gid glyph.GID, sink glyph.PathSink) bool {
	out, ok := h.Face.GlyphDataOutline(gid)
	if !ok {
		return false
	}
	open := false
	for _, seg := range out.Segments {
		a := seg.Args
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			sink.MoveTo(a[0].X, a[0].Y)
			open = true
		case opentype.SegmentOpLineTo:
			sink.LineTo(a[0].X, a[0].Y)
		case opentype.SegmentOpQuadTo:
			sink.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case opentype.SegmentOpCubeTo:
			sink.CubeTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	if open {
		sink.Close()
	}
	return true
}

// HorizontalMetrics implements glyph.Source.
func (h *Handle) HorizontalMetrics(gid glyph.GID) (uint16, int16, bool) {
	if h.hmtx.IsEmpty() {
		return 0, 0, false
	}
	return uint16(h.hmtx.Advance(gid)), h.hmtx.SideBearing(gid), true
}

// VerticalMetrics implements glyph.Source.
func (h *Handle) VerticalMetrics(gid glyph.GID) (uint16, int16, bool) {
	if h.vmtx.IsEmpty() {
		return 0, 0, false
	}
	return uint16(h.vmtx.Advance(gid)), h.vmtx.SideBearing(gid), true
}

// VerticalOrigin implements glyph.Source.
func (h *Handle) VerticalOrigin(gid glyph.GID) (int16, bool) {
	if h.vorg == nil {
		return 0, false
	}
	return h.vorg.YOrigin(gid), true
}

// HasTrueTypeOutlines implements glyph.Source.
func (h *Handle) HasTrueTypeOutlines() bool {
	return h.Loader.HasTable(tagGlyf)
}

// LineExtents implements glyph.Source.
func (h *Handle) LineExtents() (ascender, descender int16) {
	if h.hhea == nil {
		return 0, 0
	}
	return h.hhea.Ascender, h.hhea.Descender
}

// IsColor implements glyph.Source.
func (h *Handle) IsColor(gid glyph.GID) bool {
	if _, ok := h.Face.GlyphDataColor(gid); ok {
		return true
	}
	if _, ok := h.Face.GlyphDataSVG(gid); ok {
		return true
	}
	_, ok := h.Face.GlyphDataBitmap(gid)
	return ok
}
