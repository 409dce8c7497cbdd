// Package glyph describes individual glyphs and turns their outlines into
// SVG documents.
//
// # Descriptors
//
// Describe maps a rune through the font's character map and collects the
// per-glyph data the font provides: name, bounding box, advances and side
// bearings, the vertical origin, TrueType phantom points and whether the
// glyph has color data. Fields the font does not provide stay nil.
//
// # Shapes
//
// NewShape decomposes the glyph outline into a PathBuilder and wraps the
// resulting path in an SVG document:
//
//	shape := glyph.NewShape(src, 'A', glyph.DefaultStyle())
//	if shape != nil {
//	    os.WriteFile("A.svg", []byte(shape.SVG), 0o644)
//	}
//
// Outline coordinates stay in design units. The document applies the
// scale factor, (1/0.75) times Style.Scaling, together with the y-axis
// flip in a group transform, so one design unit maps to one pixel at
// 0.75 points per pixel.
//
// # Sources
//
// Both functions read the font through the Source interface. The face
// package provides the implementation backed by a parsed font file.
package glyph
