// Package melt extracts introspection data from OpenType fonts for
// typesetting clients.
//
// # Overview
//
// Given the bytes of a font file (TTF, OTF, a TTC/OTC collection or a
// dfont), melt reports for every face:
//   - the name table, resolved across platforms, encodings and languages
//   - the scripts, languages and OpenType features it supports
//   - its metrics, both in design units and normalized to the em square
//   - the family, variant, coverage and flags a typesetter selects it by
//
// and, on demand, per-codepoint glyph descriptors and glyph outlines
// rendered as SVG documents.
//
// # Quick Start
//
//	data, _ := os.ReadFile("Example.ttc")
//
//	for i, info := range melt.Introspect(data) {
//	    if info == nil {
//	        continue // face i could not be parsed
//	    }
//	    fmt.Println(i, info.Typesetting.Info.Family)
//	}
//
//	shapes := melt.GlyphShapes(data, 0, glyph.DefaultStyle(), []uint32{'A', 'b'})
//
// # Failure Model
//
// The batch functions never return errors. A face that cannot be parsed,
// a codepoint that is not a Unicode scalar value and a glyph without an
// outline all show up as nil entries, so results stay aligned with their
// inputs.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Introspect, IntrospectFace, GlyphInfos, GlyphShapes
//   - face: opens one face of a file on top of go-text/typesetting
//   - names, scripts, metrics, typeface: derive the per-face data
//   - glyph: descriptors and outline vectorization
//   - protocol: CBOR request and response encoding
//
// Nothing is cached: every call parses the bytes it is given.
package melt
