// Package face opens one face of a font file and exposes the parsed tables
// the rest of the module derives its data from.
//
// A Handle borrows the caller's bytes and is meant to live for a single
// request. It is not safe for concurrent use: the underlying go-text Face
// caches glyph lookups.
package face

import (
	"encoding/binary"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/melt/metrics"
)

// Table tags read by the handle.
var (
	tagHhea = opentype.MustNewTag("hhea")
	tagHmtx = opentype.MustNewTag("hmtx")
	tagVhea = opentype.MustNewTag("vhea")
	tagVmtx = opentype.MustNewTag("vmtx")
	tagVORG = opentype.MustNewTag("VORG")
	tagOS2  = opentype.MustNewTag("OS/2")
	tagPost = opentype.MustNewTag("post")
	tagGlyf = opentype.MustNewTag("glyf")
	tagName = opentype.MustNewTag("name")
	tagMeta = opentype.MustNewTag("meta")
	tagMATH = opentype.MustNewTag("MATH")
	tagFvar = opentype.MustNewTag("fvar")
	tagMaxp = opentype.MustNewTag("maxp")
)

// Handle is one opened face.
type Handle struct {
	Index  int
	Loader *opentype.Loader
	Font   *font.Font
	Face   *font.Face

	hhea *tables.Hhea
	hmtx tables.Hmtx
	vhea *tables.Hhea
	vmtx tables.Hmtx
	vorg *tables.VORG

	os2    *tables.Os2
	os2Raw []byte
	post   *metrics.Post
}

// Open parses face index of data. Single fonts only have face 0.
func Open(data []byte, index int) (*Handle, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if n := CollectionSize(data); index < 0 || index >= n {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndexOutOfRange, index, n)
	}

	ld, err := loadFace(data, index)
	if err != nil {
		return nil, fmt.Errorf("face: failed to load face %d: %w", index, err)
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse face %d: %w", index, err)
	}

	h := &Handle{
		Index:  index,
		Loader: ld,
		Font:   ft,
		Face:   font.NewFace(ft),
	}
	numGlyphs := h.NumGlyphs()
	h.hhea, h.hmtx = h.loadMetrics(tagHhea, tagHmtx, numGlyphs)
	h.vhea, h.vmtx = h.loadMetrics(tagVhea, tagVmtx, numGlyphs)

	if raw, err := ld.RawTable(tagVORG); err == nil {
		if vorg, _, err := tables.ParseVORG(raw); err == nil {
			h.vorg = &vorg
		}
	}
	if raw, err := ld.RawTable(tagOS2); err == nil {
		if os2, _, err := tables.ParseOs2(raw); err == nil {
			h.os2, h.os2Raw = &os2, raw
		}
	}
	h.post = loadPost(data, index, ld)
	return h, nil
}

// loadMetrics parses a header and metrics table pair. Both results are
// zero when either table is missing or malformed, or when the header
// declares no long metrics for a font that has glyphs.
func (h *Handle) loadMetrics(header, body opentype.Tag, numGlyphs int) (*tables.Hhea, tables.Hmtx) {
	rawHeader, err := h.Loader.RawTable(header)
	if err != nil {
		return nil, tables.Hmtx{}
	}
	rawMetrics, err := h.Loader.RawTable(body)
	if err != nil {
		return nil, tables.Hmtx{}
	}
	hdr, _, err := tables.ParseHhea(rawHeader)
	if err != nil {
		return nil, tables.Hmtx{}
	}
	long := int(hdr.NumOfLongMetrics)
	if long == 0 && numGlyphs > 0 {
		// Side bearings alone carry no advance to repeat.
		return nil, tables.Hmtx{}
	}
	mtx, _, err := tables.ParseHmtx(rawMetrics, long, max(numGlyphs-long, 0))
	if err != nil {
		return nil, tables.Hmtx{}
	}
	return &hdr, mtx
}

// loadPost reads the 'post' header through x/image, which exposes the
// italic angle, and falls back to the raw table for fonts x/image rejects.
func loadPost(data []byte, index int, ld *opentype.Loader) *metrics.Post {
	if c, err := sfnt.ParseCollection(data); err == nil {
		if f, err := c.Font(index); err == nil {
			if p := f.PostTable(); p != nil {
				return &metrics.Post{
					ItalicAngle:        p.ItalicAngle,
					UnderlinePosition:  p.UnderlinePosition,
					UnderlineThickness: p.UnderlineThickness,
				}
			}
		}
	}

	raw, err := ld.RawTable(tagPost)
	if err != nil || len(raw) < 12 {
		return nil
	}
	return &metrics.Post{
		ItalicAngle:        float64(int32(binary.BigEndian.Uint32(raw[4:]))) / 0x10000,
		UnderlinePosition:  int16(binary.BigEndian.Uint16(raw[8:])),
		UnderlineThickness: int16(binary.BigEndian.Uint16(raw[10:])),
	}
}

// NumGlyphs returns the glyph count declared in 'maxp'.
func (h *Handle) NumGlyphs() int {
	maxp, _, err := tables.ParseMaxp(h.RawTable(tagMaxp))
	if err != nil {
		return 0
	}
	return int(maxp.NumGlyphs)
}

// HasTable reports whether the face contains the table tag.
func (h *Handle) HasTable(tag string) bool {
	return h.Loader.HasTable(opentype.MustNewTag(tag))
}

// RawTable returns the bytes of a table, or nil if it is absent.
func (h *Handle) RawTable(tag opentype.Tag) []byte {
	raw, err := h.Loader.RawTable(tag)
	if err != nil {
		return nil
	}
	return raw
}
