package face

import (
	"encoding/binary"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/melt/metrics"
	"github.com/gogpu/melt/names"
	"github.com/gogpu/melt/scripts"
)

// OS/2 fields go-text does not export, by byte offset.
const (
	os2SuperscriptYOffset = 24
	os2WinAscent          = 74
	os2WinDescent         = 76
	os2XHeight            = 86
	os2CapHeight          = 88
)

const fsSelectionUseTypoMetrics = 1 << 7

// MetricsSource collects the values the metrics package works from.
func (h *Handle) MetricsSource() metrics.Source {
	src := metrics.Source{
		UnitsPerEm: h.Font.Upem(),
		Post:       h.post,
	}
	if h.hhea != nil {
		src.Hhea = metrics.Hhea{
			Ascender:  h.hhea.Ascender,
			Descender: h.hhea.Descender,
			LineGap:   h.hhea.LineGap,
		}
	}
	if h.os2 != nil {
		src.OS2 = h.os2Metrics()
	}
	return src
}

func (h *Handle) os2Metrics() *metrics.OS2 {
	os2 := h.os2
	m := &metrics.OS2{
		Version:            os2.Version,
		TypoAscender:       os2.STypoAscender,
		TypoDescender:      os2.STypoDescender,
		TypoLineGap:        os2.STypoLineGap,
		UseTypoMetrics:     os2.FsSelection&fsSelectionUseTypoMetrics != 0,
		WinAscent:          rawUint16(h.os2Raw, os2WinAscent),
		WinDescent:         rawUint16(h.os2Raw, os2WinDescent),
		StrikeoutSize:      os2.YStrikeoutSize,
		StrikeoutPosition:  os2.YStrikeoutPosition,
		SubscriptXSize:     os2.YSubscriptXSize,
		SubscriptYSize:     os2.YSubscriptYSize,
		SubscriptXOffset:   os2.YSubscriptXOffset,
		SubscriptYOffset:   os2.YSubscriptYOffset,
		SuperscriptXSize:   os2.YSuperscriptXSize,
		SuperscriptYSize:   os2.YSuperscriptYSize,
		SuperscriptXOffset: os2.YSuperscriptXOffset,
		SuperscriptYOffset: int16(rawUint16(h.os2Raw, os2SuperscriptYOffset)),
	}
	if os2.Version >= 2 {
		m.XHeight = int16(rawUint16(h.os2Raw, os2XHeight))
		m.CapHeight = int16(rawUint16(h.os2Raw, os2CapHeight))
	}
	return m
}

// rawUint16 reads a big-endian value at off, or 0 past the end of raw.
func rawUint16(raw []byte, off int) uint16 {
	if off+2 > len(raw) {
		return 0
	}
	return binary.BigEndian.Uint16(raw[off:])
}

// OS2Raw returns the 'OS/2' table bytes, or nil when the table is absent
// or go-text could not parse it.
func (h *Handle) OS2Raw() []byte {
	return h.os2Raw
}

// NameTable reads the 'name' table.
func (h *Handle) NameTable() (*names.Table, error) {
	raw := h.RawTable(tagName)
	if raw == nil {
		return nil, fmt.Errorf("face: face %d has no name table", h.Index)
	}
	t, err := names.ReadTable(raw)
	if err != nil {
		return nil, fmt.Errorf("face: failed to read name table: %w", err)
	}
	return t, nil
}

// Meta reads the 'meta' table. A missing table is reported as an error
// alongside an empty Meta, which still answers every query.
func (h *Handle) Meta() (scripts.Meta, error) {
	raw := h.RawTable(tagMeta)
	if raw == nil {
		return scripts.Meta{}, fmt.Errorf("face: face %d has no meta table", h.Index)
	}
	return scripts.ParseMeta(raw)
}

// Layouts returns the GSUB and GPOS script and feature lists. Absent
// tables give zero layouts.
func (h *Handle) Layouts() []font.Layout {
	return []font.Layout{h.Font.GSUB.Layout, h.Font.GPOS.Layout}
}

// HasMath reports whether the face has a 'MATH' table.
func (h *Handle) HasMath() bool {
	return h.Loader.HasTable(tagMATH)
}

// IsVariable reports whether the face has an 'fvar' table.
func (h *Handle) IsVariable() bool {
	return h.Loader.HasTable(tagFvar)
}
