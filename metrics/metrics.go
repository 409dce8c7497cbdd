// Package metrics derives font-wide metrics, both in design units and
// normalized to the em square.
package metrics

// Source carries the font values metrics are derived from, in design units.
type Source struct {
	UnitsPerEm uint16

	// Hhea holds the horizontal header line metrics.
	Hhea Hhea

	// OS2 is nil when the font has no usable OS/2 table.
	OS2 *OS2

	// Post is nil when the font has no usable post table.
	Post *Post
}

// Hhea is the line spacing part of the 'hhea' table.
type Hhea struct {
	Ascender  int16
	Descender int16
	LineGap   int16
}

// OS2 is the subset of the 'OS/2' table used for metrics.
type OS2 struct {
	Version uint16

	TypoAscender   int16
	TypoDescender  int16
	TypoLineGap    int16
	UseTypoMetrics bool // fsSelection bit 7
	WinAscent      uint16
	WinDescent     uint16

	// XHeight and CapHeight are zero before version 2.
	XHeight   int16
	CapHeight int16

	StrikeoutSize     int16
	StrikeoutPosition int16

	SubscriptXSize     int16
	SubscriptYSize     int16
	SubscriptXOffset   int16
	SubscriptYOffset   int16
	SuperscriptXSize   int16
	SuperscriptYSize   int16
	SuperscriptXOffset int16
	SuperscriptYOffset int16
}

// Post is the subset of the 'post' table used for metrics.
type Post struct {
	ItalicAngle        float64
	UnderlinePosition  int16
	UnderlineThickness int16
}

// Raw is the font-wide metrics block in design units.
type Raw struct {
	UnitsPerEm  uint16
	Ascender    int
	Descender   int
	LineGap     int
	Height      int
	ItalicAngle *float64
}

// ComputeRaw derives the design-unit metrics of src.
//
// With USE_TYPO_METRICS set, ascender, descender and line gap come from the
// OS/2 typographic values. Otherwise the hhea values are used; when both
// hhea ascender and descender are zero, each falls back to the OS/2
// typographic value and then to the Windows metric.
func ComputeRaw(src Source) Raw {
	r := Raw{
		UnitsPerEm:  src.UnitsPerEm,
		Ascender:    int(src.Hhea.Ascender),
		Descender:   int(src.Hhea.Descender),
		LineGap:     int(src.Hhea.LineGap),
		ItalicAngle: italicAngle(src),
	}

	if os2 := src.OS2; os2 != nil {
		switch {
		case os2.UseTypoMetrics:
			r.Ascender = int(os2.TypoAscender)
			r.Descender = int(os2.TypoDescender)
			r.LineGap = int(os2.TypoLineGap)
		case src.Hhea.Ascender == 0 && src.Hhea.Descender == 0:
			r.Ascender = firstNonZero(int(os2.TypoAscender), int(os2.WinAscent))
			r.Descender = firstNonZero(int(os2.TypoDescender), -int(os2.WinDescent))
			r.LineGap = int(os2.TypoLineGap)
		}
	}

	r.Height = r.Ascender - r.Descender
	return r
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}

func italicAngle(src Source) *float64 {
	if src.Post == nil {
		return nil
	}
	a := src.Post.ItalicAngle
	return &a
}
