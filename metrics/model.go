package metrics

// Default em-relative values for fonts that lack the underlying tables.
const (
	DefaultStrikeoutPosition = 0.25
	DefaultUnderlinePosition = -0.2
	DefaultLineThickness     = 0.06
	OverlineGap              = 0.1
)

// LineMetrics positions a decoration line relative to the baseline.
type LineMetrics struct {
	Position  float64
	Thickness float64
}

// ScriptMetrics describes synthesized subscripts or superscripts.
type ScriptMetrics struct {
	Width            float64
	Height           float64
	HorizontalOffset float64
	// VerticalOffset is positive upwards for superscripts and downwards
	// for subscripts.
	VerticalOffset float64
}

// Model is the typesetter view of a font's metrics. All lengths except
// UnitsPerEm are relative to the em size.
type Model struct {
	UnitsPerEm    float64
	Ascender      float64
	Descender     float64
	CapHeight     float64
	XHeight       float64
	ItalicAngle   *float64 // degrees, counter-clockwise
	Strikethrough LineMetrics
	Overline      LineMetrics
	Underline     LineMetrics
	Subscript     *ScriptMetrics
	Superscript   *ScriptMetrics
}

// Absolute converts an em-relative value of m back into design units.
func (m Model) Absolute(v float64) float64 {
	return v * m.UnitsPerEm
}

// Normalize builds the em-relative model of src.
func Normalize(src Source) Model {
	upem := float64(src.UnitsPerEm)
	if upem <= 0 {
		upem = 1000
	}
	em := func(v int16) float64 { return float64(v) / upem }

	m := Model{
		UnitsPerEm:  upem,
		Ascender:    em(src.Hhea.Ascender),
		Descender:   em(src.Hhea.Descender),
		ItalicAngle: italicAngle(src),
	}

	os2 := src.OS2
	if os2 != nil {
		m.Ascender = em(os2.TypoAscender)
		m.Descender = em(os2.TypoDescender)
	}

	m.CapHeight, m.XHeight = m.Ascender, m.Ascender
	if os2 != nil && os2.CapHeight > 0 {
		m.CapHeight = em(os2.CapHeight)
	}
	if os2 != nil && os2.XHeight > 0 {
		m.XHeight = em(os2.XHeight)
	}

	var strikeout, underline *LineMetrics
	if os2 != nil {
		strikeout = &LineMetrics{Position: em(os2.StrikeoutPosition), Thickness: em(os2.StrikeoutSize)}
	}
	if src.Post != nil {
		underline = &LineMetrics{Position: em(src.Post.UnderlinePosition), Thickness: em(src.Post.UnderlineThickness)}
	}

	m.Strikethrough = LineMetrics{Position: DefaultStrikeoutPosition, Thickness: DefaultLineThickness}
	m.Underline = LineMetrics{Position: DefaultUnderlinePosition, Thickness: DefaultLineThickness}
	switch {
	case strikeout != nil:
		m.Strikethrough = *strikeout
	case underline != nil:
		m.Strikethrough.Thickness = underline.Thickness
	}
	switch {
	case underline != nil:
		m.Underline = *underline
	case strikeout != nil:
		m.Underline.Thickness = strikeout.Thickness
	}

	m.Overline = LineMetrics{
		Position:  m.CapHeight + OverlineGap,
		Thickness: m.Underline.Thickness,
	}

	if os2 != nil {
		m.Subscript = &ScriptMetrics{
			Width:            em(os2.SubscriptXSize),
			Height:           em(os2.SubscriptYSize),
			HorizontalOffset: em(os2.SubscriptXOffset),
			VerticalOffset:   -em(os2.SubscriptYOffset),
		}
		m.Superscript = &ScriptMetrics{
			Width:            em(os2.SuperscriptXSize),
			Height:           em(os2.SuperscriptYSize),
			HorizontalOffset: em(os2.SuperscriptXOffset),
			VerticalOffset:   em(os2.SuperscriptYOffset),
		}
	}
	return m
}
