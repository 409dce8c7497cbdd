package protocol

import (
	"github.com/gogpu/melt"
	"github.com/gogpu/melt/glyph"
	"github.com/gogpu/melt/metrics"
	"github.com/gogpu/melt/names"
	"github.com/gogpu/melt/scripts"
	"github.com/gogpu/melt/typeface"
)

// FontInfo is the wire form of melt.FontInfo.
type FontInfo struct {
	Properties Properties  `cbor:"properties" json:"properties"`
	Metrics    RawMetrics  `cbor:"metrics" json:"metrics"`
	Typst      Typesetting `cbor:"typst" json:"typst"`
}

// Properties is the wire form of melt.Properties.
type Properties struct {
	Names    map[string][]Name `cbor:"names" json:"names"`
	Scripts  Scripts           `cbor:"scripts" json:"scripts"`
	Features []string          `cbor:"features" json:"features"`
}

// Name is one decoded name record.
type Name struct {
	Name     *string `cbor:"name" json:"name"`
	Language *string `cbor:"language" json:"language"`
	Encoding string  `cbor:"encoding" json:"encoding"`
}

// Scripts is the wire form of scripts.Info.
type Scripts struct {
	Scripts   []string `cbor:"scripts" json:"scripts"`
	Languages []string `cbor:"languages" json:"languages"`
	Designed  []string `cbor:"designed" json:"designed"`
	Supported []string `cbor:"supported" json:"supported"`
	Details   []Script `cbor:"details" json:"details"`
}

// Script is the wire form of scripts.Script.
type Script struct {
	Tag             string   `cbor:"tag" json:"tag"`
	Languages       []string `cbor:"languages" json:"languages"`
	DefaultLanguage *string  `cbor:"default_language" json:"default_language"`
}

// RawMetrics is the wire form of metrics.Raw.
type RawMetrics struct {
	Em          uint16   `cbor:"em" json:"em"`
	Ascender    int      `cbor:"ascender" json:"ascender"`
	Descender   int      `cbor:"descender" json:"descender"`
	LineGap     int      `cbor:"line_gap" json:"line_gap"`
	Height      int      `cbor:"height" json:"height"`
	ItalicAngle *float64 `cbor:"italic_angle" json:"italic_angle"`
}

// Typesetting is the wire form of melt.Typesetting.
type Typesetting struct {
	Info    TypefaceInfo `cbor:"info" json:"info"`
	Metrics EmMetrics    `cbor:"metrics" json:"metrics"`
}

// TypefaceInfo is the wire form of typeface.Info.
type TypefaceInfo struct {
	Family       string   `cbor:"family" json:"family"`
	Variant      Variant  `cbor:"variant" json:"variant"`
	Coverage     []uint32 `cbor:"coverage" json:"coverage"`
	IsMonospace  bool     `cbor:"is_monospace" json:"is_monospace"`
	IsSerif      bool     `cbor:"is_serif" json:"is_serif"`
	IsVariable   bool     `cbor:"is_variable" json:"is_variable"`
	HasMathTable bool     `cbor:"has_math_table" json:"has_math_table"`
}

// Variant is the wire form of typeface.Variant.
type Variant struct {
	Style   string  `cbor:"style" json:"style"`
	Weight  uint16  `cbor:"weight" json:"weight"`
	Stretch float64 `cbor:"stretch" json:"stretch"`
}

// EmMetrics is the wire form of metrics.Model.
type EmMetrics struct {
	UnitsPerEm    float64        `cbor:"units_per_em" json:"units_per_em"`
	Ascender      float64        `cbor:"ascender" json:"ascender"`
	Descender     float64        `cbor:"descender" json:"descender"`
	CapHeight     float64        `cbor:"cap_height" json:"cap_height"`
	XHeight       float64        `cbor:"x_height" json:"x_height"`
	ItalicAngle   *float64       `cbor:"italic_angle" json:"italic_angle"`
	Strikethrough LineMetrics    `cbor:"strikethrough" json:"strikethrough"`
	Overline      LineMetrics    `cbor:"overline" json:"overline"`
	Underline     LineMetrics    `cbor:"underline" json:"underline"`
	Subscript     *ScriptMetrics `cbor:"subscript" json:"subscript"`
	Superscript   *ScriptMetrics `cbor:"superscript" json:"superscript"`
}

// LineMetrics is the wire form of metrics.LineMetrics.
type LineMetrics struct {
	Position  float64 `cbor:"position" json:"position"`
	Thickness float64 `cbor:"thickness" json:"thickness"`
}

// ScriptMetrics is the wire form of metrics.ScriptMetrics.
type ScriptMetrics struct {
	Width            float64 `cbor:"width" json:"width"`
	Height           float64 `cbor:"height" json:"height"`
	HorizontalOffset float64 `cbor:"horizontal_offset" json:"horizontal_offset"`
	VerticalOffset   float64 `cbor:"vertical_offset" json:"vertical_offset"`
}

// GlyphInfo is the wire form of glyph.Descriptor.
type GlyphInfo struct {
	ID                    uint16         `cbor:"id" json:"id"`
	Name                  *string        `cbor:"name" json:"name"`
	BBox                  *BBox          `cbor:"bbox" json:"bbox"`
	PhantomPoints         *PhantomPoints `cbor:"phantom_points" json:"phantom_points"`
	YOrigin               *int16         `cbor:"y_origin" json:"y_origin"`
	VerticalAdvance       *uint16        `cbor:"vertical_advance" json:"vertical_advance"`
	HorizontalAdvance     *uint16        `cbor:"horizontal_advance" json:"horizontal_advance"`
	VerticalSideBearing   *int16         `cbor:"vertical_side_bearing" json:"vertical_side_bearing"`
	HorizontalSideBearing *int16         `cbor:"horizontal_side_bearing" json:"horizontal_side_bearing"`
	IsColor               bool           `cbor:"is_color" json:"is_color"`
}

// BBox is a glyph bounding box in design units.
type BBox struct {
	XMin float32 `cbor:"x_min" json:"x_min"`
	YMin float32 `cbor:"y_min" json:"y_min"`
	XMax float32 `cbor:"x_max" json:"x_max"`
	YMax float32 `cbor:"y_max" json:"y_max"`
}

// Point is a position in design units.
type Point struct {
	X float32 `cbor:"x" json:"x"`
	Y float32 `cbor:"y" json:"y"`
}

// PhantomPoints are the four TrueType phantom points.
type PhantomPoints struct {
	Left   Point `cbor:"left" json:"left"`
	Right  Point `cbor:"right" json:"right"`
	Top    Point `cbor:"top" json:"top"`
	Bottom Point `cbor:"bottom" json:"bottom"`
}

// GlyphShape is the wire form of glyph.Shape.
type GlyphShape struct {
	Path    string       `cbor:"path" json:"path"`
	Metrics ShapeMetrics `cbor:"metrics" json:"metrics"`
	Scale   float64      `cbor:"scale" json:"scale"`
	SVG     string       `cbor:"svg" json:"svg"`
}

// ShapeMetrics is the wire form of glyph.Metrics.
type ShapeMetrics struct {
	XOrigin float64 `cbor:"x_origin" json:"x_origin"`
	YOrigin float64 `cbor:"y_origin" json:"y_origin"`
	Width   float64 `cbor:"width" json:"width"`
	Height  float64 `cbor:"height" json:"height"`
}

// FromFontInfo converts info to its wire form. A nil info gives nil.
func FromFontInfo(info *melt.FontInfo) *FontInfo {
	if info == nil {
		return nil
	}
	return &FontInfo{
		Properties: Properties{
			Names:    fromNames(info.Properties.Names),
			Scripts:  fromScripts(info.Properties.Scripts),
			Features: info.Properties.Features,
		},
		Metrics: RawMetrics{
			Em:          info.Metrics.UnitsPerEm,
			Ascender:    info.Metrics.Ascender,
			Descender:   info.Metrics.Descender,
			LineGap:     info.Metrics.LineGap,
			Height:      info.Metrics.Height,
			ItalicAngle: info.Metrics.ItalicAngle,
		},
		Typst: Typesetting{
			Info:    fromTypeface(info.Typesetting.Info),
			Metrics: fromModel(info.Typesetting.Metrics),
		},
	}
}

func fromNames(n names.Names) map[string][]Name {
	out := make(map[string][]Name, len(n))
	for key, records := range n {
		list := make([]Name, len(records))
		for i, r := range records {
			list[i] = Name{Name: r.Name, Language: r.Language, Encoding: r.Encoding.String()}
		}
		out[key] = list
	}
	return out
}

func fromScripts(info scripts.Info) Scripts {
	details := make([]Script, len(info.Details))
	for i, d := range info.Details {
		details[i] = Script{Tag: d.Tag, Languages: d.Languages, DefaultLanguage: d.DefaultLanguage}
	}
	return Scripts{
		Scripts:   info.Scripts,
		Languages: info.Languages,
		Designed:  info.Designed,
		Supported: info.Supported,
		Details:   details,
	}
}

func fromTypeface(info typeface.Info) TypefaceInfo {
	return TypefaceInfo{
		Family: info.Family,
		Variant: Variant{
			Style:   string(info.Variant.Style),
			Weight:  info.Variant.Weight,
			Stretch: info.Variant.Stretch,
		},
		Coverage:     info.Coverage,
		IsMonospace:  info.Monospace,
		IsSerif:      info.Serif,
		IsVariable:   info.Variable,
		HasMathTable: info.MathTable,
	}
}

func fromModel(m metrics.Model) EmMetrics {
	return EmMetrics{
		UnitsPerEm:    m.UnitsPerEm,
		Ascender:      m.Ascender,
		Descender:     m.Descender,
		CapHeight:     m.CapHeight,
		XHeight:       m.XHeight,
		ItalicAngle:   m.ItalicAngle,
		Strikethrough: LineMetrics(m.Strikethrough),
		Overline:      LineMetrics(m.Overline),
		Underline:     LineMetrics(m.Underline),
		Subscript:     fromScriptMetrics(m.Subscript),
		Superscript:   fromScriptMetrics(m.Superscript),
	}
}

func fromScriptMetrics(s *metrics.ScriptMetrics) *ScriptMetrics {
	if s == nil {
		return nil
	}
	out := ScriptMetrics(*s)
	return &out
}

// FromDescriptor converts d to its wire form. A nil d gives nil.
func FromDescriptor(d *glyph.Descriptor) *GlyphInfo {
	if d == nil {
		return nil
	}
	g := &GlyphInfo{
		ID:                    d.ID,
		Name:                  d.Name,
		YOrigin:               d.YOrigin,
		VerticalAdvance:       d.VerticalAdvance,
		HorizontalAdvance:     d.HorizontalAdvance,
		VerticalSideBearing:   d.VerticalSideBearing,
		HorizontalSideBearing: d.HorizontalSideBearing,
		IsColor:               d.IsColor,
	}
	if b := d.BBox; b != nil {
		g.BBox = &BBox{XMin: b.XMin, YMin: b.YMin, XMax: b.XMax, YMax: b.YMax}
	}
	if p := d.PhantomPoints; p != nil {
		g.PhantomPoints = &PhantomPoints{
			Left:   Point(p[0]),
			Right:  Point(p[1]),
			Top:    Point(p[2]),
			Bottom: Point(p[3]),
		}
	}
	return g
}

// FromShape converts s to its wire form. A nil s gives nil.
func FromShape(s *glyph.Shape) *GlyphShape {
	if s == nil {
		return nil
	}
	return &GlyphShape{
		Path:    s.Path,
		Metrics: ShapeMetrics(s.Metrics),
		Scale:   s.Scale,
		SVG:     s.SVG,
	}
}
