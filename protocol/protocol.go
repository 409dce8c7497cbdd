// Package protocol is the byte-in, byte-out boundary of melt. Requests and
// responses are CBOR; wire structs use snake_case keys.
//
// The functions never fail. A request that cannot be decoded is logged and
// answered with an empty CBOR array.
package protocol

import (
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/gogpu/melt"
	"github.com/gogpu/melt/glyph"
)

// GlyphsRequest asks for per-codepoint data of one face.
type GlyphsRequest struct {
	Data       []byte   `cbor:"data" json:"-"`
	Index      int      `cbor:"index" json:"index"`
	Codepoints []uint32 `cbor:"codepoints" json:"codepoints"`
}

// ShapesRequest is a GlyphsRequest with paint settings. Absent style
// fields take their glyph.DefaultStyle value.
type ShapesRequest struct {
	GlyphsRequest
	Style *Style `cbor:"style" json:"style"`
}

// Style is the wire form of glyph.Style.
type Style struct {
	Scaling     *float64 `cbor:"scaling" json:"scaling"`
	Fill        *string  `cbor:"fill" json:"fill"`
	FillOpacity *float64 `cbor:"fill_opacity" json:"fill_opacity"`
	Stroke      *string  `cbor:"stroke" json:"stroke"`
	StrokeWidth *float64 `cbor:"stroke_width" json:"stroke_width"`
}

// GlyphStyle returns the glyph.Style s describes. A nil s gives
// glyph.DefaultStyle.
func (s *Style) GlyphStyle() glyph.Style {
	st := glyph.DefaultStyle()
	if s == nil {
		return st
	}
	if s.Scaling != nil {
		st.Scaling = *s.Scaling
	}
	if s.Fill != nil {
		st.Fill = *s.Fill
	}
	if s.Stroke != nil {
		st.Stroke = *s.Stroke
	}
	if s.StrokeWidth != nil {
		st.StrokeWidth = *s.StrokeWidth
	}
	st.FillOpacity = s.FillOpacity
	return st
}

// emptyArray is the CBOR encoding of [].
var emptyArray = []byte{0x80}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		ShortestFloat: cbor.ShortestFloat16,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		MaxArrayElements: math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// CollectionInfo reports on every face of the font file in payload.
func CollectionInfo(payload []byte, opts ...melt.Option) []byte {
	infos := melt.Introspect(payload, opts...)
	out := make([]*FontInfo, len(infos))
	for i, info := range infos {
		out[i] = FromFontInfo(info)
	}
	return encode(out)
}

// GlyphInfos answers an encoded GlyphsRequest with an array of glyph
// descriptors, null where a codepoint has none.
func GlyphInfos(payload []byte, opts ...melt.Option) []byte {
	var req GlyphsRequest
	if err := decMode.Unmarshal(payload, &req); err != nil {
		melt.Logger().Warn("protocol: malformed glyph infos request", "error", err)
		return emptyArray
	}
	descs := melt.GlyphInfos(req.Data, req.Index, req.Codepoints, opts...)
	out := make([]*GlyphInfo, len(descs))
	for i, d := range descs {
		out[i] = FromDescriptor(d)
	}
	return encode(out)
}

// GlyphShapes answers an encoded ShapesRequest with an array of glyph
// shapes, null where a codepoint has none.
func GlyphShapes(payload []byte, opts ...melt.Option) []byte {
	var req ShapesRequest
	if err := decMode.Unmarshal(payload, &req); err != nil {
		melt.Logger().Warn("protocol: malformed glyph shapes request", "error", err)
		return emptyArray
	}
	shapes := melt.GlyphShapes(req.Data, req.Index, req.Style.GlyphStyle(), req.Codepoints, opts...)
	out := make([]*GlyphShape, len(shapes))
	for i, s := range shapes {
		out[i] = FromShape(s)
	}
	return encode(out)
}

// Encode marshals v with the encoding options used for responses.
func Encode(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Decode unmarshals a response or request into v.
func Decode(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

func encode[T any](v []T) []byte {
	b, err := encMode.Marshal(v)
	if err != nil {
		melt.Logger().Warn("protocol: failed to encode response", "error", err)
		return emptyArray
	}
	return b
}
