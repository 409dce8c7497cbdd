package protocol

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/melt"
	"github.com/gogpu/melt/glyph"
	"github.com/gogpu/melt/internal/fonttest"
	"github.com/gogpu/melt/scripts"
)

func TestCollectionInfo(t *testing.T) {
	data := fonttest.Collection(fonttest.GoRegular(), []byte("not a font, just filler"), fonttest.GoMono())

	var got []*FontInfo
	if err := Decode(CollectionInfo(data), &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] == nil || got[1] != nil || got[2] == nil {
		t.Fatalf("presence = %v %v %v, want true false true", got[0] != nil, got[1] != nil, got[2] != nil)
	}

	want := FromFontInfo(melt.Introspect(fonttest.GoRegular())[0])
	if diff := cmp.Diff(want, got[0], cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("face 0 mismatch (-want +got):\n%s", diff)
	}
	if !got[2].Typst.Info.IsMonospace {
		t.Error("face 2: is_monospace = false")
	}
}

func TestCollectionInfo_Empty(t *testing.T) {
	for _, payload := range [][]byte{nil, {}} {
		var got []*FontInfo
		if err := Decode(CollectionInfo(payload), &got); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(got) != 1 || got[0] != nil {
			t.Errorf("CollectionInfo(%v) = %v, want [nil]", payload, got)
		}
	}
}

func TestCollectionInfo_SnakeCaseKeys(t *testing.T) {
	var raw []map[string]any
	if err := Decode(CollectionInfo(fonttest.GoRegular()), &raw); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("len = %d, want 1", len(raw))
	}
	for _, key := range []string{"properties", "metrics", "typst"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	metrics, ok := raw[0]["metrics"].(map[any]any)
	if !ok {
		t.Fatalf("metrics = %T", raw[0]["metrics"])
	}
	if _, ok := metrics["line_gap"]; !ok {
		t.Errorf("metrics keys = %v, want line_gap", metrics)
	}
}

func TestGlyphInfos(t *testing.T) {
	req, err := Encode(GlyphsRequest{
		Data:       fonttest.GoRegular(),
		Index:      0,
		Codepoints: []uint32{'A', 0xD800, 0x1F600},
	})
	if err != nil {
		t.Fatal(err)
	}

	var got []*GlyphInfo
	if err := Decode(GlyphInfos(req), &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 3 || got[0] == nil || got[1] != nil || got[2] != nil {
		t.Fatalf("GlyphInfos() = %v, want [info nil nil]", got)
	}
	if got[0].HorizontalAdvance == nil || got[0].PhantomPoints == nil {
		t.Errorf("GlyphInfos()[0] = %+v, want advance and phantom points", got[0])
	}
	if got[0].IsColor {
		t.Error("is_color = true")
	}
}

func TestGlyphShapes(t *testing.T) {
	fill := "rgb(255, 0, 0)"
	scaling := 2.0
	req, err := Encode(ShapesRequest{
		GlyphsRequest: GlyphsRequest{
			Data:       fonttest.GoRegular(),
			Codepoints: []uint32{'A', ' '},
		},
		Style: &Style{Scaling: &scaling, Fill: &fill},
	})
	if err != nil {
		t.Fatal(err)
	}

	var got []*GlyphShape
	if err := Decode(GlyphShapes(req), &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 2 || got[0] == nil || got[1] != nil {
		t.Fatalf("GlyphShapes() = %v, want [shape nil]", got)
	}
	if want := 2 / 0.75; got[0].Scale != want {
		t.Errorf("scale = %v, want %v", got[0].Scale, want)
	}
	if !bytes.Contains([]byte(got[0].SVG), []byte(`fill="#ff0000"`)) {
		t.Errorf("svg = %q, want a #ff0000 fill", got[0].SVG)
	}
}

func TestMalformedRequests(t *testing.T) {
	payloads := map[string][]byte{
		"empty":      nil,
		"garbage":    {0xff, 0x00, 0x13},
		"wrong type": {0x18, 0x2a}, // 42
		"truncated":  {0xa1, 0x64, 'd', 'a'},
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			if got := GlyphInfos(payload); !bytes.Equal(got, emptyArray) {
				t.Errorf("GlyphInfos() = %x, want %x", got, emptyArray)
			}
			if got := GlyphShapes(payload); !bytes.Equal(got, emptyArray) {
				t.Errorf("GlyphShapes() = %x, want %x", got, emptyArray)
			}
		})
	}
}

func TestBadFaceRequest(t *testing.T) {
	req, err := Encode(GlyphsRequest{Data: []byte("nope"), Codepoints: []uint32{'A', 'B'}})
	if err != nil {
		t.Fatal(err)
	}
	var got []*GlyphInfo
	if err := Decode(GlyphInfos(req), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*GlyphInfo{nil, nil}, got); diff != "" {
		t.Errorf("GlyphInfos() mismatch (-want +got):\n%s", diff)
	}
}

func TestStyle_GlyphStyle(t *testing.T) {
	var nilStyle *Style
	if diff := cmp.Diff(glyph.DefaultStyle(), nilStyle.GlyphStyle()); diff != "" {
		t.Errorf("nil style mismatch (-want +got):\n%s", diff)
	}

	stroke, width, opacity := "#000", 12.0, 0.5
	got := (&Style{Stroke: &stroke, StrokeWidth: &width, FillOpacity: &opacity}).GlyphStyle()
	want := glyph.DefaultStyle()
	want.Stroke, want.StrokeWidth, want.FillOpacity = stroke, width, &opacity
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GlyphStyle() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromScripts_DefaultLanguage(t *testing.T) {
	dflt := scripts.DefaultLanguageTag
	got := fromScripts(scripts.Info{Details: []scripts.Script{
		{Tag: "latn", Languages: []string{"TRK"}, DefaultLanguage: &dflt},
		{Tag: "cyrl"},
	}})

	b, err := Encode(got.Details)
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := Decode(b, &raw); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"dflt", nil}, []any{raw[0]["default_language"], raw[1]["default_language"]}); diff != "" {
		t.Errorf("default_language mismatch (-want +got):\n%s", diff)
	}
}
