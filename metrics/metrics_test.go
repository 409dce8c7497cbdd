package metrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func fullSource() Source {
	return Source{
		UnitsPerEm: 1000,
		Hhea:       Hhea{Ascender: 900, Descender: -300, LineGap: 50},
		OS2: &OS2{
			Version:            4,
			TypoAscender:       800,
			TypoDescender:      -200,
			TypoLineGap:        100,
			WinAscent:          950,
			WinDescent:         250,
			XHeight:            500,
			CapHeight:          700,
			StrikeoutSize:      50,
			StrikeoutPosition:  300,
			SubscriptXSize:     650,
			SubscriptYSize:     600,
			SubscriptXOffset:   10,
			SubscriptYOffset:   75,
			SuperscriptXSize:   650,
			SuperscriptYSize:   600,
			SuperscriptXOffset: 20,
			SuperscriptYOffset: 350,
		},
		Post: &Post{ItalicAngle: -12, UnderlinePosition: -100, UnderlineThickness: 40},
	}
}

func ptr[T any](v T) *T { return &v }

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestNormalize(t *testing.T) {
	noOS2 := fullSource()
	noOS2.OS2 = nil

	noPost := fullSource()
	noPost.Post = nil

	bare := Source{UnitsPerEm: 2000, Hhea: Hhea{Ascender: 1600, Descender: -400}}

	oldOS2 := fullSource()
	oldOS2.OS2.Version = 1
	oldOS2.OS2.XHeight = 0
	oldOS2.OS2.CapHeight = 0

	tests := []struct {
		name string
		src  Source
		want Model
	}{
		{
			name: "all tables",
			src:  fullSource(),
			want: Model{
				UnitsPerEm:    1000,
				Ascender:      0.8,
				Descender:     -0.2,
				CapHeight:     0.7,
				XHeight:       0.5,
				ItalicAngle:   ptr(-12.0),
				Strikethrough: LineMetrics{Position: 0.3, Thickness: 0.05},
				Overline:      LineMetrics{Position: 0.8, Thickness: 0.04},
				Underline:     LineMetrics{Position: -0.1, Thickness: 0.04},
				Subscript:     &ScriptMetrics{Width: 0.65, Height: 0.6, HorizontalOffset: 0.01, VerticalOffset: -0.075},
				Superscript:   &ScriptMetrics{Width: 0.65, Height: 0.6, HorizontalOffset: 0.02, VerticalOffset: 0.35},
			},
		},
		{
			name: "no OS/2",
			src:  noOS2,
			want: Model{
				UnitsPerEm:    1000,
				Ascender:      0.9,
				Descender:     -0.3,
				CapHeight:     0.9,
				XHeight:       0.9,
				ItalicAngle:   ptr(-12.0),
				Strikethrough: LineMetrics{Position: 0.25, Thickness: 0.04},
				Overline:      LineMetrics{Position: 1.0, Thickness: 0.04},
				Underline:     LineMetrics{Position: -0.1, Thickness: 0.04},
			},
		},
		{
			name: "no post",
			src:  noPost,
			want: Model{
				UnitsPerEm:    1000,
				Ascender:      0.8,
				Descender:     -0.2,
				CapHeight:     0.7,
				XHeight:       0.5,
				Strikethrough: LineMetrics{Position: 0.3, Thickness: 0.05},
				Overline:      LineMetrics{Position: 0.8, Thickness: 0.05},
				Underline:     LineMetrics{Position: -0.2, Thickness: 0.05},
				Subscript:     &ScriptMetrics{Width: 0.65, Height: 0.6, HorizontalOffset: 0.01, VerticalOffset: -0.075},
				Superscript:   &ScriptMetrics{Width: 0.65, Height: 0.6, HorizontalOffset: 0.02, VerticalOffset: 0.35},
			},
		},
		{
			name: "hhea only",
			src:  bare,
			want: Model{
				UnitsPerEm:    2000,
				Ascender:      0.8,
				Descender:     -0.2,
				CapHeight:     0.8,
				XHeight:       0.8,
				Strikethrough: LineMetrics{Position: 0.25, Thickness: 0.06},
				Overline:      LineMetrics{Position: 0.9, Thickness: 0.06},
				Underline:     LineMetrics{Position: -0.2, Thickness: 0.06},
			},
		},
		{
			name: "OS/2 before version 2",
			src:  oldOS2,
			want: Model{
				UnitsPerEm:    1000,
				Ascender:      0.8,
				Descender:     -0.2,
				CapHeight:     0.8,
				XHeight:       0.8,
				ItalicAngle:   ptr(-12.0),
				Strikethrough: LineMetrics{Position: 0.3, Thickness: 0.05},
				Overline:      LineMetrics{Position: 0.9, Thickness: 0.04},
				Underline:     LineMetrics{Position: -0.1, Thickness: 0.04},
				Subscript:     &ScriptMetrics{Width: 0.65, Height: 0.6, HorizontalOffset: 0.01, VerticalOffset: -0.075},
				Superscript:   &ScriptMetrics{Width: 0.65, Height: 0.6, HorizontalOffset: 0.02, VerticalOffset: 0.35},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Normalize(tt.src), approx); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModel_Absolute(t *testing.T) {
	m := Normalize(fullSource())
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"ascender", m.Ascender, 800},
		{"descender", m.Descender, -200},
		{"cap height", m.CapHeight, 700},
		{"underline", m.Underline.Position, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, m.Absolute(tt.v), approx); diff != "" {
				t.Errorf("Absolute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeRaw(t *testing.T) {
	typo := fullSource()
	typo.OS2.UseTypoMetrics = true

	zeroHhea := fullSource()
	zeroHhea.Hhea = Hhea{}

	winOnly := fullSource()
	winOnly.Hhea = Hhea{}
	winOnly.OS2.TypoAscender = 0
	winOnly.OS2.TypoDescender = 0
	winOnly.OS2.TypoLineGap = 0
	winOnly.Post = nil

	tests := []struct {
		name string
		src  Source
		want Raw
	}{
		{
			name: "hhea",
			src:  fullSource(),
			want: Raw{UnitsPerEm: 1000, Ascender: 900, Descender: -300, LineGap: 50, Height: 1200, ItalicAngle: ptr(-12.0)},
		},
		{
			name: "typo metrics",
			src:  typo,
			want: Raw{UnitsPerEm: 1000, Ascender: 800, Descender: -200, LineGap: 100, Height: 1000, ItalicAngle: ptr(-12.0)},
		},
		{
			name: "zero hhea",
			src:  zeroHhea,
			want: Raw{UnitsPerEm: 1000, Ascender: 800, Descender: -200, LineGap: 100, Height: 1000, ItalicAngle: ptr(-12.0)},
		},
		{
			name: "win metrics",
			src:  winOnly,
			want: Raw{UnitsPerEm: 1000, Ascender: 950, Descender: -250, LineGap: 0, Height: 1200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ComputeRaw(tt.src)); diff != "" {
				t.Errorf("ComputeRaw() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
