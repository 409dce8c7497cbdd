package scripts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/melt/internal/fonttest"
)

func loadLayouts(t *testing.T, gsub, gpos []byte) (font.Layout, font.Layout) {
	t.Helper()
	data := fonttest.MustReplace(fonttest.GoRegular(), map[string][]byte{
		"GSUB": gsub,
		"GPOS": gpos,
	})
	ld, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	f, err := font.NewFont(ld)
	if err != nil {
		t.Fatalf("NewFont() error = %v", err)
	}
	return f.GSUB.Layout, f.GPOS.Layout
}

func TestAggregate(t *testing.T) {
	gsub := fonttest.LayoutTable([]fonttest.LayoutScript{
		{Tag: "DFLT", Default: true},
		{Tag: "latn", Default: true, LangSys: []string{"DEU ", "TRK "}},
	}, []string{"liga", "smcp"})
	gpos := fonttest.LayoutTable([]fonttest.LayoutScript{
		{Tag: "cyrl", LangSys: []string{"SRB "}},
		{Tag: "latn", LangSys: []string{"ROM "}},
	}, []string{"kern", "liga"})

	gsubLayout, gposLayout := loadLayouts(t, gsub, gpos)

	dflt := DefaultLanguageTag
	want := Info{
		Scripts:   []string{"DFLT", "cyrl", "latn"},
		Languages: []string{"DEU", "ROM", "SRB", "TRK"},
		Designed:  []string{},
		Supported: []string{},
		Features:  []string{"kern", "liga", "smcp"},
		Details: []Script{
			{Tag: "DFLT", Languages: []string{}, DefaultLanguage: &dflt},
			{Tag: "cyrl", Languages: []string{"SRB"}},
			{Tag: "latn", Languages: []string{"DEU", "ROM", "TRK"}, DefaultLanguage: &dflt},
		},
	}

	t.Run("gsub then gpos", func(t *testing.T) {
		if diff := cmp.Diff(want, Aggregate(gsubLayout, gposLayout)); diff != "" {
			t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("gpos then gsub", func(t *testing.T) {
		if diff := cmp.Diff(want, Aggregate(gposLayout, gsubLayout)); diff != "" {
			t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(font.Layout{}, font.Layout{})
	want := Info{
		Scripts:   []string{},
		Languages: []string{},
		Designed:  []string{},
		Supported: []string{},
		Features:  []string{},
		Details:   []Script{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMeta(t *testing.T) {
	tests := []struct {
		name          string
		raw           []byte
		wantErr       bool
		wantDesigned  []string
		wantSupported []string
	}{
		{
			name: "both lists",
			raw: fonttest.MetaTable(
				fonttest.MetaEntry{Tag: "dlng", Data: "Latn, Cyrl"},
				fonttest.MetaEntry{Tag: "slng", Data: "Latn,Grek,,Cyrl, Latn"},
			),
			wantDesigned:  []string{"Cyrl", "Latn"},
			wantSupported: []string{"Cyrl", "Grek", "Latn"},
		},
		{
			name:          "no slng",
			raw:           fonttest.MetaTable(fonttest.MetaEntry{Tag: "dlng", Data: "Jpan"}),
			wantDesigned:  []string{"Jpan"},
			wantSupported: []string{},
		},
		{
			name:          "invalid utf8",
			raw:           fonttest.MetaTable(fonttest.MetaEntry{Tag: "dlng", Data: "\xff\xfe"}),
			wantDesigned:  []string{},
			wantSupported: []string{},
		},
		{
			name:          "missing",
			raw:           nil,
			wantErr:       true,
			wantDesigned:  []string{},
			wantSupported: []string{},
		},
		{
			name:          "bad version",
			raw:           append([]byte{0, 0, 0, 2}, make([]byte, 12)...),
			wantErr:       true,
			wantDesigned:  []string{},
			wantSupported: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMeta(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMeta() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMeta) {
				t.Errorf("ParseMeta() error = %v, want %v", err, ErrInvalidMeta)
			}
			if diff := cmp.Diff(tt.wantDesigned, m.Designed()); diff != "" {
				t.Errorf("Designed() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantSupported, m.Supported()); diff != "" {
				t.Errorf("Supported() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInfo_WithMeta(t *testing.T) {
	m, err := ParseMeta(fonttest.MetaTable(fonttest.MetaEntry{Tag: "slng", Data: "Hira,Kana"}))
	if err != nil {
		t.Fatalf("ParseMeta() error = %v", err)
	}
	info := Aggregate().WithMeta(m)
	if diff := cmp.Diff([]string{"Hira", "Kana"}, info.Supported); diff != "" {
		t.Errorf("Supported mismatch (-want +got):\n%s", diff)
	}
}
