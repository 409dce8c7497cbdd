package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/melt/internal/fonttest"
	"github.com/gogpu/melt/protocol"
)

func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInfoCmd(t *testing.T) {
	regular := writeFont(t, "regular.ttf", fonttest.GoRegular())
	ttc := writeFont(t, "pair.ttc", fonttest.Collection(fonttest.GoRegular(), fonttest.GoMono()))

	var buf bytes.Buffer
	g := &Globals{Format: "json", Stdout: &buf}
	if err := (&infoCmd{Files: []string{regular, ttc}}).Run(g); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got []fileInfo
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 2 || got[0].File != regular || got[1].File != ttc {
		t.Fatalf("files = %+v", got)
	}
	if len(got[0].Faces) != 1 || len(got[1].Faces) != 2 {
		t.Errorf("faces = %d, %d, want 1, 2", len(got[0].Faces), len(got[1].Faces))
	}
	if f := got[1].Faces[1]; f == nil || !f.Typst.Info.IsMonospace {
		t.Errorf("second face = %+v, want Go Mono", f)
	}
}

func TestInfoCmd_MissingFile(t *testing.T) {
	g := &Globals{Format: "json", Stdout: &bytes.Buffer{}}
	err := (&infoCmd{Files: []string{filepath.Join(t.TempDir(), "missing.ttf")}}).Run(g)
	if err == nil {
		t.Error("Run() succeeded for a missing file")
	}
}

func TestGlyphsCmd_CBOR(t *testing.T) {
	path := writeFont(t, "regular.ttf", fonttest.GoRegular())

	var buf bytes.Buffer
	g := &Globals{Format: "cbor", Stdout: &buf}
	if err := (&glyphsCmd{File: path, Text: "A\U0001F600"}).Run(g); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got []*protocol.GlyphInfo
	if err := protocol.Decode(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not CBOR: %v", err)
	}
	if len(got) != 2 || got[0] == nil || got[1] != nil {
		t.Errorf("glyphs = %v, want [info nil]", got)
	}
}

func TestShapesCmd_Out(t *testing.T) {
	path := writeFont(t, "regular.ttf", fonttest.GoRegular())
	dir := filepath.Join(t.TempDir(), "svg")

	cmd := &shapesCmd{
		File:        path,
		Text:        "A b",
		Scale:       1,
		Fill:        "#F00",
		FillOpacity: 1,
		Stroke:      "none",
		Out:         dir,
	}
	if err := cmd.Run(&Globals{Format: "json"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var files []string
	for _, e := range entries {
		files = append(files, e.Name())
	}
	if diff := cmp.Diff([]string{"U+0041.svg", "U+0062.svg"}, files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "U+0041.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `fill="#ff0000"`) {
		t.Errorf("svg = %s, want a #ff0000 fill", svg)
	}
}

func TestShapesCmd_Print(t *testing.T) {
	path := writeFont(t, "regular.ttf", fonttest.GoRegular())

	var buf bytes.Buffer
	cmd := &shapesCmd{File: path, Text: "A", Scale: 1, Fill: "currentColor", FillOpacity: 1, Stroke: "none"}
	if err := cmd.Run(&Globals{Format: "json", Stdout: &buf}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got []*protocol.GlyphShape
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 || got[0] == nil || !strings.HasPrefix(got[0].SVG, "<svg") {
		t.Errorf("shapes = %+v", got)
	}
}

func TestCodepoints(t *testing.T) {
	got := codepoints("Aé😀")
	if diff := cmp.Diff([]uint32{0x41, 0xE9, 0x1F600}, got); diff != "" {
		t.Errorf("codepoints() mismatch (-want +got):\n%s", diff)
	}
}
