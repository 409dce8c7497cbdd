// Command melt prints introspection data for font files.
//
// Usage:
//
//	melt info Example.ttf Example.ttc
//	melt glyphs Example.ttf --text "Ab"
//	melt shapes Example.ttc --index 1 --text "Ab" --fill "#333" --out svg/
//
// Output is JSON by default; --format cbor writes the encoding the protocol
// package uses.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/melt"
	"github.com/gogpu/melt/glyph"
	"github.com/gogpu/melt/protocol"
)

// Globals are the flags shared by every command.
type Globals struct {
	Format  string `short:"f" enum:"json,cbor" default:"json" help:"Output encoding: json or cbor"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	Workers int    `short:"w" default:"0" help:"Worker goroutines per file, 0 for one per CPU"`

	Stdout io.Writer `kong:"-"`
}

type cli struct {
	Globals

	Info   infoCmd   `cmd:"" help:"Describe every face of each font file"`
	Glyphs glyphsCmd `cmd:"" help:"Describe the glyphs of a text"`
	Shapes shapesCmd `cmd:"" help:"Render the glyphs of a text as SVG"`
}

func main() {
	c := cli{Globals: Globals{Stdout: os.Stdout}}
	ctx := kong.Parse(&c,
		kong.Name("melt"),
		kong.Description("Font introspection and glyph vectorization."),
		kong.UsageOnError(),
	)
	if c.Verbose {
		melt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	ctx.FatalIfErrorf(ctx.Run(&c.Globals))
}

func (g *Globals) options() []melt.Option {
	return []melt.Option{melt.WithWorkers(g.Workers)}
}

// emit writes v to the command output in the selected format.
func (g *Globals) emit(v any) error {
	w := g.Stdout
	if w == nil {
		w = os.Stdout
	}
	if g.Format == "cbor" {
		b, err := protocol.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type infoCmd struct {
	Files []string `arg:"" name:"file" type:"existingfile" help:"Font files to describe"`
}

// fileInfo is the info output for one file.
type fileInfo struct {
	File  string               `cbor:"file" json:"file"`
	Faces []*protocol.FontInfo `cbor:"faces" json:"faces"`
}

func (c *infoCmd) Run(g *Globals) error {
	out := make([]fileInfo, len(c.Files))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range c.Files {
		eg.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			infos := melt.Introspect(data, g.options()...)
			faces := make([]*protocol.FontInfo, len(infos))
			for j, info := range infos {
				faces[j] = protocol.FromFontInfo(info)
			}
			out[i] = fileInfo{File: path, Faces: faces}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return g.emit(out)
}

type glyphsCmd struct {
	File  string `arg:"" type:"existingfile" help:"Font file"`
	Index int    `short:"i" default:"0" help:"Face index in a collection"`
	Text  string `short:"t" required:"" help:"Characters to look up"`
}

func (c *glyphsCmd) Run(g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	descs := melt.GlyphInfos(data, c.Index, codepoints(c.Text), g.options()...)
	out := make([]*protocol.GlyphInfo, len(descs))
	for i, d := range descs {
		out[i] = protocol.FromDescriptor(d)
	}
	return g.emit(out)
}

type shapesCmd struct {
	File        string  `arg:"" type:"existingfile" help:"Font file"`
	Index       int     `short:"i" default:"0" help:"Face index in a collection"`
	Text        string  `short:"t" required:"" help:"Characters to render"`
	Scale       float64 `default:"1" help:"Scaling on top of the 1/0.75 base scale"`
	Fill        string  `default:"currentColor" help:"Fill paint: none, currentColor, #rgb, #rrggbb or rgb()"`
	FillOpacity float64 `default:"1" help:"Fill opacity in [0, 1]"`
	Stroke      string  `default:"none" help:"Stroke paint, same forms as --fill"`
	StrokeWidth float64 `default:"0" help:"Stroke width in font units"`
	Out         string  `short:"o" type:"path" help:"Write one SVG file per glyph into this directory instead of printing"`
}

func (c *shapesCmd) style() glyph.Style {
	opacity := c.FillOpacity
	return glyph.Style{
		Scaling:     c.Scale,
		Fill:        c.Fill,
		FillOpacity: &opacity,
		Stroke:      c.Stroke,
		StrokeWidth: c.StrokeWidth,
	}
}

func (c *shapesCmd) Run(g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	cps := codepoints(c.Text)
	shapes := melt.GlyphShapes(data, c.Index, c.style(), cps, g.options()...)

	if c.Out == "" {
		out := make([]*protocol.GlyphShape, len(shapes))
		for i, s := range shapes {
			out[i] = protocol.FromShape(s)
		}
		return g.emit(out)
	}

	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return err
	}
	for i, s := range shapes {
		if s == nil {
			melt.Logger().Debug("melt: no outline", "codepoint", fmt.Sprintf("U+%04X", cps[i]))
			continue
		}
		name := filepath.Join(c.Out, fmt.Sprintf("U+%04X.svg", cps[i]))
		if err := os.WriteFile(name, []byte(s.SVG), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func codepoints(text string) []uint32 {
	runes := []rune(text)
	out := make([]uint32, len(runes))
	for i, r := range runes {
		out[i] = uint32(r)
	}
	return out
}
