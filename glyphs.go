package melt

import (
	"log/slog"
	"runtime"

	"github.com/gogpu/melt/face"
	"github.com/gogpu/melt/glyph"
	"github.com/gogpu/melt/internal/batch"
)

// GlyphInfos describes the glyph each codepoint maps to in face index of
// data. The result is aligned with codepoints; an entry is nil when the
// codepoint is not a Unicode scalar value or the face does not map it.
// Every entry is nil when the face cannot be opened.
func GlyphInfos(data []byte, index int, codepoints []uint32, opts ...Option) []*glyph.Descriptor {
	o := newOptions(opts)
	return perGlyph(data, index, codepoints, o, func(h *face.Handle, r rune) *glyph.Descriptor {
		return glyph.Describe(h, r)
	})
}

// GlyphShapes vectorizes the glyph each codepoint maps to in face index of
// data, painted with style. Alignment and nil entries follow GlyphInfos;
// glyphs without an outline are nil too.
func GlyphShapes(data []byte, index int, style glyph.Style, codepoints []uint32, opts ...Option) []*glyph.Shape {
	o := newOptions(opts)
	return perGlyph(data, index, codepoints, o, func(h *face.Handle, r rune) *glyph.Shape {
		return glyph.NewShape(h, r, style)
	})
}

// perGlyph splits codepoints into one contiguous chunk per worker. Each
// chunk opens its own handle: a go-text Face caches lookups and is not safe
// for concurrent use.
func perGlyph[T any](data []byte, index int, codepoints []uint32, o options, fn func(*face.Handle, rune) *T) []*T {
	out := make([]*T, len(codepoints))
	if len(codepoints) == 0 {
		return out
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	size := (len(codepoints) + workers - 1) / workers

	var chunks [][]uint32
	for lo := 0; lo < len(codepoints); lo += size {
		chunks = append(chunks, codepoints[lo:min(lo+size, len(codepoints))])
	}
	failed := batch.Map(workers, chunks, func(i int, chunk []uint32) error {
		h, err := face.Open(data, index)
		if err != nil {
			return err
		}
		for j, cp := range chunk {
			out[i*size+j] = lookup(h, cp, o.logger, fn)
		}
		return nil
	})
	if err := failed[0]; err != nil {
		o.logger.Debug("melt: face open failed", "index", index, "error", err)
	}
	return out
}

func lookup[T any](h *face.Handle, cp uint32, log *slog.Logger, fn func(*face.Handle, rune) *T) *T {
	r, err := ToRune(cp)
	if err != nil {
		log.Debug("melt: skipping codepoint", "error", err)
		return nil
	}
	return fn(h, r)
}
