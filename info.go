package melt

import (
	"log/slog"

	"github.com/gogpu/melt/face"
	"github.com/gogpu/melt/internal/batch"
	"github.com/gogpu/melt/metrics"
	"github.com/gogpu/melt/names"
	"github.com/gogpu/melt/scripts"
	"github.com/gogpu/melt/typeface"
)

// FontInfo is everything melt reports about one face.
type FontInfo struct {
	Properties  Properties
	Metrics     metrics.Raw
	Typesetting Typesetting
}

// Properties are the descriptive tables of a face.
type Properties struct {
	Names    names.Names
	Scripts  scripts.Info
	Features []string
}

// Typesetting is the face as a typesetter sees it: selection info and
// em-relative metrics.
type Typesetting struct {
	Info    typeface.Info
	Metrics metrics.Model
}

// Introspect reports on every face of data. The result has one entry per
// face in the collection (one for single fonts); faces that cannot be
// parsed are nil.
func Introspect(data []byte, opts ...Option) []*FontInfo {
	o := newOptions(opts)

	indexes := make([]int, face.CollectionSize(data))
	for i := range indexes {
		indexes[i] = i
	}
	return batch.Map(o.workers, indexes, func(_, index int) *FontInfo {
		info, err := introspect(data, index, o.logger)
		if err != nil {
			o.logger.Debug("melt: face open failed", "index", index, "error", err)
			return nil
		}
		return info
	})
}

// IntrospectFace reports on face index of data.
func IntrospectFace(data []byte, index int, opts ...Option) (*FontInfo, error) {
	o := newOptions(opts)
	return introspect(data, index, o.logger)
}

func introspect(data []byte, index int, log *slog.Logger) (*FontInfo, error) {
	h, err := face.Open(data, index)
	if err != nil {
		return nil, err
	}

	nt, err := h.NameTable()
	if err != nil {
		log.Debug("melt: name table unreadable", "index", index, "error", err)
	}

	info := scripts.Aggregate(h.Layouts()...)
	meta, err := h.Meta()
	if err != nil && h.HasTable("meta") {
		log.Debug("melt: meta table unreadable", "index", index, "error", err)
	}
	info = info.WithMeta(meta)

	src := h.MetricsSource()
	return &FontInfo{
		Properties: Properties{
			Names:    nt.Names(),
			Scripts:  info,
			Features: info.Features,
		},
		Metrics: metrics.ComputeRaw(src),
		Typesetting: Typesetting{
			Info:    typeface.Classify(h.Font, h.OS2Raw(), nt, h.HasMath(), h.IsVariable()),
			Metrics: metrics.Normalize(src),
		},
	}, nil
}
