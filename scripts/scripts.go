// Package scripts aggregates the writing systems, language systems and
// OpenType features a font declares in its GSUB, GPOS and meta tables.
package scripts

import (
	"slices"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// Info is the union of the layout tables of a font. Every slice is sorted
// and free of duplicates.
type Info struct {
	Scripts   []string
	Languages []string
	Designed  []string
	Supported []string
	Features  []string
	Details   []Script
}

// Script describes one script entry across all layout tables.
type Script struct {
	Tag string
	// Languages lists the language-system tags registered for the script.
	Languages []string
	// DefaultLanguage is DefaultLanguageTag when any table has a default
	// language system for the script, nil otherwise.
	DefaultLanguage *string
}

// DefaultLanguageTag names the default language system of a script.
const DefaultLanguageTag = "dflt"

// Aggregate merges the given layouts, typically GSUB and GPOS. A zero
// Layout, as go-text reports for a missing table, contributes nothing.
// The result does not depend on the order of layouts.
func Aggregate(layouts ...font.Layout) Info {
	scriptSet := make(map[string]struct{})
	langSet := make(map[string]struct{})
	featureSet := make(map[string]struct{})
	details := make(map[string]*detail)

	for _, l := range layouts {
		for _, s := range l.Scripts {
			tag := tagString(s.Tag)
			scriptSet[tag] = struct{}{}

			d := details[tag]
			if d == nil {
				d = &detail{langs: make(map[string]struct{})}
				details[tag] = d
			}
			if s.DefaultLangSys != nil {
				d.hasDefault = true
			}
			for _, rec := range s.LangSysRecords {
				lang := tagString(rec.Tag)
				langSet[lang] = struct{}{}
				d.langs[lang] = struct{}{}
			}
		}
		for _, f := range l.Features {
			featureSet[tagString(f.Tag)] = struct{}{}
		}
	}

	info := Info{
		Scripts:   sortedKeys(scriptSet),
		Languages: sortedKeys(langSet),
		Designed:  []string{},
		Supported: []string{},
		Features:  sortedKeys(featureSet),
		Details:   make([]Script, 0, len(details)),
	}
	for _, tag := range info.Scripts {
		d := details[tag]
		sc := Script{Tag: tag, Languages: sortedKeys(d.langs)}
		if d.hasDefault {
			dflt := DefaultLanguageTag
			sc.DefaultLanguage = &dflt
		}
		info.Details = append(info.Details, sc)
	}
	return info
}

// WithMeta returns a copy of info with the design and supported language
// lists of m.
func (info Info) WithMeta(m Meta) Info {
	info.Designed = m.Designed()
	info.Supported = m.Supported()
	return info
}

type detail struct {
	langs      map[string]struct{}
	hasDefault bool
}

// tagString formats an OpenType tag, dropping the space padding of short
// tags such as "TRK ".
func tagString(t opentype.Tag) string {
	return strings.TrimRight(t.String(), " ")
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
