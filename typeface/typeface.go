// Package typeface classifies a face the way a typesetter selects fonts:
// by family, variant and the codepoints it covers.
package typeface

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/melt/names"
)

// Style is the slant of a face.
type Style string

// Styles.
const (
	StyleNormal  Style = "normal"
	StyleItalic  Style = "italic"
	StyleOblique Style = "oblique"
)

// Variant selects a face within its family.
type Variant struct {
	Style Style

	// Weight is in [100, 900], 400 being regular.
	Weight uint16

	// Stretch is the width relative to normal, in [0.5, 2].
	Stretch float64
}

// Info describes a face for font selection.
type Info struct {
	Family  string
	Variant Variant

	// Coverage holds alternating lengths of codepoint runs the face does
	// not and does map, starting at U+0000.
	Coverage []uint32

	Monospace bool
	Serif     bool
	Variable  bool
	MathTable bool
}

// OS/2 offsets and flags.
const (
	os2WeightClass = 4
	os2WidthClass  = 6
	os2Panose      = 32
	os2FsSelection = 62

	fsSelectionItalic  = 1 << 0
	fsSelectionOblique = 1 << 9
)

// widths maps usWidthClass 1 to 9.
var widths = [...]font.Stretch{
	font.StretchUltraCondensed,
	font.StretchExtraCondensed,
	font.StretchCondensed,
	font.StretchSemiCondensed,
	font.StretchNormal,
	font.StretchSemiExpanded,
	font.StretchExpanded,
	font.StretchExtraExpanded,
	font.StretchUltraExpanded,
}

// Classify derives the selection info of f. os2 is the raw 'OS/2' table
// and nt the decoded 'name' table; either may be nil, in which case the
// values go-text infers from the font are used instead.
func Classify(f *font.Font, os2 []byte, nt *names.Table, hasMath, hasFvar bool) Info {
	desc := f.Describe()

	family, ok := nt.Best(names.TypographicFamily)
	if !ok {
		family, ok = nt.Best(names.Family)
	}
	if !ok {
		family = desc.Family
	}
	fullName, _ := nt.Best(names.FullName)

	return Info{
		Family:    family,
		Variant:   variant(desc.Aspect, os2, fullName),
		Coverage:  Coverage(f.Cmap),
		Monospace: f.IsMonospace(),
		Serif:     isSerif(os2, fullName),
		Variable:  hasFvar,
		MathTable: hasMath,
	}
}

func variant(aspect font.Aspect, os2 []byte, fullName string) Variant {
	v := Variant{
		Style:   StyleNormal,
		Weight:  clampWeight(uint16(aspect.Weight)),
		Stretch: float64(aspect.Stretch),
	}
	if aspect.Style == font.StyleItalic {
		v.Style = StyleItalic
	}
	if v.Stretch == 0 {
		v.Stretch = float64(font.StretchNormal)
	}

	if len(os2) >= os2FsSelection+2 {
		v.Weight = clampWeight(binary.BigEndian.Uint16(os2[os2WeightClass:]))
		if w := binary.BigEndian.Uint16(os2[os2WidthClass:]); w >= 1 && int(w) <= len(widths) {
			v.Stretch = float64(widths[w-1])
		}
		fs := binary.BigEndian.Uint16(os2[os2FsSelection:])
		switch {
		case fs&fsSelectionItalic != 0:
			v.Style = StyleItalic
		case fs&fsSelectionOblique != 0:
			v.Style = StyleOblique
		default:
			v.Style = StyleNormal
		}
	}

	if v.Style == StyleNormal {
		name := strings.ToLower(fullName)
		switch {
		case strings.Contains(name, "italic"):
			v.Style = StyleItalic
		case strings.Contains(name, "oblique"), strings.Contains(name, "slanted"):
			v.Style = StyleOblique
		}
	}
	return v
}

func clampWeight(w uint16) uint16 {
	return min(max(w, 100), 900)
}

// isSerif checks the PANOSE classification (Latin Text family with a serif
// style from Cove to Triangle) and then the full name.
func isSerif(os2 []byte, fullName string) bool {
	if len(os2) >= os2Panose+2 {
		kind, serif := os2[os2Panose], os2[os2Panose+1]
		if kind == 2 && serif >= 2 && serif <= 10 {
			return true
		}
	}
	name := strings.ToLower(fullName)
	return strings.Contains(name, "serif") && !strings.Contains(name, "sans")
}

// Coverage run-length encodes the codepoints mapped by cmap. A nil cmap
// covers nothing.
func Coverage(cmap font.Cmap) []uint32 {
	if cmap == nil {
		return []uint32{}
	}
	var runes []rune
	for it := cmap.Iter(); it.Next(); {
		r, _ := it.Char()
		runes = append(runes, r)
	}
	slices.Sort(runes)
	runes = slices.Compact(runes)
	return encodeRuns(runes)
}

// encodeRuns expects sorted, distinct, non-negative codepoints.
func encodeRuns(runes []rune) []uint32 {
	runs := []uint32{}
	var next uint32
	for i := 0; i < len(runes); {
		start := uint32(runes[i])
		j := i + 1
		for j < len(runes) && runes[j] == runes[j-1]+1 {
			j++
		}
		runs = append(runs, start-next, uint32(j-i))
		next = start + uint32(j-i)
		i = j
	}
	return runs
}

// Contains reports whether the run-length encoded coverage includes r.
func Contains(coverage []uint32, r rune) bool {
	if r < 0 {
		return false
	}
	c := uint32(r)
	var at uint32
	for i, n := range coverage {
		if c < at+n {
			return i%2 == 1
		}
		at += n
	}
	return false
}
