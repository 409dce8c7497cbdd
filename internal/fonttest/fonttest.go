// Package fonttest builds synthetic font tables and files for tests.
//
// Fonts are assembled from the tables of a real base font, usually Go
// Regular, with some tables replaced or removed. Every table is padded to
// a 4-byte boundary so both go-text and x/image accept the result.
package fonttest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"
	"unicode/utf16"

	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// GoRegular returns a copy of the Go Regular TrueType font.
func GoRegular() []byte { return bytes.Clone(goregular.TTF) }

// GoMono returns a copy of the Go Mono TrueType font.
func GoMono() []byte { return bytes.Clone(gomono.TTF) }

// NameRecord is one entry of a synthetic 'name' table.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      []byte
}

// UTF16 encodes s as UTF-16BE.
func UTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// NameTable builds a 'name' table. langTags are only written for format 1.
func NameTable(format uint16, records []NameRecord, langTags []string) []byte {
	var storage []byte
	put := func(v []byte) (length, offset uint16) {
		offset = uint16(len(storage))
		storage = append(storage, v...)
		return uint16(len(v)), offset
	}

	header := 6 + 12*len(records)
	if format == 1 {
		header += 2 + 4*len(langTags)
	}

	out := make([]byte, 0, header)
	out = binary.BigEndian.AppendUint16(out, format)
	out = binary.BigEndian.AppendUint16(out, uint16(len(records)))
	out = binary.BigEndian.AppendUint16(out, uint16(header))
	for _, r := range records {
		length, offset := put(r.Value)
		out = binary.BigEndian.AppendUint16(out, r.PlatformID)
		out = binary.BigEndian.AppendUint16(out, r.EncodingID)
		out = binary.BigEndian.AppendUint16(out, r.LanguageID)
		out = binary.BigEndian.AppendUint16(out, r.NameID)
		out = binary.BigEndian.AppendUint16(out, length)
		out = binary.BigEndian.AppendUint16(out, offset)
	}
	if format == 1 {
		out = binary.BigEndian.AppendUint16(out, uint16(len(langTags)))
		for _, tag := range langTags {
			length, offset := put(UTF16(tag))
			out = binary.BigEndian.AppendUint16(out, length)
			out = binary.BigEndian.AppendUint16(out, offset)
		}
	}
	return append(out, storage...)
}

// MetaEntry is one data map of a 'meta' table.
type MetaEntry struct {
	Tag  string
	Data string
}

// MetaTable builds a version 1 'meta' table.
func MetaTable(entries ...MetaEntry) []byte {
	const headerSize = 16
	dataStart := headerSize + 12*len(entries)

	out := make([]byte, 0, dataStart)
	out = binary.BigEndian.AppendUint32(out, 1) // version
	out = binary.BigEndian.AppendUint32(out, 0) // flags
	out = binary.BigEndian.AppendUint32(out, 0) // reserved
	out = binary.BigEndian.AppendUint32(out, uint32(len(entries)))

	offset := dataStart
	for _, e := range entries {
		out = binary.BigEndian.AppendUint32(out, uint32(opentype.MustNewTag(e.Tag)))
		out = binary.BigEndian.AppendUint32(out, uint32(offset))
		out = binary.BigEndian.AppendUint32(out, uint32(len(e.Data)))
		offset += len(e.Data)
	}
	for _, e := range entries {
		out = append(out, e.Data...)
	}
	return out
}

// LayoutScript describes one script of a synthetic GSUB or GPOS table.
type LayoutScript struct {
	Tag     string
	Default bool     // write a default language system
	LangSys []string // language system tags, sorted by the caller
}

// LayoutTable builds a minimal GSUB/GPOS table: scripts with empty
// language systems, features without lookups and an empty lookup list.
func LayoutTable(scripts []LayoutScript, features []string) []byte {
	const (
		headerSize  = 10
		langSysSize = 6
		featureSize = 4
	)

	var scriptList []byte
	scriptList = binary.BigEndian.AppendUint16(scriptList, uint16(len(scripts)))
	var scriptBodies []byte
	bodyStart := 2 + 6*len(scripts)
	for _, s := range scripts {
		scriptList = binary.BigEndian.AppendUint32(scriptList, uint32(opentype.MustNewTag(s.Tag)))
		scriptList = binary.BigEndian.AppendUint16(scriptList, uint16(bodyStart+len(scriptBodies)))
		scriptBodies = append(scriptBodies, scriptTable(s)...)
	}
	scriptList = append(scriptList, scriptBodies...)

	var featureList []byte
	featureList = binary.BigEndian.AppendUint16(featureList, uint16(len(features)))
	featureStart := 2 + 6*len(features)
	for i, tag := range features {
		featureList = binary.BigEndian.AppendUint32(featureList, uint32(opentype.MustNewTag(tag)))
		featureList = binary.BigEndian.AppendUint16(featureList, uint16(featureStart+i*featureSize))
	}
	featureList = append(featureList, make([]byte, featureSize*len(features))...)

	lookupList := []byte{0, 0}

	out := make([]byte, 0, headerSize+len(scriptList)+len(featureList)+len(lookupList))
	out = binary.BigEndian.AppendUint16(out, 1)
	out = binary.BigEndian.AppendUint16(out, 0)
	out = binary.BigEndian.AppendUint16(out, headerSize)
	out = binary.BigEndian.AppendUint16(out, uint16(headerSize+len(scriptList)))
	out = binary.BigEndian.AppendUint16(out, uint16(headerSize+len(scriptList)+len(featureList)))
	out = append(out, scriptList...)
	out = append(out, featureList...)
	return append(out, lookupList...)
}

func scriptTable(s LayoutScript) []byte {
	langSys := []byte{0, 0, 0xFF, 0xFF, 0, 0}

	records := 4 + 6*len(s.LangSys)
	var out []byte
	var bodies []byte
	if s.Default {
		out = binary.BigEndian.AppendUint16(out, uint16(records))
		bodies = append(bodies, langSys...)
	} else {
		out = binary.BigEndian.AppendUint16(out, 0)
	}
	out = binary.BigEndian.AppendUint16(out, uint16(len(s.LangSys)))
	for _, tag := range s.LangSys {
		out = binary.BigEndian.AppendUint32(out, uint32(opentype.MustNewTag(tag)))
		out = binary.BigEndian.AppendUint16(out, uint16(records+len(bodies)))
		bodies = append(bodies, langSys...)
	}
	return append(out, bodies...)
}

// Replace rebuilds base with the given tables swapped in. A nil value
// removes the table; a tag missing from base is added.
func Replace(base []byte, tables map[string][]byte) ([]byte, error) {
	ld, err := opentype.NewLoader(bytes.NewReader(base))
	if err != nil {
		return nil, fmt.Errorf("fonttest: failed to load base font: %w", err)
	}

	content := make(map[opentype.Tag][]byte)
	for _, tag := range ld.Tables() {
		raw, err := ld.RawTable(tag)
		if err != nil {
			return nil, fmt.Errorf("fonttest: failed to read %s: %w", tag, err)
		}
		content[tag] = raw
	}
	for name, raw := range tables {
		tag := opentype.MustNewTag(name)
		if raw == nil {
			delete(content, tag)
			continue
		}
		content[tag] = raw
	}
	return Build(content), nil
}

// MustReplace is like Replace but panics on error.
func MustReplace(base []byte, tables map[string][]byte) []byte {
	out, err := Replace(base, tables)
	if err != nil {
		panic(err)
	}
	return out
}

// Build writes a TrueType file holding the given tables. Tables are padded
// to 4 bytes and the directory keeps their unpadded lengths.
func Build(content map[opentype.Tag][]byte) []byte {
	tags := make([]opentype.Tag, 0, len(content))
	for tag := range content {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	tables := make([]opentype.Table, len(tags))
	for i, tag := range tags {
		raw := content[tag]
		padded := make([]byte, (len(raw)+3)&^3)
		copy(padded, raw)
		tables[i] = opentype.Table{Tag: tag, Content: padded}
	}
	out := opentype.WriteTTF(tables)
	for i, tag := range tags {
		binary.BigEndian.PutUint32(out[12+16*i+12:], uint32(len(content[tag])))
	}
	return out
}

// Collection packs single fonts into a TrueType collection. Each font's
// table offsets are rebased onto its position in the collection.
func Collection(fonts ...[]byte) []byte {
	header := 12 + 4*len(fonts)
	out := make([]byte, header)
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))

	for i, f := range fonts {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		base := len(out)
		binary.BigEndian.PutUint32(out[12+4*i:], uint32(base))
		out = append(out, f...)
		rebase(out[base:], uint32(base))
	}
	return out
}

// rebase shifts the table offsets of the font directory at the start of f.
func rebase(f []byte, by uint32) {
	if len(f) < 12 {
		return
	}
	n := int(binary.BigEndian.Uint16(f[4:]))
	for i := range n {
		rec := 12 + 16*i
		if rec+16 > len(f) {
			return
		}
		off := binary.BigEndian.Uint32(f[rec+8:])
		binary.BigEndian.PutUint32(f[rec+8:], off+by)
	}
}
