package scripts

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/font/opentype"
)

// ErrInvalidMeta is returned when a 'meta' table cannot be read.
var ErrInvalidMeta = errors.New("scripts: invalid meta table")

var (
	tagDesignLanguages    = opentype.MustNewTag("dlng")
	tagSupportedLanguages = opentype.MustNewTag("slng")
)

// Meta holds the data maps of a 'meta' table.
type Meta struct {
	maps map[opentype.Tag][]byte
}

// ParseMeta reads a 'meta' table. Data maps that point outside the table
// are ignored.
func ParseMeta(raw []byte) (Meta, error) {
	const (
		headerSize = 16
		recordSize = 12
	)
	if len(raw) < headerSize {
		return Meta{}, fmt.Errorf("%w: header too short", ErrInvalidMeta)
	}
	if v := binary.BigEndian.Uint32(raw); v != 1 {
		return Meta{}, fmt.Errorf("%w: version %d", ErrInvalidMeta, v)
	}
	count := int(binary.BigEndian.Uint32(raw[12:]))
	if count > (len(raw)-headerSize)/recordSize {
		return Meta{}, fmt.Errorf("%w: %d data maps do not fit", ErrInvalidMeta, count)
	}

	m := Meta{maps: make(map[opentype.Tag][]byte, count)}
	for i := range count {
		rec := raw[headerSize+i*recordSize:]
		tag := opentype.Tag(binary.BigEndian.Uint32(rec))
		offset := uint64(binary.BigEndian.Uint32(rec[4:]))
		length := uint64(binary.BigEndian.Uint32(rec[8:]))
		if offset+length > uint64(len(raw)) {
			continue
		}
		m.maps[tag] = raw[offset : offset+length]
	}
	return m, nil
}

// Data returns the raw data map stored under tag.
func (m Meta) Data(tag opentype.Tag) ([]byte, bool) {
	d, ok := m.maps[tag]
	return d, ok
}

// Designed returns the languages the font was designed for (dlng).
func (m Meta) Designed() []string { return m.languages(tagDesignLanguages) }

// Supported returns the languages the font can render (slng).
func (m Meta) Supported() []string { return m.languages(tagSupportedLanguages) }

// languages splits a comma separated ScriptLangTag list. The result is
// sorted, duplicate free and never nil.
func (m Meta) languages(tag opentype.Tag) []string {
	d, ok := m.maps[tag]
	if !ok || !utf8.Valid(d) {
		return []string{}
	}
	set := make(map[string]struct{})
	for item := range strings.SplitSeq(string(d), ",") {
		if item = strings.TrimSpace(item); item != "" {
			set[item] = struct{}{}
		}
	}
	return sortedKeys(set)
}
