package names

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Sentinel errors for the names package.
var (
	// ErrTruncatedTable is returned when the 'name' table is shorter than
	// its header declares.
	ErrTruncatedTable = errors.New("names: truncated name table")

	// ErrUnsupportedFormat is returned for 'name' table formats other than 0 and 1.
	ErrUnsupportedFormat = errors.New("names: unsupported name table format")
)

// RawRecord is one undecoded entry of the 'name' table.
type RawRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      []byte
}

// Table is a decoded view of a 'name' table. The record values alias the
// raw table bytes passed to ReadTable.
type Table struct {
	Format   uint16
	Records  []RawRecord
	LangTags []string // format 1 only, indexed by LanguageID-0x8000
}

const (
	nameHeaderSize = 6
	nameRecordSize = 12
	langTagBase    = 0x8000
)

// ReadTable parses the raw bytes of a 'name' table.
//
// Records whose string storage runs past the end of the table are skipped
// rather than failing the whole table.
func ReadTable(raw []byte) (*Table, error) {
	if len(raw) < nameHeaderSize {
		return nil, ErrTruncatedTable
	}
	format := binary.BigEndian.Uint16(raw)
	if format > 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	count := int(binary.BigEndian.Uint16(raw[2:]))
	storage := int(binary.BigEndian.Uint16(raw[4:]))

	end := nameHeaderSize + count*nameRecordSize
	if len(raw) < end {
		return nil, ErrTruncatedTable
	}

	t := &Table{Format: format, Records: make([]RawRecord, 0, count)}
	for i := range count {
		rec := raw[nameHeaderSize+i*nameRecordSize:]
		length := int(binary.BigEndian.Uint16(rec[8:]))
		offset := int(binary.BigEndian.Uint16(rec[10:]))
		value, ok := slice(raw, storage+offset, length)
		if !ok {
			continue
		}
		t.Records = append(t.Records, RawRecord{
			PlatformID: binary.BigEndian.Uint16(rec),
			EncodingID: binary.BigEndian.Uint16(rec[2:]),
			LanguageID: binary.BigEndian.Uint16(rec[4:]),
			NameID:     binary.BigEndian.Uint16(rec[6:]),
			Value:      value,
		})
	}

	if format == 1 && len(raw) >= end+2 {
		t.LangTags = readLangTags(raw, end, storage)
	}
	return t, nil
}

// readLangTags decodes the format 1 language-tag records. A tag that
// cannot be read is kept as an empty string so indices stay aligned.
func readLangTags(raw []byte, at, storage int) []string {
	count := int(binary.BigEndian.Uint16(raw[at:]))
	at += 2
	if len(raw) < at+count*4 {
		count = (len(raw) - at) / 4
	}
	tags := make([]string, count)
	for i := range count {
		length := int(binary.BigEndian.Uint16(raw[at+i*4:]))
		offset := int(binary.BigEndian.Uint16(raw[at+i*4+2:]))
		if value, ok := slice(raw, storage+offset, length); ok {
			tags[i], _ = decodeUTF16(value)
		}
	}
	return tags
}

func slice(raw []byte, offset, length int) ([]byte, bool) {
	if offset < 0 || offset+length > len(raw) {
		return nil, false
	}
	return raw[offset : offset+length], true
}

// langTag returns the format 1 language tag referenced by languageID.
func (t *Table) langTag(languageID uint16) (string, bool) {
	if languageID < langTagBase {
		return "", false
	}
	i := int(languageID - langTagBase)
	if i >= len(t.LangTags) || t.LangTags[i] == "" {
		return "", false
	}
	return t.LangTags[i], true
}
