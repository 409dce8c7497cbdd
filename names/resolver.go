package names

import (
	"golang.org/x/text/language"
)

// Record is a decoded name record. Name and Language are nil when they
// could not be determined.
type Record struct {
	Name     *string
	Language *string
	Encoding PlatformEncoding
}

// Decode resolves the text and language of r.
//
// The text is decoded with the charset of the record's platform and
// encoding first. Only when that fails on a Macintosh Roman record is the
// Mac OS Roman table used instead.
func Decode(r RawRecord, langTags []string) Record {
	pe := NewPlatformEncoding(r.PlatformID, r.EncodingID)
	out := Record{Encoding: pe}

	if s, ok := decodeFull(pe, r.Value); ok {
		out.Name = &s
	} else if mac, ok := pe.Macintosh(); ok && mac == MacintoshRoman {
		s := DecodeMacRoman(r.Value)
		out.Name = &s
	}

	if lang, ok := recordLanguage(pe.Platform, r.LanguageID, langTags); ok {
		out.Language = &lang
	}
	return out
}

func recordLanguage(p Platform, id uint16, langTags []string) (string, bool) {
	if id >= langTagBase {
		t := Table{LangTags: langTags}
		tag, ok := t.langTag(id)
		if !ok {
			return "", false
		}
		return canonicalTag(tag), true
	}
	switch p {
	case PlatformWindows:
		tag, ok := windowsLanguageTag(id)
		return tag, ok
	case PlatformMacintosh:
		lang, ok := LookupMacintoshLanguage(id)
		if !ok {
			return "", false
		}
		return lang.String(), true
	}
	return "", false
}

// canonicalTag normalizes a BCP 47 tag, keeping tags that do not parse
// as they are.
func canonicalTag(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}

// Resolve decodes every record carrying nameID, in table order. A font
// may hold the same name for several platforms and languages; all of
// them are returned. The result is empty, not nil, when nothing matches.
func (t *Table) Resolve(nameID uint16) []Record {
	out := []Record{}
	if t == nil {
		return out
	}
	for _, r := range t.Records {
		if r.NameID == nameID {
			out = append(out, Decode(r, t.LangTags))
		}
	}
	return out
}

// Field associates a key in Names with a name ID.
type Field struct {
	Key string
	ID  uint16
}

// Name IDs used by Fields and by callers that need a specific name.
const (
	CopyrightNotice                uint16 = 0
	Family                         uint16 = 1
	Subfamily                      uint16 = 2
	UniqueID                       uint16 = 3
	FullName                       uint16 = 4
	Version                        uint16 = 5
	PostScriptName                 uint16 = 6
	Trademark                      uint16 = 7
	Manufacturer                   uint16 = 8
	Designer                       uint16 = 9
	Description                    uint16 = 10
	VendorURL                      uint16 = 11
	DesignerURL                    uint16 = 12
	License                        uint16 = 13
	LicenseURL                     uint16 = 14
	TypographicFamily              uint16 = 16
	TypographicSubfamily           uint16 = 17
	CompatibleFull                 uint16 = 18
	SampleText                     uint16 = 19
	PostScriptCID                  uint16 = 20
	WWSFamily                      uint16 = 21
	WWSSubfamily                   uint16 = 22
	LightBackgroundPalette         uint16 = 23
	DarkBackgroundPalette          uint16 = 24
	VariationsPostScriptNamePrefix uint16 = 25
)

// Fields lists the names reported by Names, in name ID order.
var Fields = []Field{
	{"copyright_notice", CopyrightNotice},
	{"family", Family},
	{"subfamily", Subfamily},
	{"unique_id", UniqueID},
	{"full_name", FullName},
	{"version", Version},
	{"post_script_name", PostScriptName},
	{"trademark", Trademark},
	{"manufacturer", Manufacturer},
	{"designer", Designer},
	{"description", Description},
	{"vendor_url", VendorURL},
	{"designer_url", DesignerURL},
	{"license", License},
	{"license_url", LicenseURL},
	{"typographic_family", TypographicFamily},
	{"typographic_subfamily", TypographicSubfamily},
	{"compatible_full", CompatibleFull},
	{"sample_text", SampleText},
	{"post_script_cid", PostScriptCID},
	{"wws_family", WWSFamily},
	{"wws_subfamily", WWSSubfamily},
	{"light_background_palette", LightBackgroundPalette},
	{"dark_background_palette", DarkBackgroundPalette},
	{"variations_post_script_name_prefix", VariationsPostScriptNamePrefix},
}

// Names maps each Fields key to its decoded records.
type Names map[string][]Record

// Names resolves every entry of Fields. All keys are present, with an
// empty slice for names the font does not define.
func (t *Table) Names() Names {
	out := make(Names, len(Fields))
	for _, f := range Fields {
		out[f.Key] = t.Resolve(f.ID)
	}
	return out
}

// Best returns the preferred decoded text for nameID: a Windows US English
// record if there is one, then any Windows record, then the first record
// that decodes at all.
func (t *Table) Best(nameID uint16) (string, bool) {
	if t == nil {
		return "", false
	}
	var windows, first *string
	for _, r := range t.Records {
		if r.NameID != nameID {
			continue
		}
		rec := Decode(r, t.LangTags)
		if rec.Name == nil || *rec.Name == "" {
			continue
		}
		if rec.Encoding.Platform == PlatformWindows {
			if r.LanguageID == englishUS {
				return *rec.Name, true
			}
			if windows == nil {
				windows = rec.Name
			}
		}
		if first == nil {
			first = rec.Name
		}
	}
	switch {
	case windows != nil:
		return *windows, true
	case first != nil:
		return *first, true
	}
	return "", false
}

const englishUS = 0x0409
