package names

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// decodeFull decodes raw with the charset registered for pe. It fails
// for encodings without a full decoder, Macintosh Roman included: that
// one is left to the fallback table.
func decodeFull(pe PlatformEncoding, raw []byte) (string, bool) {
	switch pe.Platform {
	case PlatformUnicode:
		return decodeUTF16(raw)
	case PlatformWindows:
		switch WindowsEncoding(pe.Encoding) {
		case WindowsSymbol, WindowsUnicodeBMP, WindowsUnicodeFull:
			return decodeUTF16(raw)
		case WindowsShiftJIS:
			return decodeWide(japanese.ShiftJIS, raw)
		case WindowsPRC:
			return decodeWide(simplifiedchinese.GBK, raw)
		case WindowsBig5:
			return decodeWide(traditionalchinese.Big5, raw)
		case WindowsWansung:
			return decodeWide(korean.EUCKR, raw)
		}
	case PlatformIso:
		switch pe.Encoding {
		case 0:
			return decodeASCII(raw)
		case 1:
			return decodeUTF16(raw)
		case 2:
			return decodeWith(charmap.ISO8859_1, raw)
		}
	case PlatformMacintosh:
		switch MacintoshEncoding(pe.Encoding) {
		case MacintoshJapanese:
			return decodeWith(japanese.ShiftJIS, raw)
		case MacintoshChineseTraditional:
			return decodeWith(traditionalchinese.Big5, raw)
		case MacintoshKorean:
			return decodeWith(korean.EUCKR, raw)
		case MacintoshRussian:
			return decodeWith(charmap.MacintoshCyrillic, raw)
		case MacintoshChineseSimplified:
			return decodeWith(simplifiedchinese.GBK, raw)
		}
	}
	return "", false
}

func decodeUTF16(raw []byte) (string, bool) {
	if len(raw)%2 != 0 {
		return "", false
	}
	return decodeWith(utf16BE, raw)
}

func decodeASCII(raw []byte) (string, bool) {
	for _, b := range raw {
		if b >= utf8.RuneSelf {
			return "", false
		}
	}
	return string(raw), true
}

// decodeWide decodes the Windows double-byte encodings, which store every
// character in a 16-bit slot: single-byte characters are zero-padded.
func decodeWide(enc encoding.Encoding, raw []byte) (string, bool) {
	if len(raw)%2 != 0 {
		return "", false
	}
	packed := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i += 2 {
		if raw[i] != 0 {
			packed = append(packed, raw[i])
		}
		packed = append(packed, raw[i+1])
	}
	return decodeWith(enc, packed)
}

func decodeWith(enc encoding.Encoding, raw []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil || !utf8.Valid(out) {
		return "", false
	}
	return string(out), true
}

// DecodeMacRoman decodes raw as Mac OS Roman. Bytes below 0x80 are ASCII,
// the upper half goes through the Mac OS Roman table, so 0xCA is a
// no-break space and 0xF0 the Apple logo (U+F8FF).
func DecodeMacRoman(raw []byte) string {
	s, _ := decodeWith(charmap.Macintosh, raw)
	return s
}
