// Package names decodes the OpenType 'name' table: platform encodings,
// language IDs and the strings of every name record.
package names

import "fmt"

// Platform identifies the platform a name record was written for.
type Platform uint16

// Platform IDs defined by the OpenType 'name' table.
const (
	PlatformUnicode   Platform = 0
	PlatformMacintosh Platform = 1
	PlatformIso       Platform = 2
	PlatformWindows   Platform = 3
	PlatformCustom    Platform = 4
)

// String returns the platform name. Unknown platform IDs are reported
// as Custom, matching how their records are decoded.
func (p Platform) String() string {
	switch p {
	case PlatformUnicode:
		return "Unicode"
	case PlatformMacintosh:
		return "Macintosh"
	case PlatformIso:
		return "Iso"
	case PlatformWindows:
		return "Windows"
	default:
		return "Custom"
	}
}

// UnicodeEncoding is a platform-specific encoding ID for PlatformUnicode.
type UnicodeEncoding uint16

// Unicode platform encodings.
const (
	Unicode10       UnicodeEncoding = 0
	Unicode11       UnicodeEncoding = 1
	UnicodeIso10646 UnicodeEncoding = 2
	UnicodeBMP      UnicodeEncoding = 3
	UnicodeFull     UnicodeEncoding = 4
)

var unicodeEncodingNames = [...]string{
	Unicode10:       "Unicode 1.0",
	Unicode11:       "Unicode 1.1",
	UnicodeIso10646: "ISO/IEC 10646",
	UnicodeBMP:      "Unicode BMP",
	UnicodeFull:     "Unicode Full",
}

// Known reports whether e is one of the registered Unicode encodings.
func (e UnicodeEncoding) Known() bool { return int(e) < len(unicodeEncodingNames) }

func (e UnicodeEncoding) String() string {
	if e.Known() {
		return unicodeEncodingNames[e]
	}
	return other(uint16(e))
}

// MacintoshEncoding is a platform-specific encoding ID for PlatformMacintosh.
// It doubles as the Macintosh script manager code.
type MacintoshEncoding uint16

// Macintosh platform encodings. Only the ones the decoder treats specially
// are named; the full set is listed in macintoshEncodingNames.
const (
	MacintoshRoman              MacintoshEncoding = 0
	MacintoshJapanese           MacintoshEncoding = 1
	MacintoshChineseTraditional MacintoshEncoding = 2
	MacintoshKorean             MacintoshEncoding = 3
	MacintoshRussian            MacintoshEncoding = 7
	MacintoshChineseSimplified  MacintoshEncoding = 25
	MacintoshUninterpreted      MacintoshEncoding = 32
)

var macintoshEncodingNames = [...]string{
	"Roman", "Japanese", "ChineseTraditional", "Korean", "Arabic", "Hebrew",
	"Greek", "Russian", "RSymbol", "Devanagari", "Gurmukhi", "Gujarati",
	"Odia", "Bangla", "Tamil", "Telugu", "Kannada", "Malayalam", "Sinhalese",
	"Burmese", "Khmer", "Thai", "Laotian", "Georgian", "Armenian",
	"ChineseSimplified", "Tibetan", "Mongolian", "Geez", "Slavic",
	"Vietnamese", "Sindhi", "Uninterpreted",
}

// Known reports whether e is one of the 33 script manager codes.
func (e MacintoshEncoding) Known() bool { return int(e) < len(macintoshEncodingNames) }

func (e MacintoshEncoding) String() string {
	if e.Known() {
		return macintoshEncodingNames[e]
	}
	return other(uint16(e))
}

// WindowsEncoding is a platform-specific encoding ID for PlatformWindows.
type WindowsEncoding uint16

// Windows platform encodings.
const (
	WindowsSymbol      WindowsEncoding = 0
	WindowsUnicodeBMP  WindowsEncoding = 1
	WindowsShiftJIS    WindowsEncoding = 2
	WindowsPRC         WindowsEncoding = 3
	WindowsBig5        WindowsEncoding = 4
	WindowsWansung     WindowsEncoding = 5
	WindowsJohab       WindowsEncoding = 6
	WindowsUnicodeFull WindowsEncoding = 10
)

// Known reports whether e is a registered Windows encoding. IDs 7 to 9
// are reserved and therefore unknown.
func (e WindowsEncoding) Known() bool {
	return e <= WindowsJohab || e == WindowsUnicodeFull
}

func (e WindowsEncoding) String() string {
	switch e {
	case WindowsSymbol:
		return "Symbol"
	case WindowsUnicodeBMP:
		return "UnicodeBMP"
	case WindowsShiftJIS:
		return "ShiftJIS"
	case WindowsPRC:
		return "PRC"
	case WindowsBig5:
		return "Big5"
	case WindowsWansung:
		return "Wansung"
	case WindowsJohab:
		return "Johab"
	case WindowsUnicodeFull:
		return "UnicodeFull"
	}
	return other(uint16(e))
}

func other(code uint16) string { return fmt.Sprintf("Other(%02x)", code) }

// PlatformEncoding is the (platform, encoding) pair of a name record.
//
// The zero value is Unicode(Unicode 1.0). Any pair of numeric IDs is a
// valid PlatformEncoding: unknown encodings keep their raw code and
// print as Other(xx), and platforms above Custom print as Custom.
type PlatformEncoding struct {
	Platform Platform
	Encoding uint16
}

// NewPlatformEncoding builds the PlatformEncoding of a raw record.
// It never fails.
func NewPlatformEncoding(platformID, encodingID uint16) PlatformEncoding {
	return PlatformEncoding{Platform: Platform(platformID), Encoding: encodingID}
}

// IDs returns the numeric (platform, encoding) pair.
func (pe PlatformEncoding) IDs() (platformID, encodingID uint16) {
	return uint16(pe.Platform), pe.Encoding
}

// Unicode returns the Unicode sub-encoding, if pe is on PlatformUnicode.
func (pe PlatformEncoding) Unicode() (UnicodeEncoding, bool) {
	return UnicodeEncoding(pe.Encoding), pe.Platform == PlatformUnicode
}

// Macintosh returns the Macintosh sub-encoding, if pe is on PlatformMacintosh.
func (pe PlatformEncoding) Macintosh() (MacintoshEncoding, bool) {
	return MacintoshEncoding(pe.Encoding), pe.Platform == PlatformMacintosh
}

// Windows returns the Windows sub-encoding, if pe is on PlatformWindows.
func (pe PlatformEncoding) Windows() (WindowsEncoding, bool) {
	return WindowsEncoding(pe.Encoding), pe.Platform == PlatformWindows
}

// EncodingName returns the name of the sub-encoding. ISO and Custom
// encodings have no registry and are reported as their decimal code.
func (pe PlatformEncoding) EncodingName() string {
	switch pe.Platform {
	case PlatformUnicode:
		return UnicodeEncoding(pe.Encoding).String()
	case PlatformMacintosh:
		return MacintoshEncoding(pe.Encoding).String()
	case PlatformWindows:
		return WindowsEncoding(pe.Encoding).String()
	default:
		return fmt.Sprintf("%d", pe.Encoding)
	}
}

// String formats pe as Platform(Encoding), for example Windows(UnicodeBMP).
func (pe PlatformEncoding) String() string {
	if pe.Platform > PlatformCustom {
		return fmt.Sprintf("Custom(%d:%d)", uint16(pe.Platform), pe.Encoding)
	}
	return pe.Platform.String() + "(" + pe.EncodingName() + ")"
}
