package names

// MacintoshLanguage is a Macintosh platform language ID.
type MacintoshLanguage uint16

type macLanguage struct {
	name string
	tag  string
}

// macLanguages covers IDs 0-94, macLanguagesHigh covers IDs 128-150.
var macLanguages = [...]macLanguage{
	{"English", "en"},
	{"French", "fr"},
	{"German", "de"},
	{"Italian", "it"},
	{"Dutch", "nl"},
	{"Swedish", "sv"},
	{"Spanish", "es"},
	{"Danish", "da"},
	{"Portuguese", "pt"},
	{"Norwegian", "no"},
	{"Hebrew", "he"},
	{"Japanese", "ja"},
	{"Arabic", "ar"},
	{"Finnish", "fi"},
	{"Greek", "el"},
	{"Icelandic", "is"},
	{"Maltese", "mt"},
	{"Turkish", "tr"},
	{"Croatian", "hr"},
	{"Chinese (traditional)", "zh-Hant"},
	{"Urdu", "ur"},
	{"Hindi", "hi"},
	{"Thai", "th"},
	{"Korean", "ko"},
	{"Lithuanian", "lt"},
	{"Polish", "pl"},
	{"Hungarian", "hu"},
	{"Estonian", "et"},
	{"Latvian", "lv"},
	{"Sami", "se"},
	{"Faroese", "fo"},
	{"Farsi/Persian", "fa"},
	{"Russian", "ru"},
	{"Chinese (simplified)", "zh-Hans"},
	{"Flemish", "nl-BE"},
	{"Irish Gaelic", "ga"},
	{"Albanian", "sq"},
	{"Romanian", "ro"},
	{"Czech", "cs"},
	{"Slovak", "sk"},
	{"Slovenian", "sl"},
	{"Yiddish", "yi"},
	{"Serbian", "sr"},
	{"Macedonian", "mk"},
	{"Bulgarian", "bg"},
	{"Ukrainian", "uk"},
	{"Byelorussian", "be"},
	{"Uzbek", "uz"},
	{"Kazakh", "kk"},
	{"Azerbaijani (Cyrillic script)", "az-Cyrl"},
	{"Azerbaijani (Arabic script)", "az-Arab"},
	{"Armenian", "hy"},
	{"Georgian", "ka"},
	{"Moldavian", "ro-MD"},
	{"Kirghiz", "ky"},
	{"Tajiki", "tg"},
	{"Turkmen", "tk"},
	{"Mongolian (Mongolian script)", "mn-Mong"},
	{"Mongolian (Cyrillic script)", "mn-Cyrl"},
	{"Pashto", "ps"},
	{"Kurdish", "ku"},
	{"Kashmiri", "ks"},
	{"Sindhi", "sd"},
	{"Tibetan", "bo"},
	{"Nepali", "ne"},
	{"Sanskrit", "sa"},
	{"Marathi", "mr"},
	{"Bengali", "bn"},
	{"Assamese", "as"},
	{"Gujarati", "gu"},
	{"Punjabi", "pa"},
	{"Oriya", "or"},
	{"Malayalam", "ml"},
	{"Kannada", "kn"},
	{"Tamil", "ta"},
	{"Telugu", "te"},
	{"Sinhalese", "si"},
	{"Burmese", "my"},
	{"Khmer", "km"},
	{"Lao", "lo"},
	{"Vietnamese", "vi"},
	{"Indonesian", "id"},
	{"Tagalog", "tl"},
	{"Malay (Roman script)", "ms-Latn"},
	{"Malay (Arabic script)", "ms-Arab"},
	{"Amharic", "am"},
	{"Tigrinya", "ti"},
	{"Galla", "om"},
	{"Somali", "so"},
	{"Swahili", "sw"},
	{"Kinyarwanda/Ruanda", "rw"},
	{"Rundi", "rn"},
	{"Nyanja/Chewa", "ny"},
	{"Malagasy", "mg"},
	{"Esperanto", "eo"},
}

const macLanguagesHighBase = 128

var macLanguagesHigh = [...]macLanguage{
	{"Welsh", "cy"},
	{"Basque", "eu"},
	{"Catalan", "ca"},
	{"Latin", "la"},
	{"Quechua", "qu"},
	{"Guarani", "gn"},
	{"Aymara", "ay"},
	{"Tatar", "tt"},
	{"Uighur", "ug"},
	{"Dzongkha", "dz"},
	{"Javanese (Roman script)", "jv-Latn"},
	{"Sundanese (Roman script)", "su-Latn"},
	{"Galician", "gl"},
	{"Afrikaans", "af"},
	{"Breton", "br"},
	{"Inuktitut", "iu"},
	{"Scottish Gaelic", "gd"},
	{"Manx Gaelic", "gv"},
	{"Irish Gaelic (with dot above)", "ga"},
	{"Tongan", "to"},
	{"Greek (polytonic)", "el-polyton"},
	{"Greenlandic", "kl"},
	{"Azerbaijani (Roman script)", "az-Latn"},
}

// LookupMacintoshLanguage returns the language registered under id.
// It succeeds exactly for IDs 0-94 and 128-150.
func LookupMacintoshLanguage(id uint16) (MacintoshLanguage, bool) {
	_, ok := macLanguageEntry(id)
	return MacintoshLanguage(id), ok
}

func macLanguageEntry(id uint16) (macLanguage, bool) {
	switch {
	case int(id) < len(macLanguages):
		return macLanguages[id], true
	case id >= macLanguagesHighBase && int(id-macLanguagesHighBase) < len(macLanguagesHigh):
		return macLanguagesHigh[id-macLanguagesHighBase], true
	}
	return macLanguage{}, false
}

// String returns the display name, or "Unknown" for unregistered IDs.
func (l MacintoshLanguage) String() string {
	if e, ok := macLanguageEntry(uint16(l)); ok {
		return e.name
	}
	return "Unknown"
}

// Tag returns the BCP 47 tag closest to the language.
func (l MacintoshLanguage) Tag() (string, bool) {
	e, ok := macLanguageEntry(uint16(l))
	return e.tag, ok
}
