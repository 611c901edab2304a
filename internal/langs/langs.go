// Package langs holds the table of languages the translation endpoint
// supports and resolves user input (full name or ISO code) to a code.
package langs

import "strings"

// Language pairs a human-readable name with its short ISO code.
type Language struct {
	Name string
	Code string
}

// Find resolves a language given by full name or short code,
// case-insensitively. The second return value reports whether a match
// was found.
func Find(nameOrCode string) (Language, bool) {
	needle := strings.ToLower(nameOrCode)
	for _, l := range supported {
		if needle == strings.ToLower(l.Name) || needle == l.Code {
			return l, true
		}
	}
	return Language{}, false
}

// IsCode reports whether code is a supported short language code.
func IsCode(code string) bool {
	for _, l := range supported {
		if code == l.Code {
			return true
		}
	}
	return false
}

// Codes returns the short codes of the supported languages in display
// order.
func Codes() []string {
	out := make([]string, len(supported))
	for i, l := range supported {
		out[i] = l.Code
	}
	return out
}

// All returns the supported languages in display order.
func All() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

var supported = []Language{
	{"Afrikaans", "af"}, {"Albanian", "sq"}, {"Amharic", "am"},
	{"Arabic", "ar"}, {"Armenian", "hy"}, {"Azerbaijani", "az"},
	{"Basque", "eu"}, {"Belarusian", "be"}, {"Bengali", "bn"},
	{"Bosnian", "bs"}, {"Bulgarian", "bg"}, {"Catalan", "ca"},
	{"Cebuano", "ceb"}, {"Corsican", "co"}, {"Croatian", "hr"},
	{"Czech", "cs"}, {"Danish", "da"}, {"Dutch", "nl"},
	{"English", "en"}, {"Esperanto", "eo"}, {"Estonian", "et"},
	{"Finnish", "fi"}, {"French", "fr"}, {"Frisian", "fy"},
	{"Galician", "gl"}, {"Georgian", "ka"}, {"German", "de"},
	{"Greek", "el"}, {"Gujarati", "gu"}, {"Haitian_Creole", "ht"},
	{"Hausa", "ha"}, {"Hawaiian", "haw"}, {"Hebrew", "he"},
	{"Hindi", "hi"}, {"Hmong", "hmn"}, {"Hungarian", "hu"},
	{"Icelandic", "is"}, {"Igbo", "ig"}, {"Indonesian", "id"},
	{"Irish", "ga"}, {"Italian", "it"}, {"Japanese", "ja"},
	{"Javanese", "jw"}, {"Kannada", "kn"}, {"Kazakh", "kk"},
	{"Khmer", "km"}, {"Korean", "ko"}, {"Kurdish", "ku"},
	{"Kyrgyz", "ky"}, {"Lao", "lo"}, {"Latin", "la"},
	{"Latvian", "lv"}, {"Lithuanian", "lt"}, {"Luxembourgish", "lb"},
	{"Macedonian", "mk"}, {"Malagasy", "mg"}, {"Malay", "ms"},
	{"Malayalam", "ml"}, {"Maltese", "mt"}, {"Maori", "mi"},
	{"Marathi", "mr"}, {"Mongolian", "mn"}, {"Myanmar", "my"},
	{"Nepali", "ne"}, {"Norwegian", "no"}, {"Nyanja", "ny"},
	{"Pashto", "ps"}, {"Persian", "fa"}, {"Polish", "pl"},
	{"Portuguese", "pt"}, {"Punjabi", "pa"}, {"Romanian", "ro"},
	{"Russian", "ru"}, {"Samoan", "sm"}, {"Scots_Gaelic", "gd"},
	{"Serbian", "sr"}, {"Sesotho", "st"}, {"Shona", "sn"},
	{"Sindhi", "sd"}, {"Sinhala", "si"}, {"Slovak", "sk"},
	{"Slovenian", "sl"}, {"Somali", "so"}, {"Spanish", "es"},
	{"Sundanese", "su"}, {"Swahili", "sw"}, {"Swedish", "sv"},
	{"Tagalog", "tl"}, {"Tajik", "tg"}, {"Tamil", "ta"},
	{"Telugu", "te"}, {"Thai", "th"}, {"Turkish", "tr"},
	{"Ukrainian", "uk"}, {"Urdu", "ur"}, {"Uzbek", "uz"},
	{"Vietnamese", "vi"}, {"Welsh", "cy"}, {"Xhosa", "xh"},
	{"Yiddish", "yi"}, {"Yoruba", "yo"}, {"Zulu", "zu"},
}
