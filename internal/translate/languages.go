package translate

import "strings"

// Language pairs an ISO 639-1 code with its English name
type Language struct {
	Code string
	Name string
}

var catalog = []Language{
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"nl", "Dutch"},
	{"ru", "Russian"},
	{"zh", "Chinese"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
	{"ar", "Arabic"},
	{"hi", "Hindi"},
	{"bn", "Bengali"},
	{"tr", "Turkish"},
	{"pl", "Polish"},
	{"sv", "Swedish"},
	{"fi", "Finnish"},
	{"da", "Danish"},
	{"no", "Norwegian"},
	{"cs", "Czech"},
	{"el", "Greek"},
	{"he", "Hebrew"},
	{"th", "Thai"},
	{"vi", "Vietnamese"},
	{"id", "Indonesian"},
	{"uk", "Ukrainian"},
	{"ro", "Romanian"},
}

// Languages returns the supported language catalog
func Languages() []Language {
	out := make([]Language, len(catalog))
	copy(out, catalog)
	return out
}

// LanguageName resolves a code to its English name; unknown codes come back
// unchanged so they remain visible in output.
func LanguageName(code string) string {
	for _, l := range catalog {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// LanguageCode resolves an English name (case-insensitive) to its code, or
// returns the empty string.
func LanguageCode(name string) string {
	for _, l := range catalog {
		if strings.EqualFold(l.Name, name) {
			return l.Code
		}
	}
	return ""
}
