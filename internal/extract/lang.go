package extract

import (
	"regexp"
	"strings"

	"github.com/sant0-9/aide/internal/slot"
)

var languageNames = []string{
	"english", "spanish", "french", "german", "italian", "portuguese",
	"dutch", "russian", "chinese", "mandarin", "japanese", "korean",
	"arabic", "hindi", "bengali", "turkish", "polish", "swedish",
	"finnish", "danish", "norwegian", "czech", "greek", "hebrew",
	"thai", "vietnamese", "indonesian", "ukrainian", "romanian",
}

var (
	targetLangPattern = regexp.MustCompile(`(?i)\b(?:to|into|in)\s+(` + strings.Join(languageNames, "|") + `)\b`)
	sourceLangPattern = regexp.MustCompile(`(?i)\b(?:from|this)\s+(` + strings.Join(languageNames, "|") + `)\b`)
)

// TargetLang finds the language to translate into ("translate this to French")
func TargetLang(text string) slot.Value {
	m := targetLangPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return slot.Text(titleCase(m[1]))
}

// SourceLang finds the language to translate from ("this German text")
func SourceLang(text string) slot.Value {
	m := sourceLangPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return slot.Text(titleCase(m[1]))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
