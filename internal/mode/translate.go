package mode

import (
	"embed"
	"io/fs"

	"github.com/sant0-9/aide/internal/extract"
	"github.com/sant0-9/aide/internal/intent"
	"github.com/sant0-9/aide/internal/suggest"
	"github.com/sant0-9/aide/internal/template"
)

//go:embed templates/translate
var translateTemplates embed.FS

var translateRules = []intent.Rule{
	intent.R(`\b(?:translate|translation|how\s+do\s+you\s+say|how\s+to\s+say|what\s+is.*\bin\b)\b`, "translate"),
	intent.R(`\b(?:idiom|idiomatic|expression|saying|proverb|slang|colloquial)\b`, "idiom"),
	intent.R(`\b(?:formal|informal|formality|polite|politeness|casual|honorific)\b`, "formality"),
	intent.R(`\b(?:grammar|grammatical|conjugat|tense|plural|gender|sentence\s+structure|word\s+order)\b`, "grammar"),
	intent.R(`\b(?:language|languages|speak|spoken|dialect|alphabet|script|pronounce|pronunciation)\b`, "language_info"),
}

// Translate builds the translation assistant mode. The mode handles intent
// detection and language slots; the actual translation call goes through a
// translate.Provider driven by the host.
func Translate() (*Config, error) {
	sub, err := fs.Sub(translateTemplates, "templates/translate")
	if err != nil {
		return nil, err
	}
	templates, err := template.LoadFS(sub)
	if err != nil {
		return nil, err
	}

	return &Config{
		Name:        "translate",
		Description: "Translation between languages with idiom and formality help",
		Greetings: []string{
			"Which languages are we working between today?",
			"Ready to translate. What's the text and the target language?",
			"Hello, bonjour, hola. What can I translate for you?",
		},
		Clarify:       "Tell me what to translate and into which language, for example \"translate hello to Spanish\". I can also explain idioms, formality levels, and grammar.",
		DefaultIntent: "translate_help",
		Rules:         translateRules,
		Extractors: []extract.Extractor{
			{Key: extract.KeyTargetLang, Fn: extract.TargetLang},
			{Key: extract.KeySourceLang, Fn: extract.SourceLang},
		},
		Templates: templates,
		Suggestions: suggest.Pools{
			ByIntent: map[string][]string{
				"translate": {
					"Translate something else to {targetLang}",
					"How formal is that phrasing in {targetLang}?",
					"How do I pronounce that?",
				},
				"idiom": {
					"Common idioms in {targetLang}",
					"Literal vs. natural translation of this",
					"Is there an equivalent expression in English?",
				},
				"formality": {
					"Formal greetings in {targetLang}",
					"When should I use the polite form?",
					"How do natives address strangers?",
				},
				"grammar": {
					"Basic word order in {targetLang}",
					"How do verb tenses work in {targetLang}?",
					"Common grammar mistakes learners make",
				},
			},
			General: []string{
				"Translate a phrase for me",
				"Which languages do you support?",
				"Explain an idiom I heard",
				"Help me sound more natural in another language",
			},
		},
	}, nil
}
