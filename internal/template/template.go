package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sant0-9/aide/internal/slot"
)

// Fallback is substituted for any placeholder whose slot has no value
const Fallback = "[specify]"

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9]*)\}`)

// Segment is either a literal chunk of text or a named placeholder
type Segment struct {
	Literal string
	Key     string
}

// Template is an ordered sequence of segments filled from session slots
type Template struct {
	Name     string
	Segments []Segment
}

// Parse splits text into literal and {placeholder} segments
func Parse(name, text string) *Template {
	tpl := &Template{Name: name}
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			tpl.Segments = append(tpl.Segments, Segment{Literal: text[last:loc[0]]})
		}
		tpl.Segments = append(tpl.Segments, Segment{Key: text[loc[2]:loc[3]]})
		last = loc[1]
	}
	if last < len(text) {
		tpl.Segments = append(tpl.Segments, Segment{Literal: text[last:]})
	}
	return tpl
}

// Render substitutes each placeholder with the formatted slot value, or the
// fallback token when the slot is missing or empty. It never errors and
// never mutates slots; the output carries no unresolved placeholder syntax.
func (t *Template) Render(slots slot.Map) string {
	var b strings.Builder
	for _, seg := range t.Segments {
		if seg.Key == "" {
			b.WriteString(seg.Literal)
			continue
		}
		b.WriteString(slots.FormatOr(seg.Key, Fallback))
	}
	return b.String()
}

// Keys returns the distinct placeholder keys, in first-appearance order
func (t *Template) Keys() []string {
	seen := map[string]bool{}
	var keys []string
	for _, seg := range t.Segments {
		if seg.Key != "" && !seen[seg.Key] {
			seen[seg.Key] = true
			keys = append(keys, seg.Key)
		}
	}
	return keys
}

// Set holds the templates of one mode, keyed by intent and optional variant
type Set struct {
	templates map[string]*Template
}

// NewSet creates an empty template set
func NewSet() *Set {
	return &Set{templates: make(map[string]*Template)}
}

func setKey(intentTag, variant string) string {
	if variant == "" {
		return intentTag
	}
	return intentTag + "@" + variant
}

// Add parses text and registers it under (intent, variant)
func (s *Set) Add(intentTag, variant, text string) {
	name := setKey(intentTag, variant)
	s.templates[name] = Parse(name, text)
}

// Lookup finds the template for (intent, variant), falling back to the
// variant-less template for the intent
func (s *Set) Lookup(intentTag, variant string) (*Template, bool) {
	if variant != "" {
		if tpl, ok := s.templates[setKey(intentTag, variant)]; ok {
			return tpl, true
		}
	}
	tpl, ok := s.templates[intentTag]
	return tpl, ok
}

// Intents lists the intent tags the set can render (variants collapsed)
func (s *Set) Intents() []string {
	seen := map[string]bool{}
	var tags []string
	for name := range s.templates {
		tag, _, _ := strings.Cut(name, "@")
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// Validate checks that every placeholder in every template references one of
// the allowed slot keys
func (s *Set) Validate(allowed map[string]bool) error {
	for name, tpl := range s.templates {
		for _, key := range tpl.Keys() {
			if !allowed[key] {
				return fmt.Errorf("template %s references unknown slot %q", name, key)
			}
		}
	}
	return nil
}
