package intent

import "regexp"

// Rule pairs a pattern with the intent tag it selects
type Rule struct {
	Pattern *regexp.Regexp
	Tag     string
}

// R builds a rule from a case-insensitive pattern string. It panics on a bad
// pattern, which is the right failure for static per-mode tables.
func R(pattern, tag string) Rule {
	return Rule{Pattern: regexp.MustCompile(`(?i)` + pattern), Tag: tag}
}

// Classify returns the tag of the first rule whose pattern matches text, or
// fallback when none do. Rules are tried strictly in table order, so earlier
// rules shadow later ones on purpose: classification stays predictable even
// when several patterns would match.
func Classify(text string, rules []Rule, fallback string) string {
	for _, rule := range rules {
		if rule.Pattern.MatchString(text) {
			return rule.Tag
		}
	}
	return fallback
}

// Tags lists every tag a table can produce, fallback included, without
// duplicates
func Tags(rules []Rule, fallback string) []string {
	seen := map[string]bool{}
	var out []string
	for _, rule := range rules {
		if !seen[rule.Tag] {
			seen[rule.Tag] = true
			out = append(out, rule.Tag)
		}
	}
	if !seen[fallback] {
		out = append(out, fallback)
	}
	return out
}
