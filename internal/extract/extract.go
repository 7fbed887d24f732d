package extract

import (
	"strings"

	"github.com/sant0-9/aide/internal/slot"
)

// Slot keys recognized by the built-in extractors
const (
	KeyDestination = "destination"
	KeyDates       = "dates"
	KeyBudget      = "budget"
	KeyInterests   = "interests"
	KeyDuration    = "duration"
	KeyGoal        = "fitnessGoal"
	KeyLevel       = "fitnessLevel"
	KeyEquipment   = "equipment"
	KeyMuscle      = "targetMuscle"
	KeyDietary     = "dietary"
	KeyAllergies   = "allergies"
	KeyRecipeType  = "recipeType"
	KeyCuisine     = "cuisine"
	KeySourceLang  = "sourceLang"
	KeyTargetLang  = "targetLang"
)

// Func pulls one typed value out of free-form text. It must be pure and must
// never panic on arbitrary input; a nil result means nothing was found.
type Func func(text string) slot.Value

// Extractor binds a slot key to its extraction function
type Extractor struct {
	Key string
	Fn  Func
}

// Run applies every extractor to text and collects the hits into a slot map.
// Keys whose extractor found nothing are absent from the result.
func Run(extractors []Extractor, text string) slot.Map {
	found := make(slot.Map)
	for _, ex := range extractors {
		if val := ex.Fn(text); val != nil {
			found[ex.Key] = val
		}
	}
	return found
}

// dedupe keeps the first occurrence of each string, preserving order
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// containsWord reports whether text contains term on word boundaries,
// case-insensitively. Terms may span multiple words ("road trip").
func containsWord(text, term string) bool {
	lower := strings.ToLower(text)
	term = strings.ToLower(term)
	idx := 0
	for {
		pos := strings.Index(lower[idx:], term)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(term)
		beforeOK := start == 0 || !isWordChar(lower[start-1])
		afterOK := end == len(lower) || !isWordChar(lower[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-'
}
