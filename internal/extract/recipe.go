package extract

import (
	"regexp"
	"strings"

	"github.com/sant0-9/aide/internal/slot"
)

// Recognized dietary restrictions, in reporting order
var dietaryRestrictions = []string{
	"vegetarian", "vegan", "pescatarian", "gluten-free", "dairy-free",
	"nut-free", "keto", "paleo", "low-carb", "low-fat", "low-sodium",
	"low-sugar", "halal", "kosher", "egg-free", "soy-free", "shellfish-free",
}

var dietaryPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi(?:\s+am|'m)\s+(?:a\s+)?([a-z-]+)`),
	regexp.MustCompile(`(?i)\bi\s+(?:eat|follow)\s+(?:a\s+)?([a-z-]+)\s+(?:diet|food)`),
	regexp.MustCompile(`(?i)\bi\s+(?:don't|do\s+not|can't|cannot)\s+(?:eat|have)\s+([a-z-]+)`),
	regexp.MustCompile(`(?i)\bno\s+([a-z-]+)`),
}

// Dietary collects dietary restrictions either named directly ("vegan") or
// phrased ("I don't eat gluten" -> gluten-free)
func Dietary(text string) slot.Value {
	var found []string
	for _, r := range dietaryRestrictions {
		if containsWord(text, r) {
			found = append(found, r)
		}
	}
	for _, phrase := range dietaryPhrases {
		m := phrase.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		word := strings.ToLower(m[1])
		if len(word) < 4 {
			continue
		}
		for _, r := range dietaryRestrictions {
			if strings.Contains(r, word) || strings.Contains(word, r) {
				found = append(found, r)
			}
		}
	}
	found = dedupe(found)
	if len(found) == 0 {
		return nil
	}
	return slot.List(found)
}

// Common allergens, canonical capitalized names
var commonAllergens = []string{
	"Dairy", "Eggs", "Peanuts", "Tree nuts", "Fish",
	"Shellfish", "Wheat", "Soy", "Sesame",
}

var allergyPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi(?:\s+am|'m)\s+allergic\s+to\s+([a-z]+)`),
	regexp.MustCompile(`(?i)\bi\s+have\s+(?:a|an)?\s*([a-z]+)\s+allergy`),
	regexp.MustCompile(`(?i)\b(?:allergic|allergy|allergies)\s+(?:to\s+)?([a-z]+)`),
}

// Allergies finds allergen mentions, returning canonical names ("peanuts"
// and "peanut allergy" both yield "Peanuts")
func Allergies(text string) slot.Value {
	var found []string
	for _, allergen := range commonAllergens {
		if containsWord(text, allergen) {
			found = append(found, allergen)
		}
	}
	for _, phrase := range allergyPhrases {
		m := phrase.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		word := strings.ToLower(m[1])
		if len(word) < 4 {
			continue
		}
		for _, allergen := range commonAllergens {
			lower := strings.ToLower(allergen)
			if strings.Contains(lower, word) || strings.Contains(word, lower) {
				found = append(found, allergen)
			}
		}
	}
	found = dedupe(found)
	if len(found) == 0 {
		return nil
	}
	return slot.List(found)
}

var recipeTypePattern = regexp.MustCompile(`(?i)\b(stir[- ]?fry|soup|stew|salad|pasta|noodle|roast|curry|casserole|sandwich|smoothie|dessert|breakfast|brunch|lunch|dinner|snack)\b`)

// RecipeType finds the kind of dish being asked about
func RecipeType(text string) slot.Value {
	m := recipeTypePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return slot.Text(strings.ToLower(m[1]))
}

var cuisines = []string{
	"italian", "french", "chinese", "japanese", "thai", "indian", "mexican",
	"greek", "spanish", "korean", "vietnamese", "moroccan", "lebanese",
	"turkish", "ethiopian", "peruvian", "mediterranean",
}

// Cuisine finds a named cuisine
func Cuisine(text string) slot.Value {
	for _, c := range cuisines {
		if containsWord(text, c) {
			return slot.Text(c)
		}
	}
	return nil
}
