package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sant0-9/aide/internal/slot"
)

// destinationPatterns capture a run of capitalized words after a travel cue
var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:\b(?:in|to|about|for|around|visiting)\s+)([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)`),
	regexp.MustCompile(`([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)\s+(?:itinerary|guide|tips|recommendations)`),
	regexp.MustCompile(`(?:travel|trip|vacation|holiday|visit)\s+(?:to|in)\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)`),
}

// Words that look like destinations but never are
var notDestinations = map[string]bool{
	"a": true, "an": true, "the": true, "some": true, "any": true,
	"my": true, "our": true, "your": true, "for": true, "to": true, "in": true,
	"i": true, "what": true, "where": true, "when": true, "how": true,
}

func init() {
	for _, m := range monthNames {
		notDestinations[m] = true
	}
	for _, s := range seasonNames {
		notDestinations[s] = true
	}
	notDestinations["autumn"] = true
}

// Destination finds a place name in the input. It relies on capitalization,
// so lowercase-only sentences yield nothing rather than a bad guess.
func Destination(text string) slot.Value {
	for _, pat := range destinationPatterns {
		match := pat.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		candidate := strings.TrimSpace(match[1])
		if candidate == "" || notDestinations[strings.ToLower(candidate)] {
			continue
		}
		return slot.Text(candidate)
	}
	return nil
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
}

var seasonNames = []string{"spring", "summer", "fall", "winter"}

var (
	yearPattern   = regexp.MustCompile(`\b(20\d{2})\b`)
	monthPattern  = regexp.MustCompile(`(?i)\b(` + strings.Join(monthNames, "|") + `)\b`)
	seasonPattern = regexp.MustCompile(`(?i)\b(spring|summer|fall|autumn|winter)\b`)
)

// fullMonth expands a three-letter abbreviation to the full month name
func fullMonth(m string) string {
	for _, full := range monthNames[:12] {
		if strings.HasPrefix(full, m) {
			return full
		}
	}
	return m
}

// Dates pulls years, month names, and seasons out of the text. "autumn" is
// normalized to "fall". When no year is named, the current year is assumed.
func Dates(text string) slot.Value {
	var spec slot.DateSpec

	for _, m := range yearPattern.FindAllStringSubmatch(text, -1) {
		if year, err := strconv.Atoi(m[1]); err == nil {
			spec.Years = append(spec.Years, year)
		}
	}
	for _, m := range monthPattern.FindAllStringSubmatch(text, -1) {
		spec.Months = append(spec.Months, fullMonth(strings.ToLower(m[1])))
	}
	for _, m := range seasonPattern.FindAllStringSubmatch(text, -1) {
		season := strings.ToLower(m[1])
		if season == "autumn" {
			season = "fall"
		}
		spec.Seasons = append(spec.Seasons, season)
	}

	spec.Months = dedupe(spec.Months)
	spec.Seasons = dedupe(spec.Seasons)

	if len(spec.Years) == 0 && len(spec.Months) == 0 && len(spec.Seasons) == 0 {
		return nil
	}
	if len(spec.Years) == 0 {
		spec.Years = []int{time.Now().Year()}
	}
	return spec
}

var (
	budgetAmountPattern = regexp.MustCompile(`(?i)\b(?:budget|spend|cost|price|afford|expense)\b.*?(?:[$€£¥]\s*(\d[\d,.]*[kK]?)|\b(\d[\d,.]*[kK]?)\s*(?:dollars|euros|pounds|usd|eur|gbp|yen|jpy))`)
	budgetLevelPattern  = regexp.MustCompile(`(?i)\b(budget|cheap|affordable|mid-range|moderate|expensive|luxury|high-end)\b.*?\b(?:travel|trip|vacation|holiday|accommodation|hotel|destination|destinations)\b`)
	currencyPattern     = regexp.MustCompile(`(?i)\b(usd|eur|gbp|jpy|dollars|euros|pounds|yen)\b`)
)

var currencyWords = map[string]string{
	"dollars": "USD", "euros": "EUR", "pounds": "GBP", "yen": "JPY",
}

var levelWords = map[string]slot.Level{
	"budget": slot.LevelBudget, "cheap": slot.LevelBudget, "affordable": slot.LevelBudget,
	"mid-range": slot.LevelModerate, "moderate": slot.LevelModerate,
	"expensive": slot.LevelLuxury, "luxury": slot.LevelLuxury, "high-end": slot.LevelLuxury,
}

// Budget reads an amount ("$3k", "2000 euros") or a tier ("cheap hotels")
func Budget(text string) slot.Value {
	var budget slot.Budget

	if m := budgetAmountPattern.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		raw = strings.ReplaceAll(raw, ",", "")
		mult := 1.0
		if strings.HasSuffix(strings.ToLower(raw), "k") {
			raw = raw[:len(raw)-1]
			mult = 1000
		}
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			amount *= mult
			budget.Amount = &amount
		}
	}

	if m := budgetLevelPattern.FindStringSubmatch(text); m != nil {
		budget.Level = levelWords[strings.ToLower(m[1])]
	}

	if budget.Amount == nil && budget.Level == "" {
		return nil
	}

	if m := currencyPattern.FindStringSubmatch(text); m != nil {
		word := strings.ToLower(m[1])
		if code, ok := currencyWords[word]; ok {
			budget.Currency = code
		} else {
			budget.Currency = strings.ToUpper(word)
		}
	} else {
		switch {
		case strings.Contains(text, "$"):
			budget.Currency = "USD"
		case strings.Contains(text, "€"):
			budget.Currency = "EUR"
		case strings.Contains(text, "£"):
			budget.Currency = "GBP"
		case strings.Contains(text, "¥"):
			budget.Currency = "JPY"
		}
	}
	return budget
}

// Travel categories and the extra terms that imply them
var interestCategories = []string{
	"beach", "mountains", "city", "cultural", "adventure", "relaxation",
	"food", "nature", "budget", "luxury", "family", "romantic", "solo",
	"group", "road trip",
}

var interestTerms = []struct {
	term, category string
}{
	{"museum", "cultural"}, {"history", "cultural"}, {"art", "cultural"},
	{"shopping", "city"}, {"nightlife", "city"},
	{"hiking", "adventure"}, {"trek", "adventure"}, {"diving", "adventure"},
	{"surf", "beach"}, {"snorkel", "beach"},
	{"cuisine", "food"}, {"restaurant", "food"}, {"wine", "food"},
	{"wildlife", "nature"}, {"photography", "nature"},
	{"spa", "relaxation"}, {"yoga", "relaxation"},
}

// Interests collects travel categories mentioned in the text, first-seen
// order, without duplicates
func Interests(text string) slot.Value {
	var found []string
	for _, cat := range interestCategories {
		if containsWord(text, cat) {
			found = append(found, cat)
		}
	}
	for _, it := range interestTerms {
		if containsWord(text, it.term) {
			found = append(found, it.category)
		}
	}
	found = dedupe(found)
	if len(found) == 0 {
		return nil
	}
	return slot.List(found)
}

var durationPattern = regexp.MustCompile(`(?i)\b(\d+)[\s-]*days?\b`)

// Duration finds a trip or plan length in days
func Duration(text string) slot.Value {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	if _, err := strconv.Atoi(m[1]); err != nil {
		return nil
	}
	return slot.Text(m[1])
}
