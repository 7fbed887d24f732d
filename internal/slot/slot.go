package slot

import (
	"fmt"
	"strings"
)

// Value is one typed piece of information pulled out of user text.
// A nil Value means the slot is unknown.
type Value interface {
	// Format renders the value the way templates display it
	Format() string
}

// Text is a free-form string slot (destination, exercise name, ...)
type Text string

func (t Text) Format() string {
	return string(t)
}

// DateSpec captures loosely specified travel or cooking dates
type DateSpec struct {
	Years   []int
	Months  []string
	Seasons []string
}

// Format prefers seasons over months, and appends the first year
func (d DateSpec) Format() string {
	var when string
	if len(d.Seasons) > 0 {
		when = strings.Join(d.Seasons, " or ")
	} else if len(d.Months) > 0 {
		when = strings.Join(d.Months, " or ")
	}
	if len(d.Years) > 0 {
		if when == "" {
			return fmt.Sprintf("%d", d.Years[0])
		}
		return fmt.Sprintf("%s %d", when, d.Years[0])
	}
	return when
}

// Level is a coarse budget tier
type Level string

const (
	LevelBudget   Level = "budget"
	LevelModerate Level = "moderate"
	LevelLuxury   Level = "luxury"
)

// Budget holds either a concrete amount or a tier, optionally with a currency
type Budget struct {
	Amount   *float64
	Level    Level
	Currency string
}

// Format shows the tier when present, otherwise the amount
func (b Budget) Format() string {
	if b.Level != "" {
		return string(b.Level)
	}
	if b.Amount != nil {
		cur := b.Currency
		if cur == "" {
			cur = "USD"
		}
		return fmt.Sprintf("approximately %s %g", cur, *b.Amount)
	}
	return ""
}

// List is an ordered, deduplicated set of strings (interests, equipment, allergies)
type List []string

func (l List) Format() string {
	return strings.Join(l, ", ")
}

// Map associates slot keys with their current values
type Map map[string]Value

// Merge copies every non-nil value from src into m, overwriting what was
// there. Nil values never clear an existing slot. Merging the same src twice
// leaves m identical to merging it once.
func (m Map) Merge(src Map) {
	for key, val := range src {
		if val == nil {
			continue
		}
		m[key] = val
	}
}

// Clone returns a shallow copy of the map
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for key, val := range m {
		out[key] = val
	}
	return out
}

// FormatOr formats the value under key, or returns fallback when the slot is
// unset or formats to an empty string
func (m Map) FormatOr(key, fallback string) string {
	val, ok := m[key]
	if !ok || val == nil {
		return fallback
	}
	text := val.Format()
	if text == "" {
		return fallback
	}
	return text
}
