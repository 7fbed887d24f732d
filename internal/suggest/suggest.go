package suggest

import (
	"strings"

	"github.com/sant0-9/aide/internal/slot"
	"github.com/sant0-9/aide/internal/template"
)

// DefaultMax is how many follow-up prompts a response carries
const DefaultMax = 3

// Pools holds the candidate follow-up prompts for one mode. Candidates may
// interpolate slots with {placeholder} syntax; a candidate whose slots are
// unknown is skipped rather than shown half-filled.
type Pools struct {
	ByIntent map[string][]string
	General  []string
}

// Build assembles up to max distinct suggestions: intent-specific candidates
// first, then general ones to top up. Order is deterministic; exact-string
// duplicates are dropped.
func Build(intentTag string, slots slot.Map, pools Pools, max int) []string {
	if max <= 0 {
		max = DefaultMax
	}

	seen := make(map[string]bool)
	var out []string

	add := func(candidates []string) {
		for _, candidate := range candidates {
			if len(out) >= max {
				return
			}
			rendered := fill(candidate, slots)
			if rendered == "" || seen[rendered] {
				continue
			}
			seen[rendered] = true
			out = append(out, rendered)
		}
	}

	add(pools.ByIntent[intentTag])
	add(pools.General)
	return out
}

// fill interpolates slots into a candidate; returns "" when any referenced
// slot is unknown
func fill(candidate string, slots slot.Map) string {
	if !strings.Contains(candidate, "{") {
		return candidate
	}
	rendered := template.Parse("", candidate).Render(slots)
	if strings.Contains(rendered, template.Fallback) {
		return ""
	}
	return rendered
}
