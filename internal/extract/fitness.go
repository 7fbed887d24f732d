package extract

import (
	"regexp"

	"github.com/sant0-9/aide/internal/slot"
)

var goalPatterns = []struct {
	re   *regexp.Regexp
	goal string
}{
	{regexp.MustCompile(`(?i)\b(?:strength|stronger|build strength|gain strength|get stronger)\b`), "strength"},
	{regexp.MustCompile(`(?i)\b(?:cardio|endurance|stamina|conditioning|aerobic)\b`), "cardio"},
	{regexp.MustCompile(`(?i)\b(?:weight loss|lose weight|slim down|fat loss|burn fat|leaner)\b`), "weight loss"},
	{regexp.MustCompile(`(?i)\b(?:gain muscle|build muscle|hypertrophy|bulking|muscular|muscle mass)\b`), "muscle gain"},
	{regexp.MustCompile(`(?i)\b(?:tone|toning|definition|lean muscle|sculpt|aesthetic)\b`), "toning"},
	{regexp.MustCompile(`(?i)\b(?:flexibility|flexible|mobility|range of motion|stretching)\b`), "flexibility"},
	{regexp.MustCompile(`(?i)\b(?:general fitness|overall fitness|fitness level|fitter|get in shape)\b`), "general fitness"},
}

// Goal classifies what the user is training for
func Goal(text string) slot.Value {
	for _, p := range goalPatterns {
		if p.re.MatchString(text) {
			return slot.Text(p.goal)
		}
	}
	return nil
}

var levelPatterns = []struct {
	re    *regexp.Regexp
	level string
}{
	{regexp.MustCompile(`(?i)\b(?:beginner|newbie|novice|starting out|just started|new to|never|first time)\b`), "beginner"},
	{regexp.MustCompile(`(?i)\b(?:intermediate|some experience|familiar with|not new to)\b`), "intermediate"},
	{regexp.MustCompile(`(?i)\b(?:advanced|experienced|trained for years|athlete|competitive)\b`), "advanced"},
}

// Level reads the user's self-described experience level
func Level(text string) slot.Value {
	for _, p := range levelPatterns {
		if p.re.MatchString(text) {
			return slot.Text(p.level)
		}
	}
	return nil
}

var equipmentItems = []struct {
	terms []string
	name  string
}{
	{[]string{"dumbbell", "dumbbells", "dumbell", "dumbells"}, "dumbbells"},
	{[]string{"barbell", "barbells"}, "barbell"},
	{[]string{"kettlebell", "kettlebells"}, "kettlebells"},
	{[]string{"weight bench", "bench"}, "bench"},
	{[]string{"squat rack", "power rack", "cage"}, "squat rack"},
	{[]string{"pull up bar", "pull-up bar", "pullup bar", "chin up bar"}, "pull-up bar"},
	{[]string{"resistance band", "resistance bands", "bands"}, "resistance bands"},
	{[]string{"yoga mat", "mat"}, "yoga mat"},
	{[]string{"treadmill"}, "treadmill"},
	{[]string{"stationary bike", "exercise bike", "bike"}, "exercise bike"},
	{[]string{"elliptical", "cross trainer"}, "elliptical"},
	{[]string{"rowing machine", "rower"}, "rowing machine"},
	{[]string{"jump rope", "skipping rope"}, "jump rope"},
	{[]string{"medicine ball", "med ball"}, "medicine ball"},
	{[]string{"foam roller"}, "foam roller"},
}

var (
	noEquipmentPattern = regexp.MustCompile(`(?i)\b(?:no equipment|no gear|bodyweight|body weight|without equipment|at home|home workout)\b`)
	gymPattern         = regexp.MustCompile(`(?i)\b(?:gym|fitness center|health club)\b`)
)

var gymEquipment = []string{
	"dumbbells", "barbell", "bench", "squat rack", "pull-up bar",
	"treadmill", "exercise bike", "elliptical", "rowing machine",
}

// Equipment lists what the user can train with. "no equipment" yields an
// empty (but present) list; "gym" yields the standard gym set.
func Equipment(text string) slot.Value {
	if noEquipmentPattern.MatchString(text) {
		return slot.List{}
	}
	if gymPattern.MatchString(text) {
		return slot.List(gymEquipment)
	}

	var found []string
	for _, item := range equipmentItems {
		for _, term := range item.terms {
			if containsWord(text, term) {
				found = append(found, item.name)
				break
			}
		}
	}
	found = dedupe(found)
	if len(found) == 0 {
		return nil
	}
	return slot.List(found)
}

var musclePattern = regexp.MustCompile(`(?i)\b(chest|back|arms|legs|shoulders|biceps|triceps|abs|core|glutes|quads|hamstrings|calves|forearms|neck)\b`)

// Muscle finds the body part the user wants to target
func Muscle(text string) slot.Value {
	m := musclePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return slot.Text(m[1])
}
