package mode

import (
	"embed"
	"io/fs"

	"github.com/sant0-9/aide/internal/extract"
	"github.com/sant0-9/aide/internal/intent"
	"github.com/sant0-9/aide/internal/slot"
	"github.com/sant0-9/aide/internal/suggest"
	"github.com/sant0-9/aide/internal/template"
)

//go:embed templates/fitness
var fitnessTemplates embed.FS

var fitnessRules = []intent.Rule{
	intent.R(`\b(?:workout|exercise|training|fitness)\s+(?:plan|program|routine|schedule)\b`, "workout_plan"),
	intent.R(`\b(?:create|design|make|give me)\s+(?:a|an)?\s*(?:workout|exercise|training|fitness)\b`, "workout_plan"),
	intent.R(`\b(?:how to do|how do i do|how to perform)\b`, "exercise_explanation"),
	intent.R(`\b(?:how to|explain|show me|what is)\s+(?:a|an)?\s*(?:exercise|workout|move|movement)\b`, "exercise_explanation"),
	intent.R(`\b(?:form|technique|proper|correct|right way|wrong way)\b`, "form_check"),
	intent.R(`\b(?:exercise|workout|move|movement|training)s?\s+(?:for|targeting|that target|to target|to train|to work)\b`, "targeted_exercise"),
	intent.R(`\b(?:nutrition|diet|food|eat|eating|meal|protein|carb|fat|calorie|macro|supplement)\b`, "nutrition"),
	intent.R(`\b(?:progress|tracking|track|monitor|measure|log|journal|improvement)\b`, "progress_tracking"),
	intent.R(`\b(?:recovery|rest|soreness|pain|ache|injury|stretch|stretching|foam roll|massage|sleep)\b`, "recovery"),
	intent.R(`\b(?:goal|objective|target|aim|achieve|reaching|attain)\b`, "goal_setting"),
	intent.R(`\b(?:motivation|motivate|inspired|consistency|habit|discipline|procrastination|lazy|excuses)\b`, "motivation"),
}

// Fitness builds the fitness coach mode. Workout plans come in beginner,
// intermediate, and advanced variants keyed off the fitnessLevel slot.
func Fitness() (*Config, error) {
	sub, err := fs.Sub(fitnessTemplates, "templates/fitness")
	if err != nil {
		return nil, err
	}
	templates, err := template.LoadFS(sub)
	if err != nil {
		return nil, err
	}

	return &Config{
		Name:        "fitness",
		Description: "Workout plans, exercise guidance, and fitness advice",
		Greetings: []string{
			"Ready to move? What are we training today?",
			"Your fitness coach is here. What's the goal?",
			"Let's build a stronger you. Where shall we start?",
		},
		Clarify:       "I can help with workout plans, exercise technique, nutrition basics, and recovery. What would you like to work on?",
		DefaultIntent: "general_fitness",
		Rules:         fitnessRules,
		Extractors: []extract.Extractor{
			{Key: extract.KeyGoal, Fn: extract.Goal},
			{Key: extract.KeyLevel, Fn: extract.Level},
			{Key: extract.KeyEquipment, Fn: extract.Equipment},
			{Key: extract.KeyMuscle, Fn: extract.Muscle},
			{Key: extract.KeyDuration, Fn: extract.Duration},
		},
		Templates: templates,
		Variant: func(slots slot.Map) string {
			if level, ok := slots[extract.KeyLevel]; ok && level != nil {
				return level.Format()
			}
			return ""
		},
		Suggestions: suggest.Pools{
			ByIntent: map[string][]string{
				"workout_plan": {
					"Create a {fitnessLevel} plan for {fitnessGoal}",
					"How many rest days do I need per week?",
					"What should I do on days I can't train?",
				},
				"exercise_explanation": {
					"Common mistakes with this movement",
					"Easier variations I can start with",
					"How many sets and reps should I do?",
				},
				"form_check": {
					"Warning signs my form is breaking down",
					"Mobility work that improves my form",
					"Should I film my lifts?",
				},
				"targeted_exercise": {
					"Best exercises for {targetMuscle}",
					"How often can I train {targetMuscle}?",
					"Bodyweight options for {targetMuscle}",
				},
				"nutrition": {
					"How much protein do I need for {fitnessGoal}?",
					"What should I eat before a workout?",
					"Simple meal prep ideas for training days",
				},
				"recovery": {
					"How to tell soreness from injury",
					"Best stretches after a workout",
					"How much sleep do I need for recovery?",
				},
				"goal_setting": {
					"How long until I see results for {fitnessGoal}?",
					"How to set a realistic training goal",
					"Signs I should adjust my goal",
				},
			},
			General: []string{
				"Create a workout plan for me",
				"How do I stay consistent with training?",
				"What does a balanced training week look like?",
				"How important is warming up?",
			},
		},
		Disclaimer: "This guidance is general fitness information, not medical advice. Consult a healthcare professional before starting a new exercise program, especially if you have existing conditions.",
	}, nil
}
