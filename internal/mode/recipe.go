package mode

import (
	"embed"
	"io/fs"

	"github.com/sant0-9/aide/internal/extract"
	"github.com/sant0-9/aide/internal/intent"
	"github.com/sant0-9/aide/internal/suggest"
	"github.com/sant0-9/aide/internal/template"
)

//go:embed templates/recipe
var recipeTemplates embed.FS

var recipeRules = []intent.Rule{
	intent.R(`\b(?:recipe|make|cook|prepare|how\s+to\s+make|how\s+do\s+i\s+make|how\s+to\s+cook)\b`, "recipe"),
	intent.R(`\b(?:meal\s+plan|weekly|menu|plan|schedule|prep|preparation)\b`, "meal_planning"),
	intent.R(`\b(?:substitute|substitution|replacement|replace|alternative|instead\s+of)\b`, "substitution"),
	intent.R(`\b(?:how\s+to|technique|method|process|procedure|steps|guide|tip|advice)\b`, "technique"),
	intent.R(`\b(?:equipment|tool|utensil|appliance|gadget|pot|pan|knife|blender|mixer|pressure\s+cooker|slow\s+cooker|instant\s+pot)\b`, "equipment"),
	intent.R(`\b(?:nutrition|nutritional|healthy|health|calorie|protein|carb|fat|vitamin|mineral|diet|dietary|keto|paleo|vegan|vegetarian)\b`, "nutrition"),
	intent.R(`\b(?:store|storage|preserve|freezing|refrigerate|shelf\s+life|expiration|spoil|leftover|safety|safe)\b`, "food_safety"),
	intent.R(`\b(?:measure|measurement|convert|conversion|tablespoon|teaspoon|cup|ounce|gram|pound|kilogram|celsius|fahrenheit)\b`, "measurement"),
	intent.R(`\b(?:cuisine|dish|traditional|authentic|regional|cultural|ethnic|international)\b`, "cuisine"),
	intent.R(`\b(?:seasonal|season|spring|summer|fall|autumn|winter|in\s+season|produce|ingredient|vegetable|fruit)\b`, "seasonal"),
}

// Recipe builds the cooking assistant mode.
func Recipe() (*Config, error) {
	sub, err := fs.Sub(recipeTemplates, "templates/recipe")
	if err != nil {
		return nil, err
	}
	templates, err := template.LoadFS(sub)
	if err != nil {
		return nil, err
	}

	return &Config{
		Name:        "recipe",
		Description: "Recipes, cooking techniques, and kitchen guidance",
		Greetings: []string{
			"Welcome to the kitchen! What are we making today?",
			"Hungry for ideas? Tell me what you'd like to cook.",
			"Your cooking assistant is ready. What's on the menu?",
		},
		Clarify:       "I can suggest recipes, plan meals, swap ingredients, and explain techniques. What would you like to cook?",
		DefaultIntent: "recipe_suggestion",
		Rules:         recipeRules,
		Extractors: []extract.Extractor{
			{Key: extract.KeyDietary, Fn: extract.Dietary},
			{Key: extract.KeyAllergies, Fn: extract.Allergies},
			{Key: extract.KeyRecipeType, Fn: extract.RecipeType},
			{Key: extract.KeyCuisine, Fn: extract.Cuisine},
		},
		Templates: templates,
		Suggestions: suggest.Pools{
			ByIntent: map[string][]string{
				"recipe": {
					"A quicker version of this {recipeType}",
					"What sides go well with this?",
					"Can I make this ahead of time?",
				},
				"meal_planning": {
					"Plan a week of {dietary} dinners",
					"Meal prep ideas that keep for 4 days",
					"A grocery list for this plan",
				},
				"substitution": {
					"Substitutes that work in baking",
					"A dairy-free swap for this",
					"Does the substitution change cooking time?",
				},
				"technique": {
					"Common mistakes with this technique",
					"What equipment makes this easier?",
					"How do restaurants do this?",
				},
				"nutrition": {
					"Make this recipe {dietary}",
					"Lower-calorie versions of comfort food",
					"High-protein dinner ideas",
				},
				"food_safety": {
					"How long do leftovers keep?",
					"Safe internal temperatures for meat",
					"Can I refreeze thawed food?",
				},
				"cuisine": {
					"Essential pantry items for {cuisine} cooking",
					"An easy {cuisine} dish for beginners",
					"What makes {cuisine} food distinctive?",
				},
			},
			General: []string{
				"Suggest a recipe for tonight",
				"What can I make in under 30 minutes?",
				"Help me plan meals for the week",
				"An impressive dish for guests",
			},
		},
		Disclaimer: "Always verify ingredients against your allergies and dietary needs. Food safety guidance here is general; when in doubt, throw it out.",
	}, nil
}
