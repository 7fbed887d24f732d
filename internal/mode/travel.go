package mode

import (
	"embed"
	"io/fs"

	"github.com/sant0-9/aide/internal/extract"
	"github.com/sant0-9/aide/internal/intent"
	"github.com/sant0-9/aide/internal/suggest"
	"github.com/sant0-9/aide/internal/template"
)

//go:embed templates/travel
var travelTemplates embed.FS

// travelRules reproduces the request-type precedence of the travel guide:
// earlier rules win, so "plan a trip to Italy" classifies as itinerary even
// though "trip" appears in later patterns too.
var travelRules = []intent.Rule{
	intent.R(`\b(?:where should i|what's a good place to)\b`, "destination_recommendation"),
	intent.R(`\b(?:where|recommend|suggest|best place|top destination|good place)\b.*\b(?:to visit|to go|to travel|for vacation|for holiday)\b`, "destination_recommendation"),
	intent.R(`\b(?:itinerary|schedule|plan|days in|day trip|things to do|activities|attractions|sights|landmarks)\b`, "itinerary"),
	intent.R(`\b(?:how to get|transportation|transport|flight|train|bus|car rental|taxi|subway|metro|getting around)\b`, "transportation"),
	intent.R(`\b(?:hotel|accommodation|place to stay|hostel|airbnb|resort|where to stay)\b`, "accommodation"),
	intent.R(`\b(?:packing|pack|bring|suitcase|luggage|essentials|checklist|what to wear)\b`, "packing"),
	intent.R(`\b(?:food|restaurant|eat|cuisine|dish|meal|breakfast|lunch|dinner|dining|cafe|bar)\b`, "food"),
	intent.R(`\b(?:budget|cost|expensive|cheap|affordable|price|money|spending|expense)\b`, "budget"),
	intent.R(`\b(?:weather|season|when to go|best time|climate|temperature|rain|sunny|cold|hot|warm)\b`, "seasonal"),
	intent.R(`\b(?:safety|safe|danger|crime|health|insurance|vaccination|vaccine|medical|embassy|scam)\b`, "safety"),
	intent.R(`\b(?:culture|custom|tradition|etiquette|local|language|greeting|dress code|history)\b`, "cultural"),
	intent.R(`\b(?:visa|passport|document|requirement|entry|border|customs|immigration)\b`, "visa"),
}

// Travel builds the travel guide mode
func Travel() (*Config, error) {
	sub, err := fs.Sub(travelTemplates, "templates/travel")
	if err != nil {
		return nil, err
	}
	templates, err := template.LoadFS(sub)
	if err != nil {
		return nil, err
	}

	return &Config{
		Name:        "travel",
		Description: "Destination recommendations, trip planning, and travel tips",
		Greetings: []string{
			"Ready to explore the world? Where would you like to travel today?",
			"Hello, traveler! Where can I guide you on your next adventure?",
			"The world awaits! How can I help with your travel plans?",
			"Let's discover new horizons together! What travel questions can I answer for you?",
		},
		Clarify:       "I can help with destination recommendations, itinerary planning, packing lists, travel tips, and more. Where would you like to go?",
		DefaultIntent: "destination_info",
		Rules:         travelRules,
		Extractors: []extract.Extractor{
			{Key: extract.KeyDestination, Fn: extract.Destination},
			{Key: extract.KeyDates, Fn: extract.Dates},
			{Key: extract.KeyBudget, Fn: extract.Budget},
			{Key: extract.KeyInterests, Fn: extract.Interests},
			{Key: extract.KeyDuration, Fn: extract.Duration},
		},
		Templates: templates,
		Suggestions: suggest.Pools{
			ByIntent: map[string][]string{
				"destination_recommendation": {
					"What's the best time to visit {destination}?",
					"Budget-friendly destinations for families",
					"Best places for adventure travel",
				},
				"itinerary": {
					"Top things to do in {destination}",
					"Is 3 days enough for {destination}?",
					"Best day trips from {destination}",
				},
				"transportation": {
					"How to get around {destination}",
					"Is public transportation good in {destination}?",
					"Car rental advice for {destination}",
				},
				"accommodation": {
					"Best neighborhoods to stay in {destination}",
					"Affordable hotels in {destination}",
					"Is Airbnb a good option in {destination}?",
				},
				"packing": {
					"What should I pack for {destination}?",
					"Essential travel gadgets for international travel",
					"Packing light tips for a two-week trip",
				},
				"food": {
					"Must-try foods in {destination}",
					"Best restaurants in {destination}",
					"Street food safety tips",
				},
				"cultural": {
					"Cultural customs in {destination}",
					"Do I need to tip in {destination}?",
					"Dress code for {destination}",
				},
				"visa": {
					"Visa requirements for {destination}",
					"Do I need a passport for {destination}?",
					"Customs regulations for {destination}",
				},
				"destination_info": {
					"What is {destination} known for?",
					"Best time to visit {destination}",
					"Things to do in {destination}",
				},
			},
			General: []string{
				"Best travel insurance for international trips",
				"How to avoid jet lag",
				"Most underrated travel destinations",
				"Travel photography tips",
				"Best travel apps to download",
				"Solo travel safety tips",
			},
		},
		Disclaimer: "Information provided is for general guidance only. Travel regulations, prices, and conditions may change. Always verify the latest information before traveling.",
	}, nil
}
