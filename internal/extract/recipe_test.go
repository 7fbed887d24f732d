package extract

import (
	"reflect"
	"testing"

	"github.com/sant0-9/aide/internal/slot"
)

func TestDietary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
		none bool
	}{
		{
			name: "named directly",
			text: "a vegan dinner recipe",
			want: []string{"vegan"},
		},
		{
			name: "i am phrasing",
			text: "I'm vegetarian, what can I cook",
			want: []string{"vegetarian"},
		},
		{
			name: "negative phrasing maps to free form",
			text: "I don't eat gluten",
			want: []string{"gluten-free"},
		},
		{
			name: "multiple restrictions",
			text: "keto and dairy-free options please",
			want: []string{"dairy-free", "keto"},
		},
		{
			name: "short capture does not fuzzy match",
			text: "I am an omnivore",
			none: true,
		},
		{
			name: "nothing dietary",
			text: "a quick pasta dish",
			none: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dietary(tt.text)
			if tt.none {
				if got != nil {
					t.Errorf("Dietary(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			list, ok := got.(slot.List)
			if !ok {
				t.Fatalf("Dietary(%q) = %T, want List", tt.text, got)
			}
			if !reflect.DeepEqual([]string(list), tt.want) {
				t.Errorf("Dietary(%q) = %v, want %v", tt.text, list, tt.want)
			}
		})
	}
}

func TestAllergies(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
		none bool
	}{
		{
			name: "allergic to phrasing",
			text: "I'm allergic to peanuts",
			want: []string{"Peanuts"},
		},
		{
			name: "allergy suffix phrasing",
			text: "I have a shellfish allergy",
			want: []string{"Shellfish"},
		},
		{
			name: "named allergen",
			text: "no peanuts please, peanut allergy here",
			want: []string{"Peanuts"},
		},
		{
			name: "singular maps to canonical plural",
			text: "allergic to eggs",
			want: []string{"Eggs"},
		},
		{
			name: "no allergens",
			text: "I love spicy food",
			none: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allergies(tt.text)
			if tt.none {
				if got != nil {
					t.Errorf("Allergies(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			list, ok := got.(slot.List)
			if !ok {
				t.Fatalf("Allergies(%q) = %T, want List", tt.text, got)
			}
			if !reflect.DeepEqual([]string(list), tt.want) {
				t.Errorf("Allergies(%q) = %v, want %v", tt.text, list, tt.want)
			}
		})
	}
}

func TestRecipeType(t *testing.T) {
	if got := RecipeType("a hearty soup for winter"); got == nil || got.Format() != "soup" {
		t.Errorf("RecipeType = %v, want soup", got)
	}
	if got := RecipeType("quick stir-fry ideas"); got == nil || got.Format() != "stir-fry" {
		t.Errorf("RecipeType = %v, want stir-fry", got)
	}
	if got := RecipeType("something tasty"); got != nil {
		t.Errorf("RecipeType = %v, want nil", got)
	}
}

func TestCuisine(t *testing.T) {
	if got := Cuisine("authentic thai curry"); got == nil || got.Format() != "thai" {
		t.Errorf("Cuisine = %v, want thai", got)
	}
	if got := Cuisine("dinner ideas"); got != nil {
		t.Errorf("Cuisine = %v, want nil", got)
	}
}
