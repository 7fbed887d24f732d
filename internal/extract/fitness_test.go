package extract

import (
	"reflect"
	"testing"

	"github.com/sant0-9/aide/internal/slot"
)

func TestGoal(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I want to build muscle", "muscle gain"},
		{"help me lose weight", "weight loss"},
		{"I want to get stronger", "strength"},
		{"improve my endurance", "cardio"},
		{"work on flexibility", "flexibility"},
		{"just want to get in shape", "general fitness"},
		{"what should I eat", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Goal(tt.text)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Goal(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			if got == nil || got.Format() != tt.want {
				t.Errorf("Goal(%q) = %v, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I'm a beginner", "beginner"},
		{"I've never worked out before", "beginner"},
		{"I have some experience lifting", "intermediate"},
		{"I'm an advanced lifter", "advanced"},
		{"make me a plan", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Level(tt.text)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Level(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			if got == nil || got.Format() != tt.want {
				t.Errorf("Level(%q) = %v, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestEquipment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
		none bool
	}{
		{
			name: "no equipment is empty but present",
			text: "I have no equipment at all",
			want: []string{},
		},
		{
			name: "bodyweight counts as none",
			text: "bodyweight only please",
			want: []string{},
		},
		{
			name: "gym expands to the standard set",
			text: "I train at a gym",
			want: gymEquipment,
		},
		{
			name: "specific items",
			text: "I own dumbbells and a bench",
			want: []string{"dumbbells", "bench"},
		},
		{
			name: "spelling variant",
			text: "got some dumbells at home",
			// "at home" wins as the no-equipment cue before items are read
			want: []string{},
		},
		{
			name: "nothing mentioned",
			text: "I want bigger arms",
			none: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Equipment(tt.text)
			if tt.none {
				if got != nil {
					t.Errorf("Equipment(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			list, ok := got.(slot.List)
			if !ok {
				t.Fatalf("Equipment(%q) = %T, want List", tt.text, got)
			}
			if !reflect.DeepEqual([]string(list), tt.want) {
				t.Errorf("Equipment(%q) = %v, want %v", tt.text, list, tt.want)
			}
		})
	}
}

func TestMuscle(t *testing.T) {
	if got := Muscle("exercises for my chest"); got == nil || got.Format() != "chest" {
		t.Errorf("Muscle = %v, want chest", got)
	}
	if got := Muscle("how do I train glutes"); got == nil || got.Format() != "glutes" {
		t.Errorf("Muscle = %v, want glutes", got)
	}
	if got := Muscle("I want a plan"); got != nil {
		t.Errorf("Muscle = %v, want nil", got)
	}
}
