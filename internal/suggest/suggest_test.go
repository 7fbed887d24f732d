package suggest

import (
	"reflect"
	"testing"

	"github.com/sant0-9/aide/internal/slot"
)

func TestBuild(t *testing.T) {
	pools := Pools{
		ByIntent: map[string][]string{
			"packing": {
				"What to wear in {destination}",
				"Packing cubes worth it?",
			},
		},
		General: []string{
			"Plan an itinerary",
			"Packing cubes worth it?", // duplicate of an intent candidate
			"Best time to visit",
		},
	}
	slots := slot.Map{"destination": slot.Text("Tokyo")}

	tests := []struct {
		name   string
		intent string
		slots  slot.Map
		max    int
		want   []string
	}{
		{
			name:   "intent pool first then general top-up",
			intent: "packing",
			slots:  slots,
			max:    3,
			want: []string{
				"What to wear in Tokyo",
				"Packing cubes worth it?",
				"Plan an itinerary",
			},
		},
		{
			name:   "unknown intent uses general only",
			intent: "mystery",
			slots:  slots,
			max:    3,
			want: []string{
				"Plan an itinerary",
				"Packing cubes worth it?",
				"Best time to visit",
			},
		},
		{
			name:   "unresolved slot skips the candidate",
			intent: "packing",
			slots:  slot.Map{},
			max:    3,
			want: []string{
				"Packing cubes worth it?",
				"Plan an itinerary",
				"Best time to visit",
			},
		},
		{
			name:   "max caps the list",
			intent: "packing",
			slots:  slots,
			max:    1,
			want:   []string{"What to wear in Tokyo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.intent, tt.slots, pools, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildDistinct(t *testing.T) {
	pools := Pools{
		ByIntent: map[string][]string{"x": {"same", "same", "other"}},
	}

	got := Build("x", nil, pools, 3)
	want := []string{"same", "other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuildDeterministic(t *testing.T) {
	pools := Pools{General: []string{"a", "b", "c", "d"}}
	first := Build("any", nil, pools, 3)
	for i := 0; i < 10; i++ {
		if got := Build("any", nil, pools, 3); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}
