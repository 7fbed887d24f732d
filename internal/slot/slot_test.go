package slot

import (
	"reflect"
	"testing"
)

func TestFormat(t *testing.T) {
	amount := 3000.0

	tests := []struct {
		name string
		val  Value
		want string
	}{
		{
			name: "text",
			val:  Text("Tokyo"),
			want: "Tokyo",
		},
		{
			name: "date with month and year",
			val:  DateSpec{Years: []int{2026}, Months: []string{"december"}},
			want: "december 2026",
		},
		{
			name: "seasons win over months",
			val:  DateSpec{Years: []int{2026}, Months: []string{"october"}, Seasons: []string{"fall"}},
			want: "fall 2026",
		},
		{
			name: "year only",
			val:  DateSpec{Years: []int{2027}},
			want: "2027",
		},
		{
			name: "multiple months",
			val:  DateSpec{Years: []int{2026}, Months: []string{"june", "july"}},
			want: "june or july 2026",
		},
		{
			name: "budget amount with currency",
			val:  Budget{Amount: &amount, Currency: "EUR"},
			want: "approximately EUR 3000",
		},
		{
			name: "budget amount defaults to USD",
			val:  Budget{Amount: &amount},
			want: "approximately USD 3000",
		},
		{
			name: "budget level beats amount",
			val:  Budget{Amount: &amount, Level: LevelLuxury},
			want: "luxury",
		},
		{
			name: "list",
			val:  List{"beach", "food"},
			want: "beach, food",
		},
		{
			name: "empty list",
			val:  List{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	m := Map{"destination": Text("Paris")}

	m.Merge(Map{
		"destination": nil,
		"dates":       DateSpec{Years: []int{2026}, Months: []string{"december"}},
	})

	if got := m.FormatOr("destination", "?"); got != "Paris" {
		t.Errorf("nil value cleared destination: got %q", got)
	}
	if got := m.FormatOr("dates", "?"); got != "december 2026" {
		t.Errorf("dates not merged: got %q", got)
	}

	// Non-nil overwrites
	m.Merge(Map{"destination": Text("Tokyo")})
	if got := m.FormatOr("destination", "?"); got != "Tokyo" {
		t.Errorf("overwrite failed: got %q", got)
	}

	// Merging the same map twice changes nothing
	src := Map{"interests": List{"food"}}
	m.Merge(src)
	before := m.Clone()
	m.Merge(src)
	if !reflect.DeepEqual(m, before) {
		t.Error("second merge of identical src changed the map")
	}
}

func TestMergeEmptyListIsPresent(t *testing.T) {
	// "no equipment" extracts to an empty list, which must still overwrite
	m := Map{"equipment": List{"dumbbells"}}
	m.Merge(Map{"equipment": List{}})

	val, ok := m["equipment"]
	if !ok || val == nil {
		t.Fatal("empty list dropped on merge")
	}
	if len(val.(List)) != 0 {
		t.Errorf("equipment = %v, want empty list", val)
	}
}

func TestFormatOr(t *testing.T) {
	m := Map{
		"set":   Text("value"),
		"empty": Text(""),
		"nil":   nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"set", "value"},
		{"empty", "[specify]"},
		{"nil", "[specify]"},
		{"missing", "[specify]"},
	}

	for _, tt := range tests {
		if got := m.FormatOr(tt.key, "[specify]"); got != tt.want {
			t.Errorf("FormatOr(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	m := Map{"a": Text("x")}
	c := m.Clone()
	c["a"] = Text("y")
	c["b"] = Text("z")

	if m.FormatOr("a", "") != "x" {
		t.Error("clone mutation leaked into original")
	}
	if _, ok := m["b"]; ok {
		t.Error("clone addition leaked into original")
	}
}
