package tui

import "testing"

func TestTranslatableText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"translate good morning to spanish", "good morning"},
		{"Translate hello into French", "hello"},
		{"please translate thank you to japanese", "thank you"},
		{"say goodbye in german", "goodbye"},
		{`translate "see you soon" to italian`, "see you soon"},
		{"good morning", "good morning"},
		{"translate to spanish", "translate to spanish"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := translatableText(tt.input); got != tt.want {
				t.Errorf("translatableText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"shortened", "What's the best time to visit?", 10, "What's ..."},
		{"tiny budget", "hello", 2, "he"},
		{"zero", "hello", 0, ""},
		{"negative from narrow chip math", "What's the best time to visit Tokyo?", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	out := wrapText("one two three four five", 9)
	for _, line := range splitLines(out) {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}

	// Existing breaks survive
	out = wrapText("first\nsecond", 40)
	if out != "first\nsecond" {
		t.Errorf("wrapText altered short multi-line text: %q", out)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
