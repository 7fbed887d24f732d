package extract

import "testing"

func TestTargetLang(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"translate hello to Spanish", "Spanish"},
		{"how do you say this in french", "French"},
		{"put it into Japanese please", "Japanese"},
		{"translate this for me", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := TargetLang(tt.text)
			if tt.want == "" {
				if got != nil {
					t.Errorf("TargetLang(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			if got == nil || got.Format() != tt.want {
				t.Errorf("TargetLang(%q) = %v, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSourceLang(t *testing.T) {
	if got := SourceLang("translate from German to English"); got == nil || got.Format() != "German" {
		t.Errorf("SourceLang = %v, want German", got)
	}
	if got := SourceLang("what does this Italian phrase mean"); got == nil || got.Format() != "Italian" {
		t.Errorf("SourceLang = %v, want Italian", got)
	}
	if got := SourceLang("translate hello to Spanish"); got != nil {
		t.Errorf("SourceLang = %v, want nil", got)
	}
}
