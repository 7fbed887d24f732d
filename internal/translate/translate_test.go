package translate

import (
	"context"
	"testing"

	"github.com/sant0-9/aide/internal/config"
)

func TestEchoProvider(t *testing.T) {
	p := NewEchoProvider()

	res, err := p.Translate(context.Background(), &Request{Text: "hello", TargetLang: "es"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.Text != "[es] hello" {
		t.Errorf("Text = %q, want [es] hello", res.Text)
	}
	if res.DetectedLang != "en" {
		t.Errorf("DetectedLang = %q, want en (default)", res.DetectedLang)
	}

	res, err = p.Translate(context.Background(), &Request{Text: "bonjour", SourceLang: "fr", TargetLang: "en"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.DetectedLang != "fr" {
		t.Errorf("DetectedLang = %q, want fr", res.DetectedLang)
	}

	if _, err := p.Translate(context.Background(), &Request{Text: "x"}); err == nil {
		t.Error("missing target language did not error")
	}
}

func TestSimulatedProviderHonorsContext(t *testing.T) {
	p := NewGoogleProvider()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Translate(ctx, &Request{Text: "hello", TargetLang: "es"})
	if err == nil {
		t.Fatal("cancelled context did not abort the translation")
	}
}

func TestLanguageCatalog(t *testing.T) {
	tests := []struct {
		code string
		name string
	}{
		{"es", "Spanish"},
		{"ja", "Japanese"},
		{"uk", "Ukrainian"},
	}
	for _, tt := range tests {
		if got := LanguageName(tt.code); got != tt.name {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.name)
		}
		if got := LanguageCode(tt.name); got != tt.code {
			t.Errorf("LanguageCode(%q) = %q, want %q", tt.name, got, tt.code)
		}
	}

	if got := LanguageName("zz"); got != "zz" {
		t.Errorf("unknown code = %q, want passthrough", got)
	}
	if got := LanguageCode("klingon"); got != "" {
		t.Errorf("unknown name = %q, want empty", got)
	}
	if got := LanguageCode("spanish"); got != "es" {
		t.Errorf("LanguageCode is not case-insensitive: %q", got)
	}

	if len(Languages()) == 0 {
		t.Error("empty language catalog")
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		wantErr  bool
	}{
		{"google", "google", false},
		{"azure", "azure", false},
		{"echo", "echo", false},
		{"", "google", false},
		{"deepl", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Translation.Provider = tt.provider
			p, err := NewProvider(cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if p.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.want)
			}
		})
	}
}
