// Package translate provides translation providers behind a common
// interface. The bundled providers simulate remote services with realistic
// latency, which keeps the rest of the application honest about asynchrony.
package translate

import (
	"context"
	"time"
)

// Provider is the interface all translation providers implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Translate performs one translation request
	Translate(ctx context.Context, req *Request) (*Result, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// Request describes one translation
type Request struct {
	Text       string
	SourceLang string // language code; empty means detect
	TargetLang string
	Formality  string // "", "formal", or "informal"
	Kind       string // "text", "idiom"; providers may ignore it
}

// Result is a completed translation
type Result struct {
	Text         string
	DetectedLang string
	Elapsed      time.Duration
}
