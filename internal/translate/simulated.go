package translate

import (
	"context"
	"fmt"
	"time"
)

// SimulatedProvider mimics a remote translation service. Latency grows with
// text length up to a cap, and the output tags the text with the target
// language code so tests and demos can see the routing.
type SimulatedProvider struct {
	name      string
	baseDelay time.Duration
}

// NewGoogleProvider returns a simulator shaped like the Google Translate API
func NewGoogleProvider() *SimulatedProvider {
	return &SimulatedProvider{name: "google", baseDelay: 500 * time.Millisecond}
}

// NewAzureProvider returns a simulator shaped like the Azure Translator API
func NewAzureProvider() *SimulatedProvider {
	return &SimulatedProvider{name: "azure", baseDelay: 600 * time.Millisecond}
}

func (p *SimulatedProvider) Name() string {
	return p.name
}

func (p *SimulatedProvider) Ping(ctx context.Context) error {
	select {
	case <-time.After(50 * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *SimulatedProvider) Translate(ctx context.Context, req *Request) (*Result, error) {
	if req.TargetLang == "" {
		return nil, fmt.Errorf("%s: target language required", p.name)
	}

	// Longer text takes longer, capped at 2s on top of the base delay
	extra := time.Duration(len(req.Text)/20) * time.Millisecond
	if extra > 2*time.Second {
		extra = 2 * time.Second
	}
	delay := p.baseDelay + extra

	start := time.Now()
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	detected := req.SourceLang
	if detected == "" {
		detected = "en"
	}

	return &Result{
		Text:         fmt.Sprintf("[%s] %s", req.TargetLang, req.Text),
		DetectedLang: detected,
		Elapsed:      time.Since(start),
	}, nil
}
