package translate

import (
	"context"
	"fmt"
)

// EchoProvider translates instantly with no delay. Useful for tests and for
// running the app offline.
type EchoProvider struct{}

func NewEchoProvider() *EchoProvider {
	return &EchoProvider{}
}

func (EchoProvider) Name() string { return "echo" }

func (EchoProvider) Ping(ctx context.Context) error { return nil }

func (EchoProvider) Translate(ctx context.Context, req *Request) (*Result, error) {
	if req.TargetLang == "" {
		return nil, fmt.Errorf("echo: target language required")
	}
	detected := req.SourceLang
	if detected == "" {
		detected = "en"
	}
	return &Result{
		Text:         fmt.Sprintf("[%s] %s", req.TargetLang, req.Text),
		DetectedLang: detected,
	}, nil
}
