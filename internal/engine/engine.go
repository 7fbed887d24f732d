// Package engine runs the shared conversation pipeline: extract slots, merge
// them into the session, classify the intent, render the response template,
// and build follow-up suggestions. One engine serves every registered mode.
package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sant0-9/aide/internal/extract"
	"github.com/sant0-9/aide/internal/intent"
	"github.com/sant0-9/aide/internal/mode"
	"github.com/sant0-9/aide/internal/session"
	"github.com/sant0-9/aide/internal/suggest"
)

// Response is one assistant turn. Intent is empty when the engine answered
// with a clarify prompt instead of running the pipeline.
type Response struct {
	Text        string
	Intent      string
	Suggestions []string
}

// ConfigError marks problems with mode configuration, as opposed to anything
// the user typed. User input never produces an error from Process.
type ConfigError struct {
	Mode   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mode %s: %s", e.Mode, e.Reason)
}

// Engine dispatches user input through a mode's pipeline and persists the
// resulting session state.
type Engine struct {
	modes *mode.Registry
	store session.Store
	log   *zap.Logger
}

// New creates an engine. A nil store disables persistence and a nil logger
// falls back to a no-op logger.
func New(modes *mode.Registry, store session.Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{modes: modes, store: store, log: log}
}

// Process runs one user turn through the named mode. Blank input returns the
// mode's clarify prompt and leaves the session untouched. Store failures are
// logged and never fail the turn.
func (e *Engine) Process(ctx context.Context, modeName string, st *session.State, text string) (*Response, error) {
	cfg, ok := e.modes.Get(modeName)
	if !ok {
		return nil, &ConfigError{Mode: modeName, Reason: "not registered"}
	}

	if strings.TrimSpace(text) == "" {
		return &Response{Text: cfg.Clarify}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st.MergeSlots(extract.Run(cfg.Extractors, text))

	tag := intent.Classify(text, cfg.Rules, cfg.DefaultIntent)

	variant := ""
	if cfg.Variant != nil {
		variant = cfg.Variant(st.Slots)
	}
	tpl, ok := cfg.Templates.Lookup(tag, variant)
	if !ok {
		return nil, &ConfigError{Mode: modeName, Reason: "no template for intent " + tag}
	}

	body := tpl.Render(st.Slots)
	if cfg.Disclaimer != "" {
		body += "\n\n*" + cfg.Disclaimer + "*"
	}

	resp := &Response{
		Text:        body,
		Intent:      tag,
		Suggestions: suggest.Build(tag, st.Slots, cfg.Suggestions, suggest.DefaultMax),
	}

	st.Append("user", text)
	st.Append("assistant", body)
	e.persist(st)

	e.log.Debug("processed turn",
		zap.String("mode", modeName),
		zap.String("intent", tag),
		zap.Int("slots", len(st.Slots)))

	return resp, nil
}

// Load restores a session from the store, or returns a fresh state when the
// store has nothing for the key.
func (e *Engine) Load(id string) *session.State {
	st := session.New(id)
	if e.store == nil {
		return st
	}
	snap, err := e.store.Get(st.ID)
	if err != nil {
		e.log.Warn("session load failed", zap.String("session", st.ID), zap.Error(err))
		return st
	}
	if snap != nil {
		st.Restore(snap)
	}
	return st
}

// Clear resets the state and removes its persisted snapshot.
func (e *Engine) Clear(st *session.State) {
	st.Reset()
	if e.store == nil {
		return
	}
	if err := e.store.Clear(st.ID); err != nil {
		e.log.Warn("session clear failed", zap.String("session", st.ID), zap.Error(err))
	}
}

func (e *Engine) persist(st *session.State) {
	if e.store == nil {
		return
	}
	if err := e.store.Set(st.ID, st.Snapshot()); err != nil {
		e.log.Warn("session persist failed", zap.String("session", st.ID), zap.Error(err))
	}
}

// Modes exposes the registry for hosts that need to list or switch modes.
func (e *Engine) Modes() *mode.Registry {
	return e.modes
}
