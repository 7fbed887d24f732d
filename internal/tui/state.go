package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/aide/internal/config"
	"github.com/sant0-9/aide/internal/engine"
	"github.com/sant0-9/aide/internal/session"
	"github.com/sant0-9/aide/internal/translate"
)

type state struct {
	config *config.Config
	engine *engine.Engine

	// Translation provider, used only by the translate mode
	provider      translate.Provider
	providerReady bool
	providerError error

	// Active mode and one session per mode, so slots never bleed between
	// modes within a run
	currentMode string
	sessions    map[string]*session.State

	// Display history for the current mode
	history []message

	// Follow-up suggestions from the last response
	suggestions []string
	suggestIdx  int

	// A turn or translation is in flight
	thinking   bool
	spinTick   int
	lastExport string

	chatScrollOffset int

	input textinput.Model
}

type message struct {
	role    string
	content string
}

func newState(cfg *config.Config, eng *engine.Engine) *state {
	input := textinput.New()
	input.Placeholder = "Type a message, or /help for commands..."
	input.CharLimit = 500
	input.Width = 60

	return &state{
		config:      cfg,
		engine:      eng,
		currentMode: cfg.Mode,
		sessions:    make(map[string]*session.State),
		input:       input,
	}
}

// session returns the state for the current mode, loading it from the store
// on first use.
func (s *state) session() *session.State {
	st, ok := s.sessions[s.currentMode]
	if !ok {
		st = s.engine.Load("aide-" + s.currentMode)
		s.sessions[s.currentMode] = st
	}
	return st
}
