package tui

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/aide/internal/config"
	"github.com/sant0-9/aide/internal/engine"
	"github.com/sant0-9/aide/internal/extract"
	"github.com/sant0-9/aide/internal/transcript"
	"github.com/sant0-9/aide/internal/translate"
)

type view int

const (
	viewWelcome view = iota
	viewChat
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(cfg *config.Config, eng *engine.Engine, provider translate.Provider) *App {
	s := newState(cfg, eng)
	s.provider = provider
	s.input.Focus()

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.pingProvider(),
	)
}

func (a *App) pingProvider() tea.Cmd {
	return func() tea.Msg {
		if a.state.provider == nil {
			return providerErrorMsg{nil}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.state.provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}
		return providerReadyMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case providerReadyMsg:
		a.state.providerReady = true
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case turnDoneMsg:
		a.state.thinking = false
		if msg.err != nil {
			a.state.history = append(a.state.history, message{
				role:    "assistant",
				content: "Something went wrong: " + msg.err.Error(),
			})
			return a, nil
		}
		a.state.history = append(a.state.history, message{
			role:    "assistant",
			content: msg.resp.Text,
		})
		a.state.suggestions = msg.resp.Suggestions
		a.state.suggestIdx = -1
		a.state.chatScrollOffset = 0

		if cmd := a.maybeTranslate(msg.userText, msg.resp); cmd != nil {
			a.state.thinking = true
			return a, tea.Batch(cmd, a.tick())
		}
		return a, nil

	case translationDoneMsg:
		a.state.thinking = false
		if msg.err != nil {
			a.state.history = append(a.state.history, message{
				role:    "assistant",
				content: "Translation failed: " + msg.err.Error(),
			})
			return a, nil
		}
		a.state.history = append(a.state.history, message{
			role:    "assistant",
			content: "Translation: " + msg.result.Text,
		})
		return a, nil

	case tickMsg:
		if a.state.thinking {
			a.state.spinTick++
			return a, a.tick()
		}
		return a, nil
	}

	if a.view == viewWelcome || a.view == viewChat {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewChat
			if len(a.state.history) == 0 {
				a.view = viewWelcome
			}
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Tab):
		if a.view == viewChat && len(a.state.suggestions) > 0 && !a.state.thinking {
			a.state.suggestIdx = (a.state.suggestIdx + 1) % len(a.state.suggestions)
			a.state.input.SetValue(a.state.suggestions[a.state.suggestIdx])
			a.state.input.CursorEnd()
			return nil
		}

	case key.Matches(msg, keys.Up):
		if a.view == viewChat {
			a.state.chatScrollOffset++
			return nil
		}

	case key.Matches(msg, keys.Down):
		if a.view == viewChat && a.state.chatScrollOffset > 0 {
			a.state.chatScrollOffset--
			return nil
		}

	case key.Matches(msg, keys.Enter):
		if !a.state.thinking {
			return a.handleInput()
		}
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	if strings.HasPrefix(input, "/") {
		return a.handleCommand(input)
	}

	a.state.input.Reset()
	a.view = viewChat
	a.state.history = append(a.state.history, message{role: "user", content: input})
	a.state.suggestions = nil
	a.state.thinking = true
	a.state.chatScrollOffset = 0

	return tea.Batch(a.runTurn(input), a.tick())
}

func (a *App) handleCommand(input string) tea.Cmd {
	fields := strings.Fields(strings.ToLower(input))
	cmd := fields[0]

	switch cmd {
	case "/help", "/h":
		a.view = viewHelp
		a.state.input.Reset()

	case "/quit", "/q":
		a.quitting = true
		return tea.Quit

	case "/mode", "/m":
		a.state.input.Reset()
		if len(fields) < 2 {
			a.state.history = append(a.state.history, message{
				role:    "assistant",
				content: "Available modes: " + strings.Join(a.state.engine.Modes().Names(), ", "),
			})
			a.view = viewChat
			return nil
		}
		return a.switchMode(fields[1])

	case "/clear", "/c":
		a.state.input.Reset()
		a.state.engine.Clear(a.state.session())
		a.state.history = nil
		a.state.suggestions = nil
		a.view = viewWelcome

	case "/export", "/e":
		a.state.input.Reset()
		path, err := transcript.Export("", a.state.currentMode, a.state.session().Log())
		if err != nil {
			a.state.lastExport = "export failed: " + err.Error()
		} else {
			a.state.lastExport = "saved " + path
		}
		a.view = viewChat

	default:
		a.state.input.Reset()
		a.state.history = append(a.state.history, message{
			role:    "assistant",
			content: "Unknown command " + cmd + ". Try /help.",
		})
		a.view = viewChat
	}

	return nil
}

func (a *App) switchMode(name string) tea.Cmd {
	cfg, ok := a.state.engine.Modes().Get(name)
	if !ok {
		a.state.history = append(a.state.history, message{
			role:    "assistant",
			content: "No mode named " + name + ". Available: " + strings.Join(a.state.engine.Modes().Names(), ", "),
		})
		a.view = viewChat
		return nil
	}

	a.state.currentMode = name
	a.state.history = nil
	a.state.suggestions = nil
	a.view = viewChat

	greeting := cfg.Clarify
	if len(cfg.Greetings) > 0 {
		greeting = cfg.Greetings[len(a.state.session().Log())%len(cfg.Greetings)]
	}
	a.state.history = append(a.state.history, message{role: "assistant", content: greeting})
	return nil
}

func (a *App) runTurn(text string) tea.Cmd {
	modeName := a.state.currentMode
	st := a.state.session()
	eng := a.state.engine

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		resp, err := eng.Process(ctx, modeName, st, text)
		return turnDoneMsg{resp: resp, err: err, userText: text}
	}
}

// maybeTranslate chains a provider call after a translate-mode turn when the
// target language is known.
func (a *App) maybeTranslate(userText string, resp *engine.Response) tea.Cmd {
	if a.state.currentMode != "translate" || resp.Intent != "translate" {
		return nil
	}
	if a.state.provider == nil || !a.state.providerReady {
		return nil
	}

	slots := a.state.session().Slots
	target, ok := slots[extract.KeyTargetLang]
	if !ok || target == nil {
		return nil
	}
	code := translate.LanguageCode(target.Format())
	if code == "" {
		return nil
	}

	source := ""
	if src, ok := slots[extract.KeySourceLang]; ok && src != nil {
		source = translate.LanguageCode(src.Format())
	}

	req := &translate.Request{
		Text:       translatableText(userText),
		SourceLang: source,
		TargetLang: code,
	}
	provider := a.state.provider

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		result, err := provider.Translate(ctx, req)
		return translationDoneMsg{result: result, err: err}
	}
}

var (
	translatePrefix = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:translate|say)\s+`)
	translateSuffix = regexp.MustCompile(`(?i)(?:^|\s+)(?:to|into|in)\s+[a-z]+\s*$`)
)

// translatableText strips the instruction wrapper from input like
// "translate good morning to spanish", leaving the text itself.
func translatableText(input string) string {
	out := translatePrefix.ReplaceAllString(input, "")
	out = translateSuffix.ReplaceAllString(out, "")
	out = strings.Trim(out, `"' `)
	if out == "" {
		return input
	}
	return out
}

type turnDoneMsg struct {
	resp     *engine.Response
	err      error
	userText string
}

type translationDoneMsg struct {
	result *translate.Result
	err    error
}

type providerReadyMsg struct{}
type providerErrorMsg struct{ error }
type tickMsg struct{}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewChat:
		return a.renderChat()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
