package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/aide/internal/config"
	"github.com/sant0-9/aide/internal/engine"
	"github.com/sant0-9/aide/internal/logging"
	"github.com/sant0-9/aide/internal/mode"
	"github.com/sant0-9/aide/internal/session"
	"github.com/sant0-9/aide/internal/translate"
	"github.com/sant0-9/aide/internal/tui"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	// The TUI owns the terminal, so logging is file-only and best effort
	logger, err := logging.New(cfg.Log)
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	registry, err := mode.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, ok := registry.Get(cfg.Mode); !ok {
		cfg.Mode = registry.Names()[0]
	}

	store, cleanup, err := openStore(cfg)
	if err != nil {
		logger.Warn("store unavailable, continuing without persistence", zap.Error(err))
		store = nil
	}
	if cleanup != nil {
		defer cleanup()
	}

	provider, err := translate.NewProvider(cfg)
	if err != nil {
		logger.Warn("translation provider unavailable", zap.Error(err))
		provider = nil
	}

	eng := engine.New(registry, store, logger)

	app := tui.NewApp(cfg, eng, provider)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Store.Backend {
	case "", "memory":
		return session.NewMemoryStore(), nil, nil
	case "sqlite":
		path, err := cfg.StorePath()
		if err != nil {
			return nil, nil, err
		}
		store, err := session.NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
