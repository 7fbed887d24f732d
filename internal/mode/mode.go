package mode

import (
	"fmt"
	"sort"

	"github.com/sant0-9/aide/internal/extract"
	"github.com/sant0-9/aide/internal/intent"
	"github.com/sant0-9/aide/internal/slot"
	"github.com/sant0-9/aide/internal/suggest"
	"github.com/sant0-9/aide/internal/template"
)

// Config is everything that distinguishes one assistant mode: pure data, no
// per-mode code. The engine runs every mode through the same pipeline.
type Config struct {
	Name        string
	Description string

	// Greetings are shown when the mode is activated
	Greetings []string

	// Clarify is returned for empty input, without touching session state
	Clarify string

	DefaultIntent string
	Rules         []intent.Rule
	Extractors    []extract.Extractor
	Templates     *template.Set

	// Variant picks a template variant from the current slots (e.g. fitness
	// level); nil means no variants
	Variant func(slots slot.Map) string

	Suggestions suggest.Pools

	// Disclaimer is appended to every response of advice-giving modes
	Disclaimer string
}

// Registry maps mode names to their configurations. Build one at startup and
// hand it to the engine; there is no global registry.
type Registry struct {
	modes map[string]*Config
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{modes: make(map[string]*Config)}
}

// Register validates cfg and adds it. Validation failures are configuration
// bugs, so registration refuses inconsistent modes outright.
func (r *Registry) Register(cfg *Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("mode has no name")
	}
	if _, exists := r.modes[cfg.Name]; exists {
		return fmt.Errorf("mode %s registered twice", cfg.Name)
	}
	if len(cfg.Rules) == 0 {
		return fmt.Errorf("mode %s has an empty rule table", cfg.Name)
	}
	if cfg.DefaultIntent == "" {
		return fmt.Errorf("mode %s has no default intent", cfg.Name)
	}
	if cfg.Templates == nil {
		return fmt.Errorf("mode %s has no templates", cfg.Name)
	}
	if cfg.Clarify == "" {
		return fmt.Errorf("mode %s has no clarify response", cfg.Name)
	}

	// Every intent the rule table can produce needs a template
	for _, tag := range intent.Tags(cfg.Rules, cfg.DefaultIntent) {
		if _, ok := cfg.Templates.Lookup(tag, ""); !ok {
			return fmt.Errorf("mode %s has no template for intent %s", cfg.Name, tag)
		}
	}

	// Templates may only reference slots this mode can actually fill
	allowed := make(map[string]bool, len(cfg.Extractors))
	for _, ex := range cfg.Extractors {
		allowed[ex.Key] = true
	}
	if err := cfg.Templates.Validate(allowed); err != nil {
		return fmt.Errorf("mode %s: %w", cfg.Name, err)
	}

	r.modes[cfg.Name] = cfg
	return nil
}

// Get returns the named mode, or false when it is not registered
func (r *Registry) Get(name string) (*Config, bool) {
	cfg, ok := r.modes[name]
	return cfg, ok
}

// Names lists registered modes in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.modes))
	for name := range r.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin builds a registry with every built-in mode registered
func Builtin() (*Registry, error) {
	reg := NewRegistry()
	for _, build := range []func() (*Config, error){
		Travel, Fitness, Recipe, Translate,
	} {
		cfg, err := build()
		if err != nil {
			return nil, err
		}
		if err := reg.Register(cfg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
