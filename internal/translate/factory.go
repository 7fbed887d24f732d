package translate

import (
	"fmt"

	"github.com/sant0-9/aide/internal/config"
)

// NewProvider creates a provider from config
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Translation.Provider {
	case "google", "":
		return NewGoogleProvider(), nil
	case "azure":
		return NewAzureProvider(), nil
	case "echo":
		return NewEchoProvider(), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Translation.Provider)
	}
}
