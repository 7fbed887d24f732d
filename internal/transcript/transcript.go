// Package transcript exports conversations as markdown files.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sant0-9/aide/internal/session"
)

// Render formats a conversation log as markdown
func Render(modeName string, entries []session.Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Conversation (%s mode)\n\n", modeName))
	b.WriteString(fmt.Sprintf("Exported %s\n\n", time.Now().Format("2006-01-02 15:04")))

	for _, e := range entries {
		switch e.Role {
		case "user":
			b.WriteString("**You:**\n\n")
		case "assistant":
			b.WriteString("**Assistant:**\n\n")
		default:
			b.WriteString(fmt.Sprintf("**%s:**\n\n", e.Role))
		}
		b.WriteString(e.Text)
		b.WriteString("\n\n---\n\n")
	}

	return b.String()
}

// Export writes the conversation to a timestamped markdown file in dir and
// returns the path. An empty dir means the current directory.
func Export(dir, modeName string, entries []session.Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("nothing to export")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("aide-%s-%s.md", modeName, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(Render(modeName, entries)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
