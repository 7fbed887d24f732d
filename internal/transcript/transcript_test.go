package transcript

import (
	"os"
	"strings"
	"testing"

	"github.com/sant0-9/aide/internal/session"
)

func TestRender(t *testing.T) {
	entries := []session.Entry{
		{Role: "user", Text: "a trip to Tokyo"},
		{Role: "assistant", Text: "Here is your itinerary."},
	}

	out := Render("travel", entries)

	for _, want := range []string{
		"# Conversation (travel mode)",
		"**You:**",
		"a trip to Tokyo",
		"**Assistant:**",
		"Here is your itinerary.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	entries := []session.Entry{{Role: "user", Text: "hello"}}

	path, err := Export(dir, "travel", entries)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("export path %q outside %q", path, dir)
	}
	if !strings.HasSuffix(path, ".md") {
		t.Errorf("export path %q is not markdown", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Error("exported file missing the conversation")
	}
}

func TestExportEmpty(t *testing.T) {
	if _, err := Export(t.TempDir(), "travel", nil); err == nil {
		t.Error("empty log exported without error")
	}
}
