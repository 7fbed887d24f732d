package template

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoadFS builds a Set from the *.md files in fsys. A file named
// "packing.md" registers the packing intent; "workout_plan@beginner.md"
// registers a beginner variant of workout_plan.
func LoadFS(fsys fs.FS) (*Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	set := NewSet()
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		text, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		intentTag, variant, _ := strings.Cut(name, "@")
		set.Add(intentTag, variant, strings.TrimSpace(string(text)))
	}

	if len(set.templates) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	return set, nil
}
