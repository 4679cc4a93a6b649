package figures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadUserFigures loads all YAML figure files from a directory. Invalid
// files are skipped with a warning so one bad figure never blocks the rest.
func LoadUserFigures(dir string) ([]Figure, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read figures dir: %w", err)
	}

	var out []Figure
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read figure %s: %w", entry.Name(), err)
		}
		f, err := ParseFigure(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "penplot: skipping invalid figure %s: %v\n", entry.Name(), err)
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

// LoadAll merges user figures (priority) with the built-ins by name.
func LoadAll(userDir string) ([]Figure, error) {
	user, err := LoadUserFigures(userDir)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]bool)
	var result []Figure
	for _, f := range user {
		byName[f.Name] = true
		result = append(result, f)
	}
	for _, f := range Builtins() {
		if !byName[f.Name] {
			result = append(result, f)
		}
	}
	return result, nil
}

// Find returns the figure with the given name.
func Find(figs []Figure, name string) (*Figure, bool) {
	for i := range figs {
		if figs[i].Name == name {
			return &figs[i], true
		}
	}
	return nil, false
}
