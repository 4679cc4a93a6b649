package figures

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFigure(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadUserFigures(t *testing.T) {
	dir := t.TempDir()
	writeFigure(t, dir, "star.yaml", `
name: star
steps:
  - op: move
    x: 5
    y: 0
  - op: draw
    x: 8
    y: 9
`)
	writeFigure(t, dir, "notes.txt", "not a figure")

	figs, err := LoadUserFigures(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(figs) != 1 {
		t.Fatalf("got %d figures, want 1", len(figs))
	}
	if figs[0].Name != "star" {
		t.Errorf("name = %q", figs[0].Name)
	}
}

func TestLoadUserFiguresSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFigure(t, dir, "broken.yaml", "name: broken\n") // no steps
	writeFigure(t, dir, "ok.yaml", `
name: ok
steps:
  - op: draw
    x: 1
    y: 1
`)

	figs, err := LoadUserFigures(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(figs) != 1 || figs[0].Name != "ok" {
		t.Errorf("figures = %+v, want just ok", figs)
	}
}

func TestLoadUserFiguresMissingDir(t *testing.T) {
	figs, err := LoadUserFigures(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if figs != nil {
		t.Errorf("figures = %+v, want nil", figs)
	}
}

func TestLoadAllUserOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeFigure(t, dir, "rectangle.yaml", `
name: rectangle
steps:
  - op: move
    x: 0
    y: 0
  - op: draw
    x: 1
    y: 0
`)

	figs, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}

	rect, ok := Find(figs, "rectangle")
	if !ok {
		t.Fatal("rectangle not found")
	}
	if len(rect.Steps) != 2 {
		t.Errorf("got %d steps, want the 2-step user override", len(rect.Steps))
	}

	// Builtins not overridden are still present.
	if _, ok := Find(figs, "house"); !ok {
		t.Error("builtin house missing")
	}
}

func TestFind(t *testing.T) {
	figs := Builtins()
	if _, ok := Find(figs, "triangle"); !ok {
		t.Error("triangle not found")
	}
	if _, ok := Find(figs, "dodecahedron"); ok {
		t.Error("found a figure that does not exist")
	}
}
