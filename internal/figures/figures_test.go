package figures

import (
	"errors"
	"strings"
	"testing"

	"github.com/mlipski/penplot/internal/driver"
)

func TestParseFigure(t *testing.T) {
	data := []byte(`
name: zigzag
steps:
  - op: move
    x: 0
    y: 0
  - op: draw
    x: 5
    y: 5
`)
	f, err := ParseFigure(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Name != "zigzag" {
		t.Errorf("name = %q", f.Name)
	}
	if len(f.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(f.Steps))
	}
	if f.Steps[1] != (Step{Op: "draw", X: 5, Y: 5}) {
		t.Errorf("step[1] = %+v", f.Steps[1])
	}
}

func TestParseFigureRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"no name":    "steps:\n  - op: move\n    x: 1\n    y: 1\n",
		"no steps":   "name: empty\n",
		"unknown op": "name: bad\nsteps:\n  - op: teleport\n    x: 1\n    y: 1\n",
	}
	for label, data := range cases {
		if _, err := ParseFigure([]byte(data)); err == nil {
			t.Errorf("%s: expected parse error", label)
		}
	}
}

func TestFigureRun(t *testing.T) {
	f := Figure{
		Name: "corner",
		Steps: []Step{
			{Op: "move", X: 1, Y: 1},
			{Op: "draw", X: 4, Y: 1},
			{Op: "draw", X: 4, Y: 4},
		},
	}

	rec := &driver.Recording{}
	if err := f.Run(rec); err != nil {
		t.Fatalf("run: %v", err)
	}

	ops := rec.Ops()
	if len(ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(ops))
	}
	if ops[0].Kind != "move" || ops[1].Kind != "draw" {
		t.Errorf("ops = %+v", ops)
	}
}

type haltingDriver struct {
	after int
	calls int
	err   error
}

func (h *haltingDriver) step() error {
	h.calls++
	if h.calls > h.after {
		return h.err
	}
	return nil
}

func (h *haltingDriver) SetPosition(x, y int) error { return h.step() }
func (h *haltingDriver) OperateTo(x, y int) error   { return h.step() }
func (h *haltingDriver) String() string             { return "halting driver" }

func TestFigureRunStopsAtDriverError(t *testing.T) {
	boom := errors.New("pen lifted")
	d := &haltingDriver{after: 1, err: boom}

	f, _ := Find(Builtins(), "rectangle")
	err := f.Run(d)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if !strings.Contains(err.Error(), "rectangle step[1]") {
		t.Errorf("err = %v, want step context", err)
	}
	if d.calls != 2 {
		t.Errorf("driver saw %d calls, want 2", d.calls)
	}
}

func TestBuiltinsStartWithMove(t *testing.T) {
	builtins := Builtins()
	if len(builtins) == 0 {
		t.Fatal("no builtin figures")
	}
	for _, f := range builtins {
		if f.Steps[0].Op != "move" {
			t.Errorf("figure %q starts with %q, want move", f.Name, f.Steps[0].Op)
		}
	}
}
