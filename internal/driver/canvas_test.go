package driver

import (
	"strings"
	"testing"
)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("new canvas: %v", err)
	}
	c.SetColor(false)
	return c
}

func TestNewCanvasRejectsBadSize(t *testing.T) {
	if _, err := NewCanvas(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewCanvas(10, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestCanvasDrawsHorizontalLine(t *testing.T) {
	c := newTestCanvas(t, 10, 5)

	if err := c.SetPosition(1, 2); err != nil {
		t.Fatalf("set position: %v", err)
	}
	if err := c.OperateTo(8, 2); err != nil {
		t.Fatalf("operate to: %v", err)
	}

	for x := 1; x <= 8; x++ {
		if !c.Inked(x, 2) {
			t.Errorf("cell (%d, 2) not inked", x)
		}
	}
	if c.Inked(0, 2) || c.Inked(9, 2) {
		t.Error("ink outside the segment")
	}
}

func TestCanvasDrawsDiagonal(t *testing.T) {
	c := newTestCanvas(t, 6, 6)

	c.SetPosition(0, 0)
	if err := c.OperateTo(5, 5); err != nil {
		t.Fatalf("operate to: %v", err)
	}

	for i := 0; i < 6; i++ {
		if !c.Inked(i, i) {
			t.Errorf("cell (%d, %d) not inked", i, i)
		}
	}
}

func TestCanvasMoveDoesNotInk(t *testing.T) {
	c := newTestCanvas(t, 6, 6)

	c.SetPosition(0, 0)
	if err := c.SetPosition(5, 5); err != nil {
		t.Fatalf("set position: %v", err)
	}

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if c.Inked(x, y) {
				t.Fatalf("cell (%d, %d) inked by a move", x, y)
			}
		}
	}
}

func TestCanvasRejectsOutOfBounds(t *testing.T) {
	c := newTestCanvas(t, 6, 6)

	if err := c.SetPosition(6, 0); err == nil {
		t.Error("expected error for x out of bounds")
	}
	if err := c.OperateTo(0, -1); err == nil {
		t.Error("expected error for negative y")
	}

	// A rejected command leaves the pen where it was.
	c.SetPosition(2, 2)
	c.OperateTo(9, 9)
	if err := c.OperateTo(2, 4); err != nil {
		t.Fatalf("operate to: %v", err)
	}
	if !c.Inked(2, 3) {
		t.Error("pen did not draw from its pre-error position")
	}
}

func TestCanvasRender(t *testing.T) {
	c := newTestCanvas(t, 3, 2)
	c.SetPosition(0, 0)
	c.OperateTo(2, 0)

	got := c.Render()
	want := strings.Join([]string{
		"+---+",
		"|###|",
		"|   |",
		"+---+",
		"",
	}, "\n")
	if got != want {
		t.Errorf("render:\n%s\nwant:\n%s", got, want)
	}
}
