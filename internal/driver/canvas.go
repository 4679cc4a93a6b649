package driver

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	inkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Canvas plots onto a fixed-size character raster. The pen starts at (0, 0);
// OperateTo rasterizes a straight line from the current pen position using
// Bresenham's algorithm. Points outside the raster are rejected.
type Canvas struct {
	width, height int
	cells         [][]bool
	penX, penY    int
	color         bool
}

// NewCanvas creates an empty canvas. Dimensions must be positive.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: dimensions must be positive", width, height)
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Canvas{width: width, height: height, cells: cells, color: true}, nil
}

// SetColor toggles styled rendering. Plain output is used for non-TTY sinks.
func (c *Canvas) SetColor(on bool) { c.color = on }

func (c *Canvas) SetPosition(x, y int) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	c.penX, c.penY = x, y
	return nil
}

func (c *Canvas) OperateTo(x, y int) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	c.line(c.penX, c.penY, x, y)
	c.penX, c.penY = x, y
	return nil
}

func (c *Canvas) String() string {
	return fmt.Sprintf("canvas driver %dx%d", c.width, c.height)
}

func (c *Canvas) check(x, y int) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return fmt.Errorf("point (%d, %d) outside canvas %dx%d", x, y, c.width, c.height)
	}
	return nil
}

// line rasterizes from (x0,y0) to (x1,y1) inclusive. Both endpoints are
// already bounds-checked.
func (c *Canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.cells[y0][x0] = true
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Inked reports whether the cell at (x, y) has been drawn on.
func (c *Canvas) Inked(x, y int) bool {
	if c.check(x, y) != nil {
		return false
	}
	return c.cells[y][x]
}

// Render returns the canvas as a bordered text frame.
func (c *Canvas) Render() string {
	var b strings.Builder
	border := "+" + strings.Repeat("-", c.width) + "+"
	b.WriteString(c.style(border, borderStyle))
	b.WriteByte('\n')
	for y := 0; y < c.height; y++ {
		b.WriteString(c.style("|", borderStyle))
		for x := 0; x < c.width; x++ {
			if c.cells[y][x] {
				b.WriteString(c.style("#", inkStyle))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(c.style("|", borderStyle))
		b.WriteByte('\n')
	}
	b.WriteString(c.style(border, borderStyle))
	b.WriteByte('\n')
	return b.String()
}

func (c *Canvas) style(s string, st lipgloss.Style) string {
	if !c.color {
		return s
	}
	return st.Render(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
