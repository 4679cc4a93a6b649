package figures

import (
	"fmt"

	"github.com/mlipski/penplot/internal/driver"
	"gopkg.in/yaml.v3"
)

// Figure is a named script of plotting steps.
type Figure struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one plotting command. Op is "move" or "draw".
type Step struct {
	Op string `yaml:"op"`
	X  int    `yaml:"x"`
	Y  int    `yaml:"y"`
}

// Run replays the figure through d, stopping at the first driver error.
func (f *Figure) Run(d driver.Driver) error {
	for i, s := range f.Steps {
		var err error
		switch s.Op {
		case "move":
			err = d.SetPosition(s.X, s.Y)
		case "draw":
			err = d.OperateTo(s.X, s.Y)
		default:
			err = fmt.Errorf("unknown op %q", s.Op)
		}
		if err != nil {
			return fmt.Errorf("%s step[%d]: %w", f.Name, i, err)
		}
	}
	return nil
}

// ParseFigure decodes a single YAML figure and validates it.
func ParseFigure(data []byte) (*Figure, error) {
	var f Figure
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Name == "" {
		return nil, fmt.Errorf("figure has no name")
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("figure %q has no steps", f.Name)
	}
	for i, s := range f.Steps {
		if s.Op != "move" && s.Op != "draw" {
			return nil, fmt.Errorf("figure %q step[%d]: unknown op %q", f.Name, i, s.Op)
		}
	}
	return &f, nil
}

// Builtins returns the figures shipped with the application.
func Builtins() []Figure {
	return []Figure{
		{
			Name: "rectangle",
			Steps: []Step{
				{Op: "move", X: 5, Y: 3},
				{Op: "draw", X: 25, Y: 3},
				{Op: "draw", X: 25, Y: 12},
				{Op: "draw", X: 5, Y: 12},
				{Op: "draw", X: 5, Y: 3},
			},
		},
		{
			Name: "triangle",
			Steps: []Step{
				{Op: "move", X: 15, Y: 2},
				{Op: "draw", X: 27, Y: 13},
				{Op: "draw", X: 3, Y: 13},
				{Op: "draw", X: 15, Y: 2},
			},
		},
		{
			Name: "house",
			Steps: []Step{
				{Op: "move", X: 8, Y: 13},
				{Op: "draw", X: 8, Y: 6},
				{Op: "draw", X: 16, Y: 1},
				{Op: "draw", X: 24, Y: 6},
				{Op: "draw", X: 24, Y: 13},
				{Op: "draw", X: 8, Y: 13},
				{Op: "move", X: 8, Y: 6},
				{Op: "draw", X: 24, Y: 6},
			},
		},
	}
}
