package driver

import "fmt"

// Driver is a 2D plotting device. SetPosition repositions the pen without
// drawing; OperateTo draws a straight line from the current pen position.
// Coordinates are unconstrained at this level; individual drivers may reject
// points they cannot plot, and such errors propagate to the caller unchanged.
type Driver interface {
	SetPosition(x, y int) error
	OperateTo(x, y int) error
	fmt.Stringer
}

// Noop accepts every command and does nothing. Useful as a demo target and
// as the baseline driver in tests.
type Noop struct{}

func (Noop) SetPosition(x, y int) error { return nil }
func (Noop) OperateTo(x, y int) error   { return nil }
func (Noop) String() string             { return "noop driver" }

// Op is a single recorded driver command.
type Op struct {
	Kind string // "move" or "draw"
	X, Y int
}

// Recording keeps an ordered log of every command it receives instead of
// plotting anything. Used for dry runs and tests.
type Recording struct {
	ops []Op
}

func (r *Recording) SetPosition(x, y int) error {
	r.ops = append(r.ops, Op{Kind: "move", X: x, Y: y})
	return nil
}

func (r *Recording) OperateTo(x, y int) error {
	r.ops = append(r.ops, Op{Kind: "draw", X: x, Y: y})
	return nil
}

// Ops returns the recorded commands in arrival order.
func (r *Recording) Ops() []Op {
	return r.ops
}

func (r *Recording) String() string { return "recording driver" }

// Compound fans each command out to several drivers in order. The first
// error stops the fan-out and is returned; earlier drivers keep the command.
type Compound struct {
	drivers []Driver
}

// NewCompound builds a compound driver over the given drivers.
func NewCompound(drivers ...Driver) *Compound {
	return &Compound{drivers: drivers}
}

func (c *Compound) SetPosition(x, y int) error {
	for _, d := range c.drivers {
		if err := d.SetPosition(x, y); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compound) OperateTo(x, y int) error {
	for _, d := range c.drivers {
		if err := d.OperateTo(x, y); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compound) String() string {
	return fmt.Sprintf("compound driver (%d targets)", len(c.drivers))
}
