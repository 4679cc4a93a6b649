// Package monitor meters pen usage. A UsageDriver wraps any driver so every
// move and draw is counted and logged without the wrapped driver knowing;
// a Registry holds every wrapped driver for report-all / reset-all actions.
//
// The host dispatches all driver calls on one goroutine, so nothing here is
// synchronized.
package monitor

import (
	"fmt"
	"math"

	"github.com/mlipski/penplot/internal/driver"
	"github.com/mlipski/penplot/internal/logging"
)

// UsageDriver decorates a driver with travel and ink accounting. Travel
// accumulates the straight-line length of every command; ink only of draws,
// so ink never exceeds travel.
type UsageDriver struct {
	delegate driver.Driver
	sink     logging.Sink
	label    string

	lastX, lastY int
	travel       float64
	ink          float64
}

func newUsageDriver(delegate driver.Driver, label string, sink logging.Sink) *UsageDriver {
	return &UsageDriver{delegate: delegate, label: label, sink: sink}
}

// SetPosition counts the segment as travel, logs it, then delegates.
// Counters and log are committed before the delegate runs; a delegate error
// propagates unchanged and leaves the previous pen position in place.
func (u *UsageDriver) SetPosition(x, y int) error {
	u.register(x, y, false)
	if err := u.delegate.SetPosition(x, y); err != nil {
		return err
	}
	u.lastX, u.lastY = x, y
	return nil
}

// OperateTo counts the segment as both travel and ink, logs it, then
// delegates. Same ordering as SetPosition.
func (u *UsageDriver) OperateTo(x, y int) error {
	u.register(x, y, true)
	if err := u.delegate.OperateTo(x, y); err != nil {
		return err
	}
	u.lastX, u.lastY = x, y
	return nil
}

func (u *UsageDriver) register(x, y int, drawing bool) {
	segment := math.Hypot(float64(x-u.lastX), float64(y-u.lastY))
	u.travel += segment
	kind := "move"
	if drawing {
		u.ink += segment
		kind = "draw"
	}
	u.sink.Info(fmt.Sprintf("[%s] %s to (%d, %d); segment=%.2f; travel=%.2f; ink=%.2f",
		u.label, kind, x, y, segment, u.travel, u.ink))
}

// LogSummary emits the current totals. No state change.
func (u *UsageDriver) LogSummary() {
	u.sink.Info(fmt.Sprintf("[%s] usage summary -> travel=%.2f, ink=%.2f",
		u.label, u.travel, u.ink))
}

// Reset zeroes both accumulators and the pen position, then logs a
// confirmation. The wrapped driver is not touched.
func (u *UsageDriver) Reset() {
	u.travel = 0.0
	u.ink = 0.0
	u.lastX, u.lastY = 0, 0
	u.sink.Info(fmt.Sprintf("[%s] monitoring counters reset", u.label))
}

// Label returns the identifier used in this driver's log lines.
func (u *UsageDriver) Label() string { return u.label }

// Travel returns the cumulative straight-line distance of all commands.
func (u *UsageDriver) Travel() float64 { return u.travel }

// Ink returns the cumulative straight-line distance of draw commands.
func (u *UsageDriver) Ink() float64 { return u.ink }

func (u *UsageDriver) String() string {
	return fmt.Sprintf("%s [monitored]", u.delegate)
}
