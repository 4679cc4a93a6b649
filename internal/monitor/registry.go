package monitor

import (
	"github.com/mlipski/penplot/internal/driver"
	"github.com/mlipski/penplot/internal/logging"
	"github.com/mlipski/penplot/internal/menu"
)

// Usage is a point-in-time reading of one monitored driver's counters.
type Usage struct {
	Label  string
	Travel float64
	Ink    float64
}

// Registry tracks every monitored driver in wrap order. Construct one at
// startup and thread it through; there is no package-level instance.
type Registry struct {
	sink    logging.Sink
	drivers []*UsageDriver
}

// NewRegistry creates an empty registry logging to sink.
func NewRegistry(sink logging.Sink) *Registry {
	return &Registry{sink: sink}
}

// Wrap decorates d with usage monitoring, remembers the decorator, and
// returns it. Callers use the returned driver everywhere in place of d.
func (r *Registry) Wrap(d driver.Driver, label string) driver.Driver {
	u := newUsageDriver(d, label, r.sink)
	r.drivers = append(r.drivers, u)
	return u
}

// ReportAll logs a usage summary for every monitored driver in wrap order,
// or a single notice when nothing is tracked.
func (r *Registry) ReportAll() {
	if len(r.drivers) == 0 {
		r.sink.Info("monitoring: no drivers registered for tracking")
		return
	}
	for _, u := range r.drivers {
		u.LogSummary()
	}
}

// ResetAll resets every monitored driver's counters, then logs once.
func (r *Registry) ResetAll() {
	for _, u := range r.drivers {
		u.Reset()
	}
	r.sink.Info("monitoring: counters reset")
}

// Snapshot returns current counter readings in wrap order.
func (r *Registry) Snapshot() []Usage {
	out := make([]Usage, 0, len(r.drivers))
	for _, u := range r.drivers {
		out = append(out, Usage{Label: u.Label(), Travel: u.Travel(), Ink: u.Ink()})
	}
	return out
}

// Len returns the number of monitored drivers.
func (r *Registry) Len() int { return len(r.drivers) }

// Attach registers the monitoring menu with the host application. Each call
// appends a fresh menu group, so call it once during startup.
func (r *Registry) Attach(app *menu.App) {
	m := app.AddMenu("Monitoring")
	m.AddAction("Report usage summary", r.ReportAll)
	m.AddAction("Reset usage counters", r.ResetAll)
}
