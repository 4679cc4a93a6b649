package cli

import (
	"fmt"
	"os"

	"github.com/mlipski/penplot/internal/config"
	"github.com/mlipski/penplot/internal/display"
	"github.com/mlipski/penplot/internal/driver"
	"github.com/mlipski/penplot/internal/figures"
	"github.com/mlipski/penplot/internal/history"
	"github.com/mlipski/penplot/internal/logging"
	"github.com/mlipski/penplot/internal/menu"
	"github.com/mlipski/penplot/internal/monitor"
)

const version = "0.1.0"

// Run is the main entry point. Returns exit code.
func Run(args []string) int {
	if len(args) < 2 {
		printUsage()
		return 0
	}

	flags, remaining := ParseFlags(args[1:])

	if flags.Version {
		fmt.Printf("penplot v%s\n", version)
		return 0
	}
	if flags.Help || len(remaining) == 0 {
		printUsage()
		return 0
	}

	command := remaining[0]
	cmdArgs := remaining[1:]

	switch command {
	case "draw":
		if len(cmdArgs) == 0 {
			display.PrintError("draw requires a figure name")
			return 1
		}
		return runDraw(cmdArgs[0], flags)

	case "menu":
		return runMenu(flags)

	case "figures":
		return runFigures(flags)

	case "history":
		store, err := lazyStore()
		if err != nil {
			display.PrintError(err.Error())
			return 1
		}
		if store != nil {
			defer store.Close()
		}
		if err := display.RunHistory(store, cmdArgs); err != nil {
			display.PrintError(err.Error())
			return 1
		}
		return 0

	case "config":
		cfg, err := config.Load()
		if err != nil {
			display.PrintError(err.Error())
			return 1
		}
		fmt.Printf("canvas.width: %d\n", cfg.Canvas.Width)
		fmt.Printf("canvas.height: %d\n", cfg.Canvas.Height)
		fmt.Printf("figures.dir: %s\n", cfg.Figures.Dir)
		fmt.Printf("history.db_path: %s\n", cfg.History.DBPath)
		fmt.Printf("display.color: %v\n", cfg.Display.Color)
		return 0
	}

	display.PrintError(fmt.Sprintf("unknown command %q", command))
	printUsage()
	return 1
}

// session wires one monitored plotting setup: a canvas plus a recording
// driver behind a compound, every target wrapped for usage monitoring.
type session struct {
	cfg      *config.Config
	registry *monitor.Registry
	canvas   *driver.Canvas
	recorder *driver.Recording
	plotter  driver.Driver
	figs     []figures.Figure
}

func newSession(flags Flags) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		if flags.Verbose {
			fmt.Fprintf(os.Stderr, "penplot: config error: %v, using defaults\n", err)
		}
		cfg = config.DefaultConfig()
	}

	figs, err := figures.LoadAll(cfg.Figures.Dir)
	if err != nil {
		return nil, fmt.Errorf("load figures: %w", err)
	}

	canvas, err := driver.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return nil, err
	}
	if flags.NoColor || !cfg.Display.Color {
		canvas.SetColor(false)
	}

	sink := logging.New(os.Stderr)
	registry := monitor.NewRegistry(sink)
	recorder := &driver.Recording{}

	plotter := driver.NewCompound(
		registry.Wrap(canvas, "canvas"),
		registry.Wrap(recorder, "recorder"),
	)

	return &session{
		cfg:      cfg,
		registry: registry,
		canvas:   canvas,
		recorder: recorder,
		plotter:  plotter,
		figs:     figs,
	}, nil
}

// snapshot persists current counters; monitoring keeps working without it.
func (s *session) snapshot(verbose bool) {
	store, err := lazyStore()
	if err != nil || store == nil {
		if err != nil && verbose {
			fmt.Fprintf(os.Stderr, "penplot: history disabled: %v\n", err)
		}
		return
	}
	defer store.Close()
	if err := store.Record(s.registry.Snapshot()); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "penplot: history error: %v\n", err)
	}
}

func runDraw(name string, flags Flags) int {
	s, err := newSession(flags)
	if err != nil {
		display.PrintError(err.Error())
		return 1
	}

	fig, ok := figures.Find(s.figs, name)
	if !ok {
		display.PrintError(fmt.Sprintf("unknown figure %q (try 'penplot figures')", name))
		return 1
	}

	if flags.DryRun {
		rec := &driver.Recording{}
		if err := fig.Run(rec); err != nil {
			display.PrintError(err.Error())
			return 1
		}
		for _, op := range rec.Ops() {
			fmt.Printf("%s (%d, %d)\n", op.Kind, op.X, op.Y)
		}
		return 0
	}

	if err := fig.Run(s.plotter); err != nil {
		display.PrintError(err.Error())
		return 1
	}

	fmt.Print(s.canvas.Render())
	s.registry.ReportAll()
	s.snapshot(flags.Verbose)
	return 0
}

func runMenu(flags Flags) int {
	s, err := newSession(flags)
	if err != nil {
		display.PrintError(err.Error())
		return 1
	}

	app := menu.NewApp(fmt.Sprintf("penplot v%s", version))
	s.registry.Attach(app)

	figMenu := app.AddMenu("Figures")
	for i := range s.figs {
		fig := &s.figs[i]
		figMenu.AddAction(fmt.Sprintf("Draw %s", fig.Name), func() {
			if err := fig.Run(s.plotter); err != nil {
				display.PrintError(err.Error())
				return
			}
			fmt.Print(s.canvas.Render())
		})
	}
	figMenu.AddAction("Show canvas", func() {
		fmt.Print(s.canvas.Render())
	})

	if err := app.Run(os.Stdin, os.Stdout); err != nil {
		display.PrintError(err.Error())
		return 1
	}

	s.snapshot(flags.Verbose)
	return 0
}

func runFigures(flags Flags) int {
	s, err := newSession(flags)
	if err != nil {
		display.PrintError(err.Error())
		return 1
	}
	for _, f := range s.figs {
		fmt.Printf("%s (%d steps)\n", f.Name, len(f.Steps))
	}
	return 0
}

func lazyStore() (*history.Store, error) {
	cfg, _ := config.Load()
	dbPath := history.DBPath("")
	if cfg != nil {
		dbPath = history.DBPath(cfg.History.DBPath)
	}
	return history.NewStore(dbPath)
}

func printUsage() {
	usage := `penplot v%s — monitored 2D plotting playground

Usage: penplot [flags] <command> [args...]

Commands:
  draw <figure>  Plot a figure on the monitored canvas
  menu           Interactive menu (figures, monitoring actions)
  figures        List available figures
  history        Show stored usage snapshots
  config         Show current configuration

Flags:
  -v             Verbose output
  --dry-run      Print figure steps instead of plotting
  --no-color     Disable styled output
  --version      Show version
  --help         Show this help

Examples:
  penplot draw house
  penplot menu
  penplot history --summary
`
	fmt.Printf(usage, version)
}

// Version returns the current version string.
func Version() string {
	return version
}
