// Package menu is the host application's menu system: named groups of
// parameterless actions, selected one per input line.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Action is one invokable menu entry.
type Action struct {
	Label string
	Fn    func()
}

// Menu is a named group of actions.
type Menu struct {
	Title   string
	Actions []Action
}

// AddAction appends a named, parameterless action to the menu.
func (m *Menu) AddAction(label string, fn func()) {
	m.Actions = append(m.Actions, Action{Label: label, Fn: fn})
}

// App collects menus and runs the selection loop.
type App struct {
	Name  string
	menus []*Menu
}

// NewApp creates an application shell with the given display name.
func NewApp(name string) *App {
	return &App{Name: name}
}

// AddMenu appends a new named menu group and returns it for population.
func (a *App) AddMenu(title string) *Menu {
	m := &Menu{Title: title}
	a.menus = append(a.menus, m)
	return m
}

// Menus returns the registered menu groups in registration order.
func (a *App) Menus() []*Menu {
	return a.menus
}

// Run prints the menu, reads one selection per line from in, and invokes the
// matching action. "q" (or EOF) ends the loop. Unknown selections reprint
// the menu.
func (a *App) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	a.print(out)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		choice := strings.TrimSpace(scanner.Text())
		if choice == "" {
			continue
		}
		if choice == "q" || choice == "quit" {
			break
		}
		action, ok := a.lookup(choice)
		if !ok {
			fmt.Fprintf(out, "unknown selection %q\n", choice)
			a.print(out)
			continue
		}
		action.Fn()
	}
	return scanner.Err()
}

// lookup resolves a selection like "3" against the flattened action list.
func (a *App) lookup(choice string) (Action, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 {
		return Action{}, false
	}
	for _, m := range a.menus {
		if n <= len(m.Actions) {
			return m.Actions[n-1], true
		}
		n -= len(m.Actions)
	}
	return Action{}, false
}

func (a *App) print(out io.Writer) {
	fmt.Fprintf(out, "%s\n", a.Name)
	i := 0
	for _, m := range a.menus {
		fmt.Fprintf(out, "  %s\n", m.Title)
		for _, action := range m.Actions {
			i++
			fmt.Fprintf(out, "    %d) %s\n", i, action.Label)
		}
	}
	fmt.Fprintln(out, "  q) quit")
}
