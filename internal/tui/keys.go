package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

// KeyMap holds the shell-level bindings. Table navigation keys live on the
// table itself.
type KeyMap struct {
	InputView     key.Binding
	TableView     key.Binding
	ToggleTheme   key.Binding
	ToggleLoading key.Binding
	Quit          key.Binding
	QuitTable     key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	Clear         key.Binding
	Reveal        key.Binding
}

// DefaultKeyMap returns the default shell bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		InputView: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "inputs"),
		),
		TableView: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "table"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		ToggleLoading: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "loading"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		QuitTable: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "show/hide"),
		),
	}
}

// viewHelp adapts a flat binding list to help.KeyMap.
type viewHelp []key.Binding

func (h viewHelp) ShortHelp() []key.Binding {
	return h
}

func (h viewHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

func (k KeyMap) helpFor(view components.NavView, table components.TableKeyMap) viewHelp {
	global := []key.Binding{k.InputView, k.TableView, k.ToggleTheme, k.ToggleLoading}
	if view == components.NavViewTable {
		return append(append(viewHelp{}, table.ShortHelp()...), append(global, k.QuitTable)...)
	}
	return append(viewHelp{k.NextField, k.Clear, k.Reveal}, append(global, k.Quit)...)
}
