package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

// Model is the bubbletea state of the widget demo: a nav bar over either a
// column of input fields or the data table.
//
// The model is the caller side of the controlled inputs: values holds the
// authoritative text of every field and is echoed back to the widgets.
type Model struct {
	cfg *config.DemoConfig
	log *logger.Logger

	nav    *components.NavBar
	fields []*components.InputField
	values map[string]string
	focus  int
	table  *components.DataTable[components.Record]

	keys KeyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// NewModel builds the shell from cfg. A nil logger discards.
func NewModel(cfg *config.DemoConfig, log *logger.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		cfg:    cfg,
		log:    log,
		values: make(map[string]string, len(cfg.Fields)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}

	m.nav = components.NewNavBar().
		WithActive(cfg.StartView()).
		WithTheme(cfg.ThemeMode()).
		WithOnSelect(func(v components.NavView) {
			log.With("view", v.String()).Info("view changed")
		}).
		WithOnThemeToggle(func(mode components.ThemeMode) {
			log.With("theme", mode.String()).Info("theme changed")
		})

	for _, spec := range cfg.Fields {
		m.fields = append(m.fields, m.bindField(spec))
	}

	m.table = cfg.Table.NewTable().
		WithOnRowSelect(func(rows []components.Record) {
			log.With("selected", len(rows)).Info("selection changed")
		})

	if m.nav.Active() == components.NavViewTable {
		m.table.Focus()
	} else if len(m.fields) > 0 {
		m.fields[0].Focus()
	}

	return m
}

// bindField builds the widget for spec and wires it to the values map.
func (m *Model) bindField(spec config.FieldSpec) *components.InputField {
	field := spec.NewField()
	values := m.values
	log := m.log.With("field", spec.Label)
	label := spec.Label

	field.WithOnChange(func(v string) {
		values[label] = v
		field.SetValue(v)
		log.WithFields(map[string]any{
			"length": len(v),
			"error":  field.DisplayedError(),
		}).Debug("value changed")
	})
	return field
}

// Init starts the cursor blink and any loading spinners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.table.Init()}
	for _, f := range m.fields {
		cmds = append(cmds, f.Init())
	}
	if f := m.focusedField(); f != nil && f.Focused() {
		cmds = append(cmds, f.Focus())
	}
	return tea.Batch(cmds...)
}

// Value returns the current value of the field labelled label.
func (m Model) Value(label string) string {
	return m.values[label]
}

// ActiveView returns the view on screen.
func (m Model) ActiveView() components.NavView {
	return m.nav.Active()
}

// Theme returns the active theme mode.
func (m Model) Theme() components.ThemeMode {
	return m.nav.Theme()
}

// Fields returns the input widgets in display order.
func (m Model) Fields() []*components.InputField {
	return m.fields
}

// Table returns the table widget.
func (m Model) Table() *components.DataTable[components.Record] {
	return m.table
}

// FocusIndex returns the index of the focused field.
func (m Model) FocusIndex() int {
	return m.focus
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) focusedField() *components.InputField {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[m.focus]
}
