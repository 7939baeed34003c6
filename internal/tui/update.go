package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		// Spinners ignore ticks carrying another spinner's ID.
		cmds := []tea.Cmd{m.table.Update(msg)}
		for _, f := range m.fields {
			cmds = append(cmds, f.Update(msg))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.InputView):
		return m, m.switchView(components.NavViewInput)
	case key.Matches(msg, m.keys.TableView):
		return m, m.switchView(components.NavViewTable)
	case key.Matches(msg, m.keys.ToggleTheme):
		m.nav.ToggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.ToggleLoading):
		return m, m.toggleLoading()
	}

	if m.nav.Active() == components.NavViewTable {
		if key.Matches(msg, m.keys.QuitTable) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.table.Update(msg)
	}

	field := m.focusedField()
	if field == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Clear):
		field.Clear()
		return m, nil
	case key.Matches(msg, m.keys.Reveal):
		field.TogglePassword()
		return m, nil
	}

	return m, field.Update(msg)
}

func (m *Model) switchView(view components.NavView) tea.Cmd {
	if m.nav.Active() == view {
		return nil
	}
	m.nav.SetActive(view)

	if view == components.NavViewTable {
		if f := m.focusedField(); f != nil {
			f.Blur()
		}
		m.table.Focus()
		return nil
	}

	m.table.Blur()
	if f := m.focusedField(); f != nil {
		return f.Focus()
	}
	return nil
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.fields)
	if n == 0 {
		return nil
	}
	m.fields[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.fields[m.focus].Focus()
}

// toggleLoading flips the loading flag of every widget on the active view.
func (m *Model) toggleLoading() tea.Cmd {
	if m.nav.Active() == components.NavViewTable {
		m.table.WithLoading(!m.table.Loading())
		m.log.With("loading", m.table.Loading()).Info("table loading toggled")
		return m.table.Init()
	}

	if len(m.fields) == 0 {
		return nil
	}
	loading := !m.fields[0].Loading()
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for _, f := range m.fields {
		f.WithLoading(loading)
		cmds = append(cmds, f.Init())
	}
	m.log.With("loading", loading).Info("input loading toggled")
	return tea.Batch(cmds...)
}
