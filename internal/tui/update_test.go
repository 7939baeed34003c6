package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	"github.com/alexisbeaulieu97/widgetkit/internal/validation"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func TestUpdateWindowSize(t *testing.T) {
	m := NewModel(nil, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestTypingUpdatesControlledValue(t *testing.T) {
	m := NewModel(nil, nil)

	m, _ = press(t, m, runes("Ada")...)

	assert.Equal(t, "Ada", m.Value("Name"))
	assert.Equal(t, "Ada", m.Fields()[0].Value())
}

func TestTabMovesFocus(t *testing.T) {
	m := NewModel(nil, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.FocusIndex())
	assert.True(t, m.Fields()[1].Focused())
	assert.False(t, m.Fields()[0].Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.FocusIndex(), "focus wraps backwards")
}

func TestEmailFieldShowsValidation(t *testing.T) {
	m := NewModel(nil, nil)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = press(t, m, runes("bad")...)

	assert.Equal(t, "bad", m.Value("Email"))
	assert.Equal(t, validation.MsgInvalidEmail, m.Fields()[1].DisplayedError())
}

func TestClearKey(t *testing.T) {
	m := NewModel(nil, nil)
	m, _ = press(t, m, runes("abc")...)
	require.Equal(t, "abc", m.Value("Name"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Empty(t, m.Value("Name"))
	assert.Empty(t, m.Fields()[0].Value())
}

func TestRevealKey(t *testing.T) {
	m := NewModel(nil, nil)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 2, m.FocusIndex())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.Fields()[2].Revealed())
}

func TestSwitchViewsAndTableKeys(t *testing.T) {
	m := NewModel(nil, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF2})
	require.Equal(t, components.NavViewTable, m.ActiveView())
	assert.True(t, m.Table().Focused())
	assert.False(t, m.Fields()[0].Focused())

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
	)
	assert.Equal(t, "age", m.Table().SortKey())
	assert.Equal(t, []int{0}, m.Table().SelectedIndices())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, components.NavViewInput, m.ActiveView())
	assert.True(t, m.Fields()[0].Focused())
	assert.False(t, m.Table().Focused())
}

func TestToggleTheme(t *testing.T) {
	m := NewModel(nil, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, components.ThemeDark, m.Theme())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, components.ThemeLight, m.Theme())
}

func TestToggleLoadingPerView(t *testing.T) {
	m := NewModel(nil, nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.NotNil(t, cmd)
	for _, f := range m.Fields() {
		assert.True(t, f.Loading())
	}
	assert.False(t, m.Table().Loading())

	m, _ = press(t, m, runes("x")...)
	assert.Empty(t, m.Value("Name"), "loading inputs ignore keys")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF2}, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.True(t, m.Table().Loading())
	assert.Equal(t, components.TableStateLoading, m.Table().State())
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		quit bool
	}{
		{name: "ctrl+c", keys: []tea.KeyMsg{{Type: tea.KeyCtrlC}}, quit: true},
		{name: "esc", keys: []tea.KeyMsg{{Type: tea.KeyEsc}}, quit: true},
		{name: "q types on input view", keys: runes("q"), quit: false},
		{name: "q quits on table view", keys: append([]tea.KeyMsg{{Type: tea.KeyF2}}, runes("q")...), quit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, NewModel(nil, nil), tt.keys...)
			assert.Equal(t, tt.quit, m.Quitting())
		})
	}
}

func TestInteractionsAreLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	m := NewModel(config.Default(), log)
	m, _ = press(t, m, runes("a")...)
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF2}, tea.KeyMsg{Type: tea.KeyCtrlT})

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		messages = append(messages, entry["message"].(string))
	}
	assert.Equal(t, []string{"value changed", "view changed", "theme changed"}, messages)
}
