package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/deskcalc/internal/config"
	"github.com/san-kum/deskcalc/internal/engine"
)

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = m.handleKey(k)
	}
	return m
}

func TestKeyboardDrivesCalculator(t *testing.T) {
	m := NewModel(config.DefaultConfig())
	m = press(m, "7", "+", "8", "enter")
	assert.Equal(t, "15", m.calc.Display)

	m = press(m, "backspace")
	assert.Equal(t, engine.InitialState(), m.calc)
}

func TestUpdateHandlesKeyMsg(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	m, ok := next.(Model)
	require.True(t, ok)
	assert.Equal(t, "9", m.calc.Display)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Equal(t, "9", m.calc.Display)
}

func TestCursorPressesButtons(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	// type 50, then walk to the % button on the top row and press it
	m = press(m, "5", "0")
	m = press(m, "right", "right", " ")
	assert.Equal(t, "0.5", m.calc.Display)
}

func TestCursorStaysInsideGrid(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	m = press(m, "up", "left", "left")
	assert.Equal(t, 0, m.row)
	assert.Equal(t, 0, m.col)

	m = press(m, "down", "down", "down", "down", "down", "right", "right", "right", "right")
	assert.Equal(t, len(keypad)-1, m.row)
	assert.Equal(t, len(keypad[m.row])-1, m.col)
}

func TestCursorClampsOnShortRow(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	// rightmost column, then down to the bottom row which is one short
	m = press(m, "right", "right", "right")
	assert.Equal(t, 3, m.col)
	m = press(m, "j", "j", "j", "j")
	assert.Equal(t, len(keypad[m.row])-1, m.col)
}

func TestThemeCycling(t *testing.T) {
	m := NewModel(config.DefaultConfig())
	require.Equal(t, "retro", m.theme.Name)

	m = press(m, "t")
	assert.Equal(t, "lcd", m.theme.Name)

	for i := 0; i < len(Themes)-1; i++ {
		m = press(m, "t")
	}
	assert.Equal(t, "retro", m.theme.Name)
}

func TestGetThemeFallsBack(t *testing.T) {
	assert.Equal(t, ThemeRetro, GetTheme("no-such-theme"))
	assert.Contains(t, ThemeNames(), "ocean")
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(config.DefaultConfig())
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		_, cmd := m.handleKey(key)
		require.NotNil(t, cmd, "key %q should quit", key)
	}
}

func TestViewShowsDisplayAndError(t *testing.T) {
	m := NewModel(config.DefaultConfig())
	assert.Contains(t, m.View(), "0")

	m = press(m, "5", "/", "0", "enter")
	assert.Contains(t, m.View(), engine.ErrorDisplay)
}

func TestViewWithoutKeypad(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keypad = false
	m := NewModel(cfg)

	assert.False(t, strings.Contains(m.View(), "±"))
}
