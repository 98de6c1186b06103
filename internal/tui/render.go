package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/deskcalc/internal/engine"
)

type styles struct {
	frame    lipgloss.Style
	display  lipgloss.Style
	pending  lipgloss.Style
	errText  lipgloss.Style
	button   lipgloss.Style
	operator lipgloss.Style
	active   lipgloss.Style
	hint     lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(th.Frame).Padding(0, 1),
		display:  lipgloss.NewStyle().Foreground(th.Display).Bold(true),
		pending:  lipgloss.NewStyle().Foreground(th.Operator),
		errText:  lipgloss.NewStyle().Foreground(th.Error).Bold(true),
		button:   lipgloss.NewStyle().Foreground(th.Button),
		operator: lipgloss.NewStyle().Foreground(th.Operator).Bold(true),
		active:   lipgloss.NewStyle().Foreground(th.Active).Bold(true).Reverse(true),
		hint:     lipgloss.NewStyle().Foreground(th.Muted),
	}
}

func (m Model) View() string {
	sections := []string{m.renderDisplay()}
	if m.cfg.Keypad {
		sections = append(sections, m.renderKeypad())
	}
	sections = append(sections, m.renderHelp())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) renderDisplay() string {
	// pending row shows the stored operand and operator while an
	// operation is outstanding
	pending := " "
	if m.calc.Pending() {
		pending = fmt.Sprintf("%s %s", engine.FormatValue(m.calc.Acc), m.calc.Op)
	}
	pending = fmt.Sprintf("%*s", engine.MaxDisplayLen, pending)

	display := fmt.Sprintf("%*s", engine.MaxDisplayLen, m.calc.Display)
	ds := m.styles.display
	if m.calc.Err != "" {
		ds = m.styles.errText
	}

	return m.styles.frame.Render(m.styles.pending.Render(pending) + "\n" + ds.Render(display))
}

func (m Model) renderKeypad() string {
	var rows []string
	for r, row := range keypad {
		var cells []string
		for c, b := range row {
			st := m.styles.button
			if b.accent {
				st = m.styles.operator
			}
			if r == m.row && c == m.col {
				st = m.styles.active
			}
			cells = append(cells, st.Render(fmt.Sprintf(" %s ", b.label)))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return m.styles.frame.Render(strings.Join(rows, "\n"))
}

func (m Model) renderHelp() string {
	if m.cfg.CompactHelp && !m.showHelp {
		return m.styles.hint.Render("? help · q quit")
	}
	lines := []string{
		"type digits and operators, enter for equals, backspace to clear",
		"arrows/hjkl move · space press · t theme · ? help · q quit",
	}
	if m.showHelp {
		lines = append(lines,
			"* x X mean ×, / means ÷, % divides the entry by 100",
			fmt.Sprintf("theme: %s", m.theme.Name),
		)
	}
	return m.styles.hint.Render(strings.Join(lines, "\n"))
}
