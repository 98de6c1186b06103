// Package tui renders the calculator in the terminal.
//
// The bubbletea Model owns a single [engine.State] and re-renders after
// every transition; all calculator logic stays behind [engine.Reduce].
// Calculator keys go through [keymap.Lookup], everything else (cursor
// movement, theme cycling, help, quit) is handled here.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/deskcalc/internal/config"
	"github.com/san-kum/deskcalc/internal/engine"
	"github.com/san-kum/deskcalc/internal/keymap"
)

type button struct {
	label  string
	action engine.Action
	accent bool
}

// keypad mirrors a desk calculator face; the cursor walks this grid and
// space presses the highlighted button.
var keypad = [][]button{
	{{"C", engine.Clear(), true}, {"±", engine.ToggleSign(), true}, {"%", engine.Percent(), true}, {"÷", engine.Operator(engine.OpDivide), true}},
	{{"7", engine.Digit('7'), false}, {"8", engine.Digit('8'), false}, {"9", engine.Digit('9'), false}, {"×", engine.Operator(engine.OpMultiply), true}},
	{{"4", engine.Digit('4'), false}, {"5", engine.Digit('5'), false}, {"6", engine.Digit('6'), false}, {"−", engine.Operator(engine.OpSubtract), true}},
	{{"1", engine.Digit('1'), false}, {"2", engine.Digit('2'), false}, {"3", engine.Digit('3'), false}, {"+", engine.Operator(engine.OpAdd), true}},
	{{"0", engine.Digit('0'), false}, {".", engine.Dot(), false}, {"=", engine.Equals(), true}},
}

// Model is the presentation layer state. The calculator itself lives in
// calc; everything else is view context.
type Model struct {
	calc     engine.State
	cfg      *config.Config
	theme    Theme
	themeIdx int
	styles   styles
	row, col int
	width    int
	height   int
	showHelp bool
}

func NewModel(cfg *config.Config) Model {
	theme := GetTheme(cfg.Theme)
	idx := 0
	for i, t := range Themes {
		if t.Name == theme.Name {
			idx = i
		}
	}
	return Model{
		calc:     engine.InitialState(),
		cfg:      cfg,
		theme:    theme,
		themeIdx: idx,
		styles:   newStyles(theme),
		width:    80,
		height:   24,
	}
}

// Run starts the interactive calculator.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (Model, tea.Cmd) {
	// calculator keys win over UI keys
	if action, ok := keymap.Lookup(key); ok {
		m.calc = engine.Reduce(m.calc, action)
		return m, nil
	}

	switch key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(Themes)
		m.theme = Themes[m.themeIdx]
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	case "up", "k":
		if m.row > 0 {
			m.row--
			m.clampCol()
		}
	case "down", "j":
		if m.row < len(keypad)-1 {
			m.row++
			m.clampCol()
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < len(keypad[m.row])-1 {
			m.col++
		}
	case " ":
		m.calc = engine.Reduce(m.calc, keypad[m.row][m.col].action)
	}
	return m, nil
}

// clampCol keeps the cursor inside the current row; the bottom row is one
// button short.
func (m *Model) clampCol() {
	if m.col > len(keypad[m.row])-1 {
		m.col = len(keypad[m.row]) - 1
	}
}
