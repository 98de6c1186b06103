// Package keymap translates terminal input into calculator actions.
//
// [Lookup] handles live key presses (bubbletea msg.String() form) and
// [Scan] handles batch tokens for the eval command. Both produce
// [engine.Action] values; the engine itself never sees raw keys.
package keymap

import "github.com/san-kum/deskcalc/internal/engine"

// Lookup maps a key press to a calculator action. It covers digits, ".",
// enter/"=" for equals, backspace for clear, "+ - * x X /" for operators
// and "%" for percent. Keys outside the calculator vocabulary return
// false so the caller can treat them as UI keys.
func Lookup(key string) (engine.Action, bool) {
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return engine.Digit(rune(key[0])), true
	case ".":
		return engine.Dot(), true
	case "enter", "=":
		return engine.Equals(), true
	case "backspace":
		return engine.Clear(), true
	case "+":
		return engine.Operator(engine.OpAdd), true
	case "-":
		return engine.Operator(engine.OpSubtract), true
	case "*", "x", "X":
		return engine.Operator(engine.OpMultiply), true
	case "/":
		return engine.Operator(engine.OpDivide), true
	case "%":
		return engine.Percent(), true
	}
	return engine.Action{}, false
}

// Scan turns a token into the action sequence it spells, rune by rune. It
// accepts the same characters as Lookup plus the display glyphs − × ÷,
// "c"/"C" for clear and "~" for sign toggle ("-" always means
// subtraction). Unrecognized runes are skipped; the engine would ignore
// them anyway, skipping keeps traces readable.
func Scan(token string) []engine.Action {
	actions := make([]engine.Action, 0, len(token))
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			actions = append(actions, engine.Digit(r))
		case r == '.':
			actions = append(actions, engine.Dot())
		case r == '=':
			actions = append(actions, engine.Equals())
		case r == '+':
			actions = append(actions, engine.Operator(engine.OpAdd))
		case r == '-' || r == '−':
			actions = append(actions, engine.Operator(engine.OpSubtract))
		case r == '*' || r == 'x' || r == 'X' || r == '×':
			actions = append(actions, engine.Operator(engine.OpMultiply))
		case r == '/' || r == '÷':
			actions = append(actions, engine.Operator(engine.OpDivide))
		case r == '%':
			actions = append(actions, engine.Percent())
		case r == 'c' || r == 'C':
			actions = append(actions, engine.Clear())
		case r == '~':
			actions = append(actions, engine.ToggleSign())
		}
	}
	return actions
}

// Binding is one row of the keyboard reference table.
type Binding struct {
	Keys   string
	Action string
}

// Bindings returns the keyboard reference in display order.
func Bindings() []Binding {
	return []Binding{
		{"0-9", "enter digit"},
		{".", "decimal point"},
		{"+ - * x X /", "operator (* x X mean ×, / means ÷)"},
		{"enter =", "equals"},
		{"backspace", "clear"},
		{"%", "percent"},
	}
}
