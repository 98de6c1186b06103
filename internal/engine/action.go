package engine

// Op is a binary operator, identified by its display glyph.
type Op string

const (
	OpNone     Op = ""
	OpAdd      Op = "+"
	OpSubtract Op = "−"
	OpMultiply Op = "×"
	OpDivide   Op = "÷"
)

func (o Op) valid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// ActionType discriminates the calculator's input vocabulary.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionDigit
	ActionDot
	ActionOperator
	ActionEquals
	ActionClear
	ActionToggleSign
	ActionPercent
)

// Action is one discrete user input. Payload carries the digit for
// ActionDigit and the operator glyph for ActionOperator; the other types
// ignore it. Use the constructors below rather than building literals.
type Action struct {
	Type    ActionType
	Payload string
}

// Digit builds a digit-entry action for r, which should be '0' through
// '9'; anything else yields an action Reduce ignores.
func Digit(r rune) Action { return Action{Type: ActionDigit, Payload: string(r)} }

// Operator builds a pending-operator action.
func Operator(op Op) Action { return Action{Type: ActionOperator, Payload: string(op)} }

func Dot() Action        { return Action{Type: ActionDot} }
func Equals() Action     { return Action{Type: ActionEquals} }
func Clear() Action      { return Action{Type: ActionClear} }
func ToggleSign() Action { return Action{Type: ActionToggleSign} }
func Percent() Action    { return Action{Type: ActionPercent} }
