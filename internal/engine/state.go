package engine

const (
	// MaxDisplayLen caps the display string. Entry beyond the cap is
	// rejected, never trimmed.
	MaxDisplayLen = 18

	// ErrorDisplay is what the display shows for division by zero and
	// for non-finite results.
	ErrorDisplay = "Error"
)

// ErrorKind marks the sticky error mode. The zero value means no error.
type ErrorKind string

// ErrDivideByZero is the only sticky error. While set, Reduce ignores
// every action except clear.
const ErrDivideByZero ErrorKind = "divide_by_zero"

// State is one snapshot of the calculator. Reduce never mutates a State;
// each transition returns a fresh value and the caller discards the old
// one.
//
// Acc and Op describe a pending binary operation: Op is OpNone when
// nothing is pending, and Acc only carries meaning while Op is set.
// AwaitingNext means the next digit or dot starts a new operand instead
// of extending Display.
type State struct {
	Display      string
	Acc          float64
	Op           Op
	AwaitingNext bool
	Err          ErrorKind
}

// InitialState returns the power-on state: display "0", no pending
// operation, no error.
func InitialState() State {
	return State{Display: "0"}
}

// Pending reports whether a binary operation is outstanding.
func (s State) Pending() bool { return s.Op != OpNone }

// sanitize repairs a caller-supplied state so the display invariant holds
// before every transition. Zero values for the other fields already match
// InitialState.
func sanitize(s State) State {
	if s.Display == "" {
		s.Display = "0"
	}
	return s
}
