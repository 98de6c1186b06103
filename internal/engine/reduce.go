package engine

import (
	"errors"
	"fmt"
	"strings"
)

var errDivideByZero = errors.New("divide by zero")

// Reduce applies one action to a state and returns the next state. It is
// total: malformed payloads and unknown action types return the state
// unchanged. While a sticky error is set, every action except clear is
// ignored.
func Reduce(s State, a Action) State {
	s = sanitize(s)

	if s.Err != "" && a.Type != ActionClear {
		return s
	}

	switch a.Type {
	case ActionClear:
		return InitialState()
	case ActionDigit:
		return reduceDigit(s, a.Payload)
	case ActionDot:
		return reduceDot(s)
	case ActionOperator:
		return reduceOperator(s, Op(a.Payload))
	case ActionEquals:
		return reduceEquals(s)
	case ActionToggleSign:
		return reduceToggleSign(s)
	case ActionPercent:
		s.Display = FormatValue(parseDisplay(s.Display) / 100)
		return s
	}
	return s
}

func reduceDigit(s State, digit string) State {
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return s
	}
	switch {
	case s.AwaitingNext:
		s.Display = digit
		s.AwaitingNext = false
	case s.Display == "0":
		s.Display = digit
	case len(s.Display) >= MaxDisplayLen:
		// entry is capped; extra digits are dropped
	default:
		s.Display += digit
	}
	return s
}

func reduceDot(s State) State {
	switch {
	case s.AwaitingNext:
		s.Display = "0."
		s.AwaitingNext = false
	case strings.Contains(s.Display, "."):
		// at most one decimal point
	case len(s.Display) >= MaxDisplayLen:
	default:
		s.Display += "."
	}
	return s
}

func reduceOperator(s State, op Op) State {
	if !op.valid() {
		return s
	}
	value := parseDisplay(s.Display)

	switch {
	case s.AwaitingNext && s.Pending():
		// operator pressed again with no digit in between: the new
		// press replaces the pending operator
		s.Op = op
	case s.Pending():
		// a previous operation is outstanding and a new operand has
		// been typed: fold it in, left to right, no precedence
		result, err := compute(s.Acc, value, s.Op)
		if err != nil {
			// Acc and Op keep their stale values here; only clear
			// leaves the error state, so they are never applied
			s.Display = ErrorDisplay
			s.Err = ErrDivideByZero
			return s
		}
		s.Acc = result
		s.Op = op
		s.Display = FormatValue(result)
		s.AwaitingNext = true
	default:
		// first operator press: display stays so the typed operand
		// remains visible until the next digit overwrites it
		s.Acc = value
		s.Op = op
		s.AwaitingNext = true
	}
	return s
}

func reduceEquals(s State) State {
	if !s.Pending() {
		return s
	}
	result, err := compute(s.Acc, parseDisplay(s.Display), s.Op)
	s.Acc = 0
	s.Op = OpNone
	if err != nil {
		s.Display = ErrorDisplay
		s.Err = ErrDivideByZero
		s.AwaitingNext = false
		return s
	}
	s.Display = FormatValue(result)
	s.AwaitingNext = true
	return s
}

func reduceToggleSign(s State) State {
	switch {
	case s.Display == "0":
	case strings.HasPrefix(s.Display, "-"):
		s.Display = s.Display[1:]
	case len(s.Display) < MaxDisplayLen:
		s.Display = "-" + s.Display
	}
	return s
}

// compute applies a binary operator. Division by zero reports
// errDivideByZero with a zero result; the value is never read on the
// error path.
func compute(a, b float64, op Op) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, errDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", op)
	}
}
