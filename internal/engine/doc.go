// Package engine implements the calculator state machine.
//
// The engine is a pure reducer: [Reduce] takes a [State] and one [Action]
// and returns the next state without mutating anything. [InitialState]
// builds the power-on state. The host owns state storage and re-renders
// after each transition:
//
//	s := engine.InitialState()
//	s = engine.Reduce(s, engine.Digit('7'))
//	s = engine.Reduce(s, engine.Operator(engine.OpAdd))
//	s = engine.Reduce(s, engine.Digit('8'))
//	s = engine.Reduce(s, engine.Equals())
//	fmt.Println(s.Display) // "15"
//
// Reduce is total: malformed or unrecognized actions return the state
// unchanged, and the same (state, action) pair always yields the same
// result. The engine performs no I/O and no locking; callers integrating
// it into a concurrent host must serialize actions per calculator.
package engine
