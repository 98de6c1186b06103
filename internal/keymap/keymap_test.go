package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/deskcalc/internal/engine"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key    string
		action engine.Action
	}{
		{"0", engine.Digit('0')},
		{"7", engine.Digit('7')},
		{".", engine.Dot()},
		{"enter", engine.Equals()},
		{"=", engine.Equals()},
		{"backspace", engine.Clear()},
		{"+", engine.Operator(engine.OpAdd)},
		{"-", engine.Operator(engine.OpSubtract)},
		{"*", engine.Operator(engine.OpMultiply)},
		{"x", engine.Operator(engine.OpMultiply)},
		{"X", engine.Operator(engine.OpMultiply)},
		{"/", engine.Operator(engine.OpDivide)},
		{"%", engine.Percent()},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, ok := Lookup(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestLookupUnmappedKeys(t *testing.T) {
	for _, key := range []string{"q", "t", "?", "esc", "up", "ctrl+c", " ", "a"} {
		_, ok := Lookup(key)
		assert.False(t, ok, "key %q should not map to a calculator action", key)
	}
}

func TestScan(t *testing.T) {
	actions := Scan("12+3=")
	require.Len(t, actions, 5)
	assert.Equal(t, engine.Digit('1'), actions[0])
	assert.Equal(t, engine.Digit('2'), actions[1])
	assert.Equal(t, engine.Operator(engine.OpAdd), actions[2])
	assert.Equal(t, engine.Digit('3'), actions[3])
	assert.Equal(t, engine.Equals(), actions[4])
}

func TestScanGlyphAliases(t *testing.T) {
	assert.Equal(t, Scan("2*3"), Scan("2×3"))
	assert.Equal(t, Scan("2x3"), Scan("2×3"))
	assert.Equal(t, Scan("8/2"), Scan("8÷2"))
	assert.Equal(t, Scan("8-2"), Scan("8−2"))
}

func TestScanSkipsUnknownRunes(t *testing.T) {
	assert.Equal(t, Scan("1+2"), Scan("1 + 2!"))
	assert.Empty(t, Scan("hello"))
}

func TestScanDrivesEngine(t *testing.T) {
	s := engine.InitialState()
	for _, a := range Scan("50%~c2+3×4=") {
		s = engine.Reduce(s, a)
	}
	// the clear wiped the percent work; what remains is (2+3)*4
	assert.Equal(t, "20", s.Display)
	assert.Empty(t, s.Err)
}
