package placer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/gekko3d/assetplacer/input"
)

func TestControlState_Update(t *testing.T) {
	var c ControlState
	assert.False(t, c.Update(input.ControlModeInputState{AxisX: true}), "axis taps need a mode")
	assert.Equal(t, "none", c.String())

	assert.True(t, c.Update(input.ControlModeInputState{PositionMode: true}))
	assert.Equal(t, ControlPosition, c.Mode)
	assert.Equal(t, AxisNone, c.Axis)

	c.Update(input.ControlModeInputState{AxisZ: true})
	assert.Equal(t, AxisZ, c.Axis)
	assert.Equal(t, "position Z", c.String())

	c.Update(input.ControlModeInputState{AxisZ: true})
	assert.Equal(t, AxisNone, c.Axis, "second tap clears the axis")

	c.Update(input.ControlModeInputState{AxisY: true})
	c.Update(input.ControlModeInputState{RotationMode: true})
	assert.Equal(t, ControlRotation, c.Mode)
	assert.Equal(t, AxisNone, c.Axis, "switching mode clears the axis")

	c.Update(input.ControlModeInputState{RotationMode: true})
	assert.False(t, c.Active(), "same mode key leaves")
}

func TestAxis(t *testing.T) {
	assert.Equal(t, -1, AxisNone.Index())
	assert.Equal(t, 2, AxisZ.Index())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, AxisY.Vector())
	assert.Equal(t, mgl32.Vec3{}, AxisNone.Vector())
}

func feed(n *NumericEntry, in input.NumericInputState) (float32, bool) {
	return n.Feed(in)
}

func digit(d int) input.NumericInputState { return input.NumericInputState{Digit: d} }

func key(mod func(*input.NumericInputState)) input.NumericInputState {
	in := input.NumericInputState{Digit: -1}
	mod(&in)
	return in
}

func TestNumericEntry(t *testing.T) {
	var n NumericEntry
	enter := key(func(in *input.NumericInputState) { in.Enter = true })

	_, ok := feed(&n, enter)
	assert.False(t, ok, "empty buffer does not submit")

	feed(&n, key(func(in *input.NumericInputState) { in.Decimal = true }))
	feed(&n, digit(5))
	assert.Equal(t, "0.5", n.Text())
	feed(&n, key(func(in *input.NumericInputState) { in.Decimal = true }))
	assert.Equal(t, "0.5", n.Text(), "one decimal point")

	feed(&n, key(func(in *input.NumericInputState) { in.Minus = true }))
	assert.Equal(t, "-0.5", n.Text())
	feed(&n, key(func(in *input.NumericInputState) { in.Equals = true }))
	assert.Equal(t, "0.5", n.Text())

	feed(&n, digit(7))
	feed(&n, key(func(in *input.NumericInputState) { in.Backspace = true }))
	assert.Equal(t, "0.5", n.Text())

	v, ok := feed(&n, enter)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-6)
	assert.False(t, n.Active())
}

func TestNumericEntry_NegativeAndDigitWithEnter(t *testing.T) {
	var n NumericEntry
	feed(&n, key(func(in *input.NumericInputState) { in.Minus = true }))
	assert.True(t, n.Active())
	in := digit(4)
	in.Enter = true
	v, ok := feed(&n, in)
	assert.True(t, ok)
	assert.Equal(t, float32(-4), v)

	feed(&n, key(func(in *input.NumericInputState) { in.Minus = true }))
	feed(&n, key(func(in *input.NumericInputState) { in.Backspace = true }))
	assert.False(t, n.Active(), "backspace on an empty buffer drops the sign")
}
