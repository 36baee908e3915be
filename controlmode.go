package placer

import (
	"github.com/gekko3d/assetplacer/input"
	"github.com/go-gl/mathgl/mgl32"
)

// ControlMode constrains which transform component the wheel and numeric
// entry act on.
type ControlMode int

const (
	ControlNone ControlMode = iota
	ControlPosition
	ControlRotation
	ControlScale
)

func (m ControlMode) String() string {
	switch m {
	case ControlPosition:
		return "position"
	case ControlRotation:
		return "rotation"
	case ControlScale:
		return "scale"
	}
	return "none"
}

type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return ""
}

// Index is the vector component of a, or -1.
func (a Axis) Index() int {
	return int(a) - 1
}

func (a Axis) Vector() mgl32.Vec3 {
	var v mgl32.Vec3
	if i := a.Index(); i >= 0 {
		v[i] = 1
	}
	return v
}

// ControlState is the modal control machine: G/R/L enter or leave a control
// mode, X/Y/Z taps set or clear the axis constraint while one is active.
type ControlState struct {
	Mode ControlMode
	Axis Axis
}

func (c ControlState) Active() bool { return c.Mode != ControlNone }

func (c *ControlState) Reset() {
	c.Mode = ControlNone
	c.Axis = AxisNone
}

func (c *ControlState) toggleMode(m ControlMode) {
	if c.Mode == m {
		c.Reset()
		return
	}
	c.Mode = m
	c.Axis = AxisNone
}

func (c *ControlState) toggleAxis(a Axis) {
	if c.Axis == a {
		c.Axis = AxisNone
		return
	}
	c.Axis = a
}

// Update applies one frame of control-mode input and reports whether the
// state changed.
func (c *ControlState) Update(in input.ControlModeInputState) bool {
	before := *c
	switch {
	case in.PositionMode:
		c.toggleMode(ControlPosition)
	case in.RotationMode:
		c.toggleMode(ControlRotation)
	case in.ScaleMode:
		c.toggleMode(ControlScale)
	}
	if c.Active() {
		switch {
		case in.AxisX:
			c.toggleAxis(AxisX)
		case in.AxisY:
			c.toggleAxis(AxisY)
		case in.AxisZ:
			c.toggleAxis(AxisZ)
		}
	}
	return *c != before
}

func (c ControlState) String() string {
	if !c.Active() {
		return "none"
	}
	if c.Axis == AxisNone {
		return c.Mode.String()
	}
	return c.Mode.String() + " " + c.Axis.String()
}
