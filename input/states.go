package input

import "github.com/go-gl/mathgl/mgl32"

// The derived states below are built fresh every frame from one Snapshot.
// Each constructor that reads directional or axis keys clears them while the
// right mouse button is held, since that button belongs to camera orbit.

// pressOrRepeat is an immediate press followed by auto-repeat after the
// grace period.
func pressOrRepeat(s *Snapshot, binding string, action ActionType) bool {
	if s.KeyWithModifiersEdgePressed(binding) {
		return true
	}
	return s.IsBindingHeldWithRepeat(binding, action)
}

// Modifiers are the increment modifiers held this frame.
type Modifiers struct {
	Reverse bool
	Large   bool
	Fine    bool
}

func readModifiers(s *Snapshot) Modifiers {
	return Modifiers{
		Reverse: s.ReverseHeld(),
		Large:   s.LargeHeld(),
		Fine:    s.FineHeld(),
	}
}

type PositionInputState struct {
	MousePosition   mgl32.Vec2
	MouseInViewport bool
	LeftClicked     bool
	RightHeld       bool

	HeightUp    bool
	HeightDown  bool
	ResetHeight bool

	MoveForward   bool
	MoveBackward  bool
	MoveLeft      bool
	MoveRight     bool
	ResetPosition bool

	HalfStep bool
	Modifiers
}

func NewPositionInputState(s *Snapshot, b Bindings) PositionInputState {
	st := PositionInputState{
		MousePosition:   s.MousePosition(),
		MouseInViewport: s.IsMouseInViewport(),
		LeftClicked:     s.IsMouseButtonJustPressed(MouseButtonLeft),
		RightHeld:       s.IsMouseButtonPressed(MouseButtonRight),
		HalfStep:        s.IsKeyWithModifiersPressed(b.HalfStep),
		Modifiers:       readModifiers(s),
	}
	if st.RightHeld {
		return st
	}
	st.HeightUp = pressOrRepeat(s, b.HeightUp, ActionHeight)
	st.HeightDown = pressOrRepeat(s, b.HeightDown, ActionHeight)
	st.ResetHeight = s.KeyWithModifiersEdgePressed(b.ResetHeight)
	st.MoveForward = pressOrRepeat(s, b.MoveForward, ActionPosition)
	st.MoveBackward = pressOrRepeat(s, b.MoveBackward, ActionPosition)
	st.MoveLeft = pressOrRepeat(s, b.MoveLeft, ActionPosition)
	st.MoveRight = pressOrRepeat(s, b.MoveRight, ActionPosition)
	st.ResetPosition = s.KeyWithModifiersEdgePressed(b.ResetPosition)
	return st
}

// HasMovement reports whether any manual XZ nudge was requested.
func (p PositionInputState) HasMovement() bool {
	return p.MoveForward || p.MoveBackward || p.MoveLeft || p.MoveRight
}

type RotationInputState struct {
	// X, Y and Z fire on auto-repeat while the axis key is held.
	X bool
	Y bool
	Z bool
	// Tapped flags fire once on release of a short press.
	XTapped bool
	YTapped bool
	ZTapped bool

	Reset bool
	Modifiers
}

func NewRotationInputState(s *Snapshot, b Bindings) RotationInputState {
	st := RotationInputState{Modifiers: readModifiers(s)}
	if s.IsMouseButtonPressed(MouseButtonRight) {
		return st
	}
	st.X = s.IsBindingHeldWithRepeat(b.RotateX, ActionRotation)
	st.Y = s.IsBindingHeldWithRepeat(b.RotateY, ActionRotation)
	st.Z = s.IsBindingHeldWithRepeat(b.RotateZ, ActionRotation)
	st.XTapped = s.IsKeyWithModifiersJustPressed(b.RotateX)
	st.YTapped = s.IsKeyWithModifiersJustPressed(b.RotateY)
	st.ZTapped = s.IsKeyWithModifiersJustPressed(b.RotateZ)
	st.Reset = s.KeyWithModifiersEdgePressed(b.ResetRotation)
	return st
}

// Steps returns how many increments to apply per axis this frame.
func (r RotationInputState) Steps() mgl32.Vec3 {
	count := func(held, tapped bool) float32 {
		if held || tapped {
			return 1
		}
		return 0
	}
	return mgl32.Vec3{count(r.X, r.XTapped), count(r.Y, r.YTapped), count(r.Z, r.ZTapped)}
}

type ScaleInputState struct {
	Up    bool
	Down  bool
	Reset bool
	Modifiers
}

func NewScaleInputState(s *Snapshot, b Bindings) ScaleInputState {
	st := ScaleInputState{Modifiers: readModifiers(s)}
	if s.IsMouseButtonPressed(MouseButtonRight) {
		return st
	}
	st.Up = pressOrRepeat(s, b.ScaleUp, ActionScale)
	st.Down = pressOrRepeat(s, b.ScaleDown, ActionScale)
	st.Reset = s.KeyWithModifiersEdgePressed(b.ResetScale)
	return st
}

// NumericInputState captures typed numeric entry for one frame. Digit is -1
// when no digit key went down.
type NumericInputState struct {
	Digit     int
	Decimal   bool
	Minus     bool
	Plus      bool
	Equals    bool
	Backspace bool
	Enter     bool
	Escape    bool
}

func NewNumericInputState(s *Snapshot) NumericInputState {
	st := NumericInputState{Digit: -1}
	for _, d := range digitKeys {
		if s.KeyEdgePressed(d.key) {
			st.Digit = d.value
			break
		}
	}
	st.Decimal = s.KeyEdgePressed(KeyPeriod) || s.KeyEdgePressed(KeyKPPeriod)
	st.Minus = s.KeyEdgePressed(KeyMinus) || s.KeyEdgePressed(KeyKPMinus)
	st.Plus = s.KeyEdgePressed(KeyKPPlus)
	st.Equals = s.KeyEdgePressed(KeyEqual)
	st.Backspace = s.KeyEdgePressed(KeyBackspace)
	st.Enter = s.KeyEdgePressed(KeyEnter) || s.KeyEdgePressed(KeyKPEnter)
	st.Escape = s.KeyEdgePressed(KeyEscape)
	return st
}

// Any reports whether any numeric-entry key fired.
func (n NumericInputState) Any() bool {
	return n.Digit >= 0 || n.Decimal || n.Minus || n.Plus || n.Equals || n.Backspace || n.Enter || n.Escape
}

type NavigationInputState struct {
	Toggle       bool
	Cancel       bool
	RightClicked bool
}

func NewNavigationInputState(s *Snapshot, b Bindings) NavigationInputState {
	return NavigationInputState{
		Toggle:       s.KeyWithModifiersEdgePressed(b.ToggleMode),
		Cancel:       s.KeyWithModifiersEdgePressed(b.Cancel),
		RightClicked: s.IsMouseButtonJustPressed(MouseButtonRight),
	}
}

type ControlModeInputState struct {
	PositionMode bool
	RotationMode bool
	ScaleMode    bool

	AxisX bool
	AxisY bool
	AxisZ bool
}

// NewControlModeInputState reads the mode keys and the axis taps. Axis taps
// are consumed from the snapshot; use States when a RotationInputState is
// needed in the same frame.
func NewControlModeInputState(s *Snapshot, b Bindings) ControlModeInputState {
	if s.IsMouseButtonPressed(MouseButtonRight) {
		return ControlModeInputState{}
	}
	st := controlModeKeys(s, b)
	st.AxisX = s.IsKeyWithModifiersJustPressed(b.RotateX)
	st.AxisY = s.IsKeyWithModifiersJustPressed(b.RotateY)
	st.AxisZ = s.IsKeyWithModifiersJustPressed(b.RotateZ)
	return st
}

func controlModeKeys(s *Snapshot, b Bindings) ControlModeInputState {
	return ControlModeInputState{
		PositionMode: s.KeyWithModifiersEdgePressed(b.PositionMode),
		RotationMode: s.KeyWithModifiersEdgePressed(b.RotationMode),
		ScaleMode:    s.KeyWithModifiersEdgePressed(b.ScaleMode),
	}
}

// States bundles every derived state for one frame. Axis taps are read once
// and shared between Rotation and ControlMode.
type States struct {
	Position    PositionInputState
	Rotation    RotationInputState
	Scale       ScaleInputState
	Numeric     NumericInputState
	Navigation  NavigationInputState
	ControlMode ControlModeInputState
}

func NewStates(s *Snapshot, b Bindings) States {
	b = b.WithDefaults()
	st := States{
		Position:   NewPositionInputState(s, b),
		Rotation:   NewRotationInputState(s, b),
		Scale:      NewScaleInputState(s, b),
		Numeric:    NewNumericInputState(s),
		Navigation: NewNavigationInputState(s, b),
	}
	if !s.IsMouseButtonPressed(MouseButtonRight) {
		st.ControlMode = controlModeKeys(s, b)
		st.ControlMode.AxisX = st.Rotation.XTapped
		st.ControlMode.AxisY = st.Rotation.YTapped
		st.ControlMode.AxisZ = st.Rotation.ZTapped
	}
	return st
}
