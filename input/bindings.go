package input

// Bindings maps semantic actions to key bindings (see ParseCombo).
type Bindings struct {
	HeightUp    string `toml:"height_up_key" yaml:"height_up_key"`
	HeightDown  string `toml:"height_down_key" yaml:"height_down_key"`
	ResetHeight string `toml:"reset_height_key" yaml:"reset_height_key"`

	MoveForward   string `toml:"move_forward_key" yaml:"move_forward_key"`
	MoveBackward  string `toml:"move_backward_key" yaml:"move_backward_key"`
	MoveLeft      string `toml:"move_left_key" yaml:"move_left_key"`
	MoveRight     string `toml:"move_right_key" yaml:"move_right_key"`
	ResetPosition string `toml:"reset_position_key" yaml:"reset_position_key"`

	RotateX       string `toml:"rotate_x_key" yaml:"rotate_x_key"`
	RotateY       string `toml:"rotate_y_key" yaml:"rotate_y_key"`
	RotateZ       string `toml:"rotate_z_key" yaml:"rotate_z_key"`
	ResetRotation string `toml:"reset_rotation_key" yaml:"reset_rotation_key"`

	ScaleUp    string `toml:"scale_up_key" yaml:"scale_up_key"`
	ScaleDown  string `toml:"scale_down_key" yaml:"scale_down_key"`
	ResetScale string `toml:"reset_scale_key" yaml:"reset_scale_key"`

	PositionMode string `toml:"position_mode_key" yaml:"position_mode_key"`
	RotationMode string `toml:"rotation_mode_key" yaml:"rotation_mode_key"`
	ScaleMode    string `toml:"scale_mode_key" yaml:"scale_mode_key"`

	ToggleMode string `toml:"toggle_mode_key" yaml:"toggle_mode_key"`
	Cancel     string `toml:"cancel_key" yaml:"cancel_key"`
	HalfStep   string `toml:"half_step_key" yaml:"half_step_key"`
}

func DefaultBindings() Bindings {
	return Bindings{
		HeightUp:    "Q",
		HeightDown:  "E",
		ResetHeight: "H",

		MoveForward:   "W",
		MoveBackward:  "S",
		MoveLeft:      "A",
		MoveRight:     "D",
		ResetPosition: "C",

		RotateX:       "X",
		RotateY:       "Y",
		RotateZ:       "Z",
		ResetRotation: "T",

		ScaleUp:    "PAGEUP",
		ScaleDown:  "PAGEDOWN",
		ResetScale: "HOME",

		PositionMode: "G",
		RotationMode: "R",
		ScaleMode:    "L",

		ToggleMode: "TAB",
		Cancel:     "ESCAPE",
		HalfStep:   "B",
	}
}

// WithDefaults fills empty bindings from DefaultBindings.
func (b Bindings) WithDefaults() Bindings {
	d := DefaultBindings()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&b.HeightUp, d.HeightUp)
	fill(&b.HeightDown, d.HeightDown)
	fill(&b.ResetHeight, d.ResetHeight)
	fill(&b.MoveForward, d.MoveForward)
	fill(&b.MoveBackward, d.MoveBackward)
	fill(&b.MoveLeft, d.MoveLeft)
	fill(&b.MoveRight, d.MoveRight)
	fill(&b.ResetPosition, d.ResetPosition)
	fill(&b.RotateX, d.RotateX)
	fill(&b.RotateY, d.RotateY)
	fill(&b.RotateZ, d.RotateZ)
	fill(&b.ResetRotation, d.ResetRotation)
	fill(&b.ScaleUp, d.ScaleUp)
	fill(&b.ScaleDown, d.ScaleDown)
	fill(&b.ResetScale, d.ResetScale)
	fill(&b.PositionMode, d.PositionMode)
	fill(&b.RotationMode, d.RotationMode)
	fill(&b.ScaleMode, d.ScaleMode)
	fill(&b.ToggleMode, d.ToggleMode)
	fill(&b.Cancel, d.Cancel)
	fill(&b.HalfStep, d.HalfStep)
	return b
}
