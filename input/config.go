package input

import "time"

// ActionType selects the auto-repeat interval used for a held action key.
type ActionType int

const (
	ActionRotation ActionType = iota
	ActionScale
	ActionHeight
	ActionPosition
)

func (a ActionType) String() string {
	switch a {
	case ActionRotation:
		return "rotation"
	case ActionScale:
		return "scale"
	case ActionHeight:
		return "height"
	case ActionPosition:
		return "position"
	}
	return "unknown"
}

const (
	DefaultRepeatGrace    = 150 * time.Millisecond
	DefaultRepeatInterval = 100 * time.Millisecond
)

// Config is the part of the plugin settings the snapshot consumes each frame.
// Zero fields fall back to the built-in defaults.
type Config struct {
	RepeatGrace time.Duration

	RotationRepeat time.Duration
	ScaleRepeat    time.Duration
	HeightRepeat   time.Duration
	PositionRepeat time.Duration

	// Modifier bindings; any combo string accepted by ParseCombo.
	ReverseModifier string
	LargeModifier   string
	FineModifier    string
}

func DefaultConfig() Config {
	return Config{
		RepeatGrace:     DefaultRepeatGrace,
		RotationRepeat:  80 * time.Millisecond,
		ScaleRepeat:     80 * time.Millisecond,
		HeightRepeat:    50 * time.Millisecond,
		PositionRepeat:  50 * time.Millisecond,
		ReverseModifier: "SHIFT",
		LargeModifier:   "ALT",
		FineModifier:    "CTRL",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RepeatGrace <= 0 {
		c.RepeatGrace = d.RepeatGrace
	}
	if c.RotationRepeat <= 0 {
		c.RotationRepeat = d.RotationRepeat
	}
	if c.ScaleRepeat <= 0 {
		c.ScaleRepeat = d.ScaleRepeat
	}
	if c.HeightRepeat <= 0 {
		c.HeightRepeat = d.HeightRepeat
	}
	if c.PositionRepeat <= 0 {
		c.PositionRepeat = d.PositionRepeat
	}
	if c.ReverseModifier == "" {
		c.ReverseModifier = d.ReverseModifier
	}
	if c.LargeModifier == "" {
		c.LargeModifier = d.LargeModifier
	}
	if c.FineModifier == "" {
		c.FineModifier = d.FineModifier
	}
	return c
}

func (c Config) repeatDelay(a ActionType) time.Duration {
	switch a {
	case ActionRotation:
		return c.RotationRepeat
	case ActionScale:
		return c.ScaleRepeat
	case ActionHeight:
		return c.HeightRepeat
	case ActionPosition:
		return c.PositionRepeat
	}
	return DefaultRepeatInterval
}
