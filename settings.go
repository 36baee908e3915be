package placer

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/gekko3d/assetplacer/input"
	"github.com/gekko3d/assetplacer/placement"
	"github.com/gekko3d/assetplacer/transform"
	"github.com/jinzhu/copier"
)

// Settings is the typed plugin configuration. Angles are degrees; times are
// seconds.
type Settings struct {
	PlacementStrategy string  `toml:"placement_strategy" yaml:"placement_strategy"`
	CollisionMask     uint32  `toml:"collision_mask" yaml:"collision_mask"`
	FallbackHeight    float32 `toml:"fallback_height" yaml:"fallback_height"`
	UseFallback       bool    `toml:"use_fallback" yaml:"use_fallback"`
	PlaneHeight       float32 `toml:"plane_height" yaml:"plane_height"`
	RayLength         float32 `toml:"ray_length" yaml:"ray_length"`
	AlignWithNormal   bool    `toml:"align_with_normal" yaml:"align_with_normal"`

	RotationIncrement      float32 `toml:"rotation_increment" yaml:"rotation_increment"`
	LargeRotationIncrement float32 `toml:"large_rotation_increment" yaml:"large_rotation_increment"`
	FineRotationIncrement  float32 `toml:"fine_rotation_increment" yaml:"fine_rotation_increment"`

	ScaleIncrement      float32 `toml:"scale_increment" yaml:"scale_increment"`
	LargeScaleIncrement float32 `toml:"large_scale_increment" yaml:"large_scale_increment"`
	FineScaleIncrement  float32 `toml:"fine_scale_increment" yaml:"fine_scale_increment"`
	MinScale            float32 `toml:"min_scale" yaml:"min_scale"`
	MaxScale            float32 `toml:"max_scale" yaml:"max_scale"`

	HeightStep      float32 `toml:"height_step" yaml:"height_step"`
	LargeHeightStep float32 `toml:"large_height_step" yaml:"large_height_step"`
	FineHeightStep  float32 `toml:"fine_height_step" yaml:"fine_height_step"`

	PositionStep      float32 `toml:"position_step" yaml:"position_step"`
	LargePositionStep float32 `toml:"large_position_step" yaml:"large_position_step"`
	FinePositionStep  float32 `toml:"fine_position_step" yaml:"fine_position_step"`

	SnapEnabled  bool    `toml:"snap_enabled" yaml:"snap_enabled"`
	SnapStep     float32 `toml:"snap_step" yaml:"snap_step"`
	SnapOffsetX  float32 `toml:"snap_offset_x" yaml:"snap_offset_x"`
	SnapOffsetZ  float32 `toml:"snap_offset_z" yaml:"snap_offset_z"`
	SnapYEnabled bool    `toml:"snap_y_enabled" yaml:"snap_y_enabled"`
	SnapYStep    float32 `toml:"snap_y_step" yaml:"snap_y_step"`
	SnapYOffset  float32 `toml:"snap_y_offset" yaml:"snap_y_offset"`
	SnapCenterX  bool    `toml:"snap_center_x" yaml:"snap_center_x"`
	SnapCenterY  bool    `toml:"snap_center_y" yaml:"snap_center_y"`
	SnapCenterZ  bool    `toml:"snap_center_z" yaml:"snap_center_z"`
	// SnapToBounds uses node bounds so edge-mode axes align box edges.
	SnapToBounds bool `toml:"snap_to_bounds" yaml:"snap_to_bounds"`
	ShowGrid     bool `toml:"show_grid" yaml:"show_grid"`

	SmoothTransforms bool    `toml:"smooth_transforms" yaml:"smooth_transforms"`
	SmoothingSpeed   float32 `toml:"smoothing_speed" yaml:"smoothing_speed"`

	KeepRotationBetweenPlacements bool `toml:"keep_rotation_between_placements" yaml:"keep_rotation_between_placements"`
	ResetHeightOnExit             bool `toml:"reset_height_on_exit" yaml:"reset_height_on_exit"`
	ResetScaleOnExit              bool `toml:"reset_scale_on_exit" yaml:"reset_scale_on_exit"`
	ResetRotationOnExit           bool `toml:"reset_rotation_on_exit" yaml:"reset_rotation_on_exit"`
	RightClickCancels             bool `toml:"right_click_cancels" yaml:"right_click_cancels"`
	FocusGrabFrames               int  `toml:"focus_grab_frames" yaml:"focus_grab_frames"`

	KeyRepeatGrace      float32 `toml:"key_repeat_grace" yaml:"key_repeat_grace"`
	RotationRepeatDelay float32 `toml:"rotation_repeat_delay" yaml:"rotation_repeat_delay"`
	ScaleRepeatDelay    float32 `toml:"scale_repeat_delay" yaml:"scale_repeat_delay"`
	HeightRepeatDelay   float32 `toml:"height_repeat_delay" yaml:"height_repeat_delay"`
	PositionRepeatDelay float32 `toml:"position_repeat_delay" yaml:"position_repeat_delay"`

	ReverseModifier string `toml:"reverse_modifier_key" yaml:"reverse_modifier_key"`
	LargeModifier   string `toml:"large_increment_modifier_key" yaml:"large_increment_modifier_key"`
	FineModifier    string `toml:"fine_increment_modifier_key" yaml:"fine_increment_modifier_key"`

	Keys input.Bindings `toml:"keys" yaml:"keys"`
}

func DefaultSettings() Settings {
	return Settings{
		PlacementStrategy: placement.TypeCollision.String(),
		CollisionMask:     placement.DefaultCollisionMask,
		UseFallback:       true,
		RayLength:         placement.DefaultRayLength,

		RotationIncrement:      15,
		LargeRotationIncrement: 90,
		FineRotationIncrement:  5,

		ScaleIncrement:      0.1,
		LargeScaleIncrement: 0.5,
		FineScaleIncrement:  0.01,
		MinScale:            0.01,
		MaxScale:            100,

		HeightStep:      0.1,
		LargeHeightStep: 1,
		FineHeightStep:  0.01,

		PositionStep:      0.1,
		LargePositionStep: 1,
		FinePositionStep:  0.01,

		SnapStep:    1,
		SnapYStep:   1,
		SnapCenterX: true,
		SnapCenterY: true,
		SnapCenterZ: true,
		ShowGrid:    true,

		SmoothingSpeed: transform.DefaultSmoothingSpeed,

		FocusGrabFrames: 3,

		KeyRepeatGrace:      0.15,
		RotationRepeatDelay: 0.08,
		ScaleRepeatDelay:    0.08,
		HeightRepeatDelay:   0.05,
		PositionRepeatDelay: 0.05,

		ReverseModifier: "SHIFT",
		LargeModifier:   "ALT",
		FineModifier:    "CTRL",

		Keys: input.DefaultBindings(),
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	var out Settings
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		return s
	}
	return out
}

func seconds(v float32) time.Duration {
	if v <= 0 {
		return 0
	}
	return time.Duration(math32.Round(v*1e6)) * time.Microsecond
}

// InputConfig is the snapshot configuration. Zero values fall back to the
// snapshot's own defaults.
func (s Settings) InputConfig() input.Config {
	return input.Config{
		RepeatGrace:     seconds(s.KeyRepeatGrace),
		RotationRepeat:  seconds(s.RotationRepeatDelay),
		ScaleRepeat:     seconds(s.ScaleRepeatDelay),
		HeightRepeat:    seconds(s.HeightRepeatDelay),
		PositionRepeat:  seconds(s.PositionRepeatDelay),
		ReverseModifier: s.ReverseModifier,
		LargeModifier:   s.LargeModifier,
		FineModifier:    s.FineModifier,
	}
}

func (s Settings) Bindings() input.Bindings {
	return s.Keys.WithDefaults()
}

func (s Settings) PlacementConfig() placement.Config {
	return placement.Config{
		Strategy:       s.PlacementStrategy,
		CollisionMask:  s.CollisionMask,
		FallbackHeight: s.FallbackHeight,
		UseFallback:    s.UseFallback,
		PlaneHeight:    s.PlaneHeight,
		RayLength:      s.RayLength,
	}
}

func (s Settings) SnapConfig(halfStep bool) transform.SnapConfig {
	return transform.SnapConfig{
		Enabled:  s.SnapEnabled,
		Step:     s.SnapStep,
		OffsetX:  s.SnapOffsetX,
		OffsetZ:  s.SnapOffsetZ,
		YEnabled: s.SnapYEnabled,
		YStep:    s.SnapYStep,
		YOffset:  s.SnapYOffset,
		HalfStep: halfStep,
		CenterX:  s.SnapCenterX,
		CenterY:  s.SnapCenterY,
		CenterZ:  s.SnapCenterZ,
	}
}

// GridVisible reports whether the grid overlay should be drawn.
func (s Settings) GridVisible() bool {
	return s.ShowGrid && s.SnapEnabled
}

func (s Settings) rayLength() float32 {
	if s.RayLength <= 0 {
		return placement.DefaultRayLength
	}
	return s.RayLength
}

// pick chooses the large, fine or normal value for the held modifiers.
// Large wins over fine.
func pick(m input.Modifiers, normal, large, fine float32) float32 {
	switch {
	case m.Large:
		return large
	case m.Fine:
		return fine
	}
	return normal
}

func (s Settings) rotationStep(m input.Modifiers) float32 {
	return pick(m, s.RotationIncrement, s.LargeRotationIncrement, s.FineRotationIncrement)
}

func (s Settings) scaleStep(m input.Modifiers) float32 {
	return pick(m, s.ScaleIncrement, s.LargeScaleIncrement, s.FineScaleIncrement)
}

func (s Settings) heightStep(m input.Modifiers) float32 {
	return pick(m, s.HeightStep, s.LargeHeightStep, s.FineHeightStep)
}

func (s Settings) positionStep(m input.Modifiers) float32 {
	return pick(m, s.PositionStep, s.LargePositionStep, s.FinePositionStep)
}

func (s Settings) clampScale(v float32) float32 {
	lo, hi := s.MinScale, s.MaxScale
	if lo <= 0 {
		lo = 0.01
	}
	if hi < lo {
		hi = math32.Inf(1)
	}
	return math32.Max(lo, math32.Min(hi, v))
}
