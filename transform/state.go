package transform

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the working transform of one mode session.
type State struct {
	// BasePosition is the raw resolved position (raycast hit or group
	// centroid) before height and manual offsets.
	BasePosition mgl32.Vec3
	// Position is the target pivot position before snapping.
	Position mgl32.Vec3

	HeightOffset float32
	ManualOffset mgl32.Vec3

	// Rotations are Euler radians (YXZ).
	ManualRotation  mgl32.Vec3
	SurfaceRotation mgl32.Vec3
	AlignWithNormal bool

	ScaleMultiplier float32
	NonUniformScale mgl32.Vec3

	Snap SnapConfig

	// Bounds are relative to Position; HasBounds enables edge snapping.
	Bounds    core.AABB
	HasBounds bool
}

func NewState() State {
	return State{
		ScaleMultiplier: 1,
		NonUniformScale: mgl32.Vec3{1, 1, 1},
		Snap:            DefaultSnapConfig(),
		Bounds:          core.EmptyAABB(),
	}
}

// CopyFromNode starts a State at a node's live global position and returns
// the node's transform as the original that Final composes onto. Rotation
// and scale offsets start at identity.
func CopyFromNode(n core.Node) (State, core.Transform) {
	st := NewState()
	if !core.IsUsable(n) {
		return st, core.NewTransform()
	}
	orig := core.TransformOf(n)
	st.BasePosition = orig.Position
	st.Position = orig.Position
	return st, orig
}

// UpdatePosition recomputes Position from a new base position.
func (s *State) UpdatePosition(base mgl32.Vec3) {
	s.BasePosition = base
	s.Position = base.Add(mgl32.Vec3{0, s.HeightOffset, 0}).Add(s.ManualOffset)
}

func (s *State) ResetHeight() {
	s.HeightOffset = 0
	s.UpdatePosition(s.BasePosition)
}

func (s *State) ResetPosition() {
	s.ManualOffset = mgl32.Vec3{}
	s.UpdatePosition(s.BasePosition)
}

func (s *State) ResetRotation() {
	s.ManualRotation = mgl32.Vec3{}
	s.SurfaceRotation = mgl32.Vec3{}
}

func (s *State) ResetScale() {
	s.ScaleMultiplier = 1
	s.NonUniformScale = mgl32.Vec3{1, 1, 1}
}

// ResetForNewPlacement clears per-placement offsets. Rotation and scale are
// kept when keepRotation is set.
func (s *State) ResetForNewPlacement(keepRotation bool) {
	s.HeightOffset = 0
	s.ManualOffset = mgl32.Vec3{}
	if !keepRotation {
		s.ResetRotation()
		s.ResetScale()
	}
	s.UpdatePosition(s.BasePosition)
}

// SetSurfaceNormal updates the surface-alignment rotation from a hit normal.
// It is cleared when alignment is off.
func (s *State) SetSurfaceNormal(n mgl32.Vec3) {
	if !s.AlignWithNormal {
		s.SurfaceRotation = mgl32.Vec3{}
		return
	}
	s.SurfaceRotation = core.AlignUpToNormal(n)
}

// ScaleVector is the per-axis multiplier applied to the original scale.
func (s State) ScaleVector() mgl32.Vec3 {
	m := s.ScaleMultiplier
	if m == 0 {
		m = 1
	}
	return s.NonUniformScale.Mul(m)
}

// SnappedPosition is Position after grid snapping.
func (s State) SnappedPosition() mgl32.Vec3 {
	if !s.Snap.Active() {
		return s.Position
	}
	if s.HasBounds {
		return s.Snap.SnapWithBounds(s.Position, s.Bounds)
	}
	return s.Snap.Snap(s.Position)
}

func (s State) FinalRotation(original mgl32.Vec3) mgl32.Vec3 {
	return original.Add(s.ManualRotation).Add(s.SurfaceRotation)
}

func (s State) FinalScale(original mgl32.Vec3) mgl32.Vec3 {
	v := s.ScaleVector()
	return mgl32.Vec3{original[0] * v[0], original[1] * v[1], original[2] * v[2]}
}

// Final composes the transform written to a node whose session-start
// transform is original.
func (s State) Final(original core.Transform) core.Transform {
	return core.Transform{
		Position: s.SnappedPosition(),
		Rotation: s.FinalRotation(original.Rotation),
		Scale:    s.FinalScale(original.Scale),
	}
}
