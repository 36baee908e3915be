package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a node's global position, Euler rotation (radians, YXZ order)
// and scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Quat returns the rotation as a quaternion.
func (t Transform) Quat() mgl32.Quat {
	return EulerToQuat(t.Rotation)
}

func (t Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Quat().Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// EulerToQuat converts YXZ Euler angles to a quaternion (R = Ry * Rx * Rz).
func EulerToQuat(e mgl32.Vec3) mgl32.Quat {
	return mgl32.AnglesToQuat(e.Y(), e.X(), e.Z(), mgl32.YXZ)
}

// QuatToEuler is the inverse of EulerToQuat.
func QuatToEuler(q mgl32.Quat) mgl32.Vec3 {
	m := q.Normalize().Mat4().Mat3()

	m12 := m.At(1, 2)
	switch {
	case m12 >= 1:
		return mgl32.Vec3{-math32.Pi / 2, -math32.Atan2(m.At(0, 1), m.At(0, 0)), 0}
	case m12 <= -1:
		return mgl32.Vec3{math32.Pi / 2, math32.Atan2(m.At(0, 1), m.At(0, 0)), 0}
	}

	// Pure X rotation: avoid the degenerate atan2(0, 0) path for y and z.
	if m.At(1, 0) == 0 && m.At(0, 1) == 0 && m.At(0, 2) == 0 && m.At(2, 0) == 0 && m.At(0, 0) == 1 {
		return mgl32.Vec3{math32.Atan2(-m12, m.At(1, 1)), 0, 0}
	}

	return mgl32.Vec3{
		math32.Asin(-m12),
		math32.Atan2(m.At(0, 2), m.At(2, 2)),
		math32.Atan2(m.At(1, 0), m.At(1, 1)),
	}
}

// AlignUpToNormal returns the Euler rotation that turns the +Y axis onto n.
func AlignUpToNormal(n mgl32.Vec3) mgl32.Vec3 {
	if n.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	q := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, n.Normalize())
	return QuatToEuler(q)
}
