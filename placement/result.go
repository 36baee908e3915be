package placement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the default surface normal.
var Up = mgl32.Vec3{0, 1, 0}

// Result is one resolved placement position.
type Result struct {
	Position     mgl32.Vec3
	Normal       mgl32.Vec3
	HitCollision bool
	Distance     float32
}

func NewResult(pos, normal mgl32.Vec3, hit bool, distance float32) Result {
	if normal.Len() < 1e-6 {
		normal = Up
	}
	return Result{Position: pos, Normal: normal, HitCollision: hit, Distance: distance}
}

// InvalidResult is returned when nothing was hit and no fallback applies.
// Its position carries +Inf in X as the sentinel.
func InvalidResult() Result {
	return Result{
		Position: mgl32.Vec3{math32.Inf(1), 0, 0},
		Normal:   Up,
		Distance: math32.Inf(1),
	}
}

// Valid reports whether r holds a usable position.
func (r Result) Valid() bool {
	return !math32.IsInf(r.Position.X(), 0) && !math32.IsNaN(r.Position.X())
}
