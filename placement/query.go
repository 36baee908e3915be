package placement

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// BuildRayQuery makes a bodies-only ray query from -> to.
func BuildRayQuery(from, to mgl32.Vec3, mask uint32, exclude []core.RID) core.RayQuery {
	return core.RayQuery{
		From:              from,
		To:                to,
		CollisionMask:     mask,
		Exclude:           exclude,
		CollideWithBodies: true,
		CollideWithAreas:  false,
	}
}

// ProjectToPlane intersects the ray from -> to with the horizontal plane at
// height. A parallel ray, or a plane behind the origin, yields the origin's
// XZ at the plane height.
func ProjectToPlane(from, to mgl32.Vec3, height float32) mgl32.Vec3 {
	dir := to.Sub(from)
	if math32.Abs(dir.Y()) < 1e-6 {
		return mgl32.Vec3{from.X(), height, from.Z()}
	}
	t := (height - from.Y()) / dir.Y()
	if t < 0 {
		return mgl32.Vec3{from.X(), height, from.Z()}
	}
	p := from.Add(dir.Mul(t))
	p[1] = height
	return p
}
