package core

import "github.com/go-gl/mathgl/mgl32"

// RID identifies a physics object inside the host's physics server.
type RID uint64

type RayQuery struct {
	From          mgl32.Vec3
	To            mgl32.Vec3
	CollisionMask uint32
	Exclude       []RID

	CollideWithBodies bool
	CollideWithAreas  bool
}

// Excludes reports whether rid is in the query's exclusion list.
func (q RayQuery) Excludes(rid RID) bool {
	for _, r := range q.Exclude {
		if r == rid {
			return true
		}
	}
	return false
}

type RayHit struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Collider RID
}

// PhysicsSpace answers ray queries against the host's physics world.
type PhysicsSpace interface {
	IntersectRay(q RayQuery) (RayHit, bool)
}

// Camera supplies pick rays for screen positions in viewport coordinates.
type Camera interface {
	ProjectRayOrigin(screen mgl32.Vec2) mgl32.Vec3
	ProjectRayNormal(screen mgl32.Vec2) mgl32.Vec3
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
}
