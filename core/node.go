package core

import "github.com/go-gl/mathgl/mgl32"

// Object is anything the host editor can select.
type Object interface {
	Name() string
	IsValid() bool
}

// Node is a transformable 3D node owned by the host scene.
type Node interface {
	Object
	IsInsideTree() bool
	Parent() Node
	Children() []Node

	GlobalPosition() mgl32.Vec3
	SetGlobalPosition(p mgl32.Vec3)
	// GlobalRotation is in radians, YXZ order.
	GlobalRotation() mgl32.Vec3
	SetGlobalRotation(r mgl32.Vec3)
	Scale() mgl32.Vec3
	SetScale(s mgl32.Vec3)
}

// Bounded is implemented by nodes that know their local-space extents.
type Bounded interface {
	LocalAABB() AABB
}

// CollisionObject is a node that participates in physics queries.
type CollisionObject interface {
	Node
	CollisionRID() RID
}

// CSGShape marks constructive-solid-geometry nodes. Their generated collision
// shapes are owned by the host and are not exposed as RIDs, so they cannot be
// excluded from ray queries unless the node also implements CollisionObject.
type CSGShape interface {
	Node
	IsCSGShape() bool
}

// IsUsable reports whether n can be read from or written to this frame.
func IsUsable(n Node) bool {
	return n != nil && n.IsValid() && n.IsInsideTree()
}

// TransformOf snapshots a node's live global transform.
func TransformOf(n Node) Transform {
	return Transform{
		Position: n.GlobalPosition(),
		Rotation: n.GlobalRotation(),
		Scale:    n.Scale(),
	}
}

// SetTransform writes t to n verbatim.
func SetTransform(n Node, t Transform) {
	n.SetGlobalPosition(t.Position)
	n.SetGlobalRotation(t.Rotation)
	n.SetScale(t.Scale)
}

// LocalTransformer is implemented by nodes that expose their
// parent-relative transform directly.
type LocalTransformer interface {
	LocalTransform() Transform
	SetLocalTransform(t Transform)
}

// SavedTransform is a node transform captured for a later exact restore.
// Local is only meaningful when HasLocal is set.
type SavedTransform struct {
	Global   Transform
	Local    Transform
	HasLocal bool
}

func SaveTransform(n Node) SavedTransform {
	s := SavedTransform{Global: TransformOf(n)}
	if lt, ok := n.(LocalTransformer); ok {
		s.Local = lt.LocalTransform()
		s.HasLocal = true
	}
	return s
}

// Restore writes the saved transform back. The local form is preferred since
// the global one round-trips through the parent chain.
func (s SavedTransform) Restore(n Node) {
	if lt, ok := n.(LocalTransformer); ok && s.HasLocal {
		lt.SetLocalTransform(s.Local)
		return
	}
	SetTransform(n, s.Global)
}

// WorldAABB returns the node's bounds in world space, or false when the node
// does not report any.
func WorldAABB(n Node) (AABB, bool) {
	b, ok := n.(Bounded)
	if !ok {
		return AABB{}, false
	}
	local := b.LocalAABB()
	if local.IsEmpty() {
		return AABB{}, false
	}
	return local.Transformed(TransformOf(n)), true
}
