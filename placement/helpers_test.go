package placement

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

type testNode struct {
	name     string
	parent   *testNode
	children []*testNode
	rid      core.RID
	collider bool
	csg      bool
	pos      mgl32.Vec3
	rot      mgl32.Vec3
	scale    mgl32.Vec3
}

func (n *testNode) Name() string       { return n.name }
func (n *testNode) IsValid() bool      { return true }
func (n *testNode) IsInsideTree() bool { return true }
func (n *testNode) Parent() core.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.node()
}
func (n *testNode) Children() []core.Node {
	out := make([]core.Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c.node())
	}
	return out
}
func (n *testNode) GlobalPosition() mgl32.Vec3     { return n.pos }
func (n *testNode) SetGlobalPosition(p mgl32.Vec3) { n.pos = p }
func (n *testNode) GlobalRotation() mgl32.Vec3     { return n.rot }
func (n *testNode) SetGlobalRotation(r mgl32.Vec3) { n.rot = r }
func (n *testNode) Scale() mgl32.Vec3              { return n.scale }
func (n *testNode) SetScale(s mgl32.Vec3)          { n.scale = s }

// node returns n wrapped so that only the capabilities it has are visible
// through type assertions.
func (n *testNode) node() core.Node {
	switch {
	case n.collider:
		return collisionNode{n}
	case n.csg:
		return csgNode{n}
	}
	return n
}

func (n *testNode) add(c *testNode) *testNode {
	c.parent = n
	n.children = append(n.children, c)
	return c
}

type collisionNode struct{ *testNode }

func (c collisionNode) CollisionRID() core.RID { return c.rid }

type csgNode struct{ *testNode }

func (c csgNode) IsCSGShape() bool { return true }

type fakeSpace struct {
	hit     *core.RayHit
	hitRID  core.RID
	queries []core.RayQuery
}

func (f *fakeSpace) IntersectRay(q core.RayQuery) (core.RayHit, bool) {
	f.queries = append(f.queries, q)
	if f.hit == nil || q.Excludes(f.hitRID) {
		return core.RayHit{}, false
	}
	return *f.hit, true
}
