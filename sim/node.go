package sim

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Node is an in-memory scene node. Its transform is stored relative to its
// parent; the global accessors compose the parent chain.
type Node struct {
	name     string
	self     core.Node
	parent   core.Node
	children []core.Node
	freed    bool

	Local  core.Transform
	Bounds core.AABB
}

type simNode interface {
	core.Node
	base() *Node
}

func NewNode(name string) *Node {
	n := &Node{name: name, Local: core.NewTransform(), Bounds: core.EmptyAABB()}
	n.self = n
	return n
}

// Body is a node with a box collider registered in a World.
type Body struct {
	*Node
	rid   core.RID
	Layer uint32
}

func (b *Body) CollisionRID() core.RID { return b.rid }

// CSG is a constructive-solid-geometry node. Its collision is generated by
// the host and has no RID of its own.
type CSG struct {
	*Node
}

func NewCSG(name string) *CSG {
	c := &CSG{Node: NewNode(name)}
	c.self = c
	return c
}

func (c *CSG) IsCSGShape() bool { return true }

func (n *Node) base() *Node { return n }

func (n *Node) Name() string  { return n.name }
func (n *Node) IsValid() bool { return !n.freed }

// IsInsideTree reports whether the node hangs off a Root.
func (n *Node) IsInsideTree() bool {
	if n.freed {
		return false
	}
	if _, ok := n.self.(*Root); ok {
		return true
	}
	if n.parent == nil {
		return false
	}
	return n.parent.IsInsideTree()
}

func (n *Node) Parent() core.Node {
	return n.parent
}

func (n *Node) Children() []core.Node {
	return append([]core.Node(nil), n.children...)
}

// Free invalidates the node and detaches it.
func (n *Node) Free() {
	if p, ok := n.parent.(simNode); ok {
		p.base().removeChild(n.self)
	}
	n.freed = true
}

// AddChild attaches c under n, detaching it from any previous parent.
func (n *Node) AddChild(c core.Node) {
	sc, ok := c.(simNode)
	if !ok || c == nil {
		return
	}
	cb := sc.base()
	if p, ok := cb.parent.(simNode); ok {
		p.base().removeChild(c)
	}
	cb.parent = n.self
	n.children = append(n.children, c)
}

func (n *Node) RemoveChild(c core.Node) {
	n.removeChild(c)
}

func (n *Node) removeChild(c core.Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if sc, ok := c.(simNode); ok {
				sc.base().parent = nil
			}
			return
		}
	}
}

func (n *Node) LocalAABB() core.AABB { return n.Bounds }

func isIdentity(t core.Transform) bool {
	return t.Position == (mgl32.Vec3{}) && t.Rotation == (mgl32.Vec3{}) && t.Scale == (mgl32.Vec3{1, 1, 1})
}

func (n *Node) parentWorld() core.Transform {
	p, ok := n.parent.(simNode)
	if !ok {
		return core.NewTransform()
	}
	return p.base().World()
}

// World composes the parent chain:
// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos).
func (n *Node) World() core.Transform {
	pw := n.parentWorld()
	if isIdentity(pw) {
		return n.Local
	}
	scaled := mgl32.Vec3{
		n.Local.Position.X() * pw.Scale.X(),
		n.Local.Position.Y() * pw.Scale.Y(),
		n.Local.Position.Z() * pw.Scale.Z(),
	}
	return core.Transform{
		Position: pw.Position.Add(pw.Quat().Rotate(scaled)),
		Rotation: core.QuatToEuler(pw.Quat().Mul(n.Local.Quat()).Normalize()),
		Scale: mgl32.Vec3{
			pw.Scale.X() * n.Local.Scale.X(),
			pw.Scale.Y() * n.Local.Scale.Y(),
			pw.Scale.Z() * n.Local.Scale.Z(),
		},
	}
}

func (n *Node) GlobalPosition() mgl32.Vec3 { return n.World().Position }
func (n *Node) GlobalRotation() mgl32.Vec3 { return n.World().Rotation }

// Scale is the local scale, matching the editor's node scale property.
func (n *Node) Scale() mgl32.Vec3 { return n.Local.Scale }

func (n *Node) SetScale(s mgl32.Vec3) { n.Local.Scale = s }

func (n *Node) LocalTransform() core.Transform { return n.Local }

func (n *Node) SetLocalTransform(t core.Transform) { n.Local = t }

func (n *Node) SetGlobalPosition(p mgl32.Vec3) {
	pw := n.parentWorld()
	if isIdentity(pw) {
		n.Local.Position = p
		return
	}
	local := pw.Quat().Inverse().Rotate(p.Sub(pw.Position))
	n.Local.Position = mgl32.Vec3{
		safeDiv(local.X(), pw.Scale.X()),
		safeDiv(local.Y(), pw.Scale.Y()),
		safeDiv(local.Z(), pw.Scale.Z()),
	}
}

func (n *Node) SetGlobalRotation(r mgl32.Vec3) {
	pw := n.parentWorld()
	if isIdentity(pw) {
		n.Local.Rotation = r
		return
	}
	q := pw.Quat().Inverse().Mul(core.EulerToQuat(r))
	n.Local.Rotation = core.QuatToEuler(q)
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}

// Root is the scene root; nodes under it are inside the tree.
type Root struct {
	*Node
}

func NewRoot() *Root {
	r := &Root{Node: NewNode("root")}
	r.self = r
	return r
}
