package transform

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

type testNode struct {
	name     string
	detached bool
	pos      mgl32.Vec3
	rot      mgl32.Vec3
	scale    mgl32.Vec3
	writes   int
}

func newTestNode(name string, pos mgl32.Vec3) *testNode {
	return &testNode{name: name, pos: pos, scale: mgl32.Vec3{1, 1, 1}}
}

func (n *testNode) Name() string                   { return n.name }
func (n *testNode) IsValid() bool                  { return true }
func (n *testNode) IsInsideTree() bool             { return !n.detached }
func (n *testNode) Parent() core.Node              { return nil }
func (n *testNode) Children() []core.Node          { return nil }
func (n *testNode) GlobalPosition() mgl32.Vec3     { return n.pos }
func (n *testNode) GlobalRotation() mgl32.Vec3     { return n.rot }
func (n *testNode) Scale() mgl32.Vec3              { return n.scale }
func (n *testNode) SetGlobalPosition(p mgl32.Vec3) { n.pos = p; n.writes++ }
func (n *testNode) SetGlobalRotation(r mgl32.Vec3) { n.rot = r; n.writes++ }
func (n *testNode) SetScale(s mgl32.Vec3)          { n.scale = s; n.writes++ }
