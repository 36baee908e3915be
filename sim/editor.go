package sim

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Editor is a headless editor: one 3D scene, a camera, a physics world and a
// viewport driven by scripted Keys.
type Editor struct {
	Root    *Root
	World   *World
	Cam     *Camera
	Keys    *Keys
	View    *Viewport
	Scene3D bool

	Selection   []core.Object
	InInspector bool
	GridVisible bool
	Status      []string
	FocusGrabs  int
	// FocusRefusals makes the next N focus grabs fail.
	FocusRefusals int
}

func NewEditor(width, height int) *Editor {
	keys := NewKeys()
	return &Editor{
		Root:    NewRoot(),
		World:   NewWorld(2),
		Cam:     NewCamera(width, height),
		Keys:    keys,
		View:    &Viewport{Keys: keys, Size: mgl32.Vec2{float32(width), float32(height)}},
		Scene3D: true,
	}
}

func (e *Editor) Camera() core.Camera {
	if e.Cam == nil {
		return nil
	}
	return e.Cam
}

func (e *Editor) Space() core.PhysicsSpace {
	if e.World == nil {
		return nil
	}
	return e.World
}

func (e *Editor) SceneRoot() core.Node {
	if e.Root == nil {
		return nil
	}
	return e.Root
}

func (e *Editor) SelectedObjects() []core.Object {
	return append([]core.Object(nil), e.Selection...)
}

func (e *Editor) Select(objs ...core.Object) {
	e.Selection = objs
}

func (e *Editor) Viewport() input.Viewport {
	if e.View == nil {
		return nil
	}
	return e.View
}

func (e *Editor) HasScene3D() bool       { return e.Scene3D }
func (e *Editor) FocusInInspector() bool { return e.InInspector }

func (e *Editor) GrabViewportFocus() bool {
	if e.FocusRefusals > 0 {
		e.FocusRefusals--
		return false
	}
	e.FocusGrabs++
	return true
}

func (e *Editor) SetGridVisible(visible bool) { e.GridVisible = visible }

func (e *Editor) SetStatus(msg string) { e.Status = append(e.Status, msg) }

// LastStatus returns the most recent status message.
func (e *Editor) LastStatus() string {
	if len(e.Status) == 0 {
		return ""
	}
	return e.Status[len(e.Status)-1]
}

// Instantiate builds a detached node for a. Meshes and library items get a
// unit-cube collider; scenes are plain nodes with unit bounds.
func (e *Editor) Instantiate(a core.Asset) core.Node {
	name := a.DisplayName()
	if a.Kind == core.AssetScene {
		n := NewNode(name)
		n.Bounds = unitBounds()
		return n
	}
	return e.World.NewBody(name, unitBounds())
}

func (e *Editor) AddChild(parent, child core.Node) {
	if p, ok := parent.(simNode); ok {
		p.base().AddChild(child)
	}
}

func (e *Editor) RemoveChild(parent, child core.Node) {
	if p, ok := parent.(simNode); ok {
		p.base().RemoveChild(child)
	}
}

// AddBox creates a body under the root at pos with the given half extents.
func (e *Editor) AddBox(name string, pos, half mgl32.Vec3) *Body {
	b := e.World.NewBody(name, core.AABB{Min: half.Mul(-1), Max: half})
	b.Local.Position = pos
	e.Root.AddChild(b)
	return b
}

// AddNode creates a plain node with unit bounds under the root.
func (e *Editor) AddNode(name string, pos mgl32.Vec3) *Node {
	n := NewNode(name)
	n.Bounds = unitBounds()
	n.Local.Position = pos
	e.Root.AddChild(n)
	return n
}

// AimMouseAt moves the mouse to the pixel whose pick ray passes through
// world.
func (e *Editor) AimMouseAt(world mgl32.Vec3) bool {
	p, ok := e.Cam.ScreenPosition(world)
	if !ok {
		return false
	}
	e.Keys.SetMouse(p)
	return true
}
