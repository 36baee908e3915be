package placer

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/input"
	"github.com/google/uuid"
)

// Editor is the host editor surface the coordinator reads each frame.
// Camera, Space, SceneRoot and Viewport return nil when unavailable.
type Editor interface {
	Camera() core.Camera
	Space() core.PhysicsSpace
	SceneRoot() core.Node
	SelectedObjects() []core.Object
	Viewport() input.Viewport

	// HasScene3D reports whether a 3D scene is open for editing.
	HasScene3D() bool
	// FocusInInspector reports whether keyboard focus is in a text or
	// inspector control that must keep TAB.
	FocusInInspector() bool
	// GrabViewportFocus asks for keyboard focus on the 3D viewport and
	// reports whether it was granted.
	GrabViewportFocus() bool

	SetGridVisible(visible bool)
	SetStatus(msg string)
}

// Scene creates and attaches nodes.
type Scene interface {
	// Instantiate builds a detached node for a, or nil if it cannot.
	Instantiate(a core.Asset) core.Node
	AddChild(parent, child core.Node)
	RemoveChild(parent, child core.Node)
}

// UndoAction is one user-level operation.
type UndoAction struct {
	ID   uuid.UUID
	Name string
	Do   func()
	Undo func()
}

func NewUndoAction(name string, do, undo func()) UndoAction {
	return UndoAction{ID: uuid.New(), Name: name, Do: do, Undo: undo}
}

// UndoRedo registers actions with the host history. When execute is false
// the action's effect is already applied and Do only runs on redo.
type UndoRedo interface {
	Commit(a UndoAction, execute bool)
}
