package input

import "github.com/go-gl/mathgl/mgl32"

// Source is the host's live keyboard and mouse state. It is polled once per
// frame by Snapshot.Update.
type Source interface {
	Pressed(k Key) bool
	// MousePosition is in screen coordinates.
	MousePosition() mgl32.Vec2
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
}

func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Position.X() && p.Y() >= r.Position.Y() &&
		p.X() < r.Position.X()+r.Size.X() && p.Y() < r.Position.Y()+r.Size.Y()
}

// Viewport is the 3D viewport the mouse is measured against.
type Viewport interface {
	// LocalMousePosition is the mouse position relative to the viewport.
	LocalMousePosition() mgl32.Vec2
	// VisibleRect is in the same coordinates as LocalMousePosition.
	VisibleRect() Rect
}
