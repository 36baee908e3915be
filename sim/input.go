package sim

import (
	"time"

	"github.com/gekko3d/assetplacer/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Keys is a scripted input.Source.
type Keys struct {
	down  [input.KeyCount]bool
	mouse mgl32.Vec2
}

func NewKeys() *Keys { return &Keys{} }

func (k *Keys) Pressed(key input.Key) bool {
	if key <= input.KeyNone || int(key) >= input.KeyCount {
		return false
	}
	return k.down[key]
}

func (k *Keys) MousePosition() mgl32.Vec2 { return k.mouse }

func (k *Keys) Press(keys ...input.Key) {
	for _, key := range keys {
		if key > input.KeyNone && int(key) < input.KeyCount {
			k.down[key] = true
		}
	}
}

func (k *Keys) Release(keys ...input.Key) {
	for _, key := range keys {
		if key > input.KeyNone && int(key) < input.KeyCount {
			k.down[key] = false
		}
	}
}

func (k *Keys) ReleaseAll() {
	k.down = [input.KeyCount]bool{}
}

func (k *Keys) SetMouse(p mgl32.Vec2) { k.mouse = p }

// Viewport is a fixed-size viewport whose local mouse position follows Keys.
type Viewport struct {
	Keys *Keys
	Size mgl32.Vec2
}

func (v *Viewport) LocalMousePosition() mgl32.Vec2 {
	if v.Keys == nil {
		return mgl32.Vec2{}
	}
	return v.Keys.mouse
}

func (v *Viewport) VisibleRect() input.Rect {
	return input.Rect{Size: v.Size}
}

// Clock is a manually advanced clock for input timing.
type Clock struct {
	t time.Time
}

func NewClock() *Clock {
	return &Clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time { return c.t }

func (c *Clock) Advance(d time.Duration) { c.t = c.t.Add(d) }
