package input

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeSource struct {
	keys  map[Key]bool
	mouse mgl32.Vec2
}

func newFakeSource() *fakeSource {
	return &fakeSource{keys: make(map[Key]bool)}
}

func (f *fakeSource) Pressed(k Key) bool        { return f.keys[k] }
func (f *fakeSource) MousePosition() mgl32.Vec2 { return f.mouse }

func (f *fakeSource) press(keys ...Key) {
	for _, k := range keys {
		f.keys[k] = true
	}
}

func (f *fakeSource) release(keys ...Key) {
	for _, k := range keys {
		delete(f.keys, k)
	}
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeViewport struct {
	local mgl32.Vec2
	rect  Rect
}

func (v *fakeViewport) LocalMousePosition() mgl32.Vec2 { return v.local }
func (v *fakeViewport) VisibleRect() Rect              { return v.rect }

func newTestSnapshot() (*Snapshot, *fakeSource, *fakeClock) {
	src := newFakeSource()
	clock := newFakeClock()
	s := NewSnapshot(src)
	s.SetClock(clock.Now)
	return s, src, clock
}
