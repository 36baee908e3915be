package placer_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	placer "github.com/gekko3d/assetplacer"
	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/input"
	"github.com/gekko3d/assetplacer/sim"
)

var crate = core.Asset{Kind: core.AssetMesh, Path: "res://props/crate.mesh", Name: "Crate"}

type harness struct {
	t     *testing.T
	ed    *sim.Editor
	clock *sim.Clock
	undo  *placer.UndoManager
	store *placer.SettingsStore
	c     *placer.Coordinator
	ended []int
}

func newHarness(t *testing.T, s placer.Settings) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		ed:    sim.NewEditor(800, 600),
		clock: sim.NewClock(),
		undo:  placer.NewUndoManager(50),
		store: placer.NewSettingsStore(s),
	}
	h.c = placer.NewCoordinator(placer.Options{
		Editor:   h.ed,
		Scene:    h.ed,
		Undo:     h.undo,
		Settings: h.store,
		Source:   h.ed.Keys,
		Clock:    h.clock.Now,
		OnPlacementEnded: func(_ core.Asset, placed int) {
			h.ended = append(h.ended, placed)
		},
	})
	return h
}

func (h *harness) frame() {
	h.clock.Advance(16 * time.Millisecond)
	h.c.ProcessFrame()
}

// tap presses keys for one frame and releases them on the next.
func (h *harness) tap(keys ...input.Key) {
	h.ed.Keys.Press(keys...)
	h.frame()
	h.ed.Keys.Release(keys...)
	h.frame()
}

func (h *harness) aim(p mgl32.Vec3) {
	h.t.Helper()
	require.True(h.t, h.ed.AimMouseAt(p), "point %v is off screen", p)
}

func (h *harness) click() {
	h.tap(input.MouseButtonLeft)
}

func assertVec(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-3, msgAndArgs...)
	}
}

func snapSettings() placer.Settings {
	s := placer.DefaultSettings()
	s.SnapEnabled = true
	s.SnapStep = 1
	return s
}

func TestPlacement_SnapsFallbackHitAndCommits(t *testing.T) {
	s := snapSettings()
	s.FallbackHeight = 2
	h := newHarness(t, s)

	require.True(t, h.c.StartPlacementMode(crate, s))
	assert.Equal(t, placer.ModePlacement, h.c.Mode())
	preview := h.c.PlacementSession().Preview
	require.True(t, core.IsUsable(preview))

	h.aim(mgl32.Vec3{3.3, 2, 4.7})
	h.frame()
	assertVec(t, mgl32.Vec3{3, 2, 5}, preview.GlobalPosition())
	assert.True(t, h.ed.GridVisible)
	assert.Len(t, h.ed.Root.Children(), 1)

	h.click()
	require.Len(t, h.ed.Root.Children(), 2)
	assert.Equal(t, 1, h.c.PlacementSession().Placed)
	assert.Equal(t, 1, h.undo.Len())

	var placed core.Node
	for _, n := range h.ed.Root.Children() {
		if n != preview {
			placed = n
		}
	}
	require.NotNil(t, placed)
	assertVec(t, mgl32.Vec3{3, 2, 5}, placed.GlobalPosition())
	assert.Equal(t, "Crate", placed.Name())

	assert.Equal(t, "Place Crate", h.undo.Undo())
	assert.Len(t, h.ed.Root.Children(), 1)
	assert.False(t, placed.IsInsideTree())
	h.undo.Redo()
	assert.True(t, placed.IsInsideTree())
	assertVec(t, mgl32.Vec3{3, 2, 5}, placed.GlobalPosition())
}

func TestPlacement_LandsOnColliderAndSkipsPreview(t *testing.T) {
	s := placer.DefaultSettings()
	h := newHarness(t, s)
	h.ed.AddBox("table", mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{2, 0.5, 2})

	require.True(t, h.c.StartPlacementMode(crate, s))
	h.aim(mgl32.Vec3{0.5, 1, 0.5})
	for i := 0; i < 3; i++ {
		h.frame()
	}
	res := h.c.PlacementSession().LastResult
	require.True(t, res.Valid())
	assert.True(t, res.HitCollision)
	assertVec(t, mgl32.Vec3{0.5, 1, 0.5}, res.Position)
	assertVec(t, mgl32.Vec3{0, 1, 0}, res.Normal)
}

func TestPlacement_NoFallbackMissKeepsPreview(t *testing.T) {
	s := placer.DefaultSettings()
	s.UseFallback = false
	h := newHarness(t, s)
	require.True(t, h.c.StartPlacementMode(crate, s))
	preview := h.c.PlacementSession().Preview

	h.aim(mgl32.Vec3{1, 0, 1})
	h.frame()
	assert.False(t, h.c.PlacementSession().LastResult.Valid())
	assertVec(t, mgl32.Vec3{}, preview.GlobalPosition())

	h.click()
	assert.Equal(t, 0, h.c.PlacementSession().Placed, "no commit without a valid position")
	assert.Equal(t, 0, h.undo.Len())
}

func TestPlacement_HeightKeysAndWheelInterruptsRepeat(t *testing.T) {
	s := placer.DefaultSettings()
	h := newHarness(t, s)
	require.True(t, h.c.StartPlacementMode(crate, s))
	h.aim(mgl32.Vec3{0, 0, 0})
	h.frame()

	h.ed.Keys.Press(input.KeyQ)
	h.frame()
	assert.InDelta(t, 0.1, h.c.PlacementSession().State.HeightOffset, 1e-6)

	assert.True(t, h.c.HandleMouseWheel(1))
	assert.InDelta(t, 0.2, h.c.PlacementSession().State.HeightOffset, 1e-6)

	h.clock.Advance(500 * time.Millisecond)
	h.frame()
	assert.InDelta(t, 0.2, h.c.PlacementSession().State.HeightOffset, 1e-6, "wheel stops the key's repeat")
	assertVec(t, mgl32.Vec3{0, 0.2, 0}, h.c.PlacementSession().Preview.GlobalPosition())

	h.ed.Keys.Release(input.KeyQ)
	h.frame()
	assert.False(t, h.c.HandleMouseWheel(1), "plain wheel goes to the camera")

	h.tap(input.KeyH)
	assert.Zero(t, h.c.PlacementSession().State.HeightOffset)
}

func TestPlacement_RotationTapAndCarriedState(t *testing.T) {
	s := placer.DefaultSettings()
	s.KeepRotationBetweenPlacements = true
	h := newHarness(t, s)
	require.True(t, h.c.StartPlacementMode(crate, s))
	h.aim(mgl32.Vec3{0, 0, 0})
	h.frame()

	h.tap(input.KeyY)
	want := mgl32.DegToRad(15)
	assert.InDelta(t, want, h.c.PlacementSession().State.ManualRotation.Y(), 1e-6)
	assert.InDelta(t, want, h.c.PlacementSession().Preview.GlobalRotation().Y(), 1e-4)

	h.ed.Keys.Press(input.KeyShift)
	h.tap(input.KeyX)
	h.ed.Keys.Release(input.KeyShift)
	assert.InDelta(t, -want, h.c.PlacementSession().State.ManualRotation.X(), 1e-6, "shift reverses")

	h.tap(input.KeyEscape)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.Equal(t, []int{0}, h.ended)

	require.True(t, h.c.StartPlacementMode(crate, s))
	assert.InDelta(t, want, h.c.PlacementSession().State.ManualRotation.Y(), 1e-6, "rotation kept")
	h.tap(input.KeyEscape)

	s.KeepRotationBetweenPlacements = false
	require.True(t, h.c.StartPlacementMode(crate, s))
	assert.Zero(t, h.c.PlacementSession().State.ManualRotation.Y())
}

func TestPlacement_ExitRemovesPreview(t *testing.T) {
	s := snapSettings()
	h := newHarness(t, s)
	require.True(t, h.c.StartPlacementMode(crate, s))
	preview := h.c.PlacementSession().Preview
	h.aim(mgl32.Vec3{1, 0, 1})
	h.frame()
	h.click()

	h.tap(input.KeyEscape)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.False(t, preview.IsInsideTree())
	assert.False(t, h.ed.GridVisible)
	assert.Equal(t, []int{1}, h.ended)
	assert.Len(t, h.ed.Root.Children(), 1)
}

func TestPlacement_NumericScaleAndHeight(t *testing.T) {
	s := placer.DefaultSettings()
	h := newHarness(t, s)
	require.True(t, h.c.StartPlacementMode(crate, s))
	h.aim(mgl32.Vec3{0, 0, 0})
	h.frame()

	h.tap(input.KeyL)
	assert.Equal(t, placer.ControlScale, h.c.Control().Mode)
	h.tap(input.Key2)
	h.tap(input.KeyPeriod)
	h.tap(input.Key5)
	assert.Equal(t, "2.5", h.c.NumericText())
	h.tap(input.KeyEnter)
	assert.Equal(t, float32(2.5), h.c.PlacementSession().State.ScaleMultiplier)
	assertVec(t, mgl32.Vec3{2.5, 2.5, 2.5}, h.c.PlacementSession().Preview.Scale())

	h.tap(input.KeyG)
	h.tap(input.KeyY)
	assert.Equal(t, placer.AxisY, h.c.Control().Axis)
	h.tap(input.KeyMinus)
	h.tap(input.Key3)
	h.tap(input.KeyEnter)
	assert.InDelta(t, -3, h.c.PlacementSession().State.HeightOffset, 1e-6)
	assertVec(t, mgl32.Vec3{0, -3, 0}, h.c.PlacementSession().Preview.GlobalPosition())
	assert.Zero(t, h.c.PlacementSession().State.ManualRotation.Y(), "axis tap does not rotate in a control mode")
}

func TestPlacement_FocusGrabRetries(t *testing.T) {
	s := placer.DefaultSettings()
	h := newHarness(t, s)
	h.ed.FocusRefusals = 2
	require.True(t, h.c.StartPlacementMode(crate, s))
	for i := 0; i < 5; i++ {
		h.frame()
	}
	assert.Equal(t, 1, h.ed.FocusGrabs)
	assert.Zero(t, h.ed.FocusRefusals)
}

func TestPlacement_StartFailsWithoutRoot(t *testing.T) {
	s := placer.DefaultSettings()
	h := newHarness(t, s)
	h.ed.Root = nil
	assert.False(t, h.c.StartPlacementMode(crate, s))
	assert.Equal(t, placer.ModeNone, h.c.Mode())
}

func twoNodes(h *harness) (*sim.Node, *sim.Node) {
	n1 := h.ed.AddNode("left", mgl32.Vec3{0, 0, 0})
	n2 := h.ed.AddNode("right", mgl32.Vec3{2, 0, 0})
	h.ed.Select(n1, n2)
	return n1, n2
}

// startTransform aims at p and presses TAB.
func (h *harness) startTransform(p mgl32.Vec3) {
	h.t.Helper()
	h.aim(p)
	h.frame()
	h.tap(input.KeyTab)
	require.Equal(h.t, placer.ModeTransform, h.c.Mode())
}

func TestTransform_GroupDragConfirmAndUndo(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	n1, n2 := twoNodes(h)

	h.startTransform(mgl32.Vec3{1, 0, 0})
	h.aim(mgl32.Vec3{2, 0, 1})
	h.frame()
	assertVec(t, mgl32.Vec3{1, 0, 1}, n1.GlobalPosition())
	assertVec(t, mgl32.Vec3{3, 0, 1}, n2.GlobalPosition())

	h.tap(input.KeyTab)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.Equal(t, 1, h.undo.Len())
	assertVec(t, mgl32.Vec3{1, 0, 1}, n1.GlobalPosition())

	assert.Equal(t, "Transform nodes", h.undo.Undo())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, n1.GlobalPosition())
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, n2.GlobalPosition())
	h.undo.Redo()
	assertVec(t, mgl32.Vec3{3, 0, 1}, n2.GlobalPosition())
}

func TestTransform_ClickConfirms(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	n1, _ := twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})
	h.aim(mgl32.Vec3{1, 0, 3})
	h.frame()
	h.click()
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assertVec(t, mgl32.Vec3{0, 0, 3}, n1.GlobalPosition())
	assert.Equal(t, 1, h.undo.Len())
}

func TestTransform_UnchangedConfirmRecordsNothing(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})
	h.tap(input.KeyTab)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.Zero(t, h.undo.Len())
}

func TestTransform_CancelRestoresExactly(t *testing.T) {
	s := placer.DefaultSettings()
	s.SmoothTransforms = true
	h := newHarness(t, s)
	n := h.ed.AddNode("odd", mgl32.Vec3{0.1, 0.2, 0.3})
	n.Local.Rotation = mgl32.Vec3{0.3, 0.5, 0.7}
	n.Local.Scale = mgl32.Vec3{2, 3, 4}
	orig := core.TransformOf(n)
	h.ed.Select(n)

	h.startTransform(mgl32.Vec3{0.1, 0.2, 0.3})
	h.aim(mgl32.Vec3{4, 0, -2})
	h.tap(input.KeyY)
	h.tap(input.KeyPageUp)
	h.frame()
	assert.NotZero(t, h.c.Smoother().Pending())

	h.tap(input.KeyEscape)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.Equal(t, orig, core.TransformOf(n))
	assert.Zero(t, h.c.Smoother().Pending())
	assert.Zero(t, h.undo.Len())
}

// nestedChild hangs a child under a rotated, uniformly scaled parent so its
// global transform only round-trips through the parent approximately.
func nestedChild(h *harness) *sim.Node {
	parent := h.ed.AddNode("pivot", mgl32.Vec3{1, 0, 1})
	parent.Local.Rotation = mgl32.Vec3{0.4, 0.9, 0.2}
	parent.Local.Scale = mgl32.Vec3{1.5, 1.5, 1.5}
	child := sim.NewNode("leaf")
	child.Local.Position = mgl32.Vec3{0.1, 0.2, 0.3}
	child.Local.Rotation = mgl32.Vec3{0.3, 0.5, 0.7}
	child.Local.Scale = mgl32.Vec3{2, 3, 4}
	parent.AddChild(child)
	h.ed.Select(child)
	return child
}

func TestTransform_CancelRestoresParentedNodeExactly(t *testing.T) {
	s := placer.DefaultSettings()
	s.SmoothTransforms = true
	h := newHarness(t, s)
	child := nestedChild(h)
	local := child.LocalTransform()

	h.startTransform(mgl32.Vec3{0, 0, 0})
	h.aim(mgl32.Vec3{3, 0, -1})
	h.tap(input.KeyY)
	h.tap(input.KeyPageUp)
	h.frame()
	require.NotEqual(t, local, child.LocalTransform())

	h.tap(input.KeyEscape)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.Equal(t, local, child.LocalTransform())
	assert.Zero(t, h.c.Smoother().Pending())
}

func TestTransform_UndoRestoresParentedNodeExactly(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	child := nestedChild(h)
	local := child.LocalTransform()

	h.startTransform(mgl32.Vec3{0, 0, 0})
	h.aim(mgl32.Vec3{3, 0, -1})
	h.frame()
	h.click()
	require.Equal(t, placer.ModeNone, h.c.Mode())
	require.NotEqual(t, local, child.LocalTransform())

	h.undo.Undo()
	assert.Equal(t, local, child.LocalTransform())
}

func TestTransform_SmoothingConverges(t *testing.T) {
	s := placer.DefaultSettings()
	s.SmoothTransforms = true
	h := newHarness(t, s)
	n1, _ := twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})
	h.aim(mgl32.Vec3{2, 0, 1})
	h.frame()
	assert.Less(t, n1.GlobalPosition().X(), float32(0.99), "smoothing lags the target")
	for i := 0; i < 120; i++ {
		h.frame()
	}
	assertVec(t, mgl32.Vec3{1, 0, 1}, n1.GlobalPosition())
}

func TestTransform_SnappedGroupKeepsSpacing(t *testing.T) {
	h := newHarness(t, snapSettings())
	n1 := h.ed.AddNode("a", mgl32.Vec3{0.2, 0, 0})
	n2 := h.ed.AddNode("b", mgl32.Vec3{2.2, 0, 0})
	h.ed.Select(n1, n2)

	h.startTransform(mgl32.Vec3{1.2, 0, 0})
	h.frame()
	assertVec(t, mgl32.Vec3{0.2, 0, 0}, n1.GlobalPosition(), "no jump on start")
	assertVec(t, mgl32.Vec3{2.2, 0, 0}, n2.GlobalPosition())

	for _, p := range []mgl32.Vec3{{2.2, 0, 1}, {1.9, 0, 0.8}, {-0.6, 0, 2.1}, {2.2, 0, 1}} {
		h.aim(p)
		h.frame()
		assertVec(t, mgl32.Vec3{2, 0, 0}, n2.GlobalPosition().Sub(n1.GlobalPosition()))
	}
	assertVec(t, mgl32.Vec3{1.2, 0, 1}, n1.GlobalPosition())
	assertVec(t, mgl32.Vec3{3.2, 0, 1}, n2.GlobalPosition())
}

func TestTransform_HeightAndNumericAxisMove(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	n1, n2 := twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})

	h.ed.Keys.Press(input.KeyAlt)
	h.tap(input.KeyQ)
	h.ed.Keys.Release(input.KeyAlt)
	assertVec(t, mgl32.Vec3{0, 1, 0}, n1.GlobalPosition())

	h.tap(input.KeyG)
	h.tap(input.KeyX)
	h.tap(input.Key3)
	h.tap(input.KeyEnter)
	assertVec(t, mgl32.Vec3{3, 1, 0}, n1.GlobalPosition())
	assertVec(t, mgl32.Vec3{5, 1, 0}, n2.GlobalPosition())

	assert.True(t, h.c.HandleMouseWheel(-1), "position control takes the wheel")
	assertVec(t, mgl32.Vec3{2.9, 1, 0}, n1.GlobalPosition())
}

func TestTransform_WheelRotatesInRotationMode(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	n1, _ := twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})

	assert.False(t, h.c.HandleMouseWheel(1))
	h.tap(input.KeyR)
	assert.True(t, h.c.HandleMouseWheel(-1))
	assert.InDelta(t, -mgl32.DegToRad(15), n1.GlobalRotation().Y(), 1e-4)
}

func TestNavigation_EscapeUnwinds(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})

	h.tap(input.KeyG)
	h.tap(input.Key5)
	require.Equal(t, "5", h.c.NumericText())

	h.tap(input.KeyEscape)
	assert.Empty(t, h.c.NumericText())
	assert.True(t, h.c.Control().Active())
	assert.Equal(t, placer.ModeTransform, h.c.Mode())

	h.tap(input.KeyEscape)
	assert.False(t, h.c.Control().Active())
	assert.Equal(t, placer.ModeTransform, h.c.Mode())

	h.tap(input.KeyEscape)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
}

func TestNavigation_TabNeedsViewportFocus(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	twoNodes(h)
	h.aim(mgl32.Vec3{1, 0, 0})

	h.ed.InInspector = true
	h.tap(input.KeyTab)
	assert.Equal(t, placer.ModeNone, h.c.Mode())

	h.ed.InInspector = false
	h.ed.Scene3D = false
	h.tap(input.KeyTab)
	assert.Equal(t, placer.ModeNone, h.c.Mode())

	h.ed.Scene3D = true
	h.tap(input.KeyTab)
	assert.Equal(t, placer.ModeTransform, h.c.Mode())
}

func TestNavigation_TabWithoutSelection(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	h.tap(input.KeyTab)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.Equal(t, "No node selected", h.ed.LastStatus())
}

func TestNavigation_RightClickCancels(t *testing.T) {
	s := placer.DefaultSettings()
	s.RightClickCancels = true
	h := newHarness(t, s)
	n1, _ := twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})
	h.aim(mgl32.Vec3{3, 0, 0})
	h.frame()
	h.tap(input.MouseButtonRight)
	assert.Equal(t, placer.ModeNone, h.c.Mode())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, n1.GlobalPosition())
}

func TestStartPlacement_ClosesTransformSession(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	n1, _ := twoNodes(h)
	h.startTransform(mgl32.Vec3{1, 0, 0})
	h.aim(mgl32.Vec3{3, 0, 0})
	h.frame()

	require.True(t, h.c.StartPlacementMode(crate, placer.DefaultSettings()))
	assert.Equal(t, placer.ModePlacement, h.c.Mode())
	assert.Nil(t, h.c.TransformSession())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, n1.GlobalPosition(), "the open session was cancelled")
}

func TestSettingsChangeReconfiguresService(t *testing.T) {
	h := newHarness(t, placer.DefaultSettings())
	h.frame()
	h.c.Service().Cycle()
	h.frame()
	assert.Equal(t, "plane", h.c.Service().Active().Name(), "cycled strategy survives frames")

	s := h.store.Load()
	s.PlacementStrategy = "collision"
	s.SnapStep = 0.5
	h.store.Store(s)
	h.frame()
	assert.Equal(t, "collision", h.c.Service().Active().Name())
	assert.Equal(t, float32(0.5), h.c.Settings().SnapStep)
}
