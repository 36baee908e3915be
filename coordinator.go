package placer

import (
	"time"

	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/input"
	"github.com/gekko3d/assetplacer/placement"
	"github.com/gekko3d/assetplacer/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Options wires a Coordinator to its host. Editor is required; the rest
// have defaults.
type Options struct {
	Editor Editor
	Scene  Scene
	// Undo defaults to an UndoManager with 100 entries.
	Undo UndoRedo
	// Settings defaults to a store holding DefaultSettings.
	Settings *SettingsStore
	Source   input.Source
	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger Logger

	// OnPlacementEnded is called when placement mode exits.
	OnPlacementEnded func(a core.Asset, placed int)
}

// Coordinator owns the editing mode and turns each frame's input into node
// transforms. Only one mode session is open at a time.
type Coordinator struct {
	editor   Editor
	scene    Scene
	undo     UndoRedo
	settings *SettingsStore
	now      func() time.Time
	log      Logger

	cur             Settings
	settingsVersion uint64
	bindings        input.Bindings

	snapshot   *input.Snapshot
	service    *placement.Service
	smoother   *transform.LerpSmoother
	applicator *transform.Applicator

	mode      Mode
	placement *PlacementSession
	transform *TransformSession
	// carry is the placement state kept between placement sessions.
	carry transform.State

	control     ControlState
	numeric     NumericEntry
	focusFrames int
	lastFrame   time.Time

	onPlacementEnded func(core.Asset, int)
}

func NewCoordinator(opts Options) *Coordinator {
	log := loggerOrNop(opts.Logger)
	c := &Coordinator{
		editor:           opts.Editor,
		scene:            opts.Scene,
		undo:             opts.Undo,
		settings:         opts.Settings,
		now:              opts.Clock,
		log:              log,
		snapshot:         input.NewSnapshot(opts.Source),
		smoother:         transform.NewLerpSmoother(transform.DefaultSmoothingSpeed),
		carry:            transform.NewState(),
		onPlacementEnded: opts.OnPlacementEnded,
	}
	if c.undo == nil {
		c.undo = NewUndoManager(100)
	}
	if c.settings == nil {
		c.settings = NewSettingsStore(DefaultSettings())
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.snapshot.SetClock(c.now)
	c.service = placement.NewService(nil, log)
	c.applicator = transform.NewApplicator(c.smoother, log)
	c.reloadSettings()
	return c
}

func (c *Coordinator) Mode() Mode                          { return c.mode }
func (c *Coordinator) PlacementSession() *PlacementSession { return c.placement }
func (c *Coordinator) TransformSession() *TransformSession { return c.transform }
func (c *Coordinator) Snapshot() *input.Snapshot           { return c.snapshot }
func (c *Coordinator) Service() *placement.Service         { return c.service }
func (c *Coordinator) Smoother() *transform.LerpSmoother   { return c.smoother }
func (c *Coordinator) Undo() UndoRedo                      { return c.undo }
func (c *Coordinator) Control() ControlState               { return c.control }
func (c *Coordinator) NumericText() string                 { return c.numeric.Text() }
func (c *Coordinator) Settings() Settings                  { return c.cur }

func (c *Coordinator) SetSource(src input.Source) { c.snapshot.SetSource(src) }

// reloadSettings picks up a new settings value from the store. The placement
// service is only reconfigured when the settings changed, so a strategy
// cycled at runtime survives until the next settings edit.
func (c *Coordinator) reloadSettings() {
	v := c.settings.Version()
	if v == c.settingsVersion && c.settingsVersion != 0 {
		return
	}
	c.settingsVersion = v
	c.cur = c.settings.Load()
	c.bindings = c.cur.Bindings()
	c.service.Configure(c.cur.PlacementConfig())
	c.smoother.Speed = c.cur.SmoothingSpeed
	if c.smoother.Speed <= 0 {
		c.smoother.Speed = transform.DefaultSmoothingSpeed
	}
	c.smoother.SetEnabled(c.cur.SmoothTransforms)
}

// ProcessFrame runs one frame: input snapshot, mode handlers, then
// navigation. It never fails; missing host context skips work for the
// frame.
func (c *Coordinator) ProcessFrame() {
	c.reloadSettings()
	c.snapshot.Update(c.cur.InputConfig(), c.editor.Viewport())
	c.editor.SetGridVisible(c.mode != ModeNone && c.cur.GridVisible())

	if c.focusFrames > 0 {
		c.focusFrames--
		if c.editor.GrabViewportFocus() {
			c.focusFrames = 0
		} else {
			c.log.Debugf("viewport focus refused, %d retries left", c.focusFrames)
		}
	}

	states := input.NewStates(c.snapshot, c.bindings)
	switch c.mode {
	case ModePlacement:
		c.processPlacement(states)
	case ModeTransform:
		c.processTransform(states)
	}
	c.processNavigation(states)
	c.stepSmoothing()
}

func (c *Coordinator) stepSmoothing() {
	now := c.now()
	if !c.lastFrame.IsZero() && c.smoother.Enabled() {
		c.smoother.Step(float32(now.Sub(c.lastFrame).Seconds()))
	}
	c.lastFrame = now
}

// forceExit closes any open session; a transform session is cancelled.
func (c *Coordinator) forceExit() {
	switch c.mode {
	case ModePlacement:
		c.ExitPlacementMode()
	case ModeTransform:
		c.ExitTransformMode(false)
	}
}

// StartPlacementMode makes s the current settings and begins placing a. It
// returns false when the host cannot instantiate the asset.
func (c *Coordinator) StartPlacementMode(a core.Asset, s Settings) bool {
	c.forceExit()
	c.settings.Store(s)
	c.reloadSettings()

	if c.scene == nil {
		c.log.Debugf("start placement: no scene")
		return false
	}
	root := c.editor.SceneRoot()
	if root == nil {
		c.log.Debugf("start placement: no scene root")
		return false
	}
	preview := c.scene.Instantiate(a)
	if preview == nil {
		c.editor.SetStatus("Cannot instantiate " + a.DisplayName())
		return false
	}
	c.scene.AddChild(root, preview)

	c.service.SetSpace(c.editor.Space())
	st := c.carry
	st.ResetForNewPlacement(s.KeepRotationBetweenPlacements)
	st.Snap = s.SnapConfig(false)
	st.AlignWithNormal = s.AlignWithNormal

	c.placement = &PlacementSession{
		ID:       uuid.New(),
		Asset:    a,
		Preview:  preview,
		Original: core.TransformOf(preview),
		State:    st,
	}
	c.mode = ModePlacement
	c.focusFrames = max(s.FocusGrabFrames, 0)
	c.log.Debugf("placement started: %s", a.DisplayName())
	return true
}

// ExitPlacementMode removes the preview and closes the placement session.
func (c *Coordinator) ExitPlacementMode() {
	if c.mode != ModePlacement || c.placement == nil {
		return
	}
	ps := c.placement
	if ps.Preview != nil {
		c.smoother.Clear(ps.Preview)
		if p := ps.Preview.Parent(); p != nil && c.scene != nil {
			c.scene.RemoveChild(p, ps.Preview)
		}
	}
	c.carry = ps.State
	c.placement = nil
	c.mode = ModeNone
	c.endSession()
	if c.onPlacementEnded != nil {
		c.onPlacementEnded(ps.Asset, ps.Placed)
	}
}

// StartTransformMode begins moving the given objects as a group. Objects
// that are not usable nodes are ignored; it returns false when none are
// left.
func (c *Coordinator) StartTransformMode(objs ...core.Object) bool {
	var nodes []core.Node
	for _, o := range objs {
		if n, ok := o.(core.Node); ok && core.IsUsable(n) {
			nodes = append(nodes, n)
		}
	}
	if len(nodes) == 0 {
		c.editor.SetStatus("No node selected")
		return false
	}
	c.forceExit()
	c.reloadSettings()

	ts := newTransformSession(nodes)
	ts.State.Snap = c.cur.SnapConfig(false)
	c.transform = ts
	c.mode = ModeTransform
	c.service.SetSpace(c.editor.Space())
	c.focusFrames = max(c.cur.FocusGrabFrames, 0)

	if cam := c.editor.Camera(); cam != nil {
		if res := c.resolve(cam, c.snapshot.MousePosition(), ts.Nodes); res.Valid() {
			ts.DragStart = res.Position
			ts.HasDragStart = true
		}
	}
	c.log.Debugf("transform started: %d nodes", len(nodes))
	return true
}

// ExitTransformMode closes the transform session. Cancelling restores every
// node's original transform exactly; confirming settles the nodes on their
// final transforms and records one undo entry for the whole group.
func (c *Coordinator) ExitTransformMode(confirm bool) {
	if c.mode != ModeTransform || c.transform == nil {
		return
	}
	ts := c.transform
	if confirm {
		c.commitTransform(ts)
	} else {
		for i, n := range ts.Nodes {
			c.applicator.Restore(n, ts.Saved[i])
		}
	}
	c.transform = nil
	c.mode = ModeNone
	c.endSession()
}

func (c *Coordinator) commitTransform(ts *TransformSession) {
	finals := ts.finals(c.cur.SnapToBounds)
	changed := false
	for i, n := range ts.Nodes {
		c.applicator.ForceApplyImmediate(n, finals[i])
		if finals[i] != ts.Originals[i] {
			changed = true
		}
	}
	if !changed {
		return
	}
	nodes := append([]core.Node(nil), ts.Nodes...)
	saved := append([]core.SavedTransform(nil), ts.Saved...)
	name := "Transform " + nodes[0].Name()
	if len(nodes) > 1 {
		name = "Transform nodes"
	}
	c.undo.Commit(NewUndoAction(name,
		func() { setTransforms(nodes, finals) },
		func() { restoreTransforms(nodes, saved) },
	), false)
}

func restoreTransforms(nodes []core.Node, saved []core.SavedTransform) {
	for i, n := range nodes {
		if core.IsUsable(n) {
			saved[i].Restore(n)
		}
	}
}

func setTransforms(nodes []core.Node, ts []core.Transform) {
	for i, n := range nodes {
		if core.IsUsable(n) {
			core.SetTransform(n, ts[i])
		}
	}
}

// endSession resets per-session input state and applies the reset-on-exit
// settings to the carried placement state.
func (c *Coordinator) endSession() {
	c.control.Reset()
	c.numeric.Clear()
	c.focusFrames = 0
	if c.cur.ResetHeightOnExit {
		c.carry.ResetHeight()
	}
	if c.cur.ResetScaleOnExit {
		c.carry.ResetScale()
	}
	if c.cur.ResetRotationOnExit {
		c.carry.ResetRotation()
	}
	c.editor.SetGridVisible(false)
}

// resolve casts the pick ray under mouse through the placement service,
// ignoring the given nodes.
func (c *Coordinator) resolve(cam core.Camera, mouse mgl32.Vec2, exclude []core.Node) placement.Result {
	from := cam.ProjectRayOrigin(mouse)
	to := from.Add(cam.ProjectRayNormal(mouse).Mul(c.cur.rayLength()))
	return c.service.CalculatePosition(from, to, placement.Overrides{Exclude: exclude})
}

// processNavigation handles TAB and cancel. Cancel unwinds one level per
// press: numeric buffer, then control mode, then the session.
func (c *Coordinator) processNavigation(st input.States) {
	nav := st.Navigation
	cancel := nav.Cancel || (nav.RightClicked && c.cur.RightClickCancels && c.mode != ModeNone)
	switch {
	case cancel && c.numeric.Active():
		c.numeric.Clear()
	case cancel && c.control.Active():
		c.control.Reset()
	case cancel && c.mode == ModePlacement:
		c.ExitPlacementMode()
	case cancel && c.mode == ModeTransform:
		c.ExitTransformMode(false)
	case nav.Toggle && c.mode == ModeTransform:
		c.ExitTransformMode(true)
	case nav.Toggle && c.mode == ModeNone && c.viewportHasFocusContext():
		c.StartTransformMode(c.editor.SelectedObjects()...)
	}
}

// viewportHasFocusContext guards TAB so it is not taken from text fields.
func (c *Coordinator) viewportHasFocusContext() bool {
	return c.editor.HasScene3D() && c.editor.Camera() != nil && !c.editor.FocusInInspector()
}
