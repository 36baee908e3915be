package placer

import (
	"fmt"

	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/input"
	"github.com/gekko3d/assetplacer/transform"
	"github.com/go-gl/mathgl/mgl32"
)

func (c *Coordinator) processPlacement(st input.States) {
	ps := c.placement
	if ps == nil || !core.IsUsable(ps.Preview) {
		c.log.Debugf("placement: preview is gone")
		return
	}
	cam := c.editor.Camera()
	if cam == nil {
		c.log.Debugf("placement: no camera")
		return
	}
	c.service.SetSpace(c.editor.Space())
	ps.State.Snap = c.cur.SnapConfig(st.Position.HalfStep)
	ps.State.AlignWithNormal = c.cur.AlignWithNormal

	c.processControl(st)
	c.processKeyAdjustments(st, cam)

	pos := st.Position
	if pos.MouseInViewport {
		res := c.resolve(cam, pos.MousePosition, []core.Node{ps.Preview})
		ps.LastResult = res
		if res.Valid() {
			ps.State.SetSurfaceNormal(res.Normal)
			ps.State.BasePosition = res.Position
		}
	}
	c.reapply()

	if pos.LeftClicked && pos.MouseInViewport && ps.LastResult.Valid() {
		c.commitPlacement(ps)
	}
}

// commitPlacement instantiates the asset at the preview's transform as one
// undoable action. The preview stays for the next placement.
func (c *Coordinator) commitPlacement(ps *PlacementSession) {
	root := c.editor.SceneRoot()
	if root == nil || c.scene == nil {
		c.log.Debugf("placement commit: no scene root")
		return
	}
	node := c.scene.Instantiate(ps.Asset)
	if node == nil {
		c.editor.SetStatus("Cannot instantiate " + ps.Asset.DisplayName())
		return
	}
	final := ps.State.Final(ps.Original)
	scene := c.scene
	c.undo.Commit(NewUndoAction("Place "+ps.Asset.DisplayName(),
		func() {
			scene.AddChild(root, node)
			if core.IsUsable(node) {
				core.SetTransform(node, final)
			}
		},
		func() { scene.RemoveChild(root, node) },
	), true)
	ps.Placed++
	ps.State.ManualOffset = mgl32.Vec3{}
	p := final.Position
	c.editor.SetStatus(fmt.Sprintf("Placed %s at (%.2f, %.2f, %.2f)", ps.Asset.DisplayName(), p.X(), p.Y(), p.Z()))
}

func (c *Coordinator) processTransform(st input.States) {
	ts := c.transform
	if ts == nil {
		return
	}
	cam := c.editor.Camera()
	if cam == nil {
		c.log.Debugf("transform: no camera")
		return
	}
	c.service.SetSpace(c.editor.Space())
	ts.State.Snap = c.cur.SnapConfig(st.Position.HalfStep)

	c.processControl(st)
	c.processKeyAdjustments(st, cam)

	pos := st.Position
	if pos.MouseInViewport {
		res := c.resolve(cam, pos.MousePosition, ts.Nodes)
		if res.Valid() {
			if !ts.HasDragStart {
				ts.DragStart = res.Position
				ts.HasDragStart = true
			}
			d := res.Position.Sub(ts.DragStart)
			d[1] = 0
			ts.Drag = d
		}
	}
	c.reapply()

	if pos.LeftClicked && pos.MouseInViewport {
		c.ExitTransformMode(true)
	}
}

// processControl runs the control-mode machine and, while a control mode is
// active, numeric entry.
func (c *Coordinator) processControl(st input.States) {
	if c.control.Update(st.ControlMode) {
		c.numeric.Clear()
		c.editor.SetStatus("Control: " + c.control.String())
	}
	if !c.control.Active() {
		return
	}
	v, ok := c.numeric.Feed(st.Numeric)
	if ok {
		c.applyNumeric(v)
		return
	}
	if st.Numeric.Any() && c.numeric.Active() {
		c.editor.SetStatus(c.control.String() + ": " + c.numeric.Text())
	}
}

func (c *Coordinator) applyNumeric(v float32) {
	st := c.activeState()
	if st == nil {
		return
	}
	axis := c.control.Axis
	switch c.control.Mode {
	case ControlPosition:
		if axis == AxisNone {
			c.editor.SetStatus("Choose an axis (X/Y/Z) first")
			return
		}
		c.nudge(axis.Index(), v)
	case ControlRotation:
		i := axis.Index()
		if i < 0 {
			i = 1
		}
		st.ManualRotation[i] = mgl32.DegToRad(v)
	case ControlScale:
		v = c.cur.clampScale(v)
		if i := axis.Index(); i >= 0 {
			st.NonUniformScale[i] = v
		} else {
			st.ScaleMultiplier = v
		}
	}
	c.reapply()
}

// processKeyAdjustments applies the height, nudge, rotation and scale keys
// to the active session.
func (c *Coordinator) processKeyAdjustments(in input.States, cam core.Camera) {
	st := c.activeState()
	if st == nil {
		return
	}
	p := in.Position
	hs := c.cur.heightStep(p.Modifiers)
	if p.HeightUp {
		c.nudge(1, hs)
	}
	if p.HeightDown {
		c.nudge(1, -hs)
	}
	if p.ResetHeight {
		c.resetHeight()
	}
	if p.HasMovement() {
		d := c.manualMove(cam, p)
		c.nudge(0, d.X())
		c.nudge(2, d.Z())
	}
	if p.ResetPosition {
		c.resetPosition()
	}

	rot := in.Rotation
	if !c.control.Active() {
		c.rotate(st, rot.Steps().Mul(c.signed(c.cur.rotationStep(rot.Modifiers), rot.Modifiers)))
	}
	if rot.Reset {
		st.ResetRotation()
	}

	sc := in.Scale
	step := c.cur.scaleStep(sc.Modifiers)
	if sc.Up {
		c.scaleBy(st, AxisNone, step)
	}
	if sc.Down {
		c.scaleBy(st, AxisNone, -step)
	}
	if sc.Reset {
		st.ResetScale()
	}
}

func (c *Coordinator) signed(v float32, m input.Modifiers) float32 {
	if m.Reverse {
		return -v
	}
	return v
}

// rotate adds deg (degrees, per axis) to the manual rotation.
func (c *Coordinator) rotate(st *transform.State, deg mgl32.Vec3) {
	if deg == (mgl32.Vec3{}) {
		return
	}
	st.ManualRotation = st.ManualRotation.Add(mgl32.Vec3{
		mgl32.DegToRad(deg[0]), mgl32.DegToRad(deg[1]), mgl32.DegToRad(deg[2]),
	})
}

func (c *Coordinator) scaleBy(st *transform.State, axis Axis, delta float32) {
	if i := axis.Index(); i >= 0 {
		st.NonUniformScale[i] = c.cur.clampScale(st.NonUniformScale[i] + delta)
		return
	}
	st.ScaleMultiplier = c.cur.clampScale(st.ScaleMultiplier + delta)
}

// cardinal flattens v onto XZ and snaps it to the nearest world axis.
func cardinal(v mgl32.Vec3) mgl32.Vec3 {
	x, z := v.X(), v.Z()
	ax, az := x, z
	if ax < 0 {
		ax = -ax
	}
	if az < 0 {
		az = -az
	}
	switch {
	case ax < 1e-6 && az < 1e-6:
		return mgl32.Vec3{}
	case ax >= az && x > 0:
		return mgl32.Vec3{1, 0, 0}
	case ax >= az:
		return mgl32.Vec3{-1, 0, 0}
	case z > 0:
		return mgl32.Vec3{0, 0, 1}
	}
	return mgl32.Vec3{0, 0, -1}
}

// manualMove is the camera-relative WASD nudge for this frame.
func (c *Coordinator) manualMove(cam core.Camera, p input.PositionInputState) mgl32.Vec3 {
	fwd := cardinal(cam.Forward())
	right := cardinal(cam.Right())
	var d mgl32.Vec3
	if p.MoveForward {
		d = d.Add(fwd)
	}
	if p.MoveBackward {
		d = d.Sub(fwd)
	}
	if p.MoveRight {
		d = d.Add(right)
	}
	if p.MoveLeft {
		d = d.Sub(right)
	}
	return d.Mul(c.cur.positionStep(p.Modifiers))
}

func (c *Coordinator) activeState() *transform.State {
	switch c.mode {
	case ModePlacement:
		if c.placement != nil {
			return &c.placement.State
		}
	case ModeTransform:
		if c.transform != nil {
			return &c.transform.State
		}
	}
	return nil
}

// nudge moves the active session by d along axis i. Y goes to the height
// accumulator, X and Z to the manual offset.
func (c *Coordinator) nudge(i int, d float32) {
	if d == 0 || i < 0 || i > 2 {
		return
	}
	switch {
	case c.mode == ModePlacement && c.placement != nil:
		if i == 1 {
			c.placement.State.HeightOffset += d
		} else {
			c.placement.State.ManualOffset[i] += d
		}
	case c.mode == ModeTransform && c.transform != nil:
		if i == 1 {
			c.transform.YDelta += d
		} else {
			c.transform.ManualDelta[i] += d
		}
	}
}

func (c *Coordinator) resetHeight() {
	switch {
	case c.mode == ModePlacement && c.placement != nil:
		c.placement.State.HeightOffset = 0
	case c.mode == ModeTransform && c.transform != nil:
		c.transform.YDelta = 0
	}
}

func (c *Coordinator) resetPosition() {
	switch {
	case c.mode == ModePlacement && c.placement != nil:
		c.placement.State.ManualOffset = mgl32.Vec3{}
	case c.mode == ModeTransform && c.transform != nil:
		c.transform.ManualDelta = mgl32.Vec3{}
		c.transform.Drag = mgl32.Vec3{}
		c.transform.HasDragStart = false
	}
}

// reapply writes the active session's state to its nodes.
func (c *Coordinator) reapply() {
	switch {
	case c.mode == ModePlacement && c.placement != nil:
		ps := c.placement
		ps.State.UpdatePosition(ps.State.BasePosition)
		ps.State.HasBounds = false
		if c.cur.SnapToBounds {
			if b, ok := core.WorldAABB(ps.Preview); ok {
				ps.State.Bounds = b.Translate(ps.Preview.GlobalPosition().Mul(-1))
				ps.State.HasBounds = true
			}
		}
		c.applicator.Apply(ps.Preview, ps.State, ps.Original)
	case c.mode == ModeTransform && c.transform != nil:
		ts := c.transform
		st := ts.groupState(c.cur.SnapToBounds)
		c.applicator.ApplyToMultiple(ts.Nodes, st, ts.offsets(st), ts.Originals)
	}
}

// HandleMouseWheel maps a wheel step (positive is up) to an adjustment of
// the active session. A held height, rotate or scale key picks the action
// and stops that key's auto-repeat; otherwise the control mode decides.
// It returns false when the event should go to the host camera.
func (c *Coordinator) HandleMouseWheel(dir int) bool {
	st := c.activeState()
	if st == nil || dir == 0 {
		return false
	}
	s := c.snapshot
	b := c.bindings
	m := input.Modifiers{Reverse: s.ReverseHeld(), Large: s.LargeHeld(), Fine: s.FineHeld()}
	d := float32(1)
	if dir < 0 {
		d = -1
	}
	d = c.signed(d, m)

	held := func(binding string) bool {
		if !s.IsKeyWithModifiersPressed(binding) {
			return false
		}
		s.MarkWheelInterrupted(s.BindingKey(binding))
		return true
	}

	switch {
	case held(b.HeightUp) || held(b.HeightDown):
		c.nudge(1, d*c.cur.heightStep(m))
	case held(b.RotateX):
		c.rotate(st, mgl32.Vec3{d * c.cur.rotationStep(m), 0, 0})
	case held(b.RotateY):
		c.rotate(st, mgl32.Vec3{0, d * c.cur.rotationStep(m), 0})
	case held(b.RotateZ):
		c.rotate(st, mgl32.Vec3{0, 0, d * c.cur.rotationStep(m)})
	case held(b.ScaleUp) || held(b.ScaleDown):
		c.scaleBy(st, AxisNone, d*c.cur.scaleStep(m))
	case c.control.Mode == ControlPosition:
		switch c.control.Axis {
		case AxisX, AxisZ:
			c.nudge(c.control.Axis.Index(), d*c.cur.positionStep(m))
		default:
			c.nudge(1, d*c.cur.heightStep(m))
		}
	case c.control.Mode == ControlRotation:
		axis := c.control.Axis
		if axis == AxisNone {
			axis = AxisY
		}
		c.rotate(st, axis.Vector().Mul(d*c.cur.rotationStep(m)))
	case c.control.Mode == ControlScale:
		c.scaleBy(st, c.control.Axis, d*c.cur.scaleStep(m))
	default:
		return false
	}
	c.reapply()
	return true
}
