package transform

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Logger is the part of the plugin logger the applicator writes to.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Applicator writes States to nodes, through a Smoother when one is enabled.
type Applicator struct {
	smoother Smoother
	log      Logger
}

func NewApplicator(smoother Smoother, log Logger) *Applicator {
	if log == nil {
		log = nopLogger{}
	}
	return &Applicator{smoother: smoother, log: log}
}

func (a *Applicator) SetSmoother(s Smoother) { a.smoother = s }

func (a *Applicator) Smoother() Smoother { return a.smoother }

func (a *Applicator) smoothing() bool {
	return a.smoother != nil && a.smoother.Enabled()
}

func (a *Applicator) usable(n core.Node) bool {
	if core.IsUsable(n) {
		return true
	}
	if n != nil {
		a.log.Debugf("skipping node %q: not in tree", n.Name())
	}
	return false
}

// Apply writes st composed over original to n.
func (a *Applicator) Apply(n core.Node, st State, original core.Transform) {
	if !a.usable(n) {
		return
	}
	a.write(n, st.Final(original))
}

func (a *Applicator) write(n core.Node, t core.Transform) {
	if a.smoothing() {
		a.smoother.SetTargetPosition(n, t.Position)
		a.smoother.SetTargetRotation(n, t.Rotation)
		a.smoother.SetTargetScale(n, t.Scale)
		return
	}
	core.SetTransform(n, t)
}

func (a *Applicator) ApplyPositionOnly(n core.Node, st State) {
	if !a.usable(n) {
		return
	}
	p := st.SnappedPosition()
	if a.smoothing() {
		a.smoother.SetTargetPosition(n, p)
		return
	}
	n.SetGlobalPosition(p)
}

func (a *Applicator) ApplyRotationOnly(n core.Node, st State, original core.Transform) {
	if !a.usable(n) {
		return
	}
	r := st.FinalRotation(original.Rotation)
	if a.smoothing() {
		a.smoother.SetTargetRotation(n, r)
		return
	}
	n.SetGlobalRotation(r)
}

func (a *Applicator) ApplyScaleOnly(n core.Node, st State, original core.Transform) {
	if !a.usable(n) {
		return
	}
	s := st.FinalScale(original.Scale)
	if a.smoothing() {
		a.smoother.SetTargetScale(n, s)
		return
	}
	n.SetScale(s)
}

// ApplyToMultiple moves a group that shares one logical center. The group
// position is snapped once; node i lands at that position plus offsets[i]
// and takes the group's rotation and scale composed over originals[i].
func (a *Applicator) ApplyToMultiple(nodes []core.Node, st State, offsets []mgl32.Vec3, originals []core.Transform) {
	finals := GroupFinals(st, offsets, originals)
	for i := 0; i < min(len(nodes), len(finals)); i++ {
		if !a.usable(nodes[i]) {
			continue
		}
		a.write(nodes[i], finals[i])
	}
}

// GroupFinals computes the transforms ApplyToMultiple writes. Each member
// gets its own State copied from st, positioned at the snapped group
// position plus its offset, with snapping turned off.
func GroupFinals(st State, offsets []mgl32.Vec3, originals []core.Transform) []core.Transform {
	center := st.SnappedPosition()
	count := min(len(offsets), len(originals))
	out := make([]core.Transform, count)
	for i := 0; i < count; i++ {
		member := st
		member.Position = center.Add(offsets[i])
		member.BasePosition = member.Position
		member.Snap.Enabled = false
		member.Snap.YEnabled = false
		member.HasBounds = false
		out[i] = member.Final(originals[i])
	}
	return out
}

// ForceApplyImmediate writes t to n and drops any smoothing target so the
// node holds exactly t.
func (a *Applicator) ForceApplyImmediate(n core.Node, t core.Transform) {
	if !a.usable(n) {
		return
	}
	if a.smoother != nil {
		a.smoother.Clear(n)
	}
	core.SetTransform(n, t)
}

// Restore puts n back on a saved transform and drops any smoothing target.
func (a *Applicator) Restore(n core.Node, saved core.SavedTransform) {
	if !a.usable(n) {
		return
	}
	if a.smoother != nil {
		a.smoother.Clear(n)
	}
	saved.Restore(n)
}
