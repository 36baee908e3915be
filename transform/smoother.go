package transform

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Smoother eases nodes toward per-axis targets instead of writing them
// directly.
type Smoother interface {
	Enabled() bool
	SetTargetPosition(n core.Node, p mgl32.Vec3)
	SetTargetRotation(n core.Node, r mgl32.Vec3)
	SetTargetScale(n core.Node, s mgl32.Vec3)
	// Clear drops any pending target for n.
	Clear(n core.Node)
	ClearAll()
}

type smoothTarget struct {
	position, rotation, scale          mgl32.Vec3
	hasPosition, hasRotation, hasScale bool
}

// LerpSmoother moves each node a fraction of the remaining distance per
// Step, proportional to Speed*dt.
type LerpSmoother struct {
	Speed   float32
	enabled bool
	targets map[core.Node]*smoothTarget
}

const DefaultSmoothingSpeed float32 = 12

func NewLerpSmoother(speed float32) *LerpSmoother {
	if speed <= 0 {
		speed = DefaultSmoothingSpeed
	}
	return &LerpSmoother{Speed: speed, targets: make(map[core.Node]*smoothTarget)}
}

func (l *LerpSmoother) Enabled() bool { return l.enabled }

func (l *LerpSmoother) SetEnabled(enabled bool) {
	l.enabled = enabled
	if !enabled {
		l.ClearAll()
	}
}

func (l *LerpSmoother) target(n core.Node) *smoothTarget {
	t, ok := l.targets[n]
	if !ok {
		t = &smoothTarget{}
		l.targets[n] = t
	}
	return t
}

func (l *LerpSmoother) SetTargetPosition(n core.Node, p mgl32.Vec3) {
	t := l.target(n)
	t.position, t.hasPosition = p, true
}

func (l *LerpSmoother) SetTargetRotation(n core.Node, r mgl32.Vec3) {
	t := l.target(n)
	t.rotation, t.hasRotation = r, true
}

func (l *LerpSmoother) SetTargetScale(n core.Node, s mgl32.Vec3) {
	t := l.target(n)
	t.scale, t.hasScale = s, true
}

func (l *LerpSmoother) Clear(n core.Node) { delete(l.targets, n) }

func (l *LerpSmoother) ClearAll() {
	for n := range l.targets {
		delete(l.targets, n)
	}
}

// Pending reports how many nodes still have targets.
func (l *LerpSmoother) Pending() int { return len(l.targets) }

const settleEpsilon float32 = 1e-4

func approach(cur, target mgl32.Vec3, alpha float32) (mgl32.Vec3, bool) {
	next := cur.Add(target.Sub(cur).Mul(alpha))
	if next.Sub(target).Len() < settleEpsilon {
		return target, true
	}
	return next, false
}

// Step advances every target by dt seconds. Nodes that reached their targets,
// or left the tree, are dropped.
func (l *LerpSmoother) Step(dt float32) {
	alpha := math32.Min(1, math32.Max(0, l.Speed*dt))
	for n, t := range l.targets {
		if !core.IsUsable(n) {
			delete(l.targets, n)
			continue
		}
		done := true
		if t.hasPosition {
			p, ok := approach(n.GlobalPosition(), t.position, alpha)
			n.SetGlobalPosition(p)
			done = done && ok
		}
		if t.hasRotation {
			r, ok := approach(n.GlobalRotation(), t.rotation, alpha)
			n.SetGlobalRotation(r)
			done = done && ok
		}
		if t.hasScale {
			s, ok := approach(n.Scale(), t.scale, alpha)
			n.SetScale(s)
			done = done && ok
		}
		if done {
			delete(l.targets, n)
		}
	}
}
