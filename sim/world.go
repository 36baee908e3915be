package sim

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// World is a box-collider physics space. The broadphase grid is rebuilt
// from the bodies' current world bounds on every query, so bodies moved by
// the editor are seen immediately.
type World struct {
	grid    *SpatialHashGrid
	bodies  map[core.RID]*Body
	nextRID core.RID
}

func NewWorld(cellSize float32) *World {
	return &World{
		grid:   NewSpatialHashGrid(cellSize),
		bodies: make(map[core.RID]*Body),
	}
}

// NewBody creates a detached body with the given local bounds on layer 1.
func (w *World) NewBody(name string, bounds core.AABB) *Body {
	w.nextRID++
	b := &Body{Node: NewNode(name), rid: w.nextRID, Layer: 1}
	b.self = b
	b.Bounds = bounds
	w.bodies[b.rid] = b
	return b
}

// Remove unregisters b from the space.
func (w *World) Remove(b *Body) {
	delete(w.bodies, b.rid)
}

func (w *World) Body(rid core.RID) (*Body, bool) {
	b, ok := w.bodies[rid]
	return b, ok
}

func (w *World) rebuild() (core.AABB, map[core.RID]core.AABB) {
	w.grid.Clear()
	all := core.EmptyAABB()
	boxes := make(map[core.RID]core.AABB, len(w.bodies))
	for rid, b := range w.bodies {
		if !core.IsUsable(b) {
			continue
		}
		box, ok := core.WorldAABB(b)
		if !ok {
			continue
		}
		boxes[rid] = box
		all = all.Merge(box)
		w.grid.Insert(rid, box)
	}
	return all, boxes
}

// IntersectRay returns the nearest body hit on the segment q.From -> q.To.
func (w *World) IntersectRay(q core.RayQuery) (core.RayHit, bool) {
	if !q.CollideWithBodies {
		return core.RayHit{}, false
	}
	seg := q.To.Sub(q.From)
	length := seg.Len()
	if length < 1e-6 {
		return core.RayHit{}, false
	}
	dir := seg.Mul(1 / length)

	all, boxes := w.rebuild()
	if all.IsEmpty() {
		return core.RayHit{}, false
	}
	t0, _, ok := all.IntersectRay(q.From, dir)
	if !ok || t0 > length {
		return core.RayHit{}, false
	}

	// Walk the segment in cell-sized steps, collecting broadphase candidates.
	unique := make(map[core.RID]struct{})
	var candidates []core.RID
	step := w.grid.CellSize()
	for t := t0; t <= length; t += step {
		a := q.From.Add(dir.Mul(t))
		b := q.From.Add(dir.Mul(math32.Min(t+step, length)))
		seg := core.EmptyAABB().Expand(a).Expand(b)
		candidates = w.grid.queryInto(seg, unique, candidates)
	}

	best := core.RayHit{}
	bestT := math32.Inf(1)
	for _, rid := range candidates {
		if q.Excludes(rid) || w.bodies[rid].Layer&q.CollisionMask == 0 {
			continue
		}
		t, normal, ok := boxes[rid].IntersectRay(q.From, dir)
		if !ok || t > length || t >= bestT {
			continue
		}
		bestT = t
		best = core.RayHit{Position: q.From.Add(dir.Mul(t)), Normal: normal, Collider: rid}
	}
	if math32.IsInf(bestT, 1) {
		return core.RayHit{}, false
	}
	return best, true
}

var _ core.PhysicsSpace = (*World)(nil)

// unitBounds is the local box of a unit cube centered on the pivot.
func unitBounds() core.AABB {
	return core.AABB{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}
}
