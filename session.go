package placer

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/placement"
	"github.com/gekko3d/assetplacer/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Mode int

const (
	ModeNone Mode = iota
	ModePlacement
	ModeTransform
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "NONE"
	case ModePlacement:
		return "PLACEMENT"
	case ModeTransform:
		return "TRANSFORM"
	}
	return "UNKNOWN"
}

// PlacementSession is the state of one placement mode run.
type PlacementSession struct {
	ID    uuid.UUID
	Asset core.Asset
	// Preview follows the mouse; it is removed on exit.
	Preview core.Node
	// Original is the preview's transform when it was created.
	Original core.Transform
	State    transform.State

	LastResult placement.Result
	Placed     int
}

// TransformSession is the state of one transform mode run over a fixed node
// set. Nodes are only ever positioned relative to Originals.
type TransformSession struct {
	ID        uuid.UUID
	Nodes     []core.Node
	Originals []core.Transform
	// Saved holds what cancel and undo write back.
	Saved []core.SavedTransform

	// OriginalCentroid is the mean of the original positions.
	OriginalCentroid mgl32.Vec3
	// Bounds is the combined world bounds of the nodes, relative to
	// OriginalCentroid.
	Bounds core.AABB

	DragStart    mgl32.Vec3
	HasDragStart bool
	// Drag is the XZ mouse drag since DragStart.
	Drag mgl32.Vec3
	// ManualDelta accumulates keyboard and numeric nudges.
	ManualDelta mgl32.Vec3
	YDelta      float32

	// State carries the shared rotation, scale and snap settings.
	State transform.State
}

func newTransformSession(nodes []core.Node) *TransformSession {
	ts := &TransformSession{
		ID:        uuid.New(),
		Nodes:     nodes,
		Originals: make([]core.Transform, len(nodes)),
		Saved:     make([]core.SavedTransform, len(nodes)),
		Bounds:    core.EmptyAABB(),
		State:     transform.NewState(),
	}
	var sum mgl32.Vec3
	for i, n := range nodes {
		ts.Saved[i] = core.SaveTransform(n)
		ts.Originals[i] = ts.Saved[i].Global
		sum = sum.Add(ts.Originals[i].Position)
	}
	ts.OriginalCentroid = sum.Mul(1 / float32(len(nodes)))

	combined := core.EmptyAABB()
	for _, n := range nodes {
		if b, ok := core.WorldAABB(n); ok {
			combined = combined.Merge(b)
		}
	}
	if !combined.IsEmpty() {
		ts.Bounds = combined.Translate(ts.OriginalCentroid.Mul(-1))
	}
	ts.State.BasePosition = ts.OriginalCentroid
	ts.State.Position = ts.OriginalCentroid
	return ts
}

// groupState is the State for this frame: the current centroid with the
// session's rotation, scale and snap settings.
func (ts *TransformSession) groupState(useBounds bool) transform.State {
	current := ts.OriginalCentroid.Add(ts.Drag).Add(ts.ManualDelta)
	current[1] = ts.OriginalCentroid.Y() + ts.YDelta

	st := ts.State
	st.BasePosition = current
	st.Position = current
	st.Bounds = ts.Bounds
	st.HasBounds = useBounds && !ts.Bounds.IsEmpty()
	return st
}

// offsets are each node's original position relative to the snapped
// original centroid.
func (ts *TransformSession) offsets(st transform.State) []mgl32.Vec3 {
	orig := st
	orig.Position = ts.OriginalCentroid
	center := orig.SnappedPosition()
	out := make([]mgl32.Vec3, len(ts.Originals))
	for i, o := range ts.Originals {
		out[i] = o.Position.Sub(center)
	}
	return out
}

// finals are the transforms the nodes take this frame.
func (ts *TransformSession) finals(useBounds bool) []core.Transform {
	st := ts.groupState(useBounds)
	return transform.GroupFinals(st, ts.offsets(st), ts.Originals)
}
