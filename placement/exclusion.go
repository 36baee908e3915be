package placement

import "github.com/gekko3d/assetplacer/core"

// GatherExclusions collects the collision RIDs a ray must skip so that nodes
// being moved do not hit themselves. It walks each node's subtree and, for
// every CSG ancestor, the collision-capable children of that ancestor's
// parent.
//
// CSG shapes that do not expose a RID cannot be excluded; rays may still hit
// a dragged CSG combiner.
func GatherExclusions(nodes []core.Node) []core.RID {
	var out []core.RID
	seen := make(map[core.RID]struct{})
	add := func(n core.Node) {
		co, ok := n.(core.CollisionObject)
		if !ok {
			return
		}
		rid := co.CollisionRID()
		if _, dup := seen[rid]; dup {
			return
		}
		seen[rid] = struct{}{}
		out = append(out, rid)
	}

	var walk func(n core.Node)
	walk = func(n core.Node) {
		if n == nil || !n.IsValid() {
			return
		}
		add(n)
		for _, c := range n.Children() {
			walk(c)
		}
	}

	for _, n := range nodes {
		if n == nil || !n.IsValid() {
			continue
		}
		walk(n)
		for a := n.Parent(); a != nil; a = a.Parent() {
			csg, ok := a.(core.CSGShape)
			if !ok || !csg.IsCSGShape() {
				continue
			}
			if p := a.Parent(); p != nil {
				for _, sib := range p.Children() {
					add(sib)
				}
			}
		}
	}
	return out
}
