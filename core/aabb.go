package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned box. The zero value is a degenerate box at the
// origin; use EmptyAABB for an accumulator.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyAABB returns a box with min/max at +/- infinity so that the first
// Expand defines it.
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether max < min on any axis.
func (b AABB) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) HalfExtents() mgl32.Vec3 {
	return b.Size().Mul(0.5)
}

// Expand grows the box to contain p.
func (b AABB) Expand(p mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
	return b
}

// Merge returns the union of b and o. Empty boxes are ignored.
func (b AABB) Merge(o AABB) AABB {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.Expand(o.Min).Expand(o.Max)
}

func (b AABB) Translate(d mgl32.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Transformed returns the world-space box that encloses b under t.
func (b AABB) Transformed(t Transform) AABB {
	if b.IsEmpty() {
		return b
	}
	m := t.ObjectToWorld()
	out := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{b.Min.X(), b.Min.Y(), b.Min.Z()}
		if i&1 != 0 {
			corner[0] = b.Max.X()
		}
		if i&2 != 0 {
			corner[1] = b.Max.Y()
		}
		if i&4 != 0 {
			corner[2] = b.Max.Z()
		}
		out = out.Expand(m.Mul4x1(corner.Vec4(1.0)).Vec3())
	}
	return out
}

// IntersectRay returns the entry distance along dir (slab test). dir does not
// need to be normalized; t is in units of dir.
func (b AABB) IntersectRay(origin, dir mgl32.Vec3) (t float32, normal mgl32.Vec3, ok bool) {
	tMin := math32.Inf(-1)
	tMax := math32.Inf(1)
	axis := -1
	sign := float32(0)

	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) < 1e-8 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		s := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tMin {
			tMin = t1
			axis = i
			sign = s
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, mgl32.Vec3{}, false
		}
	}

	if tMax < 0 {
		return 0, mgl32.Vec3{}, false
	}
	if tMin < 0 {
		// Origin inside the box.
		return 0, mgl32.Vec3{0, 1, 0}, true
	}
	if axis >= 0 {
		normal[axis] = sign
	}
	return tMin, normal, true
}
