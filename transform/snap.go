package transform

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// SnapConfig controls grid snapping. X and Z share Enabled and Step; Y has
// its own flag and step. HalfStep halves both steps.
//
// CenterX/Y/Z select what snaps on each axis when bounds are known: the
// pivot (center mode) or the bounds' minimum edge (edge mode). Without
// bounds both modes snap the pivot.
type SnapConfig struct {
	Enabled bool
	Step    float32
	OffsetX float32
	OffsetZ float32

	YEnabled bool
	YStep    float32
	YOffset  float32

	HalfStep bool

	CenterX bool
	CenterY bool
	CenterZ bool
}

func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		Step:    1,
		YStep:   1,
		CenterX: true,
		CenterY: true,
		CenterZ: true,
	}
}

// SnapValue rounds v to the nearest multiple of step shifted by offset.
// A non-positive step leaves v unchanged.
func SnapValue(v, step, offset float32) float32 {
	if step <= 0 {
		return v
	}
	return math32.Round((v-offset)/step)*step + offset
}

func (c SnapConfig) effectiveStep(step float32) float32 {
	if c.HalfStep {
		return step / 2
	}
	return step
}

// XZStep is the horizontal step after the half-step modifier.
func (c SnapConfig) XZStep() float32 { return c.effectiveStep(c.Step) }

// YStepEffective is the vertical step after the half-step modifier.
func (c SnapConfig) YStepEffective() float32 { return c.effectiveStep(c.YStep) }

// Active reports whether any axis snaps.
func (c SnapConfig) Active() bool {
	return c.Enabled || c.YEnabled
}

// Snap snaps the pivot position p.
func (c SnapConfig) Snap(p mgl32.Vec3) mgl32.Vec3 {
	if c.Enabled {
		step := c.XZStep()
		p[0] = SnapValue(p[0], step, c.OffsetX)
		p[2] = SnapValue(p[2], step, c.OffsetZ)
	}
	if c.YEnabled {
		p[1] = SnapValue(p[1], c.YStepEffective(), c.YOffset)
	}
	return p
}

// SnapWithBounds snaps p where rel is the object's bounds relative to p.
// Axes in edge mode put the bounds' minimum edge on a grid line; axes in
// center mode snap the pivot.
func (c SnapConfig) SnapWithBounds(p mgl32.Vec3, rel core.AABB) mgl32.Vec3 {
	if rel.IsEmpty() {
		return c.Snap(p)
	}
	axis := func(i int, step, offset float32, center bool) float32 {
		if center {
			return SnapValue(p[i], step, offset)
		}
		edge := p[i] + rel.Min[i]
		return SnapValue(edge, step, offset) - rel.Min[i]
	}
	if c.Enabled {
		step := c.XZStep()
		p[0] = axis(0, step, c.OffsetX, c.CenterX)
		p[2] = axis(2, step, c.OffsetZ, c.CenterZ)
	}
	if c.YEnabled {
		p[1] = axis(1, c.YStepEffective(), c.YOffset, c.CenterY)
	}
	return p
}
