package placement

import "github.com/go-gl/mathgl/mgl32"

// PlaneStrategy projects onto the horizontal plane at PlaneHeight. It never
// fails and never reports a collision.
type PlaneStrategy struct {
	cfg Config
}

func NewPlaneStrategy() *PlaneStrategy {
	return &PlaneStrategy{cfg: DefaultConfig()}
}

func (p *PlaneStrategy) Type() Type   { return TypePlane }
func (p *PlaneStrategy) Name() string { return TypePlane.String() }

func (p *PlaneStrategy) Configure(cfg Config) {
	p.cfg = cfg.Clone()
}

func (p *PlaneStrategy) Config() Config { return p.cfg.Clone() }

func (p *PlaneStrategy) Reset() {
	p.cfg = DefaultConfig()
}

func (p *PlaneStrategy) CalculatePosition(from, to mgl32.Vec3, o Overrides) Result {
	cfg := p.cfg.Merge(o)
	pos := ProjectToPlane(from, to, cfg.PlaneHeight)
	return NewResult(pos, Up, false, pos.Sub(from).Len())
}
