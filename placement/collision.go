package placement

import (
	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

// CollisionStrategy raycasts against the physics space and falls back to a
// horizontal plane at FallbackHeight when nothing is hit.
type CollisionStrategy struct {
	space core.PhysicsSpace
	cfg   Config
	log   Logger
}

func NewCollisionStrategy(space core.PhysicsSpace, log Logger) *CollisionStrategy {
	return &CollisionStrategy{space: space, cfg: DefaultConfig(), log: loggerOrNop(log)}
}

func (c *CollisionStrategy) Type() Type   { return TypeCollision }
func (c *CollisionStrategy) Name() string { return TypeCollision.String() }

func (c *CollisionStrategy) SetSpace(space core.PhysicsSpace) {
	c.space = space
}

func (c *CollisionStrategy) Configure(cfg Config) {
	c.cfg = cfg.Clone()
}

func (c *CollisionStrategy) Config() Config { return c.cfg.Clone() }

func (c *CollisionStrategy) Reset() {
	c.cfg = DefaultConfig()
}

func (c *CollisionStrategy) CalculatePosition(from, to mgl32.Vec3, o Overrides) Result {
	cfg := c.cfg.Merge(o)
	if c.space == nil {
		c.log.Debugf("collision placement: no physics space, using fallback")
		return c.miss(from, to, cfg)
	}

	q := BuildRayQuery(from, to, cfg.CollisionMask, GatherExclusions(cfg.Exclude))
	hit, ok := c.space.IntersectRay(q)
	if !ok {
		return c.miss(from, to, cfg)
	}
	normal := hit.Normal
	if normal.Len() > 1e-6 {
		normal = normal.Normalize()
	}
	return NewResult(hit.Position, normal, true, hit.Position.Sub(from).Len())
}

func (c *CollisionStrategy) miss(from, to mgl32.Vec3, cfg Config) Result {
	if !cfg.UseFallback {
		return InvalidResult()
	}
	pos := ProjectToPlane(from, to, cfg.FallbackHeight)
	return NewResult(pos, Up, false, pos.Sub(from).Len())
}
