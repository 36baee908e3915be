package placement

import (
	"errors"
	"fmt"

	"github.com/gekko3d/assetplacer/core"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownStrategy = errors.New("unknown placement strategy")

// Service owns one instance of each strategy and the active selection.
type Service struct {
	collision *CollisionStrategy
	plane     *PlaneStrategy
	active    Strategy
	cache     Config
	log       Logger
}

func NewService(space core.PhysicsSpace, log Logger) *Service {
	log = loggerOrNop(log)
	s := &Service{
		collision: NewCollisionStrategy(space, log),
		plane:     NewPlaneStrategy(),
		cache:     DefaultConfig(),
		log:       log,
	}
	s.active = s.collision
	return s
}

// SetSpace rebinds the physics space used by the collision strategy.
func (s *Service) SetSpace(space core.PhysicsSpace) {
	s.collision.SetSpace(space)
}

func (s *Service) strategy(t Type) Strategy {
	if t == TypePlane {
		return s.plane
	}
	return s.collision
}

func (s *Service) Active() Strategy { return s.active }

func (s *Service) ActiveType() Type { return s.active.Type() }

// SetStrategy switches the active strategy. It returns false when t is
// already active.
func (s *Service) SetStrategy(t Type) bool {
	if s.active.Type() == t {
		return false
	}
	s.active = s.strategy(t)
	s.log.Debugf("placement strategy: %s", t)
	return true
}

// SetStrategyByName is SetStrategy for a configured name. Unknown names leave
// the selection unchanged.
func (s *Service) SetStrategyByName(name string) (bool, error) {
	t, ok := ParseType(name)
	if !ok {
		s.log.Warnf("placement strategy %q is not known, keeping %s", name, s.active.Type())
		return false, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s.SetStrategy(t), nil
}

// Cycle toggles between the collision and plane strategies and returns the
// new active type.
func (s *Service) Cycle() Type {
	if s.active.Type() == TypeCollision {
		s.SetStrategy(TypePlane)
	} else {
		s.SetStrategy(TypeCollision)
	}
	return s.active.Type()
}

// Configure caches a copy of cfg, forwards it to both strategies and then
// applies cfg.Strategy, so configuration can switch the active strategy.
func (s *Service) Configure(cfg Config) {
	s.cache = cfg.Clone()
	s.collision.Configure(s.cache)
	s.plane.Configure(s.cache)
	if cfg.Strategy != "" {
		_, _ = s.SetStrategyByName(cfg.Strategy)
	}
}

// Config returns a copy of the cached configuration.
func (s *Service) Config() Config {
	return s.cache.Clone()
}

// Reset restores both strategies and the cache to defaults. The active
// selection is kept.
func (s *Service) Reset() {
	s.cache = DefaultConfig()
	s.collision.Reset()
	s.plane.Reset()
}

func (s *Service) CalculatePosition(from, to mgl32.Vec3, o Overrides) Result {
	return s.active.CalculatePosition(from, to, o)
}

// CalculatePositionWithStrategy queries the named strategy without changing
// the active one.
func (s *Service) CalculatePositionWithStrategy(name string, from, to mgl32.Vec3, o Overrides) (Result, error) {
	t, ok := ParseType(name)
	if !ok {
		s.log.Warnf("placement strategy %q is not known", name)
		return InvalidResult(), fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s.strategy(t).CalculatePosition(from, to, o), nil
}
