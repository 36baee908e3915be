package placement

import (
	"strings"

	"github.com/gekko3d/assetplacer/core"
	"github.com/jinzhu/copier"
)

type Type int

const (
	TypeCollision Type = iota
	TypePlane
)

func (t Type) String() string {
	switch t {
	case TypeCollision:
		return "collision"
	case TypePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// ParseType resolves a strategy name, case-insensitively.
func ParseType(name string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "collision":
		return TypeCollision, true
	case "plane":
		return TypePlane, true
	}
	return 0, false
}

const (
	DefaultCollisionMask uint32  = 1
	DefaultRayLength     float32 = 1000
)

// Config is shared by both strategies. Strategy names the type that
// Service.Configure should make active; empty keeps the current one.
type Config struct {
	Strategy       string
	CollisionMask  uint32
	FallbackHeight float32
	UseFallback    bool
	PlaneHeight    float32
	RayLength      float32

	// Nodes whose collision shapes are ignored by ray queries. These are
	// host handles and are never deep-copied.
	Exclude []core.Node `copier:"-"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:      TypeCollision.String(),
		CollisionMask: DefaultCollisionMask,
		UseFallback:   true,
		RayLength:     DefaultRayLength,
	}
}

// Clone returns a deep copy. The Exclude slice is copied, the nodes are not.
func (c Config) Clone() Config {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		out = c
	}
	if c.Exclude != nil {
		out.Exclude = append([]core.Node(nil), c.Exclude...)
	}
	return out
}

// Overrides are per-call values that win over the cached Config.
type Overrides struct {
	CollisionMask  *uint32
	FallbackHeight *float32
	UseFallback    *bool
	PlaneHeight    *float32
	Exclude        []core.Node
}

// Merge applies o over c.
func (c Config) Merge(o Overrides) Config {
	out := c
	if o.CollisionMask != nil {
		out.CollisionMask = *o.CollisionMask
	}
	if o.FallbackHeight != nil {
		out.FallbackHeight = *o.FallbackHeight
	}
	if o.UseFallback != nil {
		out.UseFallback = *o.UseFallback
	}
	if o.PlaneHeight != nil {
		out.PlaneHeight = *o.PlaneHeight
	}
	if o.Exclude != nil {
		out.Exclude = o.Exclude
	}
	return out
}
