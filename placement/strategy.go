package placement

import "github.com/go-gl/mathgl/mgl32"

// Strategy resolves a camera ray to a placement position. There are exactly
// two implementations, CollisionStrategy and PlaneStrategy.
type Strategy interface {
	Type() Type
	Name() string
	// Configure replaces the strategy's own config; Reset restores defaults.
	Configure(cfg Config)
	Config() Config
	Reset()
	// CalculatePosition resolves the ray from -> to with the strategy's
	// config and o merged over it.
	CalculatePosition(from, to mgl32.Vec3, o Overrides) Result
}

// Logger is the part of the plugin logger the placement code writes to.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

func loggerOrNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}
