package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a Y-up yaw/pitch camera with a perspective pick ray. Yaw 0 looks
// down -Z; negative pitch looks down.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	FovY     float32 // degrees
	Width    int
	Height   int
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 10, 10},
		Pitch:    -math32.Pi / 4,
		FovY:     60,
		Width:    width,
		Height:   height,
	}
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.Position)
	if d.Len() < 1e-6 {
		return
	}
	d = d.Normalize()
	c.Pitch = math32.Asin(d.Y())
	c.Yaw = math32.Atan2(d.X(), -d.Z())
}

func (c *Camera) Forward() mgl32.Vec3 {
	cp, sp := math32.Cos(c.Pitch), math32.Sin(c.Pitch)
	return mgl32.Vec3{cp * math32.Sin(c.Yaw), sp, -cp * math32.Cos(c.Yaw)}
}

func (c *Camera) Right() mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(c.Yaw), 0, math32.Sin(c.Yaw)}
}

func (c *Camera) up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward())
}

func (c *Camera) aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

func (c *Camera) tanHalfFov() float32 {
	fov := c.FovY
	if fov <= 0 {
		fov = 60
	}
	return math32.Tan(mgl32.DegToRad(fov) / 2)
}

func (c *Camera) ProjectRayOrigin(screen mgl32.Vec2) mgl32.Vec3 {
	return c.Position
}

// ProjectRayNormal returns the normalized world direction through a
// viewport pixel.
func (c *Camera) ProjectRayNormal(screen mgl32.Vec2) mgl32.Vec3 {
	w, h := float32(c.Width), float32(c.Height)
	if w == 0 || h == 0 {
		return c.Forward()
	}
	nx := (2*screen.X())/w - 1
	ny := 1 - (2*screen.Y())/h

	t := c.tanHalfFov()
	dir := c.Forward().Add(c.Right().Mul(nx * c.aspect() * t)).Add(c.up().Mul(ny * t))
	return dir.Normalize()
}

// ScreenPosition is the inverse of ProjectRayNormal: the viewport pixel whose
// pick ray passes through world. It returns false for points behind the
// camera.
func (c *Camera) ScreenPosition(world mgl32.Vec3) (mgl32.Vec2, bool) {
	d := world.Sub(c.Position)
	z := d.Dot(c.Forward())
	if z <= 1e-6 {
		return mgl32.Vec2{}, false
	}
	t := c.tanHalfFov()
	nx := d.Dot(c.Right()) / (z * c.aspect() * t)
	ny := d.Dot(c.up()) / (z * t)
	return mgl32.Vec2{
		(nx + 1) / 2 * float32(c.Width),
		(1 - ny) / 2 * float32(c.Height),
	}, true
}
