package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/solar-orbits/internal/config"
)

// Camera is a perspective camera. Its orientation only changes through
// LookAt, so moving Position alone (zooming) keeps the current heading.
type Camera struct {
	Position mgl64.Vec3
	Up       mgl64.Vec3

	FovY   float64 // degrees
	Aspect float64
	Near   float64
	Far    float64

	rotation   mgl64.Mat4
	projection mgl64.Mat4
}

// Projected is a world point mapped to the screen.
type Projected struct {
	X, Y  float64
	Depth float64
	// Scale is the number of pixels one world unit covers at Depth.
	Scale float64
}

// Ray is a half line with a unit direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewCamera returns a camera at (0, 0, CameraStartZ) looking down -Z.
func NewCamera(aspect float64) *Camera {
	c := &Camera{
		Position: mgl64.Vec3{0, 0, config.CameraStartZ},
		Up:       mgl64.Vec3{0, 1, 0},
		FovY:     config.CameraFovY,
		Aspect:   aspect,
		Near:     config.CameraNear,
		Far:      config.CameraFar,
		rotation: mgl64.Ident4(),
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix must be called after changing FovY, Aspect, Near or Far.
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// LookAt turns the camera toward target. Degenerate directions (target at
// the camera, or straight along Up) leave the orientation unchanged.
func (c *Camera) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < 1e-9 || dir.Cross(c.Up).Len() < 1e-9 {
		return
	}
	m := mgl64.LookAtV(c.Position, target, c.Up)
	m[12], m[13], m[14] = 0, 0, 0
	c.rotation = m
}

func (c *Camera) View() mgl64.Mat4 {
	return c.rotation.Mul4(mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

func (c *Camera) Projection() mgl64.Mat4 { return c.projection }

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.projection.Mul4(c.View())
}

// RayThrough returns the ray from the camera through a point given in
// normalized device coordinates.
func (c *Camera) RayThrough(ndcX, ndcY float64) Ray {
	inv := c.ViewProjection().Inv()
	p := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, 0.5, 1})
	target := p.Vec3().Mul(1 / p.W())
	return Ray{Origin: c.Position, Direction: target.Sub(c.Position).Normalize()}
}

// Project maps a world point onto a width x height screen. ok is false when
// the point is behind the camera or outside the near/far range.
func (c *Camera) Project(p mgl64.Vec3, width, height int) (Projected, bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return Projected{}, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return Projected{}, false
	}
	return Projected{
		X:     (ndc.X() + 1) * 0.5 * float64(width),
		Y:     (1 - ndc.Y()) * 0.5 * float64(height),
		Depth: w,
		Scale: c.projection.At(1, 1) * float64(height) * 0.5 / w,
	}, true
}

// IntersectSphere returns the distance along r to the first hit on a sphere.
func (r Ray) IntersectSphere(center mgl64.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	cc := oc.Dot(oc) - radius*radius
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
