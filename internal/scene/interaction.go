package scene

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/solar-orbits/internal/config"
)

// Command is a bound action triggered by a button or key.
type Command func()

// Intersection is a ray hit on a body.
type Intersection struct {
	Body     *Body
	Distance float64
}

// Resize adapts the camera and the render surface to a new viewport.
// Non-positive sizes (a minimised window) are ignored.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Camera.Aspect = float64(width) / float64(height)
	s.Camera.UpdateProjectionMatrix()
	s.surface.SetSize(width, height)
	s.log.Debug("resized to %dx%d", width, height)
}

// normalize maps a pointer position to [-1, 1] on both axes with +Y up.
func (s *Scene) normalize(x, y float64) (nx, ny float64, ok bool) {
	w, h := s.surface.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return x/float64(w)*2 - 1, -(y/float64(h))*2 + 1, true
}

// MouseMove snaps the camera to the pointer and re-aims it at the origin.
func (s *Scene) MouseMove(x, y float64) {
	nx, ny, ok := s.normalize(x, y)
	if !ok {
		return
	}
	s.Camera.Position[0] = nx * config.CameraPanScale
	s.Camera.Position[1] = ny * config.CameraPanScale
	s.Camera.LookAt(mgl64.Vec3{})
}

// Intersect returns the bodies hit by r, nearest first. Ties keep scene
// graph order.
func (s *Scene) Intersect(r Ray) []Intersection {
	var hits []Intersection
	for _, b := range s.Bodies() {
		if d, ok := r.IntersectSphere(b.Position, b.Radius); ok {
			hits = append(hits, Intersection{Body: b, Distance: d})
		}
	}
	slices.SortStableFunc(hits, func(a, b Intersection) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// Click picks the nearest body under the pointer and shows its info. A miss
// leaves the panel alone unless DismissOnEmptyClick was set.
func (s *Scene) Click(x, y float64) (*Body, bool) {
	nx, ny, ok := s.normalize(x, y)
	if !ok {
		return nil, false
	}
	hits := s.Intersect(s.Camera.RayThrough(nx, ny))
	if len(hits) == 0 {
		if s.dismissOnEmptyClick {
			s.Info.Hide()
		}
		return nil, false
	}
	b := hits[0].Body
	s.Info.Show(b)
	s.log.Debug("picked %s at distance %.1f", b.Name(), hits[0].Distance)
	return b, true
}

// Dismiss hides the info panel.
func (s *Scene) Dismiss() { s.Info.Hide() }

// ZoomIn returns a command moving the camera ZoomStep units toward -Z.
func (s *Scene) ZoomIn() Command {
	return func() { s.Camera.Position[2] -= config.ZoomStep }
}

// ZoomOut returns a command moving the camera ZoomStep units toward +Z.
func (s *Scene) ZoomOut() Command {
	return func() { s.Camera.Position[2] += config.ZoomStep }
}
