package scene

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/solar-orbits/internal/config"
)

// OrbitPosition is the point on a circle of radius in the X-Z plane at
// angle speed*tMillis.
func OrbitPosition(radius, speed, tMillis float64) mgl64.Vec3 {
	angle := tMillis * speed
	return mgl64.Vec3{radius * math.Cos(angle), 0, radius * math.Sin(angle)}
}

// AdvanceOrbits spins the sun by a fixed step and places both planets for
// elapsed time t. The spin is per call, so it follows the frame rate.
func (s *Scene) AdvanceOrbits(t time.Duration) {
	ms := float64(t) / float64(time.Millisecond)

	s.Sun.RotationY += config.SunSpinPerFrame
	for _, b := range []*Body{s.Mercury, s.Venus} {
		b.Position = OrbitPosition(b.OrbitRadius, b.AngularSpeed, ms)
	}
}

// Tick runs one frame of animation: orbits first, then the twinkle.
func (s *Scene) Tick(t time.Duration) {
	s.AdvanceOrbits(t)
	s.Stars.Twinkle(s.rng)
}
