package scene

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/solar-orbits/internal/config"
)

const eps = 1e-6

type fakeSurface struct{ w, h int }

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }
func (f *fakeSurface) SetSize(w, h int) { f.w, f.h = w, h }

func newTestScene(t *testing.T, opts Options) (*Scene, *fakeSurface) {
	t.Helper()
	surf := &fakeSurface{w: 800, h: 600}
	opts.Surface = surf
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s, surf
}

func TestNewWithoutSurface(t *testing.T) {
	_, err := New(Options{})
	if !errors.Is(err, ErrNoSurface) {
		t.Fatalf("expected ErrNoSurface, got %v", err)
	}
}

func TestNewBuildsFixedScene(t *testing.T) {
	s, _ := newTestScene(t, Options{})

	bodies := s.Bodies()
	if len(bodies) != 3 {
		t.Fatalf("expected 3 bodies, got %d", len(bodies))
	}
	for i, want := range []BodyID{Sun, Mercury, Venus} {
		if bodies[i].ID != want {
			t.Errorf("body %d: expected %v, got %v", i, want, bodies[i].ID)
		}
	}
	if s.Stars.Len() != config.StarCount || len(s.Stars.Materials) != config.StarCount {
		t.Errorf("expected %d stars and materials, got %d/%d", config.StarCount, s.Stars.Len(), len(s.Stars.Materials))
	}
	if s.Camera.Position.Z() != 500 {
		t.Errorf("expected camera z=500, got %v", s.Camera.Position.Z())
	}
	if math.Abs(s.Camera.Aspect-800.0/600.0) > eps {
		t.Errorf("expected aspect from surface, got %v", s.Camera.Aspect)
	}
}

func TestOrbitRadiusIsConstant(t *testing.T) {
	s, _ := newTestScene(t, Options{})
	for _, ms := range []float64{0, 1, 17, 1234.5, 6283.19, 1e6, 1.7e12} {
		s.AdvanceOrbits(time.Duration(ms * float64(time.Millisecond)))

		for _, tc := range []struct {
			b      *Body
			radius float64
		}{{s.Mercury, 200}, {s.Venus, 300}} {
			p := tc.b.Position
			if d := math.Hypot(p.X(), p.Z()); math.Abs(d-tc.radius) > 1e-6 {
				t.Errorf("t=%v %s: expected radius %v, got %v", ms, tc.b.Name(), tc.radius, d)
			}
			if p.Y() != 0 {
				t.Errorf("t=%v %s: expected y=0, got %v", ms, tc.b.Name(), p.Y())
			}
		}
	}
}

func TestOrbitPeriod(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		speed  float64
		period float64
	}{
		{"mercury", 200, 0.001, 2 * math.Pi / 0.001},
		{"venus", 300, 0.0008, 2 * math.Pi / 0.0008},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, start := range []float64{0, 500, 3000} {
				a := OrbitPosition(tt.radius, tt.speed, start)
				b := OrbitPosition(tt.radius, tt.speed, start+tt.period)
				if !a.ApproxEqualThreshold(b, 1e-6) {
					t.Errorf("start %v: expected %v after one period, got %v", start, a, b)
				}
			}
			half := OrbitPosition(tt.radius, tt.speed, tt.period/2)
			if math.Abs(half.X()+tt.radius) > 1e-6 {
				t.Errorf("expected x=-%v at half period, got %v", tt.radius, half.X())
			}
		})
	}

	if p := OrbitPosition(200, 0.001, 0); !p.ApproxEqual(mgl64.Vec3{200, 0, 0}) {
		t.Errorf("expected (200,0,0) at t=0, got %v", p)
	}
}

func TestSunSpinsPerCall(t *testing.T) {
	s, _ := newTestScene(t, Options{})
	for i := 0; i < 100; i++ {
		s.AdvanceOrbits(0)
	}
	if math.Abs(s.Sun.RotationY-1.0) > 1e-9 {
		t.Errorf("expected rotation 1.0 after 100 frames, got %v", s.Sun.RotationY)
	}
	if s.Sun.Position != (mgl64.Vec3{}) {
		t.Errorf("sun must stay at the origin, got %v", s.Sun.Position)
	}
}

func TestStarFieldBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	sf := GenerateStarField(rng, 1000, 1000)

	if len(sf.Positions) != 1000 || len(sf.Materials) != 1000 {
		t.Fatalf("expected 1000 positions and materials, got %d/%d", len(sf.Positions), len(sf.Materials))
	}
	for i, p := range sf.Positions {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < -1000 || p[axis] > 1000 {
				t.Fatalf("star %d axis %d out of range: %v", i, axis, p[axis])
			}
		}
	}
	if sf.Color.R != 255 || sf.Color.G != 255 || sf.Color.B != 255 {
		t.Errorf("expected shared white colour, got %v", sf.Color)
	}
}

func TestTwinkle(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	sf := GenerateStarField(rng, 1000, 1000)

	positions := append([]mgl64.Vec3(nil), sf.Positions...)
	for frame := 0; frame < 5; frame++ {
		sf.Twinkle(rng)
		for i, m := range sf.Materials {
			if m.Opacity < 0 || m.Opacity > 1 {
				t.Fatalf("frame %d star %d: opacity %v out of range", frame, i, m.Opacity)
			}
			if !m.Transparent {
				t.Fatalf("frame %d star %d: expected transparent", frame, i)
			}
		}
	}
	for i := range positions {
		if positions[i] != sf.Positions[i] {
			t.Fatalf("star %d moved during twinkle", i)
		}
	}
}

func TestTickAnimatesEverything(t *testing.T) {
	s, _ := newTestScene(t, Options{})
	s.Tick(1000 * time.Millisecond)

	want := OrbitPosition(200, 0.001, 1000)
	if !s.Mercury.Position.ApproxEqual(want) {
		t.Errorf("expected mercury at %v, got %v", want, s.Mercury.Position)
	}
	if s.Sun.RotationY != config.SunSpinPerFrame {
		t.Errorf("expected one spin step, got %v", s.Sun.RotationY)
	}
	for i, m := range s.Stars.Materials {
		if !m.Transparent {
			t.Fatalf("star %d not twinkled", i)
		}
	}
}
