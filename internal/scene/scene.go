// Package scene holds the orbital diagram state: the camera, the sun and its
// two planets, the starfield and the info popup, plus the per-frame
// animation and the input handlers that mutate them.
//
// A Scene is not safe for concurrent use. All calls must come from the
// goroutine that drives the render loop.
package scene

import (
	"errors"
	"math/rand/v2"

	"github.com/iburimskiy/solar-orbits/internal/config"
	"github.com/iburimskiy/solar-orbits/internal/logging"
)

// ErrNoSurface is returned by New when there is nothing to render into.
var ErrNoSurface = errors.New("scene: render surface not found")

// Surface is the drawable area the scene is rendered into.
type Surface interface {
	Size() (width, height int)
	SetSize(width, height int)
}

type Options struct {
	Surface Surface
	// Rand drives the starfield and the twinkle; nil seeds a random source.
	Rand   *rand.Rand
	Logger *logging.Logger
	// DismissOnEmptyClick hides the info panel when a click hits nothing.
	DismissOnEmptyClick bool
}

type Scene struct {
	Camera  *Camera
	Sun     *Body
	Mercury *Body
	Venus   *Body
	Stars   *StarField
	Info    InfoPanel

	surface             Surface
	rng                 *rand.Rand
	log                 *logging.Logger
	dismissOnEmptyClick bool
}

// New builds the scene graph.
func New(opts Options) (*Scene, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	if opts.Surface == nil {
		log.Error("render surface not found")
		return nil, ErrNoSurface
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Scene{
		surface:             opts.Surface,
		rng:                 rng,
		log:                 log,
		dismissOnEmptyClick: opts.DismissOnEmptyClick,
	}

	w, h := opts.Surface.Size()
	aspect := float64(config.WindowWidth) / float64(config.WindowHeight)
	if w > 0 && h > 0 {
		aspect = float64(w) / float64(h)
	}
	s.Camera = NewCamera(aspect)
	log.Info("camera initialized at z=%.0f", s.Camera.Position.Z())

	s.Sun = newSun()
	s.Mercury = newMercury()
	s.Venus = newVenus()
	log.Info("bodies added: %s, %s, %s", s.Sun.Name(), s.Mercury.Name(), s.Venus.Name())

	s.Stars = GenerateStarField(rng, config.StarCount, config.StarHalfExtent)
	log.Info("starfield generated with %d stars", s.Stars.Len())

	return s, nil
}

// Bodies returns the pickable bodies in scene graph order.
func (s *Scene) Bodies() []*Body {
	return []*Body{s.Sun, s.Mercury, s.Venus}
}

func (s *Scene) Surface() Surface { return s.surface }
