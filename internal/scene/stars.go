package scene

import (
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// FlickerMaterial is the per-star twinkle state.
type FlickerMaterial struct {
	Color       color.RGBA
	Opacity     float64
	Transparent bool
}

// StarField is a static point cloud. Materials[i] belongs to Positions[i].
type StarField struct {
	Positions []mgl64.Vec3
	Materials []FlickerMaterial
	// Color is shared by every point.
	Color color.RGBA
}

// GenerateStarField scatters count stars uniformly in a cube of side
// 2*halfExtent centred on the origin and gives each one a random colour.
func GenerateStarField(rng *rand.Rand, count int, halfExtent float64) *StarField {
	sf := &StarField{
		Positions: make([]mgl64.Vec3, count),
		Materials: make([]FlickerMaterial, count),
		Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	coord := func() float64 { return rng.Float64()*2*halfExtent - halfExtent }
	for i := range sf.Positions {
		sf.Positions[i] = mgl64.Vec3{coord(), coord(), coord()}
	}
	for i := range sf.Materials {
		sf.Materials[i] = FlickerMaterial{
			Color: color.RGBA{
				R: uint8(rng.IntN(256)),
				G: uint8(rng.IntN(256)),
				B: uint8(rng.IntN(256)),
				A: 255,
			},
			Opacity: 1,
		}
	}
	return sf
}

// Twinkle overwrites every material's opacity with a fresh value in [0, 1).
func (sf *StarField) Twinkle(rng *rand.Rand) {
	for i := range sf.Materials {
		sf.Materials[i].Opacity = rng.Float64()
		sf.Materials[i].Transparent = true
	}
}

func (sf *StarField) Len() int { return len(sf.Positions) }
