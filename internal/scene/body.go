package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyID identifies one of the three celestial bodies.
type BodyID int

const (
	Sun BodyID = iota
	Mercury
	Venus
)

func (id BodyID) String() string {
	switch id {
	case Sun:
		return "Sun"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	default:
		return "Unknown"
	}
}

// BodyInfo is the fixed text shown in the info panel.
type BodyInfo struct {
	Diameter string
	Distance string
	Rotation string
}

// Body is a sphere in the scene. Orbiting bodies move on a circle of
// OrbitRadius in the X-Z plane; the sun only spins.
type Body struct {
	ID       BodyID
	Radius   float64
	Position mgl64.Vec3
	// RotationY is the self-rotation angle in radians.
	RotationY float64

	OrbitRadius  float64
	AngularSpeed float64 // radians per millisecond

	Info BodyInfo
	// Color is used when the body has no texture.
	Color color.RGBA
}

func (b *Body) Name() string { return b.ID.String() }

func newSun() *Body {
	return &Body{
		ID:     Sun,
		Radius: 10 * 3, // sphere of radius 10 scaled up 3x
		Info: BodyInfo{
			Diameter: "1,392,700 km",
			Distance: "149.6 million km",
			Rotation: "25 days",
		},
		Color: color.RGBA{R: 255, G: 196, B: 64, A: 255},
	}
}

func newMercury() *Body {
	return &Body{
		ID:           Mercury,
		Radius:       20,
		Position:     mgl64.Vec3{100, 0, 0},
		OrbitRadius:  200,
		AngularSpeed: 0.001,
		Info: BodyInfo{
			Diameter: "4,880 km",
			Distance: "57.9 million km",
			Rotation: "59 days",
		},
		Color: color.RGBA{R: 150, G: 140, B: 130, A: 255},
	}
}

func newVenus() *Body {
	return &Body{
		ID:           Venus,
		Radius:       20.5,
		Position:     mgl64.Vec3{300, 0, 0},
		OrbitRadius:  300,
		AngularSpeed: 0.0008,
		Info: BodyInfo{
			Diameter: "12,104 km",
			Distance: "108.2 million km",
			Rotation: "243 days",
		},
		Color: color.RGBA{R: 222, G: 184, B: 120, A: 255},
	}
}
