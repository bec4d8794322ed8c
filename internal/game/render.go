package game

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/solar-orbits/internal/config"
	"github.com/iburimskiy/solar-orbits/internal/scene"
)

// drawStars draws every visible star in the shared colour, faded by its
// own flicker opacity.
func (g *Game) drawStars(screen *ebiten.Image) {
	w, h := g.surface.Size()
	stars := g.scene.Stars
	const size = config.StarPointSize

	for i, p := range stars.Positions {
		proj, ok := g.scene.Camera.Project(p, w, h)
		if !ok {
			continue
		}
		mat := stars.Materials[i]
		base := stars.Color
		if g.settings.Stars.Tint {
			base = mat.Color
		}
		alpha := 1.0
		if mat.Transparent {
			alpha = clamp01(mat.Opacity)
		}
		clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(alpha * 255)}
		vector.DrawFilledRect(screen, float32(proj.X-size/2), float32(proj.Y-size/2), size, size, clr, false)
	}
}

type projectedBody struct {
	body *scene.Body
	proj scene.Projected
}

// drawBodies paints bodies back to front.
func (g *Game) drawBodies(screen *ebiten.Image) {
	w, h := g.surface.Size()

	visible := make([]projectedBody, 0, 3)
	for _, b := range g.scene.Bodies() {
		if p, ok := g.scene.Camera.Project(b.Position, w, h); ok {
			visible = append(visible, projectedBody{body: b, proj: p})
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].proj.Depth > visible[j].proj.Depth
	})

	for _, v := range visible {
		r := v.body.Radius * v.proj.Scale
		if r < 0.5 {
			continue
		}
		cx, cy := float32(v.proj.X), float32(v.proj.Y)
		if tex := g.textures[v.body.ID]; tex != nil {
			g.drawTexturedDisc(screen, tex, cx, cy, float32(r), v.body.RotationY)
			continue
		}
		vector.DrawFilledCircle(screen, cx, cy, float32(r), v.body.Color, true)
	}
}

// drawTexturedDisc maps half of an equirectangular texture onto a disc,
// scrolled horizontally by the body's rotation.
func (g *Game) drawTexturedDisc(screen, tex *ebiten.Image, cx, cy, r float32, rotation float64) {
	var path vector.Path
	path.Arc(cx, cy, r, 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])

	bounds := tex.Bounds()
	tw, th := float32(bounds.Dx()), float32(bounds.Dy())
	shift := float32(math.Mod(rotation/(2*math.Pi), 1)) * tw

	for i := range g.vertices {
		v := &g.vertices[i]
		u := (v.DstX - (cx - r)) / (2 * r)
		t := (v.DstY - (cy - r)) / (2 * r)
		v.SrcX = float32(bounds.Min.X) + u*tw/2 + shift
		v.SrcY = float32(bounds.Min.Y) + t*th
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
	}
	op := &ebiten.DrawTrianglesOptions{Address: ebiten.AddressRepeat}
	screen.DrawTriangles(g.vertices, g.indices, tex, op)
}
