package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/solar-orbits/internal/config"
	"github.com/iburimskiy/solar-orbits/internal/scene"
)

const debugGlyphWidth = 6

type anchor int

const (
	anchorTopLeft anchor = iota
	anchorBottomLeft
)

// panelRect returns the box holding lines with (x, y) at the given corner.
func panelRect(lines []string, x, y int, a anchor) image.Rectangle {
	width := config.PanelWidth
	for _, l := range lines {
		if w := len(l)*debugGlyphWidth + 2*config.PanelPadding; w > width {
			width = w
		}
	}
	height := len(lines)*config.LineHeight + 2*config.PanelPadding
	if a == anchorBottomLeft {
		y -= height
	}
	return image.Rect(x, y, x+width, y+height)
}

func drawPanel(screen *ebiten.Image, lines []string, x, y int, a anchor) {
	if len(lines) == 0 {
		return
	}
	r := panelRect(lines, x, y, a)
	fx, fy := float32(r.Min.X), float32(r.Min.Y)
	fw, fh := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, fx, fy, fw, fh, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, fx, fy, fw, fh, 1, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, r.Min.X+config.PanelPadding, r.Min.Y+config.PanelPadding+i*config.LineHeight)
	}
}

// button is an on-screen control bound to a scene command.
type button struct {
	label   string
	cmd     scene.Command
	rect    image.Rectangle
	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

// layoutButtons lines the buttons up from the bottom right corner, the
// last button nearest the corner.
func layoutButtons(buttons []*button, width, height int) {
	x := width - config.ButtonMargin
	y := height - config.ButtonMargin - config.ButtonHeight
	for i := len(buttons) - 1; i >= 0; i-- {
		x -= config.ButtonWidth
		buttons[i].rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		x -= config.ButtonSpacing
	}
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
	w, h := float32(b.rect.Dx()), float32(b.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * debugGlyphWidth
	textX := b.rect.Min.X + (b.rect.Dx()-textWidth)/2
	textY := b.rect.Min.Y + (b.rect.Dy()-config.LineHeight)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
