package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/solar-orbits/internal/config"
	"github.com/iburimskiy/solar-orbits/internal/logging"
	"github.com/iburimskiy/solar-orbits/internal/scene"
)

// screenSurface is the ebiten logical screen; its size follows Layout.
type screenSurface struct {
	width, height int
}

func (s *screenSurface) Size() (int, int) { return s.width, s.height }
func (s *screenSurface) SetSize(width, height int) { s.width, s.height = width, height }

// Game implements ebiten.Game. Update, Draw and Layout all run on ebiten's
// game goroutine, which is the only place the scene is touched.
type Game struct {
	scene    *scene.Scene
	surface  *screenSurface
	settings *config.Settings
	log      *logging.Logger

	start time.Time
	now   func() time.Time

	textures map[scene.BodyID]*ebiten.Image
	chime    *chimePlayer
	buttons  []*button
	keys     []keyBinding

	// input edge detection
	lastCursorX, lastCursorY int
	cursorSeen               bool

	// scratch buffers for textured discs
	vertices []ebiten.Vertex
	indices  []uint16
}

type keyBinding struct {
	keys []ebiten.Key
	cmd  scene.Command
}

func NewGame(settings *config.Settings, log *logging.Logger) (*Game, error) {
	surface := &screenSurface{width: settings.Window.Width, height: settings.Window.Height}

	var rng *rand.Rand
	if seed := settings.Stars.Seed; seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	sc, err := scene.New(scene.Options{
		Surface:             surface,
		Rand:                rng,
		Logger:              log.Named("scene"),
		DismissOnEmptyClick: settings.Info.DismissOnEmptyClick,
	})
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	g := &Game{
		scene:    sc,
		surface:  surface,
		settings: settings,
		log:      log,
		start:    time.Now(),
		now:      time.Now,
		textures: loadTextures(settings.Textures, log.Named("textures")),
	}
	if settings.ChimeEnabled() {
		g.chime = newChimePlayer(log.Named("audio"))
	}

	zoomIn, zoomOut := sc.ZoomIn(), sc.ZoomOut()
	g.buttons = []*button{
		{label: "+", cmd: zoomIn},
		{label: "-", cmd: zoomOut},
	}
	g.keys = []keyBinding{
		{keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, cmd: zoomIn},
		{keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, cmd: zoomOut},
	}
	log.Info("renderer initialized at %dx%d", surface.width, surface.height)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.handlePointer()
	for _, kb := range g.keys {
		for _, k := range kb.keys {
			if inpututil.IsKeyJustPressed(k) {
				kb.cmd()
				break
			}
		}
	}

	g.scene.Tick(g.now().Sub(g.start))
	return nil
}

func (g *Game) handlePointer() {
	w, h := g.surface.Size()
	mouseX, mouseY := ebiten.CursorPosition()
	layoutButtons(g.buttons, w, h)

	overButton := false
	for _, b := range g.buttons {
		b.hovered = b.contains(mouseX, mouseY)
		overButton = overButton || b.hovered
	}
	inside := mouseX >= 0 && mouseY >= 0 && mouseX < w && mouseY < h

	moved := !g.cursorSeen || mouseX != g.lastCursorX || mouseY != g.lastCursorY
	g.lastCursorX, g.lastCursorY, g.cursorSeen = mouseX, mouseY, true
	if moved && inside && !overButton {
		g.scene.MouseMove(float64(mouseX), float64(mouseY))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if overButton {
			for _, b := range g.buttons {
				b.pressed = b.hovered
			}
		} else if inside {
			if body, ok := g.scene.Click(float64(mouseX), float64(mouseY)); ok {
				g.log.Debug("showing info for %s", body.Name())
				if g.chime != nil {
					g.chime.Play()
				}
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		for _, b := range g.buttons {
			if b.pressed && b.hovered {
				b.cmd()
			}
			b.pressed = false
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.scene.Dismiss()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.drawStars(screen)
	g.drawBodies(screen)

	if g.scene.Info.Visible {
		drawPanel(screen, g.scene.Info.Lines(), config.PanelX, config.PanelY, anchorTopLeft)
	}
	_, h := g.surface.Size()
	drawPanel(screen, g.settings.Credits, config.PanelX, h-config.PanelX, anchorBottomLeft)

	for _, b := range g.buttons {
		b.draw(screen)
	}
}

// Layout keeps the logical screen equal to the window so a window resize
// reaches the scene.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		if w, h := g.surface.Size(); w != outsideWidth || h != outsideHeight {
			g.scene.Resize(outsideWidth, outsideHeight)
		}
	}
	return g.surface.Size()
}
