package game

import (
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/solar-orbits/internal/config"
	"github.com/iburimskiy/solar-orbits/internal/logging"
	"github.com/iburimskiy/solar-orbits/internal/scene"
)

// loadTextures decodes the body surface images. A body whose image cannot
// be read is left out and drawn as a flat disc.
func loadTextures(ts config.TextureSettings, log *logging.Logger) map[scene.BodyID]*ebiten.Image {
	paths := []struct {
		id   scene.BodyID
		path string
	}{
		{scene.Sun, ts.Sun},
		{scene.Mercury, ts.Mercury},
		{scene.Venus, ts.Venus},
	}

	out := make(map[scene.BodyID]*ebiten.Image, len(paths))
	for _, p := range paths {
		img, _, err := ebitenutil.NewImageFromFile(p.path)
		if err != nil {
			log.Warn("%s texture not loaded, drawing flat colour: %v", p.id, err)
			continue
		}
		out[p.id] = img
		log.Info("%s texture loaded from %s", p.id, p.path)
	}
	return out
}
