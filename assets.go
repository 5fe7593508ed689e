package tabletop

import (
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Assets loads sprite images by name from a directory and caches them.
// A name that cannot be loaded resolves to a magenta placeholder, logged
// once, so a missing file never stops the table.
type Assets struct {
	dir    string
	log    *slog.Logger
	images map[string]*ebiten.Image
}

// NewAssets returns a loader rooted at dir.
func NewAssets(dir string, logger *slog.Logger) *Assets {
	return &Assets{dir: dir, log: logger, images: make(map[string]*ebiten.Image)}
}

// Image returns the image for name, loading it on first use.
func (a *Assets) Image(name string) *ebiten.Image {
	if img, ok := a.images[name]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(a.dir, name))
	if err != nil {
		a.log.Warn("asset not found, using magenta placeholder", "asset", name, "err", err)
		img = ensureMagentaImage()
	}
	a.images[name] = img
	return img
}

// Put registers an already decoded image under name.
func (a *Assets) Put(name string, img *ebiten.Image) {
	a.images[name] = img
}

// magentaImage is created on first use.
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}
