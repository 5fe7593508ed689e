package tabletop

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
)

// ClearColor is the table background.
var ClearColor = Color{R: 0.09, G: 0.09, B: 0.11, A: 1}

var (
	spawnerPanelColor  = Color{R: 0.78, G: 0.78, B: 0.78, A: 0.95}
	spawnerBorderColor = Color{R: 0, G: 0, B: 0, A: 1}
	spawnerInputColor  = Color{R: 1, G: 1, B: 1, A: 1}
)

const spawnerBorder = 2

type drawItem struct {
	tr     Transform
	sprite Sprite
	seq    uint64
}

// Draw renders every sprite in Z order (ties broken by creation order),
// then the spawner modal and the HUD.
func (t *Table) Draw(screen *ebiten.Image) {
	screen.Fill(ClearColor.toRGBA())

	for _, it := range t.drawOrder() {
		t.drawSprite(screen, it.sprite, it.tr)
	}

	if t.spawner.open {
		t.drawSpawner(screen)
	}
	if t.showHUD {
		t.drawHUD(screen)
	}
}

// drawOrder returns every drawable bottom to top: lower Z first, and among
// equal Z earlier cards first. Non-card sprites sort before cards at the
// same Z. This is the reverse of picking order.
func (t *Table) drawOrder() []drawItem {
	items := t.drawBuf[:0]
	drawableQuery.Each(t.world, func(entry *donburi.Entry) {
		it := drawItem{tr: *TransformComponent.Get(entry), sprite: *SpriteComponent.Get(entry)}
		if entry.HasComponent(CardComponent) {
			it.seq = CardComponent.Get(entry).Seq
		}
		items = append(items, it)
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].tr.Z != items[j].tr.Z {
			return items[i].tr.Z < items[j].tr.Z
		}
		return items[i].seq < items[j].seq
	})
	t.drawBuf = items
	return items
}

// drawSprite draws one sprite centered on its transform.
func (t *Table) drawSprite(screen *ebiten.Image, s Sprite, tr Transform) {
	img := t.assets.Image(s.Image)
	b := img.Bounds()
	geo, ok := spriteGeoM(s, tr, t.camera, float64(b.Dx()), float64(b.Dy()))
	if !ok {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = geo
	c := s.Color
	if c == (Color{}) {
		c = ColorWhite
	}
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	screen.DrawImage(img, &op)
}

// spriteGeoM maps an iw x ih image onto the screen so that it covers the
// sprite's size, centered on the transform and rotated with it. A sprite
// without a size keeps the image's native size.
func spriteGeoM(s Sprite, tr Transform, cam *Camera, iw, ih float64) (ebiten.GeoM, bool) {
	var geo ebiten.GeoM
	if iw == 0 || ih == 0 {
		return geo, false
	}
	size := s.Size
	if size == (Vec2{}) {
		size = Vec2{iw, ih}
	}
	sx, sy := tr.scale()
	zoom := cam.Zoom
	if zoom == 0 {
		zoom = 1
	}
	geo.Translate(-iw/2, -ih/2)
	geo.Scale(size.X*sx/iw, size.Y*sy/ih)
	// World rotation is counter-clockwise with Y up; on screen Y points down.
	geo.Rotate(-tr.Rotation)
	geo.Scale(zoom, zoom)
	px, py := cam.WorldToScreen(tr.X, tr.Y)
	geo.Translate(px, py)
	return geo, true
}

// fillRect draws a solid screen-space rectangle by scaling WhitePixel.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	dst.DrawImage(WhitePixel, &op)
}

func (t *Table) drawSpawner(screen *ebiten.Image) {
	fillRect(screen, t.spawner.Panel, spawnerPanelColor)
	in := t.spawner.Input.Bounds
	fillRect(screen, Rect{X: in.X - spawnerBorder, Y: in.Y - spawnerBorder,
		Width: in.Width + 2*spawnerBorder, Height: in.Height + 2*spawnerBorder}, spawnerBorderColor)
	fillRect(screen, in, spawnerInputColor)

	text := t.spawner.Input.Text()
	if t.spawner.Input.Focused() {
		text += "_"
	}
	ebitenutil.DebugPrintAt(screen, text, int(in.X)+4, int(in.Y)+4)
	ebitenutil.DebugPrintAt(screen, "asset name, Enter to spawn, Esc to cancel",
		int(in.X), int(in.Y+in.Height)+spawnerPadding)
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
