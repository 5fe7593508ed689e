package tabletop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts a Table to ebiten.Game.
type game struct {
	table *Table
}

func (g *game) Update() error {
	g.table.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.table.Draw(screen)
}

// Layout keeps the camera viewport equal to the window, so world
// coordinates stay centered on the table as the window resizes.
func (g *game) Layout(w, h int) (int, int) {
	vp := Rect{Width: float64(w), Height: float64(h)}
	if g.table.camera.Viewport != vp {
		g.table.camera.SetViewport(vp)
	}
	return w, h
}

// Run opens a window described by cfg and runs the table until the window
// closes. The table reads the real mouse and keyboard from here on.
func Run(t *Table, cfg WindowConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)

	t.pollDevices = true
	if err := ebiten.RunGame(&game{table: t}); err != nil {
		return fmt.Errorf("run table: %w", err)
	}
	return nil
}
