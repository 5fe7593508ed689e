package tabletop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawHUD prints FPS, TPS, the cursor's world position, and table counts in
// the top-left corner.
func (t *Table) drawHUD(screen *ebiten.Image) {
	fillRect(screen, Rect{Width: 220, Height: 64}, Color{A: 0.5})
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\ncursor: %.0f, %.0f\ncards: %d  actions: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		t.cursor.World.X, t.cursor.World.Y,
		cardQuery.Count(t.world), t.actions.Len(),
	))
}
