package tabletop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// TweenGroup animates a card's position. Donburi may relocate component
// storage when archetypes change, so the group holds the entity rather than
// field pointers and writes through a fresh lookup on each Update. If the
// card is removed the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	card   donburi.Entity
	to     Vec2
	Done   bool
}

// TweenCardPosition creates a TweenGroup that slides card from its current
// position to `to` over duration seconds. Returns nil if card is not a
// live card.
func TweenCardPosition(world donburi.World, card donburi.Entity, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	tr, ok := TransformOf(world, card)
	if !ok {
		return nil
	}
	g := &TweenGroup{card: card, to: to}
	g.tweens[0] = gween.New(float32(tr.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(tr.Y), float32(to.Y), duration, fn)
	return g
}

// Update advances the group by dt seconds and writes the card's position.
func (g *TweenGroup) Update(world donburi.World, dt float32) {
	if g.Done {
		return
	}
	entry, ok := cardEntry(world, g.card)
	if !ok {
		g.Done = true
		return
	}
	x, doneX := g.tweens[0].Update(dt)
	y, doneY := g.tweens[1].Update(dt)
	tr := TransformComponent.Get(entry)
	g.Done = doneX && doneY
	if g.Done {
		// Tweens run in float32; the final write is the exact target.
		tr.X, tr.Y = g.to.X, g.to.Y
		return
	}
	tr.X = float64(x)
	tr.Y = float64(y)
}

// updateTweens advances every active group and drops finished ones.
func (t *Table) updateTweens(dt float32) {
	live := t.tweens[:0]
	for _, g := range t.tweens {
		g.Update(t.world, dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(t.tweens[len(live):])
	t.tweens = live
}

// cancelTweens stops any animation moving card.
func (t *Table) cancelTweens(card donburi.Entity) {
	for _, g := range t.tweens {
		if g.card == card {
			g.Done = true
		}
	}
}
