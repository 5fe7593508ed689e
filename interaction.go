package tabletop

import (
	"github.com/yohamta/donburi"
)

// ToggleTap flips a right-clickable, in-play card between untapped
// (rotation 0) and tapped (rotation TapRotation). It reports the card's new
// tapped state and whether a toggle happened; anything that is not such a
// card is left alone.
func ToggleTap(world donburi.World, e donburi.Entity) (tapped, ok bool) {
	entry, ok := cardEntry(world, e)
	if !ok {
		return false, false
	}
	card := CardComponent.Get(entry)
	if !card.Has(RightClickable) {
		return false, false
	}
	switch card.Kind {
	case EntityKindCard:
		if card.Zone != InPlay {
			return false, false
		}
		tr := TransformComponent.Get(entry)
		if card.Tapped {
			tr.Rotation = 0
			card.Tapped = false
		} else {
			tr.Rotation = TapRotation
			card.Tapped = true
		}
		return card.Tapped, true
	}
	return false, false
}

// DragCard moves a draggable card by a screen-space delta. Screen Y grows
// downward and world Y grows upward, so dy is subtracted. There is no
// clamping; cards may leave the visible table.
func DragCard(world donburi.World, e donburi.Entity, delta Vec2) bool {
	entry, ok := cardEntry(world, e)
	if !ok {
		return false
	}
	if !CardComponent.Get(entry).Has(Draggable) {
		return false
	}
	tr := TransformComponent.Get(entry)
	tr.X += delta.X
	tr.Y -= delta.Y
	return true
}

// handleClick routes a click on the table to the struck card.
func (t *Table) handleClick(ev ClickEvent) {
	if !ev.Hit {
		return
	}
	switch ev.Button {
	case MouseButtonRight:
		tapped, ok := ToggleTap(t.world, ev.Target)
		if ok {
			t.log.Debug("card tap toggled", "entity", ev.Target, "tapped", tapped)
		}
	case MouseButtonLeft:
		if card, ok := CardOf(t.world, ev.Target); ok && card.Has(LeftClickable) {
			t.log.Debug("card clicked", "entity", ev.Target, "asset", card.Asset)
		}
	}
}

// handleDrag applies one drag notification to its target card. A drag
// interrupts any layout animation still moving the card.
func (t *Table) handleDrag(ev DragEvent) {
	if !ev.Hit {
		return
	}
	if DragCard(t.world, ev.Target, ev.Delta) {
		t.cancelTweens(ev.Target)
	}
}

// removeCardUnderCursor is the debug removal binding: the first card in
// picking order whose unrotated bounds contain the cursor is destroyed.
// Returns whether a card was removed.
func (t *Table) removeCardUnderCursor() bool {
	cursor := t.cursor.World
	for _, c := range t.pickOrder() {
		entry := t.world.Entry(c.entity)
		if !CursorOverSprite(cursor, *SpriteComponent.Get(entry), *TransformComponent.Get(entry)) {
			continue
		}
		switch CardComponent.Get(entry).Kind {
		case EntityKindCard:
			t.cancelTweens(c.entity)
			t.world.Remove(c.entity)
			t.log.Debug("card removed", "entity", c.entity)
			return true
		}
	}
	return false
}
