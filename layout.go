package tabletop

import (
	"sort"

	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Row is one horizontal line of in-play cards sharing a role.
type Row struct {
	Role      Role
	SlotWidth float64
	Y         float64
}

// DefaultRows returns the character row (slot = card height, y = 0) and
// the Don row (slot = half a card height, y = 1.5 card heights).
func DefaultRows(cardHeight float64) []Row {
	return []Row{
		{Role: CharacterCard, SlotWidth: cardHeight, Y: 0},
		{Role: DonCard, SlotWidth: cardHeight / 2, Y: cardHeight * 1.5},
	}
}

// RowSlots returns n slot positions centered on x = 0 at height y:
// slot i is at -(n-1)*slotWidth/2 + i*slotWidth.
func RowSlots(n int, slotWidth, y float64) []Vec2 {
	if n <= 0 {
		return nil
	}
	slots := make([]Vec2, n)
	leftMost := -float64(n-1) * slotWidth / 2
	for i := range slots {
		slots[i] = Vec2{leftMost + float64(i)*slotWidth, y}
	}
	return slots
}

// Placement is a card's target position from a layout pass.
type Placement struct {
	Card     donburi.Entity
	Position Vec2
}

// RowCards returns the in-play cards of role in creation order.
func RowCards(world donburi.World, role Role) []donburi.Entity {
	type seqd struct {
		e   donburi.Entity
		seq uint64
	}
	var cards []seqd
	cardQuery.Each(world, func(entry *donburi.Entry) {
		c := CardComponent.Get(entry)
		if c.Zone == InPlay && c.Role == role {
			cards = append(cards, seqd{entry.Entity(), c.Seq})
		}
	})
	sort.Slice(cards, func(i, j int) bool { return cards[i].seq < cards[j].seq })
	out := make([]donburi.Entity, len(cards))
	for i, c := range cards {
		out[i] = c.e
	}
	return out
}

// PlanRow computes where every card of the row belongs without moving
// anything.
func PlanRow(world donburi.World, row Row) []Placement {
	cards := RowCards(world, row.Role)
	slots := RowSlots(len(cards), row.SlotWidth, row.Y)
	plan := make([]Placement, len(cards))
	for i, e := range cards {
		plan[i] = Placement{Card: e, Position: slots[i]}
	}
	return plan
}

// ApplyPlacements moves each card to its planned position immediately.
func ApplyPlacements(world donburi.World, plan []Placement) {
	for _, p := range plan {
		entry, ok := cardEntry(world, p.Card)
		if !ok {
			continue
		}
		tr := TransformComponent.Get(entry)
		tr.X = p.Position.X
		tr.Y = p.Position.Y
	}
}

// LayoutRow plans and applies a row in one step.
func LayoutRow(world donburi.World, row Row) []Placement {
	plan := PlanRow(world, row)
	ApplyPlacements(world, plan)
	return plan
}

// OrganizeRows lays out every row independently. With a positive layout
// tween duration the cards slide to their slots; otherwise they jump.
func (t *Table) OrganizeRows() {
	t.log.Debug("organizing cards")
	for _, row := range t.rows {
		plan := PlanRow(t.world, row)
		for i, p := range plan {
			t.log.Debug("placing card", "role", row.Role, "slot", i, "x", p.Position.X, "y", p.Position.Y)
		}
		if t.layoutTween <= 0 {
			ApplyPlacements(t.world, plan)
			continue
		}
		for _, p := range plan {
			t.cancelTweens(p.Card)
			if g := TweenCardPosition(t.world, p.Card, p.Position, t.layoutTween, ease.OutCubic); g != nil {
				t.tweens = append(t.tweens, g)
			}
		}
	}
}
