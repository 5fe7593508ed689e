package tabletop

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

const defaultDragDeadZone = 4.0 // pixels

// --- Events ---

// Event is one inbound notification collected during a tick. The concrete
// types are PointerMoveEvent, PointerDownEvent, PointerUpEvent, ClickEvent,
// DragStartEvent, DragEvent, DragEndEvent, CharEvent, and KeyEvent.
type Event interface {
	Type() EventType
}

// Pointer carries the fields shared by all pointer events. Target is only
// meaningful when Hit is true.
type Pointer struct {
	Screen    Vec2
	World     Vec2
	Target    donburi.Entity
	Hit       bool
	Button    MouseButton
	Modifiers KeyModifiers
}

// PointerMoveEvent reports a new pointer position.
type PointerMoveEvent struct{ Pointer }

// PointerDownEvent reports a button press.
type PointerDownEvent struct{ Pointer }

// PointerUpEvent reports a button release.
type PointerUpEvent struct{ Pointer }

// ClickEvent reports a press and release over the same card, or over empty
// table on both ends.
type ClickEvent struct{ Pointer }

// DragStartEvent fires once the pointer leaves the dead zone while held.
// Delta is the total movement since the press.
type DragStartEvent struct {
	Pointer
	Start Vec2
	Delta Vec2
}

// DragEvent fires each tick the pointer moves during a drag. Delta is the
// screen-space movement since the previous tick. Target is the card hit at
// press time.
type DragEvent struct {
	Pointer
	Start Vec2
	Delta Vec2
}

// DragEndEvent fires when the button is released after dragging.
type DragEndEvent struct {
	Pointer
	Start Vec2
	Delta Vec2
}

// CharEvent carries typed text.
type CharEvent struct {
	Text string
}

// KeyEvent reports a key pressed this tick.
type KeyEvent struct {
	Key       ebiten.Key
	Modifiers KeyModifiers
}

func (PointerMoveEvent) Type() EventType { return EventPointerMove }
func (PointerDownEvent) Type() EventType { return EventPointerDown }
func (PointerUpEvent) Type() EventType   { return EventPointerUp }
func (ClickEvent) Type() EventType       { return EventClick }
func (DragStartEvent) Type() EventType   { return EventDragStart }
func (DragEvent) Type() EventType        { return EventDrag }
func (DragEndEvent) Type() EventType     { return EventDragEnd }
func (CharEvent) Type() EventType        { return EventChar }
func (KeyEvent) Type() EventType         { return EventKey }

// --- Pointer state ---

type pointerState struct {
	seen     bool
	down     bool
	startX   float64 // screen
	startY   float64
	lastX    float64
	lastY    float64
	hit      donburi.Entity
	hasHit   bool
	dragging bool
	button   MouseButton // button captured at press time
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (t *Table) SetDragDeadZone(pixels float64) {
	t.dragDeadZone = pixels
}

// --- Picking ---

type pickCandidate struct {
	entity donburi.Entity
	z      float64
	seq    uint64
}

// pickOrder returns every card, topmost first: higher Z wins, and among
// equal Z the later-spawned card wins, matching draw order.
func (t *Table) pickOrder() []pickCandidate {
	buf := t.pickBuf[:0]
	cardQuery.Each(t.world, func(entry *donburi.Entry) {
		buf = append(buf, pickCandidate{
			entity: entry.Entity(),
			z:      TransformComponent.Get(entry).Z,
			seq:    CardComponent.Get(entry).Seq,
		})
	})
	sort.Slice(buf, func(i, j int) bool {
		if buf[i].z != buf[j].z {
			return buf[i].z > buf[j].z
		}
		return buf[i].seq > buf[j].seq
	})
	t.pickBuf = buf
	return buf
}

// pick finds the topmost card whose rotated bounds contain the world point.
func (t *Table) pick(p Vec2) (donburi.Entity, bool) {
	for _, c := range t.pickOrder() {
		entry := t.world.Entry(c.entity)
		if cardContainsWorld(p, *SpriteComponent.Get(entry), *TransformComponent.Get(entry)) {
			return c.entity, true
		}
	}
	var none donburi.Entity
	return none, false
}

// --- Input collection ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// collectPointer feeds one pointer sample into the state machine: an
// injected one if any is queued, otherwise the real mouse when the table is
// running inside a game loop.
func (t *Table) collectPointer() {
	if t.processInjectedPointer() {
		return
	}
	if !t.pollDevices {
		return
	}
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, the stored button wins so a second
	// button cannot change the interaction midway.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	t.processPointer(float64(mx), float64(my), pressed, button, readModifiers())
}

// processPointer runs the pointer state machine for one sample in screen
// coordinates and appends the resulting events to the tick's event list.
func (t *Table) processPointer(sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &t.pointer
	wx, wy := t.camera.ScreenToWorld(sx, sy)
	world := Vec2{wx, wy}
	screen := Vec2{sx, sy}
	moved := !ps.seen || sx != ps.lastX || sy != ps.lastY

	target, hit := t.pick(world)
	base := Pointer{Screen: screen, World: world, Target: target, Hit: hit, Button: button, Modifiers: mods}

	if moved {
		t.events = append(t.events, PointerMoveEvent{base})
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = sx, sy
		ps.hit, ps.hasHit = target, hit
		ps.dragging = false
		t.events = append(t.events, PointerDownEvent{base})

	case !pressed && ps.down:
		base.Button = ps.button
		start := Vec2{ps.startX, ps.startY}
		held := base
		held.Target, held.Hit = ps.hit, ps.hasHit
		// A release past the dead zone with no held sample in between is
		// still a drag.
		if !ps.dragging {
			dx := sx - ps.startX
			dy := sy - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > t.dragDeadZone {
				ps.dragging = true
				t.events = append(t.events, DragStartEvent{Pointer: held, Start: start, Delta: Vec2{dx, dy}})
			}
		}
		if ps.dragging {
			delta := Vec2{sx - ps.lastX, sy - ps.lastY}
			if moved {
				t.events = append(t.events, DragEvent{Pointer: held, Start: start, Delta: delta})
			}
			t.events = append(t.events, DragEndEvent{Pointer: held, Start: start, Delta: delta})
		} else if ps.hasHit == hit && (!hit || ps.hit == target) {
			t.events = append(t.events, ClickEvent{base})
		}
		t.events = append(t.events, PointerUpEvent{base})
		ps.down = false
		ps.hasHit = false
		ps.dragging = false

	case pressed && ps.down && moved:
		held := base
		held.Button = ps.button
		held.Target, held.Hit = ps.hit, ps.hasHit
		start := Vec2{ps.startX, ps.startY}
		if !ps.dragging {
			dx := sx - ps.startX
			dy := sy - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > t.dragDeadZone {
				ps.dragging = true
				t.events = append(t.events, DragStartEvent{Pointer: held, Start: start, Delta: Vec2{dx, dy}})
			}
		}
		if ps.dragging {
			t.events = append(t.events, DragEvent{Pointer: held, Start: start, Delta: Vec2{sx - ps.lastX, sy - ps.lastY}})
		}
	}

	ps.lastX, ps.lastY = sx, sy
	ps.seen = true
}
