package tabletop

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEvent mirrors a pointer event that struck a card. It is
// published on InteractionEventType after the table's own handlers ran, so
// ECS systems can observe card interaction without owning it.
type InteractionEvent struct {
	Type      EventType
	Entity    donburi.Entity
	Screen    Vec2
	World     Vec2
	Button    MouseButton
	Modifiers KeyModifiers
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	Start Vec2
	Delta Vec2
}

// SpawnerOpen requests the card spawner modal.
type SpawnerOpen struct{}

// SpawnerSelected carries the asset chosen in the card spawner.
type SpawnerSelected struct {
	Asset string
}

// TextSubmitted is published when Enter is pressed in a focused input.
type TextSubmitted struct {
	Input *TextInput
	Text  string
}

// TextCancelled is published when Escape is pressed in a focused input.
type TextCancelled struct {
	Input *TextInput
}

// Donburi event types. Subscribers run when the table processes events at
// the end of the dispatch phase of each tick.
var (
	InteractionEventType     = events.NewEventType[InteractionEvent]()
	CardSpawnerOpenEvent     = events.NewEventType[SpawnerOpen]()
	CardSpawnerSelectedEvent = events.NewEventType[SpawnerSelected]()
	TextSubmittedEvent       = events.NewEventType[TextSubmitted]()
	TextCancelledEvent       = events.NewEventType[TextCancelled]()
)

// bridgePointer publishes a card-targeted pointer event to the ECS.
// Events that struck no card are not published.
func (t *Table) bridgePointer(ev Event) {
	var ie InteractionEvent
	var p Pointer
	switch ev := ev.(type) {
	case PointerDownEvent:
		p = ev.Pointer
	case PointerUpEvent:
		p = ev.Pointer
	case ClickEvent:
		p = ev.Pointer
	case DragStartEvent:
		p, ie.Start, ie.Delta = ev.Pointer, ev.Start, ev.Delta
	case DragEvent:
		p, ie.Start, ie.Delta = ev.Pointer, ev.Start, ev.Delta
	case DragEndEvent:
		p, ie.Start, ie.Delta = ev.Pointer, ev.Start, ev.Delta
	default:
		return
	}
	if !p.Hit {
		return
	}
	ie.Type = ev.Type()
	ie.Entity = p.Target
	ie.Screen = p.Screen
	ie.World = p.World
	ie.Button = p.Button
	ie.Modifiers = p.Modifiers
	InteractionEventType.Publish(t.world, ie)
}
