package tabletop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

const (
	spawnerPanelFraction = 0.8
	spawnerInputWidth    = 200
	spawnerInputHeight   = 24
	spawnerPadding       = 10
)

// Spawner is the modal that asks for an asset name and spawns a character
// card with it. While open it swallows pointer input so cards underneath
// cannot be touched.
type Spawner struct {
	// Panel is the modal's screen-space rectangle.
	Panel Rect
	// Input receives the asset name.
	Input TextInput

	open bool
}

// IsOpen reports whether the modal is showing.
func (s *Spawner) IsOpen() bool {
	return s.open
}

// layout centers the panel in a screen of the given size, with the input
// in its top-left corner.
func (s *Spawner) layout(screenW, screenH float64) {
	w := screenW * spawnerPanelFraction
	h := screenH * spawnerPanelFraction
	s.Panel = Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, Width: w, Height: h}
	s.Input.Bounds = Rect{
		X:      s.Panel.X + spawnerPadding,
		Y:      s.Panel.Y + spawnerPadding,
		Width:  spawnerInputWidth,
		Height: spawnerInputHeight,
	}
}

// Spawner returns the table's card spawner modal.
func (t *Table) Spawner() *Spawner {
	return &t.spawner
}

// openSpawner shows the modal with an empty, focused input. Opening an
// already open modal does nothing.
func (t *Table) openSpawner() {
	if t.spawner.open {
		return
	}
	vp := t.camera.Viewport
	t.spawner.layout(vp.Width, vp.Height)
	t.spawner.Input.Clear()
	t.spawner.open = true
	t.Focus(&t.spawner.Input)
	t.log.Debug("card spawner opened")
}

// closeSpawner hides the modal and releases focus if the modal held it.
func (t *Table) closeSpawner() {
	if !t.spawner.open {
		return
	}
	t.spawner.open = false
	if t.focused == &t.spawner.Input {
		t.Focus(nil)
	}
	t.log.Debug("card spawner closed")
}

// handleSpawnerPointer handles pointer input while the modal is open:
// clicking the input focuses it, clicking elsewhere on the panel blurs it.
func (t *Table) handleSpawnerPointer(ev Event) {
	click, ok := ev.(ClickEvent)
	if !ok || click.Button != MouseButtonLeft {
		return
	}
	switch {
	case t.spawner.Input.Bounds.Contains(click.Screen.X, click.Screen.Y):
		t.Focus(&t.spawner.Input)
	case t.spawner.Panel.Contains(click.Screen.X, click.Screen.Y):
		t.Focus(nil)
	}
}

// handleSpawnerKey handles keyboard input while the modal is open but its
// input is blurred. Escape still closes the modal; table bindings stay
// blocked like pointer input.
func (t *Table) handleSpawnerKey(ev Event) {
	if k, ok := ev.(KeyEvent); ok && k.Key == ebiten.KeyEscape {
		t.closeSpawner()
	}
}

// subscribeSpawner wires the modal to the table's Donburi events.
func (t *Table) subscribeSpawner() {
	CardSpawnerOpenEvent.Subscribe(t.world, func(w donburi.World, _ SpawnerOpen) {
		t.openSpawner()
	})
	TextSubmittedEvent.Subscribe(t.world, func(w donburi.World, e TextSubmitted) {
		if e.Input != &t.spawner.Input || !t.spawner.open {
			return
		}
		if e.Text == "" {
			t.closeSpawner()
			return
		}
		CardSpawnerSelectedEvent.Publish(w, SpawnerSelected{Asset: e.Text})
	})
	TextCancelledEvent.Subscribe(t.world, func(w donburi.World, e TextCancelled) {
		if e.Input == &t.spawner.Input {
			t.closeSpawner()
		}
	})
	CardSpawnerSelectedEvent.Subscribe(t.world, func(w donburi.World, e SpawnerSelected) {
		card := t.SpawnCard(CardSpec{
			Asset: e.Asset,
			Owner: Player1,
			Zone:  InPlay,
			Role:  CharacterCard,
			Caps:  DefaultCapabilities | Draggable,
		})
		t.log.Info("card spawned", "entity", card, "asset", e.Asset)
		t.closeSpawner()
	})
}
