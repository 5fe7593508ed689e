package tabletop

import "github.com/hajimehoshi/ebiten/v2"

// syntheticPointerEvent is one injected pointer sample in screen
// coordinates, converted to world coordinates through the table camera
// exactly like real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued pointer sample is consumed by one Update.
func (t *Table) InjectPress(x, y float64) {
	t.InjectPressButton(x, y, MouseButtonLeft)
}

// InjectPressButton queues a press of button at the given screen coordinates.
func (t *Table) InjectPressButton(x, y float64, button MouseButton) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  button,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (t *Table) InjectMove(x, y float64) {
	button := MouseButtonLeft
	if n := len(t.injectQueue); n > 0 {
		button = t.injectQueue[n-1].button
	}
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  button,
	})
}

// InjectHover queues a pointer move with no button held.
func (t *Table) InjectHover(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (t *Table) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
	})
}

// InjectClick queues a left press followed by a release at the same screen
// coordinates. Consumes two ticks.
func (t *Table) InjectClick(x, y float64) {
	t.InjectPress(x, y)
	t.InjectRelease(x, y)
}

// InjectRightClick queues a right press and release. Consumes two ticks.
func (t *Table) InjectRightClick(x, y float64) {
	t.InjectPressButton(x, y, MouseButtonRight)
	t.InjectRelease(x, y)
}

// InjectDrag queues a full left-button drag: press at (fromX, fromY),
// frames-2 linearly interpolated moves, and release at (toX, toY). The
// sequence consumes `frames` ticks; the minimum is 2.
func (t *Table) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*f
		y := fromY + (toY-fromY)*f
		t.InjectMove(x, y)
	}
	t.InjectRelease(toX, toY)
}

// InjectKey queues a key press for the next Update. All queued keyboard
// events are delivered in one tick, in queue order.
func (t *Table) InjectKey(key ebiten.Key) {
	t.injectKeys = append(t.injectKeys, KeyEvent{Key: key})
}

// InjectText queues typed text for the next Update.
func (t *Table) InjectText(text string) {
	t.injectKeys = append(t.injectKeys, CharEvent{Text: text})
}

// processInjectedPointer pops one queued sample and feeds it through the
// pointer state machine. Returns true if a sample was consumed, in which
// case the real mouse is not read this tick.
func (t *Table) processInjectedPointer() bool {
	if len(t.injectQueue) == 0 {
		return false
	}
	evt := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	t.processPointer(evt.screenX, evt.screenY, evt.pressed, evt.button, 0)
	return true
}
