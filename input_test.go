package tabletop

import (
	"testing"
)

// sample feeds one pointer sample and returns the event types it produced.
func sample(tbl *Table, sx, sy float64, pressed bool, button MouseButton) []EventType {
	tbl.events = tbl.events[:0]
	tbl.processPointer(sx, sy, pressed, button, 0)
	types := make([]EventType, len(tbl.events))
	for i, ev := range tbl.events {
		types[i] = ev.Type()
	}
	return types
}

func equalTypes(a, b []EventType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPointerClickOnCard(t *testing.T) {
	tbl := newTestTable(t)
	card := spawnCharacter(tbl, 0, 0)

	if got := sample(tbl, centerX, centerY, true, MouseButtonLeft); !equalTypes(got, []EventType{EventPointerMove, EventPointerDown}) {
		t.Fatalf("press = %v, want [PointerMove PointerDown]", got)
	}
	got := sample(tbl, centerX, centerY, false, MouseButtonLeft)
	if !equalTypes(got, []EventType{EventClick, EventPointerUp}) {
		t.Fatalf("release = %v, want [Click PointerUp]", got)
	}
	click := tbl.events[0].(ClickEvent)
	if !click.Hit || click.Target != card {
		t.Errorf("click target = (%v, %v), want (%v, true)", click.Target, click.Hit, card)
	}
	if click.World != (Vec2{0, 0}) {
		t.Errorf("click world = %v, want origin", click.World)
	}
}

func TestPointerClickOnEmptyTable(t *testing.T) {
	tbl := newTestTable(t)
	sample(tbl, 100, 100, true, MouseButtonLeft)
	got := sample(tbl, 100, 100, false, MouseButtonLeft)
	if !equalTypes(got, []EventType{EventClick, EventPointerUp}) {
		t.Fatalf("release = %v, want [Click PointerUp]", got)
	}
	if tbl.events[0].(ClickEvent).Hit {
		t.Error("click over empty table should not hit")
	}
}

func TestPointerNoClickAcrossTargets(t *testing.T) {
	tbl := newTestTable(t)
	spawnCharacter(tbl, 0, 0)
	spawnCharacter(tbl, 300, 0)

	tests := []struct {
		name     string
		from, to Vec2
	}{
		{"card to empty", Vec2{centerX, centerY}, Vec2{centerX + 150, centerY}},
		{"empty to card", Vec2{centerX + 150, centerY}, Vec2{centerX, centerY}},
		{"card to other card", Vec2{centerX, centerY}, Vec2{centerX + 300, centerY}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample(tbl, tt.from.X, tt.from.Y, true, MouseButtonLeft)
			got := sample(tbl, tt.to.X, tt.to.Y, false, MouseButtonLeft)
			for _, ty := range got {
				if ty == EventClick {
					t.Errorf("events = %v, want no Click", got)
				}
			}
		})
	}
}

func TestPointerDragDeadZone(t *testing.T) {
	tbl := newTestTable(t)
	card := spawnCharacter(tbl, 0, 0)

	sample(tbl, centerX, centerY, true, MouseButtonLeft)

	if got := sample(tbl, centerX+2, centerY+2, true, MouseButtonLeft); !equalTypes(got, []EventType{EventPointerMove}) {
		t.Fatalf("inside dead zone = %v, want [PointerMove]", got)
	}

	got := sample(tbl, centerX+10, centerY, true, MouseButtonLeft)
	if !equalTypes(got, []EventType{EventPointerMove, EventDragStart, EventDrag}) {
		t.Fatalf("leaving dead zone = %v, want [PointerMove DragStart Drag]", got)
	}
	drag := tbl.events[2].(DragEvent)
	if drag.Target != card || !drag.Hit {
		t.Errorf("drag target = %v, want %v", drag.Target, card)
	}
	if drag.Delta != (Vec2{8, -2}) {
		t.Errorf("drag delta = %v, want {8 -2}", drag.Delta)
	}

	if got := sample(tbl, centerX+20, centerY, true, MouseButtonLeft); !equalTypes(got, []EventType{EventPointerMove, EventDrag}) {
		t.Fatalf("continued drag = %v, want [PointerMove Drag]", got)
	}
	if got := sample(tbl, centerX+20, centerY, false, MouseButtonLeft); !equalTypes(got, []EventType{EventDragEnd, EventPointerUp}) {
		t.Fatalf("release = %v, want [DragEnd PointerUp]", got)
	}
}

func TestPointerReleaseAfterMoveDrags(t *testing.T) {
	tbl := newTestTable(t)
	spawnCharacter(tbl, 0, 0)
	sample(tbl, centerX, centerY, true, MouseButtonLeft)
	sample(tbl, centerX+10, centerY, true, MouseButtonLeft)

	got := sample(tbl, centerX+30, centerY, false, MouseButtonLeft)
	if !equalTypes(got, []EventType{EventPointerMove, EventDrag, EventDragEnd, EventPointerUp}) {
		t.Fatalf("release = %v, want [PointerMove Drag DragEnd PointerUp]", got)
	}
	if d := tbl.events[1].(DragEvent).Delta; d != (Vec2{20, 0}) {
		t.Errorf("final drag delta = %v, want {20 0}", d)
	}
}

func TestPointerReleasePastDeadZoneDrags(t *testing.T) {
	tbl := newTestTable(t)
	card := spawnCharacter(tbl, 0, 0)
	sample(tbl, centerX, centerY, true, MouseButtonRight)

	// No held sample between press and release.
	got := sample(tbl, centerX+30, centerY, false, MouseButtonLeft)
	want := []EventType{EventPointerMove, EventDragStart, EventDrag, EventDragEnd, EventPointerUp}
	if !equalTypes(got, want) {
		t.Fatalf("release = %v, want %v", got, want)
	}
	drag := tbl.events[2].(DragEvent)
	if drag.Target != card || !drag.Hit || drag.Delta != (Vec2{30, 0}) {
		t.Errorf("drag = %+v, want card %v with delta {30 0}", drag, card)
	}
}

func TestSetDragDeadZone(t *testing.T) {
	tbl := newTestTable(t)
	tbl.SetDragDeadZone(50)
	sample(tbl, 100, 100, true, MouseButtonLeft)
	if got := sample(tbl, 130, 100, true, MouseButtonLeft); !equalTypes(got, []EventType{EventPointerMove}) {
		t.Errorf("30px with dead zone 50 = %v, want [PointerMove]", got)
	}
	if got := sample(tbl, 160, 100, true, MouseButtonLeft); !equalTypes(got, []EventType{EventPointerMove, EventDragStart, EventDrag}) {
		t.Errorf("60px with dead zone 50 = %v, want drag start", got)
	}
}

func TestPointerButtonCapturedAtPress(t *testing.T) {
	tbl := newTestTable(t)
	sample(tbl, 100, 100, true, MouseButtonRight)
	sample(tbl, 100, 100, true, MouseButtonLeft)
	sample(tbl, 100, 100, false, MouseButtonLeft)
	if b := tbl.events[0].(ClickEvent).Button; b != MouseButtonRight {
		t.Errorf("click button = %v, want right", b)
	}
}

func TestPickTopmost(t *testing.T) {
	tbl := newTestTable(t)
	first := spawnCharacter(tbl, 0, 0)
	second := spawnCharacter(tbl, 10, 0)

	if e, ok := tbl.pick(Vec2{5, 0}); !ok || e != second {
		t.Errorf("pick = %v, want later card %v", e, second)
	}

	TransformComponent.Get(tbl.World().Entry(first)).Z = 1
	if e, ok := tbl.pick(Vec2{5, 0}); !ok || e != first {
		t.Errorf("pick = %v, want higher Z card %v", e, first)
	}

	if _, ok := tbl.pick(Vec2{1000, 0}); ok {
		t.Error("pick over empty table should miss")
	}
}

func TestPickIgnoresPlaysheets(t *testing.T) {
	tbl := newTestTable(t)
	tbl.Setup(SetupConfig{})
	if _, ok := tbl.pick(Vec2{0, 250}); ok {
		t.Error("playsheets are not cards and should not be picked")
	}
}

func TestPickTappedCard(t *testing.T) {
	tbl := newTestTable(t)
	card := spawnCharacter(tbl, 0, 0)
	if _, ok := tbl.pick(Vec2{80, 0}); ok {
		t.Fatal("untapped card should not reach x=80")
	}
	ToggleTap(tbl.World(), card)
	if e, ok := tbl.pick(Vec2{80, 0}); !ok || e != card {
		t.Error("tapped card should be picked at x=80")
	}
}
