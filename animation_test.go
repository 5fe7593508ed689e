package tabletop

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenCardPosition(t *testing.T) {
	tbl := newTestTable(t)
	e := spawnCharacter(tbl, 0, 0)
	g := TweenCardPosition(tbl.World(), e, Vec2{100, -50}, 1, ease.Linear)
	if g == nil {
		t.Fatal("TweenCardPosition returned nil")
	}

	g.Update(tbl.World(), 0.5)
	if got := mustTransform(t, tbl, e).Position(); !approxEqual(got.X, 50, 1e-3) || !approxEqual(got.Y, -25, 1e-3) {
		t.Errorf("halfway = %v, want {50 -25}", got)
	}
	if g.Done {
		t.Fatal("tween finished early")
	}

	g.Update(tbl.World(), 0.6)
	if got := mustTransform(t, tbl, e).Position(); !approxEqual(got.X, 100, 1e-3) || !approxEqual(got.Y, -50, 1e-3) {
		t.Errorf("end = %v, want {100 -50}", got)
	}
	if !g.Done {
		t.Error("tween should be done")
	}

	// A finished tween no longer writes.
	DragCard(tbl.World(), e, Vec2{1, 0})
	g.Update(tbl.World(), 0.1)
	if got := mustTransform(t, tbl, e).Position(); !approxEqual(got.X, 101, 1e-3) {
		t.Errorf("x = %f after done, want 101", got.X)
	}
}

func TestTweenStopsWhenCardRemoved(t *testing.T) {
	tbl := newTestTable(t)
	e := spawnCharacter(tbl, 0, 0)
	g := TweenCardPosition(tbl.World(), e, Vec2{100, 100}, 1, ease.Linear)
	if g == nil {
		t.Fatal("TweenCardPosition returned nil")
	}
	tbl.World().Remove(e)
	g.Update(tbl.World(), 0.1)
	if !g.Done {
		t.Error("tween should finish when its card is removed")
	}
}

func TestTweenCardPositionNotACard(t *testing.T) {
	tbl := newTestTable(t)
	e := spawnCharacter(tbl, 0, 0)
	tbl.World().Remove(e)
	if g := TweenCardPosition(tbl.World(), e, Vec2{}, 1, ease.Linear); g != nil {
		t.Error("expected nil for a removed card")
	}
}

func TestDragCancelsTween(t *testing.T) {
	tbl := newTestTable(t)
	tbl.layoutTween = 1
	e := spawnCharacter(tbl, 300, 0)
	tbl.OrganizeRows()

	tbl.handleDrag(DragEvent{Pointer: Pointer{Target: e, Hit: true}, Delta: Vec2{5, 0}})
	runTicks(tbl, 120)
	if got := mustTransform(t, tbl, e).Position(); got != (Vec2{305, 0}) {
		t.Errorf("position = %v, want {305 0}", got)
	}
}
