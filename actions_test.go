package tabletop

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestActionQueueOrder(t *testing.T) {
	tbl := newTestTable(t)
	var cards []donburi.Entity
	for i := range 3 {
		cards = append(cards, spawnCharacter(tbl, float64(i), 0))
	}

	q := tbl.Actions()
	q.Enqueue(PlayCharacter{Entity: cards[0]})
	q.Enqueue(TapCharacter{Entity: cards[1]})
	q.Enqueue(UntapCharacter{Entity: cards[2]})
	q.Enqueue(PlayCharacter{Entity: cards[0]})

	if q.Len() != 4 {
		t.Fatalf("Len = %d, want 4", q.Len())
	}
	got := q.Snapshot()
	want := []PlayAction{
		PlayCharacter{Entity: cards[0]},
		TapCharacter{Entity: cards[1]},
		UntapCharacter{Entity: cards[2]},
		PlayCharacter{Entity: cards[0]},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestActionQueueSnapshotIsCopy(t *testing.T) {
	var q ActionQueue
	q.Enqueue(TapCharacter{})
	snap := q.Snapshot()
	snap[0] = UntapCharacter{}
	if _, ok := q.Snapshot()[0].(TapCharacter); !ok {
		t.Error("mutating a snapshot changed the queue")
	}
}

func TestTapDoesNotEnqueue(t *testing.T) {
	tbl := newTestTable(t)
	spawnCharacter(tbl, 0, 0)
	tbl.InjectRightClick(centerX, centerY)
	runTicks(tbl, 2)
	if tbl.Actions().Len() != 0 {
		t.Errorf("actions = %d, want 0", tbl.Actions().Len())
	}
}
