package tabletop

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// PlayAction is a proposed game action that has not been applied. The
// concrete types are PlayCharacter, TapCharacter, and UntapCharacter.
type PlayAction interface {
	// Card is the entity the action is about.
	Card() donburi.Entity
	fmt.Stringer
	playAction()
}

// PlayCharacter proposes putting a card into play.
type PlayCharacter struct{ Entity donburi.Entity }

// TapCharacter proposes tapping an in-play card.
type TapCharacter struct{ Entity donburi.Entity }

// UntapCharacter proposes untapping an in-play card.
type UntapCharacter struct{ Entity donburi.Entity }

func (a PlayCharacter) Card() donburi.Entity  { return a.Entity }
func (a TapCharacter) Card() donburi.Entity   { return a.Entity }
func (a UntapCharacter) Card() donburi.Entity { return a.Entity }

func (a PlayCharacter) String() string  { return fmt.Sprintf("PlayCharacter{%v}", a.Entity) }
func (a TapCharacter) String() string   { return fmt.Sprintf("TapCharacter{%v}", a.Entity) }
func (a UntapCharacter) String() string { return fmt.Sprintf("UntapCharacter{%v}", a.Entity) }

func (PlayCharacter) playAction()  {}
func (TapCharacter) playAction()   {}
func (UntapCharacter) playAction() {}

// ActionQueue is an append-only, unbounded log of proposed actions in
// insertion order. Nothing consumes it yet: there is deliberately no
// dequeue, and entries are never removed.
type ActionQueue struct {
	actions []PlayAction
}

// Enqueue appends a to the tail of the log.
func (q *ActionQueue) Enqueue(a PlayAction) {
	q.actions = append(q.actions, a)
}

// Len returns the number of logged actions.
func (q *ActionQueue) Len() int {
	return len(q.actions)
}

// Snapshot returns a copy of the log for inspection.
func (q *ActionQueue) Snapshot() []PlayAction {
	out := make([]PlayAction, len(q.actions))
	copy(out, q.actions)
	return out
}

// Actions returns the table's action log.
func (t *Table) Actions() *ActionQueue {
	return &t.actions
}
