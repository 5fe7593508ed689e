package tabletop

// CursorState is the last known pointer position. The cursor phase of each
// tick is its only writer and runs before every phase that reads it, so a
// reader sees this tick's position whenever the pointer moved this tick and
// the previous position otherwise.
type CursorState struct {
	World  Vec2
	Screen Vec2
	// Tick is the tick that last moved the cursor.
	Tick uint64
}

// Cursor returns the table's cursor state.
func (t *Table) Cursor() CursorState {
	return t.cursor
}

// updateCursor applies the tick's pointer moves to the cursor.
func (t *Table) updateCursor() {
	for _, ev := range t.events {
		if mv, ok := ev.(PointerMoveEvent); ok {
			t.cursor = CursorState{World: mv.World, Screen: mv.Screen, Tick: t.tick}
		}
	}
}
