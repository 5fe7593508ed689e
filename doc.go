// Package tabletop is a card-game table prototype for [Ebitengine].
//
// A [Table] owns a [Donburi] world in which every card is an entity
// carrying a [Card], a [Transform], and a [Sprite]. The table turns mouse
// and keyboard input into events, hit-tests them against cards, and lets
// the player drag cards, tap and untap them with a right click, lay out the
// in-play rows, and spawn new cards by name from a text-input modal.
//
// # Quick start
//
//	cfg := tabletop.DefaultConfig()
//	table, err := tabletop.NewTable(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	table.Setup(cfg.Setup)
//	if err := tabletop.Run(table, cfg.Window); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinates
//
// World space is centered on the table with Y pointing up. Screen space
// has its origin at the top-left with Y pointing down. The table's
// [Camera] converts between them. Drag deltas arrive in screen space, so a
// drag adds dx to a card's X and subtracts dy from its Y.
//
// # Ticks
//
// [Table.Update] runs one tick with a fixed phase order: input collection,
// cursor update, event dispatch, Donburi event processing, and animation.
// The cursor is written only in its own phase, before anything reads it.
//
// # Rows
//
// [Table.OrganizeRows] centers each row of in-play cards on x = 0. Cards
// are ordered by creation sequence, so the result does not depend on ECS
// iteration order.
//
// # Automation
//
// Input can be injected instead of read from devices ([Table.InjectClick],
// [Table.InjectDrag], [Table.InjectKey], ...) or scripted with
// [LoadTestScript].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tabletop
