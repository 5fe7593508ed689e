package tabletop

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// collectKeyboard appends this tick's keyboard events: every injected
// keyboard event, then (when polling devices) typed characters followed by
// newly pressed keys.
func (t *Table) collectKeyboard() {
	t.events = append(t.events, t.injectKeys...)
	clear(t.injectKeys)
	t.injectKeys = t.injectKeys[:0]

	if !t.pollDevices {
		return
	}
	t.runeBuf = ebiten.AppendInputChars(t.runeBuf[:0])
	for _, r := range t.runeBuf {
		t.events = append(t.events, CharEvent{Text: string(r)})
	}
	mods := readModifiers()
	t.keyBuf = inpututil.AppendJustPressedKeys(t.keyBuf[:0])
	for _, k := range t.keyBuf {
		t.events = append(t.events, KeyEvent{Key: k, Modifiers: mods})
	}
}

// ParseKey resolves an Ebitengine key name such as "F3", "Backspace", or
// "Enter". Matching is case-insensitive.
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("empty key name")
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// keyBindings maps the table's debug and UI actions to keys.
type keyBindings struct {
	debugDump   ebiten.Key
	organize    ebiten.Key
	removeCard  ebiten.Key
	openSpawner ebiten.Key
}

func resolveKeyBindings(k KeysConfig) (keyBindings, error) {
	var b keyBindings
	var err error
	if b.debugDump, err = ParseKey(k.DebugDump); err != nil {
		return b, fmt.Errorf("keys.debug_dump: %w", err)
	}
	if b.organize, err = ParseKey(k.Organize); err != nil {
		return b, fmt.Errorf("keys.organize: %w", err)
	}
	if b.removeCard, err = ParseKey(k.RemoveCard); err != nil {
		return b, fmt.Errorf("keys.remove_card: %w", err)
	}
	if b.openSpawner, err = ParseKey(k.OpenSpawner); err != nil {
		return b, fmt.Errorf("keys.open_spawner: %w", err)
	}
	seen := make(map[ebiten.Key]bool, 4)
	for _, key := range []ebiten.Key{b.debugDump, b.organize, b.removeCard, b.openSpawner} {
		if seen[key] {
			return b, fmt.Errorf("keys: %s is bound twice", key)
		}
		seen[key] = true
	}
	return b, nil
}

// handleKey runs the binding for a key pressed while no text input has
// focus.
func (t *Table) handleKey(ev KeyEvent) {
	switch ev.Key {
	case t.keys.debugDump:
		if err := DumpEntities(t.dumpOut, t.world); err != nil {
			t.log.Warn("entity dump failed", "err", err)
		}
	case t.keys.organize:
		t.OrganizeRows()
	case t.keys.removeCard:
		t.removeCardUnderCursor()
	case t.keys.openSpawner:
		CardSpawnerOpenEvent.Publish(t.world, SpawnerOpen{})
	}
}
