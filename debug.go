package tabletop

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/yohamta/donburi"
	"golang.org/x/term"
)

// dumpedComponents lists the component types the entity dump reports, in
// print order.
var dumpedComponents = []struct {
	name string
	has  func(*donburi.Entry) bool
}{
	{"Card", func(e *donburi.Entry) bool { return e.HasComponent(CardComponent) }},
	{"Transform", func(e *donburi.Entry) bool { return e.HasComponent(TransformComponent) }},
	{"Sprite", func(e *donburi.Entry) bool { return e.HasComponent(SpriteComponent) }},
}

type dumpLine struct {
	entity donburi.Entity
	names  []string
	card   *Card
	tr     Transform
}

// DumpEntities writes one line per table entity listing its components,
// and for cards their categorical state. Output is colored only when w is a
// terminal.
func DumpEntities(w io.Writer, world donburi.World) error {
	var lines []dumpLine
	drawableQuery.Each(world, func(entry *donburi.Entry) {
		l := dumpLine{entity: entry.Entity(), tr: *TransformComponent.Get(entry)}
		for _, c := range dumpedComponents {
			if c.has(entry) {
				l.names = append(l.names, c.name)
			}
		}
		if entry.HasComponent(CardComponent) {
			card := *CardComponent.Get(entry)
			l.card = &card
		}
		lines = append(lines, l)
	})
	// Non-card sprites first, then cards in creation order.
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i].card, lines[j].card
		if (a == nil) != (b == nil) {
			return a == nil
		}
		if a == nil {
			return lines[i].tr.Y < lines[j].tr.Y
		}
		return a.Seq < b.Seq
	})

	head := color.New(color.FgCyan, color.Bold)
	field := color.New(color.FgYellow)
	if !isTerminal(w) {
		head.DisableColor()
		field.DisableColor()
	}

	for _, l := range lines {
		if _, err := head.Fprintf(w, "entity %v", l.entity); err != nil {
			return fmt.Errorf("dump entity %v: %w", l.entity, err)
		}
		if _, err := fmt.Fprintf(w, " %v pos=(%.1f, %.1f, %.1f) rot=%.3f", l.names, l.tr.X, l.tr.Y, l.tr.Z, l.tr.Rotation); err != nil {
			return fmt.Errorf("dump entity %v: %w", l.entity, err)
		}
		if l.card != nil {
			c := l.card
			if _, err := field.Fprintf(w, " asset=%s owner=%s zone=%s role=%s tapped=%t seq=%d",
				c.Asset, c.Owner, c.Zone, c.Role, c.Tapped, c.Seq); err != nil {
				return fmt.Errorf("dump entity %v: %w", l.entity, err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("dump entity %v: %w", l.entity, err)
		}
	}
	return nil
}

// isTerminal reports whether w is an *os.File attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
