package tabletop

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextInput is a single-line text field. Only a focused input receives
// keyboard events.
type TextInput struct {
	// Bounds is the field's screen-space rectangle, used for click focus.
	Bounds Rect

	buf     []rune
	focused bool
}

// Text returns the current contents.
func (ti *TextInput) Text() string {
	return string(ti.buf)
}

// Focused reports whether the input receives keyboard events.
func (ti *TextInput) Focused() bool {
	return ti.focused
}

// InsertText appends s unless it contains a control character, in which
// case the whole payload is dropped. Reports whether anything was appended.
func (ti *TextInput) InsertText(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	ti.buf = append(ti.buf, []rune(s)...)
	return true
}

// Backspace removes the last character. No-op on an empty buffer.
func (ti *TextInput) Backspace() bool {
	if len(ti.buf) == 0 {
		return false
	}
	ti.buf = ti.buf[:len(ti.buf)-1]
	return true
}

// Submit returns the contents and clears the buffer.
func (ti *TextInput) Submit() string {
	s := string(ti.buf)
	ti.buf = ti.buf[:0]
	return s
}

// Clear empties the buffer.
func (ti *TextInput) Clear() {
	ti.buf = ti.buf[:0]
}

// Focus gives keyboard focus to ti, taking it from whichever input held it.
// A nil ti clears focus.
func (t *Table) Focus(ti *TextInput) {
	if t.focused != nil {
		t.focused.focused = false
	}
	t.focused = ti
	if ti != nil {
		ti.focused = true
	}
}

// FocusedInput returns the input that currently has focus, or nil.
func (t *Table) FocusedInput() *TextInput {
	return t.focused
}

// handleTextKey delivers a keyboard event to the focused input. Enter
// submits and Escape cancels; both are published so the input's owner can
// react.
func (t *Table) handleTextKey(ti *TextInput, ev Event) {
	switch ev := ev.(type) {
	case CharEvent:
		ti.InsertText(ev.Text)
	case KeyEvent:
		switch ev.Key {
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			text := ti.Submit()
			t.log.Info("text input submitted", "text", text)
			TextSubmittedEvent.Publish(t.world, TextSubmitted{Input: ti, Text: text})
		case ebiten.KeyBackspace:
			ti.Backspace()
		case ebiten.KeyEscape:
			TextCancelledEvent.Publish(t.world, TextCancelled{Input: ti})
		}
	}
}
