package tabletop

import "testing"

func TestContains(t *testing.T) {
	center := Vec2{0, 0}
	half := Vec2{60, 84}
	tests := []struct {
		name   string
		cursor Vec2
		want   bool
	}{
		{"center", Vec2{0, 0}, true},
		{"inside", Vec2{30, -50}, true},
		{"right edge", Vec2{60, 0}, true},
		{"left edge", Vec2{-60, 0}, true},
		{"top edge", Vec2{0, 84}, true},
		{"bottom edge", Vec2{0, -84}, true},
		{"corner", Vec2{60, 84}, true},
		{"opposite corner", Vec2{-60, -84}, true},
		{"just right", Vec2{60.001, 0}, false},
		{"just above", Vec2{0, 84.5}, false},
		{"far away", Vec2{500, 500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.cursor, center, half); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.cursor, got, tt.want)
			}
		})
	}
}

func TestContainsOffsetCenter(t *testing.T) {
	if !Contains(Vec2{-100, -16}, Vec2{-100, -100}, Vec2{60, 84}) {
		t.Error("top edge of an offset card should be inside")
	}
	if Contains(Vec2{0, 0}, Vec2{-100, -100}, Vec2{60, 84}) {
		t.Error("origin should be outside a card centered at (-100,-100)")
	}
}

func TestCursorOverSprite(t *testing.T) {
	card := Sprite{Size: Vec2{120, 168}}
	tr := NewTransform(10, 20, 0)

	if !CursorOverSprite(Vec2{70, 104}, card, tr) {
		t.Error("corner should hit")
	}
	if CursorOverSprite(Vec2{71, 20}, card, tr) {
		t.Error("beyond right edge should miss")
	}
}

func TestCursorOverSpriteZeroSize(t *testing.T) {
	if CursorOverSprite(Vec2{}, Sprite{}, NewTransform(0, 0, 0)) {
		t.Error("sprite without size should never be hit")
	}
}

func TestDegenerateSizeNeverHit(t *testing.T) {
	tests := []struct {
		name string
		size Vec2
	}{
		{"zero width", Vec2{0, 168}},
		{"zero height", Vec2{120, 0}},
		{"negative width", Vec2{-120, 168}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sprite{Size: tt.size}
			tr := NewTransform(0, 0, 0)
			if CursorOverSprite(Vec2{0, 0}, s, tr) {
				t.Error("CursorOverSprite hit a sprite without positive extent")
			}
			if cardContainsWorld(Vec2{0, 0}, s, tr) {
				t.Error("cardContainsWorld hit a sprite without positive extent")
			}
		})
	}
}

func TestCursorOverSpriteScaled(t *testing.T) {
	sheet := Sprite{Size: Vec2{800, 800}}
	tr := NewTransform(0, 250, -1)
	tr.ScaleX, tr.ScaleY = 1.2, 0.45

	if !CursorOverSprite(Vec2{470, 420}, sheet, tr) {
		t.Error("point inside scaled bounds should hit")
	}
	if CursorOverSprite(Vec2{0, 450}, sheet, tr) {
		t.Error("point above scaled bounds should miss")
	}
}

func TestCursorOverSpriteIgnoresRotation(t *testing.T) {
	card := Sprite{Size: Vec2{120, 168}}
	tr := NewTransform(0, 0, 0)
	tr.Rotation = TapRotation
	if CursorOverSprite(Vec2{80, 0}, card, tr) {
		t.Error("unrotated bounds should not include x=80")
	}
}

func TestCardContainsWorldRotated(t *testing.T) {
	card := Sprite{Size: Vec2{120, 168}}
	tr := NewTransform(0, 0, 0)
	if cardContainsWorld(Vec2{80, 0}, card, tr) {
		t.Error("untapped card should not contain x=80")
	}
	tr.Rotation = TapRotation
	if !cardContainsWorld(Vec2{80, 0}, card, tr) {
		t.Error("tapped card should contain x=80")
	}
	if cardContainsWorld(Vec2{0, 80}, card, tr) {
		t.Error("tapped card should not contain y=80")
	}
}
