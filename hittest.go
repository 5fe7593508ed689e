package tabletop

// Contains reports whether cursor lies inside the axis-aligned rectangle
// centered at center with the given half extents. The rectangle is closed:
// points on an edge or corner are inside.
func Contains(cursor, center, halfExtent Vec2) bool {
	return cursor.X >= center.X-halfExtent.X && cursor.X <= center.X+halfExtent.X &&
		cursor.Y >= center.Y-halfExtent.Y && cursor.Y <= center.Y+halfExtent.Y
}

// CursorOverSprite tests cursor against a sprite's unrotated bounds at the
// transform's position. A sprite without a positive width and height is
// never hit.
func CursorOverSprite(cursor Vec2, sprite Sprite, tr Transform) bool {
	half, ok := spriteHalfExtent(sprite, tr)
	if !ok {
		return false
	}
	return Contains(cursor, Vec2{tr.X, tr.Y}, half)
}

// cardContainsWorld tests a world point against a sprite's bounds in the
// sprite's local frame, so rotated (tapped) cards are hit where they are
// drawn.
func cardContainsWorld(p Vec2, sprite Sprite, tr Transform) bool {
	if sprite.Size.X <= 0 || sprite.Size.Y <= 0 {
		return false
	}
	lx, ly := tr.WorldToLocal(p.X, p.Y)
	return Contains(Vec2{lx, ly}, Vec2{}, sprite.Size.Scale(0.5))
}

// spriteHalfExtent returns half the sprite's size after transform scale.
func spriteHalfExtent(sprite Sprite, tr Transform) (Vec2, bool) {
	if sprite.Size.X <= 0 || sprite.Size.Y <= 0 {
		return Vec2{}, false
	}
	sx, sy := tr.scale()
	return Vec2{sprite.Size.X * sx / 2, sprite.Size.Y * sy / 2}, true
}
