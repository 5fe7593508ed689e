package tabletop

import "math"

// Camera maps world space (origin at the table center, Y up) onto a
// screen-space viewport (origin top-left, Y down).
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewCamera creates a camera centered on the world origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1.0, Viewport: viewport}
}

// viewMatrix returns Translate(cx, cy) * Scale(zoom, -zoom) * Translate(-X, -Y)
// where cx, cy is the viewport center.
func (c *Camera) viewMatrix() [6]float64 {
	z := c.Zoom
	if z == 0 {
		z = 1
	}
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return [6]float64{z, 0, 0, -z, cx - z*c.X, cy + z*c.Y}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.viewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.viewMatrix()), sx, sy)
}

// VisibleBounds returns the world-space extent of the viewport as
// (min, max) corners.
func (c *Camera) VisibleBounds() (min, max Vec2) {
	x0, y0 := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	x1, y1 := c.ScreenToWorld(c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Vec2{math.Min(x0, x1), math.Min(y0, y1)}, Vec2{math.Max(x0, x1), math.Max(y0, y1)}
}

// SetViewport resizes the camera's viewport, keeping its world position.
func (c *Camera) SetViewport(r Rect) {
	c.Viewport = r
}
