package tabletop

import "math"

// TapRotation is the rotation of a tapped card: a quarter turn clockwise.
const TapRotation = -math.Pi / 2

// Transform is a world-space placement. World space has its origin at the
// table center with Y increasing upward; Rotation is in radians,
// counter-clockwise. Z orders drawing and picking (higher is on top).
type Transform struct {
	X, Y, Z        float64
	Rotation       float64
	ScaleX, ScaleY float64
}

// NewTransform returns an unrotated, unscaled transform at (x, y, z).
func NewTransform(x, y, z float64) Transform {
	return Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}
}

// Position returns the transform's X and Y as a Vec2.
func (t Transform) Position() Vec2 {
	return Vec2{t.X, t.Y}
}

// scale returns the effective scale, treating an unset (zero) component as 1.
func (t Transform) scale() (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localMatrix computes Translate(X, Y) * Rotate(Rotation) * Scale(sx, sy)
// as [a, b, c, d, tx, ty].
func (t Transform) localMatrix() [6]float64 {
	sx, sy := t.scale()
	sin, cos := math.Sincos(t.Rotation)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, t.X, t.Y}
}

// WorldToLocal converts a world-space point into this transform's local
// space, where the sprite is centered on the origin and unrotated.
func (t Transform) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(t.localMatrix()), wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (t Transform) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(t.localMatrix(), lx, ly)
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
