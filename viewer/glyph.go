package viewer

import "math"

// Vec2 is a screen-space point in logical pixels.
type Vec2 struct {
	X, Y float32
}

// Tail vertices sit 120 degrees either side of the nose direction.
const tailOffset = 2 * math.Pi / 3

// TriangleVertices computes the glyph for an animal at screen position
// (x, y) with the given size and rotation. The nose vertex sits at
// distance 1.5*size along the rotation vector, using the convention
// (dx, dy) = (-sin r, cos r) so rotation 0 points up; the two tail
// vertices sit at radius size, offset +-2*pi/3 from the nose direction.
func TriangleVertices(x, y, size, rotation float32) (nose, tailA, tailB Vec2) {
	nose = vertexAt(x, y, 1.5*size, rotation)
	tailA = vertexAt(x, y, size, rotation+tailOffset)
	tailB = vertexAt(x, y, size, rotation-tailOffset)
	return nose, tailA, tailB
}

// vertexAt projects a point at the given radius along a rotation from
// (x, y).
func vertexAt(x, y, radius, rotation float32) Vec2 {
	sin, cos := math.Sincos(float64(rotation))
	return Vec2{
		X: x - float32(sin)*radius,
		Y: y + float32(cos)*radius,
	}
}
