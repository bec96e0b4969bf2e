// Package camera provides a 2D viewport over the normalized unit-square
// world, with pan, zoom, and toroidal wrapping.
package camera

import "math"

// Camera projects normalized world coordinates to screen pixels.
// At zoom 1 the whole unit square fills the viewport; panning wraps around
// the world edges.
type Camera struct {
	// Center of the view in normalized world coordinates
	X, Y float32

	// Zoom level (1.0 = whole world visible, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions in logical pixels
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world at 1:1 zoom.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		X:         0.5,
		Y:         0.5,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   1.0,
		MaxZoom:   8.0,
	}
}

// WorldToScreen converts normalized world coordinates to screen pixels,
// taking the shortest toroidal path to the view center.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := toroidalDelta(wx, c.X)
	dy := toroidalDelta(wy, c.Y)

	sx = c.ViewportW/2 + dx*c.Zoom*c.ViewportW
	sy = c.ViewportH/2 + dy*c.Zoom*c.ViewportH
	return sx, sy
}

// ScreenToWorld converts screen pixels to normalized world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - c.ViewportW/2) / (c.Zoom * c.ViewportW)
	dy := (sy - c.ViewportH/2) / (c.Zoom * c.ViewportH)

	wx = mod(c.X+dx, 1)
	wy = mod(c.Y+dy, 1)
	return wx, wy
}

// IsVisible reports whether a glyph at (wx, wy) with the given screen-pixel
// radius could appear in the viewport (conservative, for culling).
func (c *Camera) IsVisible(wx, wy, radiusPx float32) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	return sx >= -radiusPx && sx <= c.ViewportW+radiusPx &&
		sy >= -radiusPx && sy <= c.ViewportH+radiusPx
}

// Pan moves the camera by the given delta in screen pixels, wrapping at the
// world edges.
func (c *Camera) Pan(dxPx, dyPx float32) {
	c.X = mod(c.X+dxPx/(c.Zoom*c.ViewportW), 1)
	c.Y = mod(c.Y+dyPx/(c.Zoom*c.ViewportH), 1)
}

// SetZoom sets the zoom level, clamped to the min/max bounds.
func (c *Camera) SetZoom(zoom float32) {
	if zoom < c.MinZoom {
		zoom = c.MinZoom
	}
	if zoom > c.MaxZoom {
		zoom = c.MaxZoom
	}
	c.Zoom = zoom
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset recenters the camera at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = 0.5
	c.Y = 0.5
	c.Zoom = 1.0
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// on the unit circle axis.
func toroidalDelta(to, from float32) float32 {
	d := to - from
	if d > 0.5 {
		d -= 1
	} else if d < -0.5 {
		d += 1
	}
	return d
}

// mod returns the positive fractional part of x.
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}
