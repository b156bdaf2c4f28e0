package editor

import "github.com/framery/framery/pkg/geom"

// Zoom limits for the camera.
const (
	MinZoom = 0.1
	MaxZoom = 8.0
)

// Camera maps design-space coordinates to screen space. Zoom applies
// first, then pan; pan is in screen pixels.
type Camera struct {
	Zoom float64
	PanX float64
	PanY float64
}

// NewCamera returns the identity camera.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// ToScreen converts a design-space point to screen space.
func (c Camera) ToScreen(p geom.Point) geom.Point {
	return geom.Pt(p.X*c.Zoom+c.PanX, p.Y*c.Zoom+c.PanY)
}

// ToDesign converts a screen-space point to design space.
func (c Camera) ToDesign(p geom.Point) geom.Point {
	return geom.Pt((p.X-c.PanX)/c.Zoom, (p.Y-c.PanY)/c.Zoom)
}

// PanBy shifts the view by a screen-space delta.
func (c *Camera) PanBy(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// ZoomAt multiplies the zoom by factor while keeping the given screen
// point fixed over the same design point. Zoom is clamped to
// [MinZoom, MaxZoom].
func (c *Camera) ZoomAt(factor float64, pivot geom.Point) {
	anchor := c.ToDesign(pivot)
	c.Zoom = min(max(c.Zoom*factor, MinZoom), MaxZoom)
	c.PanX = pivot.X - anchor.X*c.Zoom
	c.PanY = pivot.Y - anchor.Y*c.Zoom
}
