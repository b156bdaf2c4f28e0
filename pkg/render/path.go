package render

import (
	"github.com/fogleman/gg"

	"github.com/framery/framery/pkg/frame"
)

// applyPath replays a frame outline onto the drawing context, offset to
// the frame's scaled position. Points pass through the context's current
// matrix as they are added, so a rotated transform at call time yields a
// rotated path.
func applyPath(dc *gg.Context, p frame.Path, offsetX, offsetY, scale float64) {
	tx := func(x, y float64) (float64, float64) {
		return offsetX + x*scale, offsetY + y*scale
	}
	for _, s := range p {
		switch s.Op {
		case frame.MoveTo:
			x, y := tx(s.P1.X, s.P1.Y)
			dc.MoveTo(x, y)
		case frame.LineTo:
			x, y := tx(s.P1.X, s.P1.Y)
			dc.LineTo(x, y)
		case frame.QuadTo:
			cx, cy := tx(s.P1.X, s.P1.Y)
			x, y := tx(s.P2.X, s.P2.Y)
			dc.QuadraticTo(cx, cy, x, y)
		case frame.CubicTo:
			c1x, c1y := tx(s.P1.X, s.P1.Y)
			c2x, c2y := tx(s.P2.X, s.P2.Y)
			x, y := tx(s.P3.X, s.P3.Y)
			dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case frame.Close:
			dc.ClosePath()
		}
	}
}
