package frame

import (
	"math"

	"github.com/framery/framery/pkg/geom"
)

// kappa is the control-point distance factor for approximating a quarter
// circle with a cubic curve.
const kappa = 0.5522847498307936

// SegOp identifies a path segment operation.
type SegOp int

// Path segment operations.
const (
	MoveTo SegOp = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Segment is a single path operation. P1 is the endpoint for MoveTo and
// LineTo. QuadTo uses P1 as control and P2 as endpoint; CubicTo uses P1
// and P2 as controls and P3 as endpoint. Close carries no points.
type Segment struct {
	Op         SegOp
	P1, P2, P3 geom.Point
}

// Path is a closed outline in a frame's unrotated local coordinate
// space, with the origin at the frame's top-left corner.
type Path []Segment

// IsClosed reports whether the path ends with a Close whose current
// position has returned to the starting point.
func (p Path) IsClosed() bool {
	if len(p) == 0 || p[0].Op != MoveTo || p[len(p)-1].Op != Close {
		return false
	}
	start := p[0].P1
	cur := start
	for _, s := range p[1 : len(p)-1] {
		switch s.Op {
		case MoveTo, LineTo:
			cur = s.P1
		case QuadTo:
			cur = s.P2
		case CubicTo:
			cur = s.P3
		case Close:
			return false // interior Close not produced by Outline
		}
	}
	const eps = 1e-9
	return math.Abs(cur.X-start.X) < eps && math.Abs(cur.Y-start.Y) < eps
}

// Outline builds the frame's closed outline for its shape kind. The same
// path feeds both the content clip region and the stroked border, so the
// two can never drift apart.
//
// For rounded rectangles the corner radius is taken as-is: radii larger
// than half the shorter side produce self-intersecting curves. This
// mirrors how templates have always rendered and is left uncorrected.
func Outline(f *Frame) Path {
	switch f.Shape {
	case ShapeRounded:
		return roundedRectPath(f.Width, f.Height, f.CornerRadius)
	case ShapeCircle:
		return circlePath(f.Width, f.Height)
	case ShapePolygon:
		return polygonPath(f.Width, f.Height, f.PolygonSides)
	default:
		return rectPath(f.Width, f.Height)
	}
}

func rectPath(w, h float64) Path {
	return Path{
		{Op: MoveTo, P1: geom.Pt(0, 0)},
		{Op: LineTo, P1: geom.Pt(w, 0)},
		{Op: LineTo, P1: geom.Pt(w, h)},
		{Op: LineTo, P1: geom.Pt(0, h)},
		{Op: LineTo, P1: geom.Pt(0, 0)},
		{Op: Close},
	}
}

func roundedRectPath(w, h, r float64) Path {
	return Path{
		{Op: MoveTo, P1: geom.Pt(r, 0)},
		{Op: LineTo, P1: geom.Pt(w-r, 0)},
		{Op: QuadTo, P1: geom.Pt(w, 0), P2: geom.Pt(w, r)},
		{Op: LineTo, P1: geom.Pt(w, h-r)},
		{Op: QuadTo, P1: geom.Pt(w, h), P2: geom.Pt(w-r, h)},
		{Op: LineTo, P1: geom.Pt(r, h)},
		{Op: QuadTo, P1: geom.Pt(0, h), P2: geom.Pt(0, h-r)},
		{Op: LineTo, P1: geom.Pt(0, r)},
		{Op: QuadTo, P1: geom.Pt(0, 0), P2: geom.Pt(r, 0)},
		{Op: Close},
	}
}

func circlePath(w, h float64) Path {
	cx, cy := w/2, h/2
	r := math.Min(w, h) / 2
	k := kappa * r
	return Path{
		{Op: MoveTo, P1: geom.Pt(cx+r, cy)},
		{Op: CubicTo, P1: geom.Pt(cx+r, cy+k), P2: geom.Pt(cx+k, cy+r), P3: geom.Pt(cx, cy+r)},
		{Op: CubicTo, P1: geom.Pt(cx-k, cy+r), P2: geom.Pt(cx-r, cy+k), P3: geom.Pt(cx-r, cy)},
		{Op: CubicTo, P1: geom.Pt(cx-r, cy-k), P2: geom.Pt(cx-k, cy-r), P3: geom.Pt(cx, cy-r)},
		{Op: CubicTo, P1: geom.Pt(cx+k, cy-r), P2: geom.Pt(cx+r, cy-k), P3: geom.Pt(cx+r, cy)},
		{Op: Close},
	}
}

// polygonPath places n vertices evenly around the center at radius
// min(w,h)/2. Vertex i sits at angle i*2π/n − π/2, so vertex 0 points
// straight up.
func polygonPath(w, h float64, n int) Path {
	if n < MinPolygonSides {
		n = MinPolygonSides
	}
	cx, cy := w/2, h/2
	r := math.Min(w, h) / 2

	p := make(Path, 0, n+2)
	for i := 0; i < n; i++ {
		a := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pt := geom.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
		if i == 0 {
			p = append(p, Segment{Op: MoveTo, P1: pt})
		} else {
			p = append(p, Segment{Op: LineTo, P1: pt})
		}
	}
	first := p[0].P1
	p = append(p, Segment{Op: LineTo, P1: first})
	p = append(p, Segment{Op: Close})
	return p
}
