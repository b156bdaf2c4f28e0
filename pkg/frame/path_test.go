package frame

import (
	"math"
	"testing"
)

func TestOutline_ClosedForAllShapes(t *testing.T) {
	tests := []struct {
		name  string
		frame *Frame
	}{
		{"rectangle", &Frame{Shape: ShapeRectangle, Width: 200, Height: 100}},
		{"rounded", &Frame{Shape: ShapeRounded, Width: 200, Height: 100, CornerRadius: 10}},
		{"rounded zero radius", &Frame{Shape: ShapeRounded, Width: 200, Height: 100, CornerRadius: 0}},
		{"rounded oversized radius", &Frame{Shape: ShapeRounded, Width: 200, Height: 100, CornerRadius: 90}},
		{"circle", &Frame{Shape: ShapeCircle, Width: 200, Height: 100}},
		{"circle square box", &Frame{Shape: ShapeCircle, Width: 150, Height: 150}},
		{"minimum size", &Frame{Shape: ShapeRectangle, Width: 30, Height: 30}},
	}
	for sides := MinPolygonSides; sides <= MaxPolygonSides; sides++ {
		tests = append(tests, struct {
			name  string
			frame *Frame
		}{
			name:  "polygon",
			frame: &Frame{Shape: ShapePolygon, Width: 200, Height: 100, PolygonSides: sides},
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Outline(tt.frame)
			if len(p) == 0 {
				t.Fatal("empty outline")
			}
			if !p.IsClosed() {
				t.Errorf("outline not closed for %+v", tt.frame)
			}
		})
	}
}

func TestOutline_PolygonVertexZeroPointsUp(t *testing.T) {
	// Vertex 0 must sit at angle -90 degrees from the center, i.e.
	// directly above it at distance = radius.
	f := &Frame{Shape: ShapePolygon, Width: 200, Height: 100, PolygonSides: 6}
	p := Outline(f)

	cx, cy := f.Width/2, f.Height/2
	r := math.Min(f.Width, f.Height) / 2

	v0 := p[0].P1
	if math.Abs(v0.X-cx) > 1e-9 {
		t.Errorf("vertex 0 x = %v, want center x %v", v0.X, cx)
	}
	if math.Abs(v0.Y-(cy-r)) > 1e-9 {
		t.Errorf("vertex 0 y = %v, want %v (radius above center)", v0.Y, cy-r)
	}
}

func TestOutline_PolygonVertexSpacing(t *testing.T) {
	f := &Frame{Shape: ShapePolygon, Width: 100, Height: 100, PolygonSides: 5}
	p := Outline(f)

	cx, cy := 50.0, 50.0
	r := 50.0
	for i := 0; i < 5; i++ {
		want := float64(i)*2*math.Pi/5 - math.Pi/2
		v := p[i].P1
		got := math.Atan2(v.Y-cy, v.X-cx)
		if math.Abs(math.Mod(got-want+4*math.Pi, 2*math.Pi)) > 1e-9 {
			t.Errorf("vertex %d at angle %v, want %v", i, got, want)
		}
		dist := math.Hypot(v.X-cx, v.Y-cy)
		if math.Abs(dist-r) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want %v", i, dist, r)
		}
	}
}

func TestOutline_CircleRadius(t *testing.T) {
	f := &Frame{Shape: ShapeCircle, Width: 200, Height: 100}
	p := Outline(f)

	// Start point is on the circle at the frame center height; radius is
	// half the shorter side.
	start := p[0].P1
	if start.X != 150 || start.Y != 50 {
		t.Errorf("circle start = %v, want (150,50)", start)
	}
}

func TestOutline_RoundedUsesQuadraticCorners(t *testing.T) {
	f := &Frame{Shape: ShapeRounded, Width: 200, Height: 100, CornerRadius: 10}
	p := Outline(f)

	quads := 0
	for _, s := range p {
		if s.Op == QuadTo {
			quads++
		}
	}
	if quads != 4 {
		t.Errorf("rounded rectangle has %d quadratic corners, want 4", quads)
	}
}

func TestOutline_RectangleCorners(t *testing.T) {
	f := &Frame{Shape: ShapeRectangle, Width: 200, Height: 100}
	p := Outline(f)

	want := [][2]float64{{0, 0}, {200, 0}, {200, 100}, {0, 100}}
	for i, c := range want {
		if p[i].P1.X != c[0] || p[i].P1.Y != c[1] {
			t.Errorf("corner %d = %v, want %v", i, p[i].P1, c)
		}
	}
}
