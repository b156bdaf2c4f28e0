package frame

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestFrameJSONRoundTrip(t *testing.T) {
	src := &Frame{
		ID:           "frame-a",
		Kind:         KindText,
		X:            101.5,
		Y:            -20.25,
		Width:        240,
		Height:       160,
		Rotation:     370.5, // direct edits are not normalized; must survive as-is
		Shape:        ShapeRounded,
		CornerRadius: 12,
		PolygonSides: 6,
		Text: &TextProps{
			FontFamily:  "DejaVu Sans",
			FontSize:    18,
			Color:       "#112233",
			TextAlign:   AlignRight,
			Placeholder: "Title",
			Content:     "Hello there",
		},
		Visible: true,
		Locked:  true,
	}

	data, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Frame
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(src, &got) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", &got, src)
	}
}

func TestFrameJSONRoundTrip_ImageFrame(t *testing.T) {
	src := &Frame{
		ID:       "frame-img",
		Kind:     KindImage,
		X:        0,
		Y:        0,
		Width:    300,
		Height:   200,
		Shape:    ShapePolygon,
		PolygonSides: 8,
		Image: &ImageSource{
			Ref:        "https://example.com/photo.jpg",
			Adjusted:   true,
			AdjustMeta: json.RawMessage(`{"crop":[1,2,3,4],"zoom":1.5}`),
		},
		Visible: true,
	}

	data, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Frame
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(src, &got) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", &got, src)
	}
}

func TestFrameUnmarshal_VisibleDefaultsTrue(t *testing.T) {
	var f Frame
	if err := json.Unmarshal([]byte(`{"id":"x","kind":"image","width":100,"height":100,"shape":"rectangle"}`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !f.Visible {
		t.Error("visible should default to true when absent")
	}

	if err := json.Unmarshal([]byte(`{"id":"x","kind":"image","visible":false}`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.Visible {
		t.Error("explicit visible=false must be preserved")
	}
}

func TestFrameClone(t *testing.T) {
	src := &Frame{
		ID:    "a",
		Kind:  KindText,
		Text:  &TextProps{Content: "hi"},
		Image: &ImageSource{Ref: "x.png", AdjustMeta: json.RawMessage(`{}`)},
	}
	c := src.Clone()

	if c == src {
		t.Fatal("clone returned the same pointer")
	}
	if !reflect.DeepEqual(src, c) {
		t.Errorf("clone differs from source")
	}

	// Mutating the clone must not touch the source.
	c.Text.Content = "changed"
	if src.Text.Content != "hi" {
		t.Error("clone shares TextProps with source")
	}
}

func TestFrameValidate(t *testing.T) {
	valid := func() *Frame {
		return &Frame{
			ID: "f1", Kind: KindImage, Shape: ShapeRectangle,
			X: 10, Y: 10, Width: 100, Height: 100, Visible: true,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Frame)
		wantErr bool
	}{
		{"valid", func(f *Frame) {}, false},
		{"empty id", func(f *Frame) { f.ID = "" }, true},
		{"bad kind", func(f *Frame) { f.Kind = "video" }, true},
		{"bad shape", func(f *Frame) { f.Shape = "star" }, true},
		{"width below floor", func(f *Frame) { f.Width = 29 }, true},
		{"height below floor", func(f *Frame) { f.Height = 10 }, true},
		{"NaN x", func(f *Frame) { f.X = math.NaN() }, true},
		{"infinite rotation", func(f *Frame) { f.Rotation = math.Inf(1) }, true},
		{"negative corner radius", func(f *Frame) { f.CornerRadius = -1 }, true},
		{"polygon too few sides", func(f *Frame) { f.Shape = ShapePolygon; f.PolygonSides = 2 }, true},
		{"polygon too many sides", func(f *Frame) { f.Shape = ShapePolygon; f.PolygonSides = 13 }, true},
		{"polygon valid sides", func(f *Frame) { f.Shape = ShapePolygon; f.PolygonSides = 12 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid()
			tt.mutate(f)
			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
