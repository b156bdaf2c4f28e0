package frame

import (
	"math"
	"testing"
)

func f64(v float64) *float64 { return &v }

func TestTemplateAdd(t *testing.T) {
	tpl := New()

	a := tpl.Add(KindImage)
	b := tpl.Add(KindText)
	c := tpl.Add(KindImage)

	if tpl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tpl.Len())
	}
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Error("frame ids must be unique")
	}

	// Each creation is offset by the existing count so frames never
	// stack exactly.
	if b.X != a.X+createOffsetStep || b.Y != a.Y+createOffsetStep {
		t.Errorf("second frame at (%v,%v), want offset from (%v,%v)", b.X, b.Y, a.X, a.Y)
	}
	if c.X != a.X+2*createOffsetStep {
		t.Errorf("third frame x = %v, want %v", c.X, a.X+2*createOffsetStep)
	}

	if a.Text != nil {
		t.Error("image frame should have no text properties")
	}
	if b.Text == nil {
		t.Fatal("text frame should have default text properties")
	}
	if b.Text.FontSize <= 0 || b.Text.Placeholder == "" {
		t.Errorf("text defaults incomplete: %+v", b.Text)
	}
	if !a.Visible || a.Locked {
		t.Error("new frames default to visible and unlocked")
	}

	for _, f := range tpl.Frames {
		if err := f.Validate(); err != nil {
			t.Errorf("new frame invalid: %v", err)
		}
	}
}

func TestTemplateDuplicate(t *testing.T) {
	tpl := New()
	src := tpl.Add(KindText)
	src.Rotation = 45
	src.Text.Content = "hello"

	dup, err := tpl.Duplicate(src.ID)
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}

	if dup.ID == src.ID {
		t.Error("duplicate must get a new id")
	}
	if dup.X != src.X+20 || dup.Y != src.Y+20 {
		t.Errorf("duplicate at (%v,%v), want (+20,+20) from (%v,%v)", dup.X, dup.Y, src.X, src.Y)
	}
	if dup.Rotation != src.Rotation || dup.Width != src.Width || dup.Height != src.Height {
		t.Error("duplicate must copy all other fields")
	}
	if dup.Text == nil || dup.Text.Content != "hello" {
		t.Error("duplicate must deep-copy text properties")
	}
	if tpl.Frames[len(tpl.Frames)-1] != dup {
		t.Error("duplicate must append to the top of the stack")
	}

	if _, err := tpl.Duplicate("missing"); err == nil {
		t.Error("duplicating an unknown id should fail")
	}
}

func TestTemplateDelete(t *testing.T) {
	tpl := New()
	a := tpl.Add(KindImage)
	b := tpl.Add(KindImage)

	if err := tpl.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if tpl.Len() != 1 || tpl.Frames[0] != b {
		t.Error("delete removed the wrong frame")
	}
	if err := tpl.Delete(a.ID); err == nil {
		t.Error("deleting a missing frame should fail")
	}
}

func TestTemplateReorder(t *testing.T) {
	tpl := New()
	a := tpl.Add(KindImage)
	b := tpl.Add(KindImage)
	c := tpl.Add(KindImage)

	if err := tpl.Reorder([]string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	got := []string{tpl.Frames[0].ID, tpl.Frames[1].ID, tpl.Frames[2].ID}
	want := []string{c.ID, a.ID, b.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}

	if err := tpl.Reorder([]string{a.ID, b.ID}); err == nil {
		t.Error("reorder with missing ids should fail")
	}
	if err := tpl.Reorder([]string{a.ID, a.ID, b.ID}); err == nil {
		t.Error("reorder with duplicate ids should fail")
	}
	if err := tpl.Reorder([]string{a.ID, b.ID, "ghost"}); err == nil {
		t.Error("reorder with unknown id should fail")
	}
}

func TestTemplateUpdate_ClampsAndRejects(t *testing.T) {
	tpl := New()
	f := tpl.Add(KindImage)

	// Sizes clamp to the floor instead of erroring.
	if err := tpl.Update(f.ID, Patch{Width: f64(5), Height: f64(-10)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if f.Width != MinSize || f.Height != MinSize {
		t.Errorf("size = %vx%v, want clamped to %v", f.Width, f.Height, MinSize)
	}

	// Non-finite values are rejected before touching the frame.
	prevX := f.X
	if err := tpl.Update(f.ID, Patch{X: f64(math.NaN())}); err == nil {
		t.Error("NaN x should be rejected")
	}
	if err := tpl.Update(f.ID, Patch{Rotation: f64(math.Inf(-1))}); err == nil {
		t.Error("infinite rotation should be rejected")
	}
	if f.X != prevX {
		t.Error("rejected update must not mutate the frame")
	}

	// Rotation through Update is stored as entered, without
	// normalization.
	if err := tpl.Update(f.ID, Patch{Rotation: f64(450)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if f.Rotation != 450 {
		t.Errorf("rotation = %v, want 450 (no normalization on direct edits)", f.Rotation)
	}

	// Polygon sides clamp into [3,12]; corner radius clamps at zero.
	sides := 99
	if err := tpl.Update(f.ID, Patch{PolygonSides: &sides}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if f.PolygonSides != MaxPolygonSides {
		t.Errorf("polygon sides = %d, want %d", f.PolygonSides, MaxPolygonSides)
	}
	sides = 1
	_ = tpl.Update(f.ID, Patch{PolygonSides: &sides})
	if f.PolygonSides != MinPolygonSides {
		t.Errorf("polygon sides = %d, want %d", f.PolygonSides, MinPolygonSides)
	}
	if err := tpl.Update(f.ID, Patch{CornerRadius: f64(-5)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if f.CornerRadius != 0 {
		t.Errorf("corner radius = %v, want clamped to 0", f.CornerRadius)
	}

	if err := tpl.Update("missing", Patch{X: f64(1)}); err == nil {
		t.Error("updating a missing frame should fail")
	}
}

func TestTemplateUpdate_TextPatch(t *testing.T) {
	tpl := New()
	f := tpl.Add(KindText)

	content := "filled in"
	align := AlignLeft
	if err := tpl.Update(f.ID, Patch{Text: &TextPatch{Content: &content, TextAlign: &align}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if f.Text.Content != "filled in" || f.Text.TextAlign != AlignLeft {
		t.Errorf("text patch not applied: %+v", f.Text)
	}
	// Untouched fields survive.
	if f.Text.Placeholder == "" || f.Text.FontSize == 0 {
		t.Error("text patch cleared unrelated fields")
	}
}

func TestTemplateValidate_DuplicateIDs(t *testing.T) {
	tpl := New()
	a := tpl.Add(KindImage)
	b := tpl.Add(KindImage)
	b.ID = a.ID

	if err := tpl.Validate(); err == nil {
		t.Error("duplicate frame ids should fail validation")
	}
}
