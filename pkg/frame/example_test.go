package frame_test

import (
	"fmt"

	"github.com/framery/framery/pkg/frame"
)

func ExampleTemplate_Add() {
	// Stack two frames; later entries draw on top.
	t := frame.New()
	photo := t.Add(frame.KindImage)
	caption := t.Add(frame.KindText)

	fmt.Println("Frames:", t.Len())
	fmt.Printf("Photo: %gx%g\n", photo.Width, photo.Height)
	fmt.Println("Caption placeholder:", caption.Text.Placeholder)
	// Output:
	// Frames: 2
	// Photo: 240x160
	// Caption placeholder: Your text here
}

func ExampleTemplate_Update() {
	t := frame.New()
	f := t.Add(frame.KindImage)

	// Only the fields set on the patch change; sizes clamp to the floor.
	w := 5.0
	rot := 45.0
	_ = t.Update(f.ID, frame.Patch{Width: &w, Rotation: &rot})

	fmt.Println("Width:", f.Width)
	fmt.Println("Rotation:", f.Rotation)
	// Output:
	// Width: 30
	// Rotation: 45
}

func ExampleTemplate_Duplicate() {
	t := frame.New()
	f := t.Add(frame.KindImage)

	c, _ := t.Duplicate(f.ID)

	fmt.Println("Offset:", c.X-f.X, c.Y-f.Y)
	fmt.Println("New id:", c.ID != f.ID)
	// Output:
	// Offset: 20 20
	// New id: true
}
