package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	rect := image.Rect(10, 10, 100, 60)
	if got, want := Inset(rect, 5), image.Rect(15, 15, 95, 55); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got := Inset(rect, 0); got != rect {
		t.Errorf("Inset(0) = %v, want unchanged", got)
	}
	// Over-insetting collapses rather than inverting.
	got := Inset(image.Rect(0, 0, 10, 10), 20)
	if got.Min.X > got.Max.X || got.Min.Y > got.Max.Y {
		t.Errorf("over-inset produced inverted rect %v", got)
	}
}

func TestSplitHorizontal(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)
	top, bottom := SplitHorizontal(rect, 30)
	if top != image.Rect(0, 0, 100, 30) {
		t.Errorf("top = %v", top)
	}
	if bottom != image.Rect(0, 30, 100, 50) {
		t.Errorf("bottom = %v", bottom)
	}

	top, bottom = SplitHorizontal(rect, 999)
	if top != rect || bottom.Dy() != 0 {
		t.Errorf("clamped split: top=%v bottom=%v", top, bottom)
	}
}

func TestAnchors(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)
	if got, want := AnchorTopLeft(rect, 20, 10), image.Rect(0, 0, 20, 10); got != want {
		t.Errorf("AnchorTopLeft = %v, want %v", got, want)
	}
	if got, want := AnchorTopRight(rect, 20, 10), image.Rect(80, 0, 100, 10); got != want {
		t.Errorf("AnchorTopRight = %v, want %v", got, want)
	}
	// Oversized requests clamp to the containing rect.
	if got := AnchorTopRight(rect, 500, 500); got != rect {
		t.Errorf("oversized anchor = %v, want %v", got, rect)
	}
}
