package diagram

import (
	"image"
	"image/color"
	"testing"
)

var (
	testInk = color.RGBA{R: 0xFF, A: 0xFF}
)

func blank(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestDrawLineHorizontal(t *testing.T) {
	img := blank(40, 40)
	drawLine(img, 5, 20, 35, 20, 1, testInk)
	for x := 5; x <= 35; x++ {
		if img.RGBAAt(x, 20) != testInk {
			t.Fatalf("pixel (%d,20) not painted", x)
		}
	}
	if img.RGBAAt(4, 20) == testInk || img.RGBAAt(36, 20) == testInk {
		t.Fatal("line leaked past its endpoints")
	}
}

func TestDrawLineThickness(t *testing.T) {
	img := blank(40, 40)
	drawLine(img, 5, 20, 35, 20, 4, testInk)
	for _, y := range []int{18, 20, 22} {
		if img.RGBAAt(20, y) != testInk {
			t.Fatalf("pixel (20,%d) not covered by 4px stroke", y)
		}
	}
	if img.RGBAAt(20, 25) == testInk {
		t.Fatal("stroke wider than requested")
	}
}

func TestDrawLineDegenerate(t *testing.T) {
	img := blank(10, 10)
	drawLine(img, 5, 5, 5, 5, 2, testInk)
	if img.RGBAAt(5, 5) != testInk {
		t.Fatal("degenerate segment left no dot")
	}
}

func TestDrawLineClipsOutOfBounds(t *testing.T) {
	img := blank(10, 10)
	drawLine(img, -20, 5, 30, 5, 2, testInk) // must not panic
	if img.RGBAAt(5, 5) != testInk {
		t.Fatal("in-bounds portion of clipped line missing")
	}
}

func TestFillDisk(t *testing.T) {
	img := blank(30, 30)
	fillDisk(img, 15, 15, 5, testInk)
	if img.RGBAAt(15, 15) != testInk {
		t.Fatal("disk center not filled")
	}
	if img.RGBAAt(15, 10) != testInk || img.RGBAAt(20, 15) != testInk {
		t.Fatal("disk rim not filled")
	}
	if img.RGBAAt(20, 20) == testInk {
		t.Fatal("disk filled outside its radius")
	}
	fillDisk(img, 15, 15, -1, testInk) // no-op, must not panic
}

func TestStrokeCircle(t *testing.T) {
	img := blank(30, 30)
	strokeCircle(img, 15, 15, 6, 1, testInk)
	if img.RGBAAt(21, 15) != testInk || img.RGBAAt(15, 21) != testInk {
		t.Fatal("ring missing at cardinal points")
	}
	if img.RGBAAt(15, 15) == testInk {
		t.Fatal("ring filled its interior")
	}
}
