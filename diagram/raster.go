package diagram

import (
	"image"
	"image/color"
	"math"
)

// Hard-edged primitives over *image.RGBA. No antialiasing: overlay alignment
// is checked by sampling individual pixels, so coverage blending would only
// get in the way. Set clips out-of-bounds writes, so callers never need to.

func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// drawLine paints a straight segment with butt caps by stepping along the
// segment and stamping pixels offset along its normal. Step positions are
// rounded so no pixel column or row inside the span is skipped.
func drawLine(img *image.RGBA, x1, y1, x2, y2, thickness int, c color.RGBA) {
	if thickness < 1 {
		thickness = 1
	}
	half := thickness / 2

	fx1, fy1 := float64(x1), float64(y1)
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		// Degenerate segment: a thickness-sized square dot.
		for ty := -half; ty <= half; ty++ {
			for tx := -half; tx <= half; tx++ {
				img.Set(x1+tx, y1+ty, c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := fx1 + dx*t
		cy := fy1 + dy*t
		for offset := -half; offset <= half; offset++ {
			px := int(math.Round(cx + perpX*float64(offset)))
			py := int(math.Round(cy + perpY*float64(offset)))
			img.Set(px, py, c)
		}
	}
}

// fillDisk paints a filled circle of radius r centered at (cx, cy).
func fillDisk(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		span := int(math.Sqrt(float64(r*r - dy*dy)))
		for dx := -span; dx <= span; dx++ {
			img.Set(cx+dx, cy+dy, c)
		}
	}
}

// strokeCircle paints a ring of radius r with the given stroke thickness,
// walking the circumference and offsetting radially.
func strokeCircle(img *image.RGBA, cx, cy, r, thickness int, c color.RGBA) {
	if r <= 0 {
		return
	}
	if thickness < 1 {
		thickness = 1
	}
	halfThick := float64(thickness) / 2
	// Step fine enough that adjacent samples are under half a pixel apart.
	step := 0.4 / float64(r)
	for angle := 0.0; angle < 2*math.Pi; angle += step {
		nx := math.Cos(angle)
		ny := math.Sin(angle)
		for t := -halfThick; t <= halfThick; t += 0.5 {
			img.Set(cx+int(nx*(float64(r)+t)), cy+int(ny*(float64(r)+t)), c)
		}
	}
}
