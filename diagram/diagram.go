// Package diagram renders schematic top-down views of a football field and
// overlays tracked entities onto them, for visual debugging of tracking
// pipelines.
//
// All three operations share one coordinate transform: a field-unit value v
// becomes the pixel int(v*Scale)+Padding, truncating toward zero. A field
// canvas and the overlays composited onto it must therefore be drawn with the
// same Scale and Padding; nothing enforces that.
package diagram

import (
	"image"
	"image/draw"

	"github.com/trackside-labs/fieldviz/field"
)

// pixel maps a field-unit point into canvas space.
func pixel(p field.Point, opts Options) (int, int) {
	return int(p.X*opts.Scale) + opts.Padding, int(p.Y*opts.Scale) + opts.Padding
}

// DrawField renders the field skeleton onto a fresh canvas and returns it.
//
// The canvas is int(Length*Scale)+2*Padding wide and int(Width*Scale)+2*Padding
// tall. Configuration edges are drawn first, then the intermediate yard lines
// and hash marks. The routine performs no validation: a malformed
// configuration draws garbage pixels rather than failing.
func DrawField(cfg field.Configuration, opts Options) *image.RGBA {
	scaledLength := int(cfg.Length * opts.Scale)
	scaledWidth := int(cfg.Width * opts.Scale)
	canvas := image.NewRGBA(image.Rect(0, 0, scaledLength+2*opts.Padding, scaledWidth+2*opts.Padding))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: opts.BackgroundColor}, image.Point{}, draw.Src)

	lineColor := rgba(opts.LineColor)
	vertices := cfg.Vertices
	for _, edge := range cfg.Edges {
		a, b := edge[0]-1, edge[1]-1
		if a < 0 || b < 0 || a >= len(vertices) || b >= len(vertices) {
			continue
		}
		x1, y1 := pixel(vertices[a], opts)
		x2, y2 := pixel(vertices[b], opts)
		drawLine(canvas, x1, y1, x2, y2, opts.LineThickness, lineColor)
	}

	// Intermediate yard lines every 5 yards from the left goal line, and hash
	// ticks at the same x positions. Each scaled measurement is truncated
	// independently before combining; positions at or past the right field
	// edge are skipped.
	fieldTop := opts.Padding
	fieldBottom := scaledWidth + opts.Padding
	fieldRight := scaledLength + opts.Padding
	goalLineX := int(cfg.GoalLine1 * opts.Scale)
	intervalX := int(cfg.YardLineInterval * opts.Scale)
	halfHash := int(cfg.HashLength*opts.Scale) / 2
	hashTop := int(cfg.HashDistanceFromSideline*opts.Scale) + opts.Padding
	hashBottom := scaledWidth - int(cfg.HashDistanceFromSideline*opts.Scale) + opts.Padding

	for i := 0; i <= 20; i++ {
		x := goalLineX + i*intervalX + opts.Padding
		if x >= fieldRight {
			continue
		}
		if i >= 1 {
			drawLine(canvas, x, fieldTop, x, fieldBottom, opts.LineThickness, lineColor)
		}
		drawLine(canvas, x, hashTop-halfHash, x, hashTop+halfHash, opts.LineThickness, lineColor)
		drawLine(canvas, x, hashBottom-halfHash, x, hashBottom+halfHash, opts.LineThickness, lineColor)
	}

	if opts.LabelVertices {
		drawVertexLabels(canvas, cfg, opts)
	}
	return canvas
}

// DrawPoints draws each point as a filled disk with a stroked ring on top.
//
// With a nil canvas a new field is rendered first with the same options;
// otherwise the supplied canvas is mutated in place. The canvas is returned
// either way. Points with non-finite coordinates are skipped.
func DrawPoints(cfg field.Configuration, points []field.Point, opts Options, canvas *image.RGBA) *image.RGBA {
	if canvas == nil {
		canvas = DrawField(cfg, opts)
	}
	face := rgba(opts.PointFaceColor)
	edge := rgba(opts.PointEdgeColor)
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		x, y := pixel(p, opts)
		fillDisk(canvas, x, y, opts.PointRadius, face)
		strokeCircle(canvas, x, y, opts.PointRadius, opts.EdgeThickness, edge)
	}
	return canvas
}

// DrawPaths draws each path as a polyline connecting its valid points in
// order. A path left with fewer than two valid points draws nothing. Canvas
// handling matches DrawPoints.
func DrawPaths(cfg field.Configuration, paths []field.Path, opts Options, canvas *image.RGBA) *image.RGBA {
	if canvas == nil {
		canvas = DrawField(cfg, opts)
	}
	stroke := rgba(opts.PathColor)
	for _, path := range paths {
		prevSet := false
		var prevX, prevY int
		for _, p := range path {
			if !p.Valid() {
				continue
			}
			x, y := pixel(p, opts)
			if prevSet {
				drawLine(canvas, prevX, prevY, x, y, opts.LineThickness, stroke)
			}
			prevX, prevY = x, y
			prevSet = true
		}
	}
	return canvas
}
