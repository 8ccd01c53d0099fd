package diagram

import "image/color"

// Default drawing parameters.
var (
	// Turf green background and white markings.
	Background = color.RGBA{R: 0x2E, G: 0x8B, B: 0x22, A: 0xFF}
	LineColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	PointFace  = color.RGBA{R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF}
	PointEdge  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	PathColor  = color.RGBA{R: 0xFF, G: 0xD6, B: 0x00, A: 0xFF}
	LabelColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Options configures the renderer. The zero value is not usable; start from
// DefaultOptions and override what you need. Scale and Padding must match
// between a field canvas and every overlay drawn onto it, or the overlays
// land misaligned; the renderer does not check this.
type Options struct {
	BackgroundColor color.Color
	LineColor       color.Color

	PointFaceColor color.Color
	PointEdgeColor color.Color
	PathColor      color.Color

	Padding       int     // uniform pixel margin around the scaled field
	LineThickness int     // field marking and path stroke width, px
	EdgeThickness int     // point ring stroke width, px
	PointRadius   int     // point disk radius, px
	Scale         float64 // field units to pixels

	// LabelVertices draws each configuration vertex's debug label next to its
	// position. Off by default.
	LabelVertices bool
	LabelColor    color.Color
	LabelSize     float64 // font size in points; 0 means default
}

// DefaultOptions returns the standard debug-view parameters.
func DefaultOptions() Options {
	return Options{
		BackgroundColor: Background,
		LineColor:       LineColor,
		PointFaceColor:  PointFace,
		PointEdgeColor:  PointEdge,
		PathColor:       PathColor,
		Padding:         50,
		LineThickness:   4,
		EdgeThickness:   2,
		PointRadius:     8,
		Scale:           0.1,
		LabelColor:      LabelColor,
		LabelSize:       12,
	}
}
