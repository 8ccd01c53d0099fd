package diagram

import (
	"image"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/trackside-labs/fieldviz/field"
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
)

// goregular ships with x/image and always parses; a nil font after this
// means the overlay is silently skipped.
func loadLabelFont() *truetype.Font {
	labelFontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err == nil {
			labelFont = f
		}
	})
	return labelFont
}

// drawVertexLabels annotates each configuration vertex with its debug label,
// offset a few pixels from the marker position so the text clears the lines.
func drawVertexLabels(canvas *image.RGBA, cfg field.Configuration, opts Options) {
	fnt := loadLabelFont()
	if fnt == nil {
		return
	}
	size := opts.LabelSize
	if size <= 0 {
		size = 12
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(96)
	ctx.SetFont(fnt)
	ctx.SetFontSize(size)
	ctx.SetClip(canvas.Bounds())
	ctx.SetDst(canvas)
	ctx.SetSrc(image.NewUniform(opts.LabelColor))

	for i, v := range cfg.Vertices {
		if i >= len(cfg.Labels) {
			break
		}
		x, y := pixel(v, opts)
		// Baseline sits just above and to the right of the vertex.
		if _, err := ctx.DrawString(cfg.Labels[i], freetype.Pt(x+4, y-4)); err != nil {
			return
		}
	}
}
