package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/trackside-labs/fieldviz/diagram"
	"github.com/trackside-labs/fieldviz/field"
	"github.com/trackside-labs/fieldviz/internal/layout"
	"github.com/trackside-labs/fieldviz/internal/state"
)

// FBViewer renders tracked frames to the Linux framebuffer using an offscreen
// logical canvas: the field diagram on top, a status strip underneath, and a
// QR code for the preview URL in the corner.
type FBViewer struct {
	Field   field.Configuration
	Options diagram.Options

	// PreviewURL, when non-empty, is encoded as a QR code overlaid on the
	// viewer so the browser preview can be opened from a phone.
	PreviewURL string

	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	fbDev   *fb.Device
	qrImg   image.Image
	running atomic.Bool
}

func NewFBViewer(cfg field.Configuration, opts diagram.Options) *FBViewer {
	return &FBViewer{Field: cfg, Options: opts}
}

func (v *FBViewer) Start(ctx context.Context) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return err
	}
	v.fbDev = dev
	if v.Logger != nil {
		bounds := dev.Bounds()
		v.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	if v.PreviewURL != "" {
		qr, qerr := GenerateQRCodeImage(v.PreviewURL, QRSizePx)
		if qerr != nil {
			if v.Logger != nil {
				v.Logger.Errorf("fb", "qr generation failed: %v", qerr)
			}
		} else {
			v.qrImg = qr
		}
	}

	v.running.Store(true)
	return nil
}

func (v *FBViewer) Stop() error {
	v.running.Store(false)
	if v.fbDev != nil {
		v.fbDev.Close()
	}
	return nil
}

// RedrawFrame composes the given frame and blits it to the framebuffer.
func (v *FBViewer) RedrawFrame(frame state.Frame) {
	if !v.running.Load() || v.fbDev == nil {
		return
	}
	canvas := v.Compose(frame)
	blitToFB(v.fbDev, canvas)
	if v.Logger != nil {
		v.Logger.Infof("fb", "redraw done, frame=%d", frame.Seq)
	}
}

// Compose renders the frame into the logical canvas: diagram, status strip,
// QR overlay. Exposed so the simulator can reuse the exact viewer output.
func (v *FBViewer) Compose(frame state.Frame) *image.RGBA {
	fieldImg := diagram.DrawField(v.Field, v.Options)
	diagram.DrawPaths(v.Field, frame.Paths, v.Options, fieldImg)
	diagram.DrawPoints(v.Field, frame.Points, v.Options, fieldImg)

	bounds := fieldImg.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+StatusBarHeight))
	fieldRect, statusRect := layout.SplitHorizontal(canvas.Bounds(), bounds.Dy())
	draw.Draw(canvas, fieldRect, fieldImg, bounds.Min, draw.Src)
	draw.Draw(canvas, statusRect, &image.Uniform{C: StatusBackground}, image.Point{}, draw.Src)
	status := fmt.Sprintf("frame %d  points %d  paths %d", frame.Seq, len(frame.Points), len(frame.Paths))
	if !frame.Captured.IsZero() {
		status += "  " + frame.Captured.Format(time.TimeOnly)
	}
	drawStatusText(canvas, layout.Inset(statusRect, 4), status)

	if v.qrImg != nil {
		qrRect := layout.AnchorTopRight(layout.Inset(fieldRect, 8), QRSizePx, QRSizePx)
		xdraw.NearestNeighbor.Scale(canvas, qrRect, v.qrImg, v.qrImg.Bounds(), xdraw.Over, nil)
	}
	return canvas
}

// RunLoop continuously redraws at ~30 FPS until the context is done.
func (v *FBViewer) RunLoop(ctx context.Context, store *state.Store) {
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()
	lastSeq := uint64(0)
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame := store.Snapshot()
			if frame.Seq == lastSeq && frame.Seq != 0 {
				continue
			}
			lastSeq = frame.Seq
			v.RedrawFrame(frame)
			if v.Logger != nil && time.Since(lastLog) > time.Second {
				v.Logger.Infof("fb", "heartbeat frame=%d", frame.Seq)
				lastLog = time.Now()
			}
		}
	}
}

// Helper: baseline text in the status strip using the built-in bitmap face.
func drawStatusText(img *image.RGBA, rect image.Rectangle, text string) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: StatusForeground},
		Face: face,
		Dot:  fixed.P(rect.Min.X, rect.Min.Y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

// Helper: blit canvas to framebuffer via nearest-neighbor sampling.
func blitToFB(dev *fb.Device, canvas *image.RGBA) {
	if dev == nil {
		return
	}
	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	srcWidth := canvas.Bounds().Dx()
	srcHeight := canvas.Bounds().Dy()
	if srcWidth == 0 || srcHeight == 0 || fbWidth == 0 || fbHeight == 0 {
		return
	}
	for y := 0; y < fbHeight; y++ {
		sy := (y * srcHeight) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * srcWidth) / fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
