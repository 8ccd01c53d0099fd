package web

import (
	"fmt"
	"image/png"
	"net/http"

	"github.com/trackside-labs/fieldviz/diagram"
	"github.com/trackside-labs/fieldviz/field"
	"github.com/trackside-labs/fieldviz/internal/state"
)

// PreviewConfig wires the rendering inputs into the preview endpoints.
type PreviewConfig struct {
	Store   *state.Store
	Field   field.Configuration
	Options diagram.Options
}

// RegisterPreview registers the preview endpoints on mux.
func RegisterPreview(mux *http.ServeMux, cfg PreviewConfig) {
	mux.HandleFunc("/preview.png", previewPNGHandler(cfg))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
}

// RegisterUI serves either the embedded preview page or a directory.
func RegisterUI(mux *http.ServeMux, staticDir string) {
	mux.Handle("/", StaticUIHandler(staticDir))
}

// NewPreviewMux builds the standard mux used by both the sideline monitor and
// the simulator:
// - /preview.png and /healthz for the preview API
// - / for the preview page
func NewPreviewMux(staticDir string, cfg PreviewConfig) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterPreview(mux, cfg)
	RegisterUI(mux, staticDir)
	return mux
}

func previewPNGHandler(cfg PreviewConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		frame := cfg.Store.Snapshot()
		canvas := diagram.DrawField(cfg.Field, cfg.Options)
		canvas = diagram.DrawPaths(cfg.Field, frame.Paths, cfg.Options, canvas)
		canvas = diagram.DrawPoints(cfg.Field, frame.Points, cfg.Options, canvas)

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Frame-Seq", fmt.Sprintf("%d", frame.Seq))
		if r.Method == http.MethodHead {
			return
		}
		if err := png.Encode(w, canvas); err != nil {
			// Headers are gone by now; nothing useful left to report.
			return
		}
	}
}
