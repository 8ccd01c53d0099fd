// Desktop simulator: publishes synthetic tracking frames and serves the
// browser preview, so renderer changes can be eyeballed without a device or a
// real pipeline. Optionally dumps PNG snapshots for side-by-side diffs.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/trackside-labs/fieldviz/diagram"
	"github.com/trackside-labs/fieldviz/field"
	"github.com/trackside-labs/fieldviz/internal/state"
	"github.com/trackside-labs/fieldviz/internal/system"
	"github.com/trackside-labs/fieldviz/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve the preview UI from this directory instead of the embedded page")
	scenario := flag.String("scenario", "drive", "simulated scenario: kickoff | drive | static")
	fps := flag.Int("fps", 10, "simulated frames per second")
	seed := flag.Int64("seed", 1, "scenario random seed")
	snapshotDir := flag.String("snapshot-dir", "", "when set, write a rendered PNG here every second")
	labels := flag.Bool("labels", false, "draw vertex debug labels on the field")
	flag.Parse()

	cfg := field.DefaultNCAA()
	opts := diagram.DefaultOptions()
	opts.LabelVertices = *labels

	name := strings.TrimSpace(*scenario)
	sim, err := NewScenario(name, cfg, *seed)
	if err != nil {
		fmt.Println("scenario init error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	server.Handler = web.NewPreviewMux(*staticDir, web.PreviewConfig{Store: store, Field: cfg, Options: opts})

	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	fmt.Println("fieldviz simulator listening on", server.Addr)
	fmt.Println("Scenario:", sim.name)
	fmt.Println("Preview:", system.PreviewURL(server.Addr))

	interval := time.Second / time.Duration(max(*fps, 1))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	lastSnapshot := time.Time{}

	for {
		select {
		case <-processCtx.Done():
			_ = server.Stop()
			return
		case <-ticker.C:
			points, paths := sim.Step()
			frame := store.Publish(points, paths)
			if *snapshotDir != "" && time.Since(lastSnapshot) >= time.Second {
				lastSnapshot = time.Now()
				if err := writeSnapshot(*snapshotDir, frame.Seq, cfg, opts, points, paths); err != nil {
					fmt.Println("snapshot error:", err)
				}
			}
		}
	}
}

func writeSnapshot(dir string, seq uint64, cfg field.Configuration, opts diagram.Options, points []field.Point, paths []field.Path) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	canvas := diagram.DrawField(cfg, opts)
	diagram.DrawPaths(cfg, paths, opts, canvas)
	diagram.DrawPoints(cfg, points, opts, canvas)

	path := filepath.Join(dir, fmt.Sprintf("frame-%06d.png", seq))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, canvas)
}
