// Sideline monitor: shows the live field diagram on the local framebuffer
// and serves the browser preview. Tracking pipelines publish frames into the
// store; this binary only displays them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/trackside-labs/fieldviz/diagram"
	"github.com/trackside-labs/fieldviz/field"
	"github.com/trackside-labs/fieldviz/internal/app"
	"github.com/trackside-labs/fieldviz/internal/render"
	"github.com/trackside-labs/fieldviz/internal/state"
	"github.com/trackside-labs/fieldviz/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":80")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "preview listen address; also configurable via "+web.EnvListenAddr)
	scale := flag.Float64("scale", 0, "field-unit to pixel scale factor; 0 keeps the default")
	padding := flag.Int("padding", -1, "pixel margin around the field; negative keeps the default")
	labels := flag.Bool("labels", false, "draw vertex debug labels on the field")
	debug := flag.Bool("debug", false, "enable debug logging to ./fieldviz-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via FIELDVIZ_STDIO_LOG")
	flag.Parse()

	// Best-effort: route all stdout/stderr output (panic stack traces
	// included) to a file so crashes are diagnosable even when the console is
	// left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("FIELDVIZ_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./fieldviz-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	opts := diagram.DefaultOptions()
	if *scale > 0 {
		opts.Scale = *scale
	}
	if *padding >= 0 {
		opts.Padding = *padding
	}
	opts.LabelVertices = *labels

	cfg := field.DefaultNCAA()
	store := state.NewStore()
	viewer := render.NewFBViewer(cfg, opts)
	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: defaults.DevMode})
	server.Handler = web.NewPreviewMux("", web.PreviewConfig{Store: store, Field: cfg, Options: opts})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(store, viewer, server)
	a.Logger = logger
	if err := a.Start(ctx); err != nil && err != context.Canceled {
		fmt.Println("monitor exit:", err)
		os.Exit(1)
	}
}
