// Package app wires the sideline monitor together: frame store, framebuffer
// viewer, preview server and console handling.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/trackside-labs/fieldviz/internal/render"
	"github.com/trackside-labs/fieldviz/internal/state"
	"github.com/trackside-labs/fieldviz/internal/system"
	"github.com/trackside-labs/fieldviz/internal/web"
)

type App struct {
	Store  *state.Store
	Viewer *render.FBViewer
	Web    *web.HTTPServer
	Logger Logger

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, viewer *render.FBViewer, webServer *web.HTTPServer) *App {
	return &App{Store: store, Viewer: viewer, Web: webServer, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the monitor to stop running. Safe to call from any goroutine;
// only the first call wins.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if app.Web != nil {
		if err := app.Web.Start(ctx); err != nil {
			app.Logger.Errorf("app", "preview server start error: %v", err)
			return err
		}
		defer func() { _ = app.Web.Stop() }()
		app.Viewer.PreviewURL = system.PreviewURL(app.Web.Addr)
		app.Logger.Infof("app", "preview at %s", app.Viewer.PreviewURL)
	}

	app.Viewer.Logger = app.Logger
	if err := app.Viewer.Start(ctx); err != nil {
		app.Logger.Errorf("app", "viewer start error: %v", err)
		return err
	}
	defer app.Viewer.Stop()

	// Switch console to KD_GRAPHICS to suppress hardware cursor.
	if err := system.SetGraphicsModeWithLog(app.Logger); err != nil {
		app.Logger.Errorf("tty", "set graphics mode failed: %v", err)
	}
	_ = system.HideCursor()
	defer func() {
		_ = system.ShowCursor()
		_ = system.RestoreTextModeWithLog(app.Logger)
	}()

	system.StartExitOnKey(ctx, app.Logger, func() { app.Exit(nil) })

	// Force an immediate first redraw so the display isn't blank until the
	// first published frame.
	app.Viewer.RedrawFrame(app.Store.Snapshot())

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Viewer.RunLoop(loopCtx, app.Store)
	}()

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	return err
}
