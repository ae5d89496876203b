package main

import (
	"context"
	"errors"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	apiapp "redline/internal/api/app"
	"redline/internal/usecase/session"
)

// App carries the Wails lifecycle hooks and the OS integrations that need
// the runtime context.
type App struct {
	ctx    context.Context
	ctrl   *session.Controller
	clip   *runtimeClipboard
	report *apiapp.ReportAPI
	flags  session.StartupFlags
}

func NewApp(ctrl *session.Controller, clip *runtimeClipboard, report *apiapp.ReportAPI, flags session.StartupFlags) *App {
	return &App{ctrl: ctrl, clip: clip, report: report, flags: flags}
}

// startup wires everything that needs the runtime context, then brings up
// the session loop. Runs before the frontend can call anything.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.clip.ctx = ctx
	a.report.SetContext(ctx)
	a.ctrl.SetEmitter(wailsEmitter{ctx: ctx})
	a.ctrl.Start(ctx, a.flags)
}

func (a *App) shutdown(ctx context.Context) {
	a.ctrl.Stop()
}

// wailsEmitter forwards controller events to the frontend.
type wailsEmitter struct{ ctx context.Context }

func (w wailsEmitter) Emit(name string, payload any) {
	runtime.EventsEmit(w.ctx, name, payload)
}

// runtimeClipboard adapts the Wails clipboard runtime to ports.Clipboard.
// Before startup the context is missing and operations fail soft.
type runtimeClipboard struct{ ctx context.Context }

func (c *runtimeClipboard) ReadText() (string, error) {
	if c.ctx == nil {
		return "", errors.New("clipboard not ready")
	}
	return runtime.ClipboardGetText(c.ctx)
}

func (c *runtimeClipboard) WriteText(text string) error {
	if c.ctx == nil {
		return errors.New("clipboard not ready")
	}
	return runtime.ClipboardSetText(c.ctx, text)
}
