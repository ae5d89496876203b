package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"redline/internal/adapters/report"
	"redline/internal/i18n"
	"redline/internal/usecase/session"
)

// ReportAPI exports the current result through a native save dialog.
type ReportAPI struct {
	ctrl *session.Controller
	reg  *report.Registry

	// ctx is the Wails context, set during startup before the frontend
	// can call anything.
	ctx context.Context
}

func NewReportAPI(ctrl *session.Controller, reg *report.Registry) *ReportAPI {
	return &ReportAPI{ctrl: ctrl, reg: reg}
}

func (a *ReportAPI) SetContext(ctx context.Context) { a.ctx = ctx }

// Formats lists the export formats for the save menu.
func (a *ReportAPI) Formats() []string { return a.reg.Formats() }

// Export renders the current result and writes it to a user-chosen path.
// Returns the path, or the empty string when the dialog was cancelled.
func (a *ReportAPI) Export(format string) (string, error) {
	rend, ok := a.reg.Get(format)
	if !ok {
		return "", fmt.Errorf("unknown report format: %s", format)
	}
	if a.ctx == nil {
		return "", errors.New("ui not ready")
	}

	st := a.ctrl.Snapshot()
	if strings.TrimSpace(st.Result) == "" {
		return "", errors.New("nothing to export")
	}
	// The document heading is the localized result label minus its colon.
	title := strings.TrimSuffix(i18n.Parse(st.Language).Strings().Result, ":")

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           title,
		DefaultFilename: "redline-report." + format,
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}

	data, err := rend.Render(title, st.Result)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
