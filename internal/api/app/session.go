// Package app holds the API structs bound into the Wails frontend. Each
// struct is one surface; its exported methods are callable from
// JavaScript.
package app

import (
	"redline/internal/i18n"
	"redline/internal/usecase/session"
)

// SessionAPI exposes the intent surface of the session controller.
type SessionAPI struct {
	ctrl *session.Controller
}

func NewSessionAPI(ctrl *session.Controller) *SessionAPI { return &SessionAPI{ctrl: ctrl} }

func (a *SessionAPI) SetInput(text string)    { a.ctrl.SetInput(text) }
func (a *SessionAPI) Check()                  { a.ctrl.Check() }
func (a *SessionAPI) Enhance()                { a.ctrl.Enhance() }
func (a *SessionAPI) SelectPreset(key string) { a.ctrl.SelectPreset(key) }
func (a *SessionAPI) ClearAll()               { a.ctrl.ClearAll() }
func (a *SessionAPI) CopyResult()             { a.ctrl.CopyResult() }
func (a *SessionAPI) PasteFromClipboard()     { a.ctrl.PasteFromClipboard() }
func (a *SessionAPI) PasteAndCheck()          { a.ctrl.PasteAndCheck() }
func (a *SessionAPI) PasteAndEnhance()        { a.ctrl.PasteAndEnhance() }
func (a *SessionAPI) DismissSetupGuide()      { a.ctrl.DismissSetupGuide() }

// State returns the current snapshot. The frontend calls it once on load
// and then follows session.state events.
func (a *SessionAPI) State() session.State { return a.ctrl.Snapshot() }

// Strings returns the string table for the current interface language.
func (a *SessionAPI) Strings() *i18n.Strings {
	return i18n.Parse(a.ctrl.Snapshot().Language).Strings()
}
