package session

// Event names published to the frontend. session.state carries a full
// State snapshot; the operation events carry small {id, ...} payloads for
// progress display and tests.
const (
	EventState           = "session.state"
	EventCheckStarted    = "check.started"
	EventCheckFinished   = "check.finished"
	EventEnhanceStarted  = "enhance.started"
	EventEnhanceFinished = "enhance.finished"
)

// EventEmitter publishes events to the UI layer. The Wails runtime
// implements it in the GUI; tests use a recording fake.
type EventEmitter interface {
	Emit(name string, payload any)
}

// State is the complete UI-visible snapshot. The controller publishes it
// after every applied intent; the frontend renders it and keeps no state
// of its own.
type State struct {
	Input          string `json:"input"`
	Result         string `json:"result"`
	Error          string `json:"error"`
	Checking       bool   `json:"checking"`
	Enhancing      bool   `json:"enhancing"`
	SelectedPreset string `json:"selectedPreset"`
	Theme          string `json:"theme"`
	Language       string `json:"language"`
	AutoCopy       bool   `json:"autoCopy"`
	ShowSetupGuide bool   `json:"showSetupGuide"`
	Popup          bool   `json:"popup"`
	Configured     bool   `json:"configured"`
}
