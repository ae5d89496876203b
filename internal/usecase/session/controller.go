// Package session owns the application state machine. A single intent
// loop serializes every user action and every operation completion, so
// all UI-visible state has exactly one writer. Concurrency exists only as
// outstanding operation goroutines posting completions back into the
// loop.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"redline/internal/adapters/llm"
	"redline/internal/domain"
	"redline/internal/i18n"
	"redline/internal/ports"
	"redline/internal/usecase/checker"
	"redline/internal/usecase/enhancer"
)

type Deps struct {
	Settings  ports.SettingsRepository
	Presets   ports.PresetCatalog
	Clipboard ports.Clipboard
	Checker   *checker.Service
	Enhancer  *enhancer.Service
	// Generators is the live generator slot shared with the operation
	// services. The controller swaps its content when the credential
	// changes.
	Generators *llm.Source
	// BuildGenerator constructs a generator for a credential.
	BuildGenerator func(apiKey string) ports.Generator
}

// StartupFlags mirror the CLI invocation: text preloaded into the input
// field and the operation to trigger once the loop runs.
type StartupFlags struct {
	InitialText string
	AutoCheck   bool
	AutoEnhance bool
	Popup       bool
	// APIKeyOverride replaces the stored credential for this run only.
	// It is never persisted.
	APIKeyOverride string
}

// Intent messages. Completion messages carry the operation id so logs can
// correlate them with their dispatch.
type (
	setInputMsg     struct{ text string }
	checkMsg        struct{}
	enhanceMsg      struct{}
	clearMsg        struct{}
	selectPresetMsg struct{ key string }
	saveKeyMsg      struct{ key string }
	setThemeMsg     struct{ name string }
	setLanguageMsg  struct{ key string }
	dismissGuideMsg struct{}
	copyResultMsg   struct{}
	// pasteMsg replaces the input with the clipboard text and, when then
	// is set, runs that dispatch in the same loop turn.
	pasteMsg    struct{ then domain.OperationKind }
	snapshotMsg struct{ reply chan State }

	checkDoneMsg struct {
		id   string
		res  *domain.CheckResult
		err  error
		took time.Duration
	}
	enhanceDoneMsg struct {
		id   string
		res  *domain.EnhanceResult
		err  error
		took time.Duration
	}
)

type Controller struct {
	d Deps

	intents  chan any
	done     chan struct{}
	stopOnce sync.Once

	// Set once before the loop starts.
	ctx context.Context
	em  EventEmitter

	// Loop-owned state. Only the intent loop reads or writes these.
	settings       domain.Settings
	lang           i18n.Language
	input          string
	result         string
	errMsg         string
	checking       bool
	enhancing      bool
	selectedPreset string
	showSetupGuide bool
	popup          bool

	log zerolog.Logger
}

func New(d Deps) *Controller {
	return &Controller{
		d:       d,
		intents: make(chan any, 64),
		done:    make(chan struct{}),
		log:     log.With().Str("component", "session").Logger(),
	}
}

// SetEmitter installs the event emitter. Must be called before Start;
// without one the controller stays silent.
func (c *Controller) SetEmitter(em EventEmitter) { c.em = em }

// Start loads persisted settings, applies the startup flags, and begins
// serving intents. A failing settings load degrades to defaults so the
// window still opens and the user can fix the configuration.
func (c *Controller) Start(ctx context.Context, flags StartupFlags) {
	s, err := c.d.Settings.Load(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("load settings failed, using defaults")
		s = domain.DefaultSettings()
	}

	c.ctx = ctx
	c.settings = s
	c.lang = i18n.Parse(s.Language)
	c.selectedPreset = s.DefaultPreset
	c.input = flags.InitialText
	c.popup = flags.Popup

	key := s.APIKey
	if flags.APIKeyOverride != "" {
		key = flags.APIKeyOverride
	}
	if key != "" {
		c.d.Generators.Set(c.d.BuildGenerator(key))
	}
	c.showSetupGuide = key == ""

	c.log.Info().
		Str("language", c.lang.Key()).
		Str("preset", c.selectedPreset).
		Bool("configured", key != "").
		Bool("popup", c.popup).
		Msg("session started")

	go c.loop()

	switch {
	case flags.AutoCheck:
		c.Check()
	case flags.AutoEnhance:
		c.Enhance()
	}
}

// Stop ends the intent loop. Intents posted afterwards, including late
// operation completions, are dropped.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Intent surface. Each method posts one message; the loop applies them in
// posting order.

func (c *Controller) SetInput(text string)    { c.post(setInputMsg{text: text}) }
func (c *Controller) Check()                  { c.post(checkMsg{}) }
func (c *Controller) Enhance()                { c.post(enhanceMsg{}) }
func (c *Controller) ClearAll()               { c.post(clearMsg{}) }
func (c *Controller) SelectPreset(key string) { c.post(selectPresetMsg{key: key}) }
func (c *Controller) SaveAPIKey(key string)   { c.post(saveKeyMsg{key: key}) }
func (c *Controller) SetTheme(name string)    { c.post(setThemeMsg{name: name}) }
func (c *Controller) SetLanguage(key string)  { c.post(setLanguageMsg{key: key}) }
func (c *Controller) DismissSetupGuide()      { c.post(dismissGuideMsg{}) }
func (c *Controller) CopyResult()             { c.post(copyResultMsg{}) }
func (c *Controller) PasteFromClipboard()     { c.post(pasteMsg{}) }
func (c *Controller) PasteAndCheck()          { c.post(pasteMsg{then: domain.KindCheck}) }
func (c *Controller) PasteAndEnhance()        { c.post(pasteMsg{then: domain.KindEnhance}) }

// Snapshot returns the current state through the loop, so it reflects
// every intent posted before it. After Stop it returns the zero State.
func (c *Controller) Snapshot() State {
	reply := make(chan State, 1)
	c.post(snapshotMsg{reply: reply})
	select {
	case s := <-reply:
		return s
	case <-c.done:
		return State{}
	}
}

func (c *Controller) post(m any) {
	select {
	case c.intents <- m:
	case <-c.done:
	}
}

func (c *Controller) loop() {
	for {
		select {
		case m := <-c.intents:
			c.apply(m)
			c.emitState()
		case <-c.done:
			return
		}
	}
}

func (c *Controller) apply(m any) {
	switch m := m.(type) {
	case setInputMsg:
		c.input = m.text
	case checkMsg:
		c.dispatchCheck()
	case enhanceMsg:
		c.dispatchEnhance()
	case checkDoneMsg:
		c.finishCheck(m)
	case enhanceDoneMsg:
		c.finishEnhance(m)
	case clearMsg:
		// Pending slots stay untouched; a late completion still lands.
		c.input, c.result, c.errMsg = "", "", ""
	case selectPresetMsg:
		c.selectedPreset = m.key
	case saveKeyMsg:
		c.saveAPIKey(m.key)
	case setThemeMsg:
		c.settings.Theme = m.name
		c.persist()
	case setLanguageMsg:
		c.lang = i18n.Parse(m.key)
		c.settings.Language = c.lang.Key()
		c.persist()
	case dismissGuideMsg:
		c.showSetupGuide = false
	case copyResultMsg:
		c.copyResult()
	case pasteMsg:
		c.paste(m.then)
	case snapshotMsg:
		m.reply <- c.state()
	}
}

func (c *Controller) dispatchCheck() {
	s := c.lang.Strings()
	if !c.d.Generators.Configured() {
		c.errMsg = s.APINotConfigured
		return
	}
	if strings.TrimSpace(c.input) == "" {
		c.errMsg = s.EnterTextCheck
		return
	}
	if c.checking {
		c.log.Debug().Msg("check already pending, intent ignored")
		return
	}
	c.checking = true
	c.errMsg = ""

	id := uuid.NewString()
	text, lang := c.input, c.lang.DisplayName()
	c.log.Info().Str("op", id).Int("chars", len(text)).Msg("check dispatched")
	c.emit(EventCheckStarted, map[string]any{"id": id})

	go func() {
		start := time.Now()
		res, err := c.d.Checker.Check(c.ctx, text, lang)
		c.post(checkDoneMsg{id: id, res: res, err: err, took: time.Since(start)})
	}()
}

func (c *Controller) dispatchEnhance() {
	s := c.lang.Strings()
	if !c.d.Generators.Configured() {
		c.errMsg = s.APINotConfigured
		return
	}
	if strings.TrimSpace(c.input) == "" {
		c.errMsg = s.EnterTextEnhance
		return
	}
	preset, ok := c.d.Presets.Get(c.selectedPreset)
	if !ok {
		c.errMsg = s.InvalidPreset
		return
	}
	if c.enhancing {
		c.log.Debug().Msg("enhance already pending, intent ignored")
		return
	}
	c.enhancing = true
	c.errMsg = ""

	id := uuid.NewString()
	text, lang := c.input, c.lang.DisplayName()
	c.log.Info().Str("op", id).Str("preset", c.selectedPreset).Int("chars", len(text)).Msg("enhance dispatched")
	c.emit(EventEnhanceStarted, map[string]any{"id": id})

	go func() {
		start := time.Now()
		res, err := c.d.Enhancer.Enhance(c.ctx, text, preset, lang)
		c.post(enhanceDoneMsg{id: id, res: res, err: err, took: time.Since(start)})
	}()
}

func (c *Controller) finishCheck(m checkDoneMsg) {
	c.checking = false
	payload := map[string]any{"id": m.id, "ok": m.err == nil}
	if m.err != nil {
		c.errMsg = FormatError(c.lang.Strings(), m.err)
		payload["error"] = m.err.Error()
		c.log.Warn().Str("op", m.id).Dur("took", m.took).Err(m.err).Msg("check failed")
	} else {
		c.result = FormatCheckResult(c.lang.Strings(), m.res)
		c.autoCopy()
		c.log.Info().Str("op", m.id).Dur("took", m.took).Int("issues", len(m.res.Issues)).Msg("check finished")
	}
	c.emit(EventCheckFinished, payload)
}

func (c *Controller) finishEnhance(m enhanceDoneMsg) {
	c.enhancing = false
	payload := map[string]any{"id": m.id, "ok": m.err == nil}
	if m.err != nil {
		c.errMsg = FormatError(c.lang.Strings(), m.err)
		payload["error"] = m.err.Error()
		c.log.Warn().Str("op", m.id).Dur("took", m.took).Err(m.err).Msg("enhance failed")
	} else {
		c.result = FormatEnhanceResult(c.lang.Strings(), m.res)
		c.autoCopy()
		c.log.Info().Str("op", m.id).Dur("took", m.took).Int("changes", len(m.res.ChangesMade)).Msg("enhance finished")
	}
	c.emit(EventEnhanceFinished, payload)
}

func (c *Controller) saveAPIKey(key string) {
	c.settings.APIKey = key
	if err := c.d.Settings.Save(c.ctx, c.settings); err != nil {
		// Keep the old generator; a credential we could not persist
		// would silently vanish on restart.
		c.errMsg = c.lang.Strings().SaveFailed + ": " + err.Error()
		c.log.Error().Err(err).Msg("save api key")
		return
	}
	if key == "" {
		c.d.Generators.Set(nil)
	} else {
		c.d.Generators.Set(c.d.BuildGenerator(key))
	}
	c.showSetupGuide = false
	c.errMsg = ""
	c.log.Info().Bool("configured", key != "").Msg("api key saved")
}

// persist writes the settings aggregate. Preference writes are not worth
// interrupting the user over, so failures only log.
func (c *Controller) persist() {
	if err := c.d.Settings.Save(c.ctx, c.settings); err != nil {
		c.log.Warn().Err(err).Msg("save settings")
	}
}

func (c *Controller) paste(then domain.OperationKind) {
	text, err := c.d.Clipboard.ReadText()
	if err != nil {
		c.log.Warn().Err(err).Msg("clipboard read")
		return
	}
	c.input = text
	switch then {
	case domain.KindCheck:
		c.dispatchCheck()
	case domain.KindEnhance:
		c.dispatchEnhance()
	}
}

func (c *Controller) copyResult() {
	if c.result == "" {
		return
	}
	if err := c.d.Clipboard.WriteText(c.result); err != nil {
		c.log.Warn().Err(err).Msg("clipboard write")
	}
}

func (c *Controller) autoCopy() {
	if c.settings.AutoCopy {
		c.copyResult()
	}
}

func (c *Controller) state() State {
	return State{
		Input:          c.input,
		Result:         c.result,
		Error:          c.errMsg,
		Checking:       c.checking,
		Enhancing:      c.enhancing,
		SelectedPreset: c.selectedPreset,
		Theme:          c.settings.Theme,
		Language:       c.lang.Key(),
		AutoCopy:       c.settings.AutoCopy,
		ShowSetupGuide: c.showSetupGuide,
		Popup:          c.popup,
		Configured:     c.d.Generators.Configured(),
	}
}

func (c *Controller) emit(name string, payload any) {
	if c.em == nil {
		return
	}
	c.em.Emit(name, payload)
}

func (c *Controller) emitState() { c.emit(EventState, c.state()) }
