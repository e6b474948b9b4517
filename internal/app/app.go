// Package app wires the editor core to the terminal backend, the
// configuration system and the keymap, and runs the main loop.
package app

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/quill-editor/quill/internal/config"
	"github.com/quill-editor/quill/internal/editor"
	"github.com/quill-editor/quill/internal/input"
	"github.com/quill-editor/quill/internal/plugin"
	"github.com/quill-editor/quill/internal/renderer/backend"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Debug forces debug-level logging.
	Debug bool
}

// Application coordinates the editor core, the terminal backend and the
// configuration system. The main loop is the single owner of editor
// state: input arrives over a channel from a dedicated reader goroutine,
// so document mutation and rendering never interleave across threads.
type Application struct {
	mu      sync.RWMutex
	cfg     config.Config
	watcher *config.Watcher
	logger  *Logger
	logFile *os.File

	backend backend.Backend
	editor  *editor.Editor
	keymap  *input.Keymap
	session uuid.UUID

	// Loop pacing, swapped atomically on config reload.
	tickNanos atomic.Int64
	pollNanos atomic.Int64

	// Terminal dimensions, recorded on resize; consumed but not yet
	// enforced as a render clip.
	width  atomic.Int64
	height atomic.Int64

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// New creates an application: configuration, logger, keymap and an
// editor holding one empty document.
func New(opts Options) (*Application, error) {
	app := &Application{
		editor:  editor.New(),
		keymap:  input.NewKeymap(),
		session: uuid.New(),
		done:    make(chan struct{}),
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg
	app.applyPacing(cfg)

	if err := app.initLogger(opts, cfg); err != nil {
		return nil, &InitError{Component: "logger", Err: err}
	}

	if err := app.loadKeymap(cfg.Keymap.Path); err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, app.reloadConfig, app.watchError)
		if err != nil {
			app.logger.Warn("config watcher unavailable: %v", err)
		} else {
			app.watcher = w
		}
	}

	return app, nil
}

// initLogger builds the root logger from config and option overrides.
func (app *Application) initLogger(opts Options, cfg config.Config) error {
	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	loggerCfg := LoggerConfig{Level: ParseLogLevel(level), Prefix: "quill"}
	if opts.Debug {
		loggerCfg.Level = LogLevelDebug
	}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		loggerCfg.Output = f
	}

	app.logger = NewLogger(loggerCfg).WithField("session", app.session.String())
	return nil
}

// loadKeymap layers Lua keymap bindings over the defaults.
func (app *Application) loadKeymap(path string) error {
	if path == "" {
		return nil
	}
	bindings, err := plugin.LoadKeymap(path)
	if err != nil {
		return err
	}
	for chord, action := range bindings {
		if err := app.keymap.Bind(chord, action); err != nil {
			return err
		}
	}
	return nil
}

// applyPacing publishes the loop timings from a configuration.
func (app *Application) applyPacing(cfg config.Config) {
	app.tickNanos.Store(int64(cfg.TickInterval()))
	app.pollNanos.Store(int64(cfg.PollTimeout()))
}

// reloadConfig applies a configuration reloaded by the watcher. Loop
// pacing and log level take effect immediately; keymap changes need a
// restart.
func (app *Application) reloadConfig(cfg config.Config) {
	app.mu.Lock()
	app.cfg = cfg
	app.mu.Unlock()

	app.applyPacing(cfg)
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.logger.Info("configuration reloaded")
}

// watchError logs watcher failures; a broken reload never stops the
// editor.
func (app *Application) watchError(err error) {
	app.logger.WithComponent("config").Error("reload failed: %v", err)
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run starts the main loop and blocks until an Exit action or Shutdown.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	w, h := app.backend.Size()
	app.width.Store(int64(w))
	app.height.Store(int64(h))

	events := make(chan backend.Event, 32)
	go app.readEvents(events)

	app.logger.Info("editor started, terminal %dx%d", w, h)
	return app.loop(events)
}

// readEvents pulls terminal events on a dedicated goroutine and hands
// them to the loop. It exits once the loop is done; the deferred backend
// Shutdown unblocks any pending PollEvent.
func (app *Application) readEvents(events chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		select {
		case events <- ev:
		case <-app.done:
			return
		}
	}
}

// loop is one owner for all editor state. Each cycle: sleep one tick,
// render the active document, wait briefly for one input event, and
// dispatch it.
func (app *Application) loop(events <-chan backend.Event) error {
	defer app.signalDone()

	sink := backendSink{b: app.backend}

	for {
		time.Sleep(time.Duration(app.tickNanos.Load()))

		app.editor.Render(sink)
		app.backend.Show()

		select {
		case <-app.done:
			return nil

		case ev := <-events:
			if flow := app.handleEvent(ev); flow == editor.Stop {
				app.logger.Info("exit requested")
				return nil
			}

		case <-time.After(time.Duration(app.pollNanos.Load())):
			// No input this cycle.
		}
	}
}

// handleEvent maps one terminal event onto the editor.
func (app *Application) handleEvent(ev backend.Event) editor.ControlFlow {
	switch ev.Type {
	case backend.EventResize:
		app.width.Store(int64(ev.Width))
		app.height.Store(int64(ev.Height))
		app.logger.Debug("terminal resized to %dx%d", ev.Width, ev.Height)
		return editor.Continue

	case backend.EventKey:
		action, ok := app.keymap.Translate(ev)
		if !ok {
			return editor.Continue
		}
		app.logger.WithField("document", app.editor.Active().ID()).Debug("dispatch %s", action.Kind)
		return app.editor.Apply(action)

	default:
		return editor.Continue
	}
}

// Shutdown stops the loop and releases resources. Safe to call more
// than once and from any goroutine.
func (app *Application) Shutdown() {
	app.signalDone()

	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

func (app *Application) signalDone() {
	app.doneOnce.Do(func() { close(app.done) })
}

// IsRunning reports whether the main loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Editor returns the editor core.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Keymap returns the active keymap.
func (app *Application) Keymap() *input.Keymap {
	return app.keymap
}

// Config returns the current configuration.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// TerminalSize returns the last observed terminal dimensions.
func (app *Application) TerminalSize() (width, height int) {
	return int(app.width.Load()), int(app.height.Load())
}
