package filament

import (
	"errors"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
)

// ErrNoCanvas is returned by [Session.Start] when the session has no
// drawable surface. Start fails fast rather than letting scheduled
// callbacks discover the problem later.
var ErrNoCanvas = errors.New("filament: no canvas available")

// Seed strand parameters fixed at session start.
const (
	seedRate       = 30 // ms between seed strand steps
	seedWidthScale = 10 // seed width = InitialMass * seedWidthScale
)

// Session owns the configuration, the canvas lifecycle, and the fade
// ticker, and starts/stops the growth engine. A session is either
// Stopped or Running; there are no other states.
//
// Sessions are not safe for concurrent use. All methods, like the
// engine itself, belong to the single cooperative scheduler thread.
type Session struct {
	canvas   Canvas
	sched    *Scheduler
	rnd      func() float64
	viewport func() (w, h float64)
	logger   *log.Logger

	cfg     Config
	gen     uint64 // bumped on every Start and Stop; stale callbacks check it
	running bool
}

// NewSession creates a stopped session drawing to the given canvas.
// Production randomness is unseeded math/rand; the default logger is
// quiet (warnings only).
func NewSession(canvas Canvas) *Session {
	return &Session{
		canvas: canvas,
		sched:  NewScheduler(),
		rnd:    rand.Float64,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "filament",
			Level:  log.WarnLevel,
		}),
	}
}

// SetRandom replaces the session's random source. fn must return values
// in [0, 1). Intended for tests that need reproducible growth.
func (s *Session) SetRandom(fn func() float64) {
	if fn != nil {
		s.rnd = fn
	}
}

// SetViewport supplies the host's available drawing area, used by
// ResizeSurface and by Start when FitScreen is set. Without one the
// canvas keeps its current size.
func (s *Session) SetViewport(fn func() (w, h float64)) {
	s.viewport = fn
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// SetDebugMode lowers the log level to Debug, emitting session
// lifecycle and spawn diagnostics to stderr.
func (s *Session) SetDebugMode(enabled bool) {
	if enabled {
		s.logger.SetLevel(log.DebugLevel)
	} else {
		s.logger.SetLevel(log.WarnLevel)
	}
}

// Canvas returns the session's draw surface.
func (s *Session) Canvas() Canvas {
	return s.canvas
}

// Config returns the configuration of the current (or most recent) run.
func (s *Session) Config() Config {
	return s.cfg
}

// Scheduler returns the session's timer queue, for hosts that want to
// interleave their own cooperative work.
func (s *Session) Scheduler() *Scheduler {
	return s.sched
}

// Running reports whether the session is in the Running state.
func (s *Session) Running() bool {
	return s.running
}

// Start begins a new run under cfg, tearing down any prior run first.
// When RunSpawn is set it seeds one strand at the bottom center growing
// straight up; when FadeOut is set it starts the periodic fade tick.
// Growth then proceeds as the host advances the session clock.
func (s *Session) Start(cfg Config) error {
	if s.canvas == nil {
		return ErrNoCanvas
	}
	s.Stop()

	cfg.normalize()
	s.cfg = cfg
	s.gen++
	gen := s.gen

	if cfg.FitScreen {
		s.ResizeSurface()
	}

	eng := &engine{
		cfg:    cfg,
		canvas: s.canvas,
		sched:  s.sched,
		rnd:    s.rnd,
		alive:  func() bool { return s.gen == gen },
		logger: s.logger,
	}

	if cfg.RunSpawn {
		w, h := s.canvas.Size()
		eng.grow(strand{
			pos:   Vec2{X: w / 2, Y: h},
			vel:   Vec2{X: 0, Y: -2},
			width: cfg.InitialMass * seedWidthScale,
			rate:  seedRate,
			color: cfg.StringColor,
		})
	}

	if cfg.FadeOut {
		overlay := cfg.BgColor
		overlay.A = cfg.FadeAmount
		s.sched.Every(float64(cfg.FadeInterval), func() {
			if s.gen != gen {
				return
			}
			w, h := s.canvas.Size()
			s.canvas.FillRect(0, 0, w, h, overlay)
		})
	}

	s.running = true
	s.logger.Debug("session started",
		"runSpawn", cfg.RunSpawn, "fadeOut", cfg.FadeOut,
		"colorful", cfg.Colorful, "infinite", cfg.Infinite)
	return nil
}

// Stop cancels all pending continuations, spawns, and fade ticks, and
// clears the canvas. Idempotent; safe when nothing is running. Any
// already-enqueued callback that fires later sees a stale generation
// and does nothing.
func (s *Session) Stop() {
	s.gen++
	s.sched.CancelAll()
	if s.canvas != nil {
		s.canvas.Clear()
	}
	if s.running {
		s.logger.Debug("session stopped")
	}
	s.running = false
}

// ResizeSurface applies the host viewport size to the canvas. Safe at
// any time; in-flight strand coordinates are not rescaled, so strands
// outside the new bounds simply draw off-canvas.
func (s *Session) ResizeSurface() {
	if s.canvas == nil || s.viewport == nil {
		return
	}
	w, h := s.viewport()
	s.canvas.SetSize(w, h)
}

// Advance moves the session's virtual clock forward by dtMS
// milliseconds, firing due strand continuations and fade ticks. Hosts
// using [Run] never call this themselves.
func (s *Session) Advance(dtMS float64) {
	s.sched.Advance(dtMS)
}
