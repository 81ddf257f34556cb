package filament

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// strand is the unit of growth: a single line advancing through canvas
// space. State is fully local — there is no strand registry and no
// cross-strand synchronization. A strand lives entirely inside the
// chain of continuations it schedules for itself.
type strand struct {
	pos   Vec2
	vel   Vec2    // delta applied per step
	width float64 // base width; rendered width decays with age
	rate  float64 // delay between steps, milliseconds
	age   int     // steps since creation or since the last spawn
	color Color   // fixed at spawn time
}

// engine advances strands through their grow/fork/die cycle. One engine
// exists per session generation; its alive check turns every callback
// scheduled under a stopped generation into a no-op.
type engine struct {
	cfg    Config
	canvas Canvas
	sched  *Scheduler
	rnd    func() float64 // uniform in [0, 1)
	alive  func() bool
	logger *log.Logger
}

// grow executes one step of a strand's life: render, advance, jitter,
// soften near the bottom edge, maybe fork, and self-schedule the next
// step. Strands passed by value so each continuation owns its state.
func (e *engine) grow(s strand) {
	if !e.alive() {
		return
	}
	age := float64(s.age)
	w := s.width - age*e.cfg.LossQuantity

	next := s.pos.Add(s.vel)
	e.canvas.Line(s.pos.X, s.pos.Y, next.X, next.Y, w, s.color)
	s.pos = next

	// Organic, non-repeating curvature.
	s.vel.X += math.Sin(e.rnd()+age) * e.cfg.Time
	s.vel.Y += math.Cos(e.rnd()+age) * e.cfg.Time

	// Thin strands hugging the bottom edge shed extra width so they
	// cannot draw along it indefinitely.
	if !e.cfg.Infinite && w < 6 {
		_, sh := e.canvas.Size()
		if s.pos.Y > sh-e.rnd()*0.3*sh {
			s.width *= 0.8
		}
	}

	// At most one child per eligible step. The fork never halts the
	// parent; it only discounts the parent's remaining width.
	if age > 5*s.width+e.rnd()*100 && e.rnd() > e.cfg.ExceptionProb {
		e.scheduleSpawn(s, w)
		s.width *= e.cfg.MainLoss
		s.age = 0 // age counts from the spawn point
	}

	if e.cfg.Infinite || w >= 1 {
		s.age++
		delay := s.rate
		if delay < 1 {
			delay = 1
		}
		e.sched.After(delay, func() { e.grow(s) })
	}
	// Otherwise the strand dies here: never rescheduled, no teardown.
}

// scheduleSpawn defers the birth of a child strand at the parent's
// current point. The child's base width comes from the parent's
// rendered width before the MainLoss discount is applied.
func (e *engine) scheduleSpawn(parent strand, renderedWidth float64) {
	contribution := parent.rate
	if e.cfg.FastMode != 0 {
		contribution /= 2
	}
	delay := contribution + e.rnd()*100
	if floor := float64(e.cfg.MinSleep); delay < floor {
		delay = floor
	}

	e.sched.After(delay, func() {
		if !e.alive() {
			return
		}
		if e.cfg.IndicateNewLoop {
			e.birthMarker(parent.pos)
		}
		c := parent.color
		if e.cfg.Colorful {
			c = Color{R: e.rnd(), G: e.rnd(), B: e.rnd(), A: 1}
		}
		angle := e.rnd() + float64(parent.age)
		child := strand{
			pos:   parent.pos,
			vel:   Vec2{X: math.Sin(angle) * 2, Y: math.Cos(angle) * 2},
			width: renderedWidth * e.cfg.LoopLoss,
			rate:  parent.rate + e.rnd()*100,
			color: c,
		}
		e.logger.Debug("strand spawned",
			"x", child.pos.X, "y", child.pos.Y,
			"width", child.width, "rate", child.rate)
		e.grow(child)
	})
}

// Birth marker pulse: eases outward and fades over markerLife seconds,
// redrawn every markerTick milliseconds.
const (
	markerLife = 0.4
	markerTick = 16.0
)

func (e *engine) birthMarker(at Vec2) {
	radius := gween.New(2, 9, markerLife, ease.OutQuad)
	alpha := gween.New(0.5, 0, markerLife, ease.OutQuad)
	var tick *Task
	tick = e.sched.Every(markerTick, func() {
		if !e.alive() {
			tick.Cancel()
			return
		}
		r, _ := radius.Update(markerTick / 1000)
		a, done := alpha.Update(markerTick / 1000)
		c := e.cfg.StringColor
		c.A = float64(a)
		e.canvas.Circle(at.X, at.Y, float64(r), 1, c)
		if done {
			tick.Cancel()
		}
	})
}
