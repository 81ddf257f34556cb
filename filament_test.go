package filament

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
)

// drawOp records one abstract draw command issued to a recorderCanvas.
type drawOp struct {
	Kind           string // "line", "circle", "rect", "clear"
	X0, Y0, X1, Y1 float64
	R              float64
	W, H           float64
	Width          float64
	Color          Color
}

// recorderCanvas is a Canvas that records every command, for asserting
// on engine output without a GPU.
type recorderCanvas struct {
	w, h float64
	ops  []drawOp
}

func newRecorderCanvas(w, h float64) *recorderCanvas {
	return &recorderCanvas{w: w, h: h}
}

func (c *recorderCanvas) Line(x0, y0, x1, y1, width float64, col Color) {
	c.ops = append(c.ops, drawOp{Kind: "line", X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: col})
}

func (c *recorderCanvas) Circle(x, y, r, width float64, col Color) {
	c.ops = append(c.ops, drawOp{Kind: "circle", X0: x, Y0: y, R: r, Width: width, Color: col})
}

func (c *recorderCanvas) FillRect(x, y, w, h float64, col Color) {
	c.ops = append(c.ops, drawOp{Kind: "rect", X0: x, Y0: y, W: w, H: h, Color: col})
}

func (c *recorderCanvas) Clear() {
	c.ops = append(c.ops, drawOp{Kind: "clear"})
}

func (c *recorderCanvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *recorderCanvas) SetSize(w, h float64) {
	c.w, c.h = w, h
}

func (c *recorderCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (c *recorderCanvas) lineWidths() []float64 {
	var widths []float64
	for _, op := range c.ops {
		if op.Kind == "line" {
			widths = append(widths, op.Width)
		}
	}
	return widths
}

// seqRand returns a random source cycling through the given values.
func seqRand(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

// newTestEngine builds an engine with its own scheduler, a recorder
// canvas, and a stubbed random source.
func newTestEngine(cfg Config, canvas Canvas, rnd func() float64) *engine {
	cfg.normalize()
	return &engine{
		cfg:    cfg,
		canvas: canvas,
		sched:  NewScheduler(),
		rnd:    rnd,
		alive:  func() bool { return true },
		logger: log.New(io.Discard),
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestColorNRGBA(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0.5, A: 1}.nrgba()
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Errorf("nrgba = %v, want R=255 G=0 A=255", c)
	}
	if c.B != 127 {
		t.Errorf("B = %d, want 127", c.B)
	}

	// Out-of-range components clamp instead of wrapping.
	c = Color{R: 2, G: -1, B: 0, A: 1.5}.nrgba()
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Errorf("clamped nrgba = %v, want R=255 G=0 A=255", c)
	}
}

func TestVec2Add(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, -5})
	if v.X != 4 || v.Y != -3 {
		t.Errorf("Add = %v, want {4 -3}", v)
	}
}
