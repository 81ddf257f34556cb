package filament

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig holds window options for [Run].
type RunConfig struct {
	Title  string
	Width  int // window width; defaults to 800
	Height int // window height; defaults to 600
}

// Run opens a window and drives the session with Ebitengine's game
// loop: each update advances the session clock by one tick's worth of
// milliseconds, each draw composites the canvas onto the screen, and
// window resizes are forwarded to the session's viewport. Blocks until
// the window closes.
//
// Run installs its own viewport function on the session, overriding any
// set with [Session.SetViewport]. Hosts that need custom viewport logic
// should implement [ebiten.Game] themselves (see the package docs).
func Run(session *Session, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{session: session, w: cfg.Width, h: cfg.Height}
	session.SetViewport(func() (float64, float64) {
		return float64(g.w), float64(g.h)
	})
	return ebiten.RunGame(g)
}

// game adapts a Session to ebiten.Game.
type game struct {
	session *Session
	w, h    int
}

func (g *game) Update() error {
	g.session.Advance(1000.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if c, ok := g.session.Canvas().(*ImageCanvas); ok {
		screen.DrawImage(c.Image(), nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.session.ResizeSurface()
	}
	return outsideWidth, outsideHeight
}
