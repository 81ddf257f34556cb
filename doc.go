// Package filament is a generative line-art engine for [Ebitengine].
//
// Filament grows branching, self-propagating strands across a 2D canvas:
// each strand advances step by step, curls with randomized jitter, thins
// as it ages, forks into children, and finally dies out while a periodic
// translucent overlay fades older growth away. The result is an
// autonomous, parameter-tunable "living" drawing.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	canvas := filament.NewImageCanvas(800, 600)
//	session := filament.NewSession(canvas)
//	session.Start(filament.DefaultConfig())
//	filament.Run(session, filament.RunConfig{
//		Title: "Filament", Width: 800, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself, advance the
// session from Update, and draw the canvas image:
//
//	type Game struct{ session *filament.Session }
//
//	func (g *Game) Update() error {
//		g.session.Advance(1000.0 / float64(ebiten.TPS()))
//		return nil
//	}
//	func (g *Game) Draw(screen *ebiten.Image) {
//		screen.DrawImage(canvas.Image(), nil)
//	}
//
// # Tuning
//
// Growth is controlled entirely by [Config]: how fast strands thin
// (LossQuantity), how often they fork (ExceptionProb), how hard they
// curl (Time), how children inherit width (LoopLoss, MainLoss), and how
// the canvas fades (FadeOut, FadeAmount, FadeInterval). Start from
// [DefaultConfig] and overwrite the keys you care about, or merge a YAML
// document over the defaults with [LoadConfig].
//
// Production randomness is deliberately unseeded; no two runs look the
// same. Tests substitute a fixed sequence via [Session.SetRandom].
//
// [Ebitengine]: https://ebitengine.org
package filament
