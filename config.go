package filament

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config controls how a session grows, forks, and fades strands.
// All fields are read-only once passed to [Session.Start]; the engine
// works from a private copy and never writes back.
//
// Every field has a usable default from [DefaultConfig]. Construct a
// Config by overwriting the defaults you care about, or merge a YAML
// document over them with [LoadConfig].
type Config struct {
	// LossQuantity is the rendered width lost per age unit. A strand's
	// rendered width at age n is baseWidth - n*LossQuantity.
	LossQuantity float64 `yaml:"lossQuantity"`
	// MinSleep is the floor, in milliseconds, on the delay before a
	// scheduled child strand takes its first step.
	MinSleep int `yaml:"minSleep"`
	// LoopLoss is the width multiplier applied to a spawned child.
	LoopLoss float64 `yaml:"loopLoss"`
	// MainLoss is the width multiplier applied to the parent after it
	// schedules a child.
	MainLoss float64 `yaml:"mainLoss"`
	// Time is the jitter magnitude added to the velocity each step.
	// Larger values curl strands harder.
	Time float64 `yaml:"time"`
	// ExceptionProb is the probability, in [0, 1], that an otherwise
	// eligible spawn is suppressed. Higher means fewer forks.
	ExceptionProb float64 `yaml:"exceptionProb"`
	// Colorful assigns a randomized color to every spawned strand
	// instead of StringColor.
	Colorful bool `yaml:"colorful"`
	// FastMode, when non-zero, halves the growth-rate contribution to
	// spawn scheduling so children appear sooner. The strand's own
	// stored growth rate is unaffected.
	FastMode float64 `yaml:"fastMode"`
	// FadeOut enables the periodic translucent overlay that fades old
	// growth away.
	FadeOut bool `yaml:"fadeOut"`
	// FadeAmount is the overlay alpha, in [0, 1], applied per fade tick.
	FadeAmount float64 `yaml:"fadeAmount"`
	// RunSpawn seeds an initial strand at the bottom center on Start.
	RunSpawn bool `yaml:"runSpawn"`
	// FadeInterval is the period, in milliseconds, between fade ticks.
	FadeInterval int `yaml:"fadeInterval"`
	// InitialMass scales the seed strand's base width (width = InitialMass * 10).
	InitialMass float64 `yaml:"initialMass"`
	// IndicateNewLoop draws a pulsing translucent circle at each spawn point.
	IndicateNewLoop bool `yaml:"indicateNewLoop"`
	// FitScreen resizes the canvas to the host viewport on Start.
	FitScreen bool `yaml:"fitScreen"`
	// Infinite disables width-based termination and boundary softening.
	// Strands never die; use with FadeOut or the canvas saturates.
	Infinite bool `yaml:"infinite"`
	// StringColor is the stroke color used for every strand when
	// Colorful is off, and for the seed strand otherwise.
	StringColor Color `yaml:"stringColor"`
	// BgColor is the fade overlay's base color. Its alpha is ignored;
	// FadeAmount supplies the per-tick alpha.
	BgColor Color `yaml:"bgColor"`
}

// DefaultConfig returns the configuration used when the host specifies
// nothing.
func DefaultConfig() Config {
	return Config{
		LossQuantity:  0.03,
		MinSleep:      10,
		LoopLoss:      0.8,
		MainLoss:      0.9,
		Time:          0.2,
		ExceptionProb: 0.6,
		FastMode:      0,
		FadeOut:       true,
		FadeAmount:    0.03,
		RunSpawn:      true,
		FadeInterval:  50,
		InitialMass:   1,
		FitScreen:     true,
		StringColor:   Color{R: 0, G: 0, B: 0, A: 0.5},
		BgColor:       Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// LoadConfig merges a YAML document over [DefaultConfig]. Keys present
// in the document win; absent keys keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("filament: parse config: %w", err)
	}
	return cfg, nil
}

// normalize clamps degenerate numeric values so malformed configuration
// degrades into tame behavior instead of crashing or spinning.
func (c *Config) normalize() {
	if c.LossQuantity < 0 {
		c.LossQuantity = 0
	}
	if c.MinSleep < 1 {
		c.MinSleep = 1
	}
	if c.LoopLoss < 0 {
		c.LoopLoss = 0
	}
	if c.MainLoss < 0 {
		c.MainLoss = 0
	}
	if c.Time < 0 {
		c.Time = 0
	}
	c.ExceptionProb = clamp01(c.ExceptionProb)
	c.FadeAmount = clamp01(c.FadeAmount)
	if c.FadeInterval < 1 {
		c.FadeInterval = 1
	}
	if c.InitialMass < 0 {
		c.InitialMass = 0
	}
}
