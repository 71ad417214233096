package config

import (
	"image/color"

	"github.com/hexbit/sparkle/colorutil"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all systems and renderers run on.
const Default ecs.LayerID = 0

// EffectConfig contains the particle effect's fixed constants
type EffectConfig struct {
	// Population
	MaxAlive int // live points at any time

	// Surface
	SurfaceWidth  int
	SurfaceHeight int

	// Host cursor dimensions, used to trail the surface below-right
	// of the pointer
	CursorWidth  int
	CursorHeight int

	// Point generation
	SizeMin          int     // smallest square edge, pixels
	SizeMax          int     // largest square edge, pixels
	FadeSpeedMin     float64 // slowest fade step per tick
	FadeSpeedMax     float64 // fastest fade step per tick (exclusive)
	SeparationFactor int     // minimum spacing = candidate size * this

	// Loop
	TickRate int // ticks per second

	// Visual
	Color color.NRGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowStats bool // overlay tick rate and live point count
}

// Global configuration instances
var Effect EffectConfig
var Debug DebugConfig

func init() {
	Effect = EffectConfig{
		MaxAlive: 6,

		SurfaceWidth:  64,
		SurfaceHeight: 64,

		CursorWidth:  12,
		CursorHeight: 20,

		SizeMin:          2,
		SizeMax:          4,
		FadeSpeedMin:     0.25,
		FadeSpeedMax:     1.75,
		SeparationFactor: 6,

		TickRate: 144,

		Color: colorutil.MustParseHex("#00bf9b"),
	}

	Debug = DebugConfig{
		ShowStats: false,
	}
}
