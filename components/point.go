package components

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FadeLimit is the fade value at which a point is fully visible and
// becomes eligible for removal.
const FadeLimit = 255.0

// PointData is a single fading square: a position, an edge length, and a
// fade value that climbs from 0 to FadeLimit at a fixed per-tick step.
// Size and fade step never change after construction.
type PointData struct {
	X, Y float64
	Size int

	FadeStep  float64 // fade gained per tick
	Fade      float64 // current fade value, 0..FadeLimit
	Satisfied bool    // fade reached FadeLimit; point is done

	tween *gween.Tween
}

var Point = donburi.NewComponentType[PointData]()

// NewPointData constructs a fresh point at (x, y). The fade runs on a
// linear tween so that Fade equals step*ticks until it saturates.
func NewPointData(x, y float64, size int, step float64) PointData {
	return PointData{
		X:        x,
		Y:        y,
		Size:     size,
		FadeStep: step,
		tween:    gween.New(0, FadeLimit, float32(FadeLimit/step), ease.Linear),
	}
}

// Update advances the fade by one tick. Once satisfied it does nothing.
func (p *PointData) Update() {
	if p.Satisfied {
		return
	}
	v, done := p.tween.Update(1)
	p.Fade = float64(v)
	if done {
		p.Satisfied = true
	}
}

// DistanceTo returns the Euclidean distance from the point to (x, y).
func (p *PointData) DistanceTo(x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}
