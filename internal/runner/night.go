package runner

import "math/rand"

// Night cycle constants.
const (
	nightNumPhases = 7 // Moon phases, cycled one step per fade-in
	nightNumStars  = 2
	nightFadeStep  = 0.035 // Opacity change per simulated frame
	nightStarSpeed = 0.3
	nightMoonSpeed = 0.25
	nightMoonY     = 30
)

// starPos is a single star position in simulation space.
type starPos struct {
	X float64
	Y float64
}

// NightMode owns the day/night inversion visuals: a cycling moon phase,
// star positions and an opacity ramp. Activation is asserted by the game
// controller once real distance crosses the configured multiple.
type NightMode struct {
	Opacity      float64
	CurrentPhase int
	MoonX        float64

	stars [nightNumStars]starPos
	rng   *rand.Rand
}

// newNightMode creates an inactive night cycle.
func newNightMode(rng *rand.Rand) *NightMode {
	n := &NightMode{
		CurrentPhase: 0,
		MoonX:        simWidth - 50,
		rng:          rng,
	}
	n.placeStars()
	return n
}

// Update ramps opacity toward 1 while activated and back toward 0
// otherwise, clamped to [0, 1]. The phase index advances one step each
// time a fade-in begins from zero opacity.
func (n *NightMode) Update(activated bool, deltaTime float64) {
	if activated && n.Opacity == 0 {
		n.CurrentPhase = (n.CurrentPhase + 1) % nightNumPhases
		n.placeStars()
	}

	frames := deltaTime / msPerFrame
	if activated {
		n.Opacity += nightFadeStep * frames
	} else {
		n.Opacity -= nightFadeStep * frames
	}
	if n.Opacity < 0 {
		n.Opacity = 0
	} else if n.Opacity > 1 {
		n.Opacity = 1
	}

	// Moon and stars drift while visible.
	if n.Opacity > 0 {
		n.MoonX = n.updateXPos(n.MoonX, nightMoonSpeed*frames)
		for i := range n.stars {
			n.stars[i].X = n.updateXPos(n.stars[i].X, nightStarSpeed*frames)
		}
	}
}

// updateXPos moves a sky element left, wrapping around the right edge.
func (n *NightMode) updateXPos(x, speed float64) float64 {
	x -= speed
	if x < -cloudWidth {
		x = simWidth
	}
	return x
}

// placeStars randomizes star positions in the upper half of the sky.
func (n *NightMode) placeStars() {
	segmentSize := simWidth / nightNumStars
	for i := range n.stars {
		n.stars[i].X = float64(randRange(n.rng, i*segmentSize, (i+1)*segmentSize-1))
		n.stars[i].Y = float64(randRange(n.rng, 0, nightMoonY))
	}
}

// Stars returns the current star positions.
func (n *NightMode) Stars() []starPos {
	return n.stars[:]
}

// reset restores the inactive day state.
func (n *NightMode) reset() {
	n.CurrentPhase = 0
	n.Opacity = 0
	n.MoonX = simWidth - 50
	n.placeStars()
}
