package runner

import "math/rand"

// Cloud placement constants, in simulation pixels.
const (
	cloudWidth       = 46
	cloudHeight      = 14
	cloudMinGap      = 100
	cloudMaxGap      = 400
	cloudMaxSkyLevel = 30 // Highest placement (smaller y = higher)
	cloudMinSkyLevel = 71 // Lowest placement
	cloudBgSpeed     = 0.2
)

// Cloud is a decorative background element. Clouds never collide.
type Cloud struct {
	XPos    float64
	YPos    float64
	Gap     float64 // Scroll distance before the next cloud may spawn
	removed bool
}

// newCloud creates a cloud at the right edge with a random sky level and
// a random gap to its successor.
func newCloud(rng *rand.Rand) *Cloud {
	return &Cloud{
		XPos: simWidth,
		YPos: float64(randRange(rng, cloudMaxSkyLevel, cloudMinSkyLevel)),
		Gap:  float64(randRange(rng, cloudMinGap, cloudMaxGap)),
	}
}

// Update moves the cloud left. Clouds scroll at a fraction of the global
// speed so the background parallaxes behind the obstacles.
func (c *Cloud) Update(deltaTime, speed float64) {
	if c.removed {
		return
	}
	c.XPos -= cloudBgSpeed / 1000 * deltaTime * speed * simFPS
	if !c.IsVisible() {
		c.removed = true
	}
}

// IsVisible reports whether any part of the cloud is on screen.
func (c *Cloud) IsVisible() bool {
	return c.XPos+cloudWidth > 0
}

// Removed reports whether the cloud has scrolled fully off-screen.
func (c *Cloud) Removed() bool {
	return c.removed
}
