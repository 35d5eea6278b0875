package runner

import (
	"fmt"
	"math"

	"trexrunner/internal/config"
)

// DistanceMeter converts raw scrolled distance into the displayed score,
// tracks the growing digit width, and drives the achievement flash.
type DistanceMeter struct {
	cfg config.RunnerScore

	score           int     // Last computed real distance, in display units
	digits          int     // Current readout width; grows, never shrinks
	highScore       int
	achievement     bool
	flashTimer      float64
	flashIterations int
	paint           bool    // False on the "off" half of a flash cycle
}

// newDistanceMeter creates a meter with the configured minimum width.
func newDistanceMeter(cfg config.RunnerScore) *DistanceMeter {
	return &DistanceMeter{
		cfg:    cfg,
		digits: cfg.MinDigits,
		paint:  true,
	}
}

// RealDistance converts raw scrolled pixels to display units via the
// fixed linear coefficient, rounded.
func (d *DistanceMeter) RealDistance(distance float64) int {
	return int(math.Round(distance * d.cfg.Coefficient))
}

// Update recomputes the score from the raw distance and advances the
// achievement flash. Returns true exactly on the tick a new achievement
// is entered, so the host can fire the sound cue once.
func (d *DistanceMeter) Update(deltaTime float64, distance float64) bool {
	playSound := false

	if !d.achievement {
		d.score = d.RealDistance(distance)

		// Widen the readout once the score outgrows it. Width never shrinks.
		for d.score > d.maxRepresentable() {
			d.digits++
		}

		if d.score > 0 && d.score%d.cfg.AchievementDistance == 0 {
			d.achievement = true
			d.flashTimer = 0
			d.flashIterations = 0
			playSound = true
		}
		d.paint = true
		return playSound
	}

	// Flashing: each cycle is two flash-duration intervals, repaint
	// suppressed on the off half.
	if d.flashIterations < d.cfg.FlashIterations {
		d.flashTimer += deltaTime
		if d.flashTimer < d.cfg.FlashDuration {
			d.paint = false
		} else if d.flashTimer > d.cfg.FlashDuration*2 {
			d.flashTimer = 0
			d.flashIterations++
			d.paint = true
		} else {
			d.paint = true
		}
	} else {
		d.achievement = false
		d.flashTimer = 0
		d.flashIterations = 0
		d.paint = true
	}

	return playSound
}

// maxRepresentable returns the largest score the current width can show.
func (d *DistanceMeter) maxRepresentable() int {
	max := 1
	for i := 0; i < d.digits; i++ {
		max *= 10
	}
	return max - 1
}

// Score returns the current real distance in display units.
func (d *DistanceMeter) Score() int {
	return d.score
}

// Digits returns the current readout width.
func (d *DistanceMeter) Digits() int {
	return d.digits
}

// Paint reports whether the score should be drawn this tick. Always true
// outside an achievement flash.
func (d *DistanceMeter) Paint() bool {
	return d.paint
}

// Flashing reports whether an achievement flash is in progress.
func (d *DistanceMeter) Flashing() bool {
	return d.achievement
}

// SetHighScore stores the best real distance. It never decreases within
// a session; persistence across sessions is the host's concern.
func (d *DistanceMeter) SetHighScore(distance int) {
	if distance > d.highScore {
		d.highScore = distance
	}
}

// HighScore returns the session's best real distance.
func (d *DistanceMeter) HighScore() int {
	return d.highScore
}

// ScoreText formats the current score zero-padded to the readout width.
func (d *DistanceMeter) ScoreText() string {
	return fmt.Sprintf("%0*d", d.digits, d.score)
}

// HighScoreText formats the always-visible high score readout.
func (d *DistanceMeter) HighScoreText() string {
	return fmt.Sprintf("HI %0*d", d.cfg.MinDigits, d.highScore)
}

// reset clears the run state for a restart, keeping the high score.
func (d *DistanceMeter) reset() {
	d.score = 0
	d.digits = d.cfg.MinDigits
	d.achievement = false
	d.flashTimer = 0
	d.flashIterations = 0
	d.paint = true
}
