package runner

import (
	"math"
	"math/rand"

	"trexrunner/internal/config"
	"trexrunner/internal/core"
)

// PlayerStatus is the animation/physics state of the player actor.
type PlayerStatus int

const (
	StatusWaiting PlayerStatus = iota
	StatusRunning
	StatusJumping
	StatusDucking
	StatusCrashed
)

// String returns a human-readable name for the status.
func (s PlayerStatus) String() string {
	switch s {
	case StatusWaiting:
		return "Waiting"
	case StatusRunning:
		return "Running"
	case StatusJumping:
		return "Jumping"
	case StatusDucking:
		return "Ducking"
	case StatusCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// Player dimensions and placement, in simulation pixels.
const (
	playerWidth      = 44
	playerHeight     = 47
	playerDuckWidth  = 59
	playerDuckHeight = 25
	playerWaitX      = 10
	playerRunX       = 50
	bottomPad        = 10

	blinkDuration = 200 // ms the closed-eye frame shows
)

// animSpec is the per-status animation cadence.
type animSpec struct {
	frames     int
	msPerFrame float64
}

var playerAnims = map[PlayerStatus]animSpec{
	StatusWaiting: {frames: 2, msPerFrame: 1000.0 / 3.0},
	StatusRunning: {frames: 2, msPerFrame: 1000.0 / 12.0},
	StatusJumping: {frames: 1, msPerFrame: 1000.0 / 60.0},
	StatusDucking: {frames: 2, msPerFrame: 1000.0 / 8.0},
	StatusCrashed: {frames: 1, msPerFrame: 1000.0 / 60.0},
}

// Running-state collision boxes, relative to the player's local origin.
// The silhouette is deliberately tighter than the sprite.
var playerRunningBoxes = []core.Box{
	core.NewBox(22, 0, 17, 16),
	core.NewBox(1, 18, 30, 9),
	core.NewBox(10, 35, 14, 8),
	core.NewBox(1, 24, 29, 5),
	core.NewBox(5, 30, 21, 4),
	core.NewBox(9, 34, 15, 4),
}

// Ducking uses a single low, wide box.
var playerDuckingBoxes = []core.Box{
	core.NewBox(1, 18, 55, 25),
}

// Player is the runner's single actor: jump/duck physics plus the
// animation and blink state machine. Created once, mutated every tick,
// reset on restart.
type Player struct {
	XPos float64
	YPos float64

	JumpCount    int
	CurrentFrame int

	status       PlayerStatus
	groundYPos   float64
	minJumpY     float64 // Above this (smaller y) an early release may cut the jump
	maxJumpY     float64 // Ceiling; the jump is cut automatically past it
	jumpVelocity float64

	jumping          bool
	ducking          bool
	speedDrop        bool
	reachedMinHeight bool

	frameTimer float64

	// Blink state, only active while Waiting.
	blinkDelay float64
	blinkTimer float64
	blinkCount int
	blinking   bool

	phys config.RunnerPhysics
	pcfg config.RunnerPlayer
	rng  *rand.Rand
}

// newPlayer creates the actor in the Waiting state at ground level.
func newPlayer(phys config.RunnerPhysics, pcfg config.RunnerPlayer, rng *rand.Rand) *Player {
	p := &Player{
		phys: phys,
		pcfg: pcfg,
		rng:  rng,
	}
	p.groundYPos = simHeight - playerHeight - bottomPad
	p.minJumpY = p.groundYPos - phys.MinJumpHeight
	p.maxJumpY = phys.MaxJumpHeight
	p.reset()
	p.status = StatusWaiting
	p.XPos = playerWaitX
	p.newBlinkDelay()
	return p
}

// reset returns the actor to Running at ground level. Jump count and
// blink counters survive only until the next restart.
func (p *Player) reset() {
	p.XPos = playerRunX
	p.YPos = p.groundYPos
	p.jumpVelocity = 0
	p.jumping = false
	p.ducking = false
	p.speedDrop = false
	p.reachedMinHeight = false
	p.JumpCount = 0
	p.blinkCount = 0
	p.blinkTimer = 0
	p.blinking = false
	p.setStatus(StatusRunning)
}

// setStatus switches the animation state machine.
func (p *Player) setStatus(s PlayerStatus) {
	if p.status == s {
		return
	}
	p.status = s
	p.frameTimer = 0
	p.CurrentFrame = 0
}

// Status returns the current actor status.
func (p *Player) Status() PlayerStatus {
	return p.status
}

// Jumping reports whether the actor is airborne.
func (p *Player) Jumping() bool {
	return p.jumping
}

// Ducking reports whether the actor is in the low profile.
func (p *Player) Ducking() bool {
	return p.ducking
}

// SpeedDrop reports whether a fast descent is in progress.
func (p *Player) SpeedDrop() bool {
	return p.speedDrop
}

// BlinkCount returns the number of completed blinks while Waiting.
func (p *Player) BlinkCount() int {
	return p.blinkCount
}

// Width returns the current hitbox width.
func (p *Player) Width() float64 {
	if p.ducking {
		return playerDuckWidth
	}
	return playerWidth
}

// Height returns the current hitbox height.
func (p *Player) Height() float64 {
	if p.ducking {
		return playerDuckHeight
	}
	return playerHeight
}

// CollisionBoxes returns the status-dependent collision box set, relative
// to the actor's local origin.
func (p *Player) CollisionBoxes() []core.Box {
	if p.ducking {
		return playerDuckingBoxes
	}
	return playerRunningBoxes
}

// OnGround reports whether the actor is at ground level.
func (p *Player) OnGround() bool {
	return p.YPos >= p.groundYPos
}

// Update advances the animation frame by accumulating deltaTime against
// the per-status cadence, and runs the blink gate while Waiting.
func (p *Player) Update(deltaTime float64) {
	spec := playerAnims[p.status]

	if p.status == StatusWaiting {
		p.updateBlink(deltaTime)
		return
	}

	p.frameTimer += deltaTime
	if p.frameTimer >= spec.msPerFrame {
		p.frameTimer = 0
		p.CurrentFrame = (p.CurrentFrame + 1) % spec.frames
	}
}

// updateBlink runs the idle blink: a random per-session delay gates a
// two-frame blink, capped at MaxBlinkCount blinks.
func (p *Player) updateBlink(deltaTime float64) {
	if p.blinkCount >= p.pcfg.MaxBlinkCount {
		p.CurrentFrame = 0
		return
	}

	p.blinkTimer += deltaTime
	if p.blinking {
		p.CurrentFrame = 1
		if p.blinkTimer >= blinkDuration {
			p.blinking = false
			p.blinkCount++
			p.blinkTimer = 0
			p.newBlinkDelay()
		}
		return
	}

	p.CurrentFrame = 0
	if p.blinkTimer >= p.blinkDelay {
		p.blinking = true
		p.blinkTimer = 0
	}
}

// newBlinkDelay draws the next random blink delay.
func (p *Player) newBlinkDelay() {
	p.blinkDelay = math.Ceil(p.rng.Float64() * p.pcfg.BlinkTiming)
}

// StartJump begins a jump. No-op if already airborne or crashed. The
// launch velocity scales with the current scroll speed.
func (p *Player) StartJump(speed float64) {
	if p.status == StatusCrashed || p.jumping {
		return
	}
	p.setStatus(StatusJumping)
	p.jumpVelocity = p.phys.InitialJumpVelocity - speed/10
	p.jumping = true
	p.ducking = false
	p.reachedMinHeight = false
	p.speedDrop = false
}

// EndJump cuts the jump short on early release: once minimum height has
// been reached, velocity is clamped to the drop velocity if the current
// velocity is less negative. Calling it repeatedly has no further effect.
func (p *Player) EndJump() {
	if p.status == StatusCrashed {
		return
	}
	if p.reachedMinHeight && p.jumpVelocity < p.phys.DropVelocity {
		p.jumpVelocity = p.phys.DropVelocity
	}
}

// SetSpeedDrop forces a fast descent: velocity snaps to 1 and each
// integration step multiplies it by the drop coefficient until landing.
func (p *Player) SetSpeedDrop() {
	if p.status == StatusCrashed || !p.jumping {
		return
	}
	p.speedDrop = true
	p.jumpVelocity = 1
}

// UpdateJump integrates the jump by deltaTime milliseconds. duckHeld
// converts a speed-drop landing straight into Ducking.
func (p *Player) UpdateJump(deltaTime float64, duckHeld bool) {
	if p.status == StatusCrashed || !p.jumping {
		return
	}

	framesElapsed := deltaTime / playerAnims[StatusJumping].msPerFrame

	if p.speedDrop {
		p.YPos += math.Round(p.jumpVelocity * p.phys.SpeedDropCoefficient * framesElapsed)
	} else {
		p.YPos += math.Round(p.jumpVelocity * framesElapsed)
	}
	p.jumpVelocity += p.phys.Gravity * framesElapsed

	// Minimum height reached, an early release may now shorten the jump.
	if p.YPos < p.minJumpY || p.speedDrop {
		p.reachedMinHeight = true
	}

	// Past the ceiling the jump is cut automatically.
	if p.YPos < p.maxJumpY || p.speedDrop {
		p.EndJump()
	}

	// Landed.
	if p.YPos >= p.groundYPos {
		p.YPos = p.groundYPos
		p.jumpVelocity = 0
		p.jumping = false
		p.JumpCount++

		if p.speedDrop && duckHeld {
			p.speedDrop = false
			p.ducking = true
			p.setStatus(StatusDucking)
		} else {
			p.speedDrop = false
			p.setStatus(StatusRunning)
		}
	}
}

// SetDuck toggles the low profile. Only effective from Running.
func (p *Player) SetDuck(isDucking bool) {
	if p.status == StatusCrashed {
		return
	}
	if isDucking && p.status == StatusRunning {
		p.ducking = true
		p.setStatus(StatusDucking)
	} else if !isDucking && p.status == StatusDucking {
		p.ducking = false
		p.setStatus(StatusRunning)
	}
}

// ResetAirborne drops the actor back to the ground without counting a
// jump. Used when resuming from pause, so a stale mid-air position never
// lands against obstacles that kept their pre-pause coordinates.
func (p *Player) ResetAirborne() {
	if !p.jumping {
		return
	}
	p.YPos = p.groundYPos
	p.jumpVelocity = 0
	p.jumping = false
	p.speedDrop = false
	p.reachedMinHeight = false
	p.setStatus(StatusRunning)
}

// SetCrashed freezes the actor; all further mutations are rejected.
func (p *Player) SetCrashed() {
	p.setStatus(StatusCrashed)
}

// JumpVelocity exposes the current vertical velocity.
func (p *Player) JumpVelocity() float64 {
	return p.jumpVelocity
}

// GroundY exposes the ground-level y coordinate.
func (p *Player) GroundY() float64 {
	return p.groundYPos
}
