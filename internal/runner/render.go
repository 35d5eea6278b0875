package runner

import (
	"trexrunner/internal/core"
)

// Visual characters for rendering
const (
	playerBody    = '█'
	playerHead    = '◆'
	playerLeg1    = '╱'
	playerLeg2    = '╲'
	playerEyeShut = '-'
	cactusChar    = '▓'
	pteroChar     = '▼'
	pteroWingUp   = '▲'
	groundChar    = '═'
	groundBump    = '╌'
	cloudChar     = '~'
	starChar      = '✦'
	moonChar      = '☾'
)

// hudRow is reserved for the score readouts; the simulation is scaled
// into the rows below it.
const hudRow = 0

// Render draws the current simulation state into the screen buffer. The
// fixed simulation space is scaled to whatever cell grid the host gives
// us, so the same run looks consistent across terminal sizes.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.inverted || g.horizon.Night.Opacity > 0 {
		g.drawNight(dst)
	}
	g.drawClouds(dst)
	g.drawGround(dst)
	if g.phase != PhaseWaiting {
		g.drawObstacles(dst)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.phase == PhaseCrashed {
		g.drawCenteredMessage(dst, "GAME OVER", "Press R or Space to restart")
	}
	if g.phase == PhaseWaiting {
		dst.DrawTextCentered(dst.Height()/2-1, "Press Space to start")
	}
}

// cellX maps a simulation x coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, x float64) int {
	return int(x * float64(dst.Width()) / simWidth)
}

// cellY maps a simulation y coordinate to a screen row, keeping the HUD
// row clear.
func (g *Game) cellY(dst *core.Screen, y float64) int {
	rows := dst.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return hudRow + 1 + int(y*float64(rows)/simHeight)
}

// groundRow returns the screen row of the ground line.
func (g *Game) groundRow(dst *core.Screen) int {
	return g.cellY(dst, simHeight-bottomPad)
}

// drawGround scrolls a bump pattern along the ground line so forward
// motion is visible even with no obstacles on screen.
func (g *Game) drawGround(dst *core.Screen) {
	y := g.groundRow(dst)
	offset := g.cellX(dst, g.groundXOffset())
	for x := 0; x < dst.Width(); x++ {
		ch := groundChar
		if (x+offset)%7 == 0 {
			ch = groundBump
		}
		dst.Set(x, y, ch)
	}
}

func (g *Game) groundXOffset() float64 {
	if g.horizon == nil {
		return 0
	}
	return g.horizon.GroundOffset()
}

// drawClouds renders the background clouds above the ground.
func (g *Game) drawClouds(dst *core.Screen) {
	for _, c := range g.horizon.Clouds() {
		x := g.cellX(dst, c.XPos)
		y := g.cellY(dst, c.YPos)
		w := core.Max(2, g.cellX(dst, cloudWidth))
		for i := 0; i < w; i++ {
			dst.SetCell(x+i, y, cloudChar, core.ColorGray)
		}
	}
}

// drawNight renders the moon and stars when the night fade is active.
func (g *Game) drawNight(dst *core.Screen) {
	n := g.horizon.Night
	if n.Opacity <= 0 {
		return
	}
	dst.SetCell(g.cellX(dst, n.MoonX), hudRow+1, moonChar, core.ColorYellow)
	for _, s := range n.Stars() {
		dst.SetCell(g.cellX(dst, s.X), g.cellY(dst, s.Y), starChar, core.ColorWhite)
	}
}

// drawObstacles renders all active obstacles at their scaled positions.
func (g *Game) drawObstacles(dst *core.Screen) {
	for _, o := range g.horizon.Obstacles() {
		x := g.cellX(dst, o.XPos)
		y := g.cellY(dst, o.YPos)
		w := core.Max(1, g.cellX(dst, o.Width))
		h := core.Max(1, g.cellY(dst, o.YPos+o.Type.Height)-y)

		switch o.Type.Kind {
		case Pterodactyl:
			wing := pteroChar
			if o.CurrentFrame == 1 {
				wing = pteroWingUp
			}
			for i := 0; i < w; i++ {
				dst.SetCell(x+i, y, wing, core.ColorMagenta)
			}
		default:
			for dy := 0; dy < h; dy++ {
				for dx := 0; dx < w; dx++ {
					dst.SetCell(x+dx, y+dy, cactusChar, core.ColorGreen)
				}
			}
		}
	}
}

// drawPlayer renders the actor sprite for its current status and frame.
func (g *Game) drawPlayer(dst *core.Screen) {
	x := g.cellX(dst, g.player.XPos)
	y := g.cellY(dst, g.player.YPos)

	if g.player.Ducking() {
		// Low profile: one row, stretched.
		dst.Set(x, y+1, playerBody)
		dst.Set(x+1, y+1, playerBody)
		dst.Set(x+2, y+1, playerBody)
		dst.Set(x+3, y+1, playerHead)
		g.drawLegs(dst, x, y+2)
		return
	}

	// Standing sprite (3 rows):
	//  ◆█
	// ███
	// ╱╲
	head := playerHead
	if g.player.Status() == StatusWaiting && g.player.CurrentFrame == 1 {
		head = playerEyeShut
	}
	if g.player.Status() == StatusCrashed {
		head = '✗'
	}
	dst.Set(x+1, y, head)
	dst.Set(x+2, y, playerBody)
	dst.Set(x, y+1, playerBody)
	dst.Set(x+1, y+1, playerBody)
	dst.Set(x+2, y+1, playerBody)
	g.drawLegs(dst, x, y+2)
}

// drawLegs animates the run cycle from the current animation frame.
func (g *Game) drawLegs(dst *core.Screen, x, y int) {
	switch {
	case g.player.Jumping():
		dst.Set(x, y, playerLeg1)
		dst.Set(x+1, y, playerLeg2)
	case g.player.CurrentFrame == 0:
		dst.Set(x, y, playerLeg1)
		dst.Set(x+2, y, playerLeg2)
	default:
		dst.Set(x+1, y, playerLeg1)
		dst.Set(x+2, y, playerLeg2)
	}
}

// drawHUD draws the score readouts on the reserved top row. The current
// score is suppressed on the off half of an achievement flash; the high
// score is always visible once set.
func (g *Game) drawHUD(dst *core.Screen) {
	if g.meter.HighScore() > 0 {
		hi := g.meter.HighScoreText()
		dst.DrawTextColor(dst.Width()-len(hi)-len(g.meter.ScoreText())-4, hudRow, hi, core.ColorGray)
	}
	if g.meter.Paint() {
		score := g.meter.ScoreText()
		dst.DrawTextColor(dst.Width()-len(score)-2, hudRow, score, core.ColorWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
