package runner

import "trexrunner/internal/core"

// checkForCollision tests the player against a single obstacle. Every
// collision box of the player (the duck-variant set while ducking) is
// tested against every box of the obstacle, each translated to world
// coordinates by its owner's position; the first overlapping pair wins.
//
// A cheap outer bounding-box pass short-circuits the multi-box loop for
// the common no-contact case. The outer boxes are shrunk by a pixel on
// each side so a grazing sprite edge never registers.
func checkForCollision(o *Obstacle, p *Player) bool {
	playerBounds := core.NewBox(p.XPos+1, p.YPos+1, p.Width()-2, p.Height()-2)
	obstacleBounds := core.NewBox(o.XPos+1, o.YPos+1, o.Width-2, o.Type.Height-2)

	if !playerBounds.Intersects(obstacleBounds) {
		return false
	}

	for _, pb := range p.CollisionBoxes() {
		playerBox := pb.Translate(p.XPos, p.YPos)
		for _, ob := range o.CollisionBoxes() {
			if playerBox.Intersects(ob.Translate(o.XPos, o.YPos)) {
				return true
			}
		}
	}
	return false
}
