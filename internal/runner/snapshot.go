package runner

import "math"

// Fields per flattened obstacle record in Snapshot.ObstacleData.
const obstacleRecordLen = 8

// Snapshot contains the complete simulation state for replay and
// determinism testing. Uses primitive types only for stable
// serialization.
type Snapshot struct {
	Tick     uint64
	Phase    int
	Paused   bool
	Inverted bool

	Score     int
	HighScore int
	Digits    int

	Speed       float64
	DistanceRan float64
	RunningTime float64
	InvertTimer float64

	PlayerX         float64
	PlayerY         float64
	PlayerVelocity  float64
	PlayerStatus    int
	PlayerJumping   bool
	PlayerDucking   bool
	PlayerSpeedDrop bool
	JumpCount       int

	NightOpacity float64
	NightPhase   int

	// Each obstacle is obstacleRecordLen floats: Kind, XPos, YPos, Width,
	// Size, Gap, SpeedOffset, CurrentFrame.
	ObstacleCount int
	ObstacleData  []float64

	// Each cloud is 3 floats: XPos, YPos, Gap.
	CloudCount int
	CloudData  []float64
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := g.horizon.Obstacles()
	obstacleData := make([]float64, 0, len(obstacles)*obstacleRecordLen)
	for _, o := range obstacles {
		obstacleData = append(obstacleData,
			float64(o.Type.Kind), o.XPos, o.YPos, o.Width,
			float64(o.Size), o.Gap, o.SpeedOffset, float64(o.CurrentFrame))
	}

	clouds := g.horizon.Clouds()
	cloudData := make([]float64, 0, len(clouds)*3)
	for _, c := range clouds {
		cloudData = append(cloudData, c.XPos, c.YPos, c.Gap)
	}

	p := g.player
	return Snapshot{
		Tick:     g.tickCount,
		Phase:    int(g.phase),
		Paused:   g.paused,
		Inverted: g.inverted,

		Score:     g.meter.Score(),
		HighScore: g.meter.HighScore(),
		Digits:    g.meter.Digits(),

		Speed:       g.currentSpeed,
		DistanceRan: g.distanceRan,
		RunningTime: g.runningTime,
		InvertTimer: g.invertTimer,

		PlayerX:         p.XPos,
		PlayerY:         p.YPos,
		PlayerVelocity:  p.JumpVelocity(),
		PlayerStatus:    int(p.Status()),
		PlayerJumping:   p.Jumping(),
		PlayerDucking:   p.Ducking(),
		PlayerSpeedDrop: p.SpeedDrop(),
		JumpCount:       p.JumpCount,

		NightOpacity: g.horizon.Night.Opacity,
		NightPhase:   g.horizon.Night.CurrentPhase,

		ObstacleCount: len(obstacles),
		ObstacleData:  obstacleData,
		CloudCount:    len(clouds),
		CloudData:     cloudData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Inverted)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Digits)    //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.DistanceRan)
	h = h*31 + math.Float64bits(snap.RunningTime)
	h = h*31 + math.Float64bits(snap.InvertTimer)

	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVelocity)
	h = h*31 + uint64(snap.PlayerStatus) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.PlayerJumping)
	h = h*31 + boolBit(snap.PlayerDucking)
	h = h*31 + boolBit(snap.PlayerSpeedDrop)
	h = h*31 + uint64(snap.JumpCount) //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.NightOpacity)
	h = h*31 + uint64(snap.NightPhase) //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.ObstacleCount) //#nosec G115 -- hash computation
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.CloudCount) //#nosec G115 -- hash computation
	for _, v := range snap.CloudData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
