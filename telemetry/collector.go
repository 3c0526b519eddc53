package telemetry

// TickEvents is what one simulation step reports to the collector.
type TickEvents struct {
	PlayerShots int
	TurretShots int
	Collisions  int
	Culled      int
	ActorCount  int
}

// Collector accumulates tick events within fixed windows and produces
// WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters for the current window
	playerShots int
	turretShots int
	collisions  int
	culled      int

	// Per-tick actor-count samples for the current window
	actorSamples []float64
}

// turretVolleySize mirrors the turret's volley so shot counts convert to
// volley counts.
const turretVolleySize = 4

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick.
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTick folds one simulation step's events into the current window.
func (c *Collector) RecordTick(ev TickEvents) {
	c.playerShots += ev.PlayerShots
	c.turretShots += ev.TurretShots
	c.collisions += ev.Collisions
	c.culled += ev.Culled
	c.actorSamples = append(c.actorSamples, float64(ev.ActorCount))
}

// ShouldFlush reports whether the window ending at tick is complete.
func (c *Collector) ShouldFlush(tick int32) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// Flush closes the current window and starts the next one.
func (c *Collector) Flush(tick int32, playerHealth float64, actorsEnd int) WindowStats {
	mean, std := ActorCountStats(c.actorSamples)

	ws := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * float64(c.dt),
		PlayerHealth:    playerHealth,
		PlayerShots:     c.playerShots,
		TurretShots:     c.turretShots,
		TurretVolleys:   c.turretShots / turretVolleySize,
		Collisions:      c.collisions,
		ActorsCulled:    c.culled,
		ActorsMean:      mean,
		ActorsStd:       std,
		ActorsEnd:       actorsEnd,
	}

	c.windowStartTick = tick
	c.playerShots = 0
	c.turretShots = 0
	c.collisions = 0
	c.culled = 0
	c.actorSamples = c.actorSamples[:0]

	return ws
}
