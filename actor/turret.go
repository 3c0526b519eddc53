package actor

import (
	"math"

	"github.com/jnbrauer/turrets/geom"
)

// Turret tuning.
const (
	TurretHealth       float32 = 100
	TurretTurnSpeed    float32 = 1 // radians per second
	TurretFireInterval float32 = 2 // seconds between volleys
	TurretBodyDamage   float32 = 100

	turretVolleySize = 4
)

// Turret is a stationary emplacement that rotates continuously and fires a
// radial volley on a fixed cadence. Its position never changes.
type Turret struct {
	id            uint32
	position      geom.Point
	bounds        geom.Bounds
	health        float32
	rotation      float32
	turnSpeed     float32
	pending       []*Shot
	sinceLastShot float32
	ids           *IDSource
}

// NewTurret creates a turret at the given position.
func NewTurret(ids *IDSource, position geom.Point, bounds geom.Bounds) *Turret {
	return &Turret{
		id:        ids.Next(),
		position:  position,
		bounds:    bounds,
		health:    TurretHealth,
		turnSpeed: TurretTurnSpeed,
		ids:       ids,
	}
}

func (t *Turret) ID() uint32 { return t.id }

func (t *Turret) Radius() float32 { return TurretRadius }

func (t *Turret) Position() geom.Point { return t.position }

// Rotation returns the current barrel angle in radians.
func (t *Turret) Rotation() float32 { return t.rotation }

// Health returns the remaining health pool.
func (t *Turret) Health() float32 { return t.health }

// Update rotates the turret and runs fire control. Once the elapsed time
// exceeds the interval exactly one volley fires and the timer resets to
// zero; skipped time is not made up with catch-up volleys.
func (t *Turret) Update(dt float32) {
	t.rotation += dt * t.turnSpeed

	if t.sinceLastShot > TurretFireInterval {
		t.fireShots()
		t.sinceLastShot = 0
	} else {
		t.sinceLastShot += dt
	}
}

// fireShots queues four shots 90 degrees apart starting from the current
// rotation, each spawned just past the turret's surface along its heading.
func (t *Turret) fireShots() {
	for i := 0; i < turretVolleySize; i++ {
		vel := geom.Velocity{
			Speed:   TurretShotSpeed,
			Heading: t.rotation + float32(i)*(math.Pi/2),
		}

		pos := t.position
		pos.MoveDistance(TurretRadius+ShotRadius, vel.Heading)

		t.pending = append(t.pending, NewShot(t.ids.Next(), pos, t.bounds, vel, TurretShotDamage, TurretShotLifespan))
	}
}

func (t *Turret) Draw(surf Surface) error {
	return surf.FillCircle(t.position, TurretRadius, t.rotation)
}

// Damage dealt by the turret body is fixed, independent of its own health.
func (t *Turret) Damage() float32 { return TurretBodyDamage }

func (t *Turret) TakeDamage(amount float32) { t.health -= amount }

// CollectShots drains the pending volley queue.
func (t *Turret) CollectShots() []*Shot {
	shots := t.pending
	t.pending = nil
	return shots
}

func (t *Turret) Dead() bool { return t.health <= 0 }
