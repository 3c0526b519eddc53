// Package actor defines the entities that populate the arena: the player
// ship, the stationary turrets, and the shots they exchange.
package actor

import "github.com/jnbrauer/turrets/geom"

// Fixed body radii per variant.
const (
	ShotRadius   float32 = 5
	TurretRadius float32 = 15
	PlayerRadius float32 = 20
)

// collisionTolerance shrinks the combined radii so exact tangency (and float
// rounding around it) does not register as a hit.
const collisionTolerance = 0.1

// Surface is the drawing collaborator. Rotation is cosmetic for circles but
// passed through for sprite fidelity later. Drawing must not mutate
// simulation state.
type Surface interface {
	FillCircle(center geom.Point, radius, rotation float32) error
}

// Actor is the capability set shared by every entity in the simulation.
type Actor interface {
	ID() uint32
	Radius() float32
	Position() geom.Point

	Draw(s Surface) error
	Update(dt float32)

	// Damage is the amount this actor deals to whatever collides with it.
	Damage() float32
	TakeDamage(amount float32)
	// CollectShots drains and returns the shots spawned since the last drain.
	CollectShots() []*Shot
	Dead() bool
}

// Collides reports whether a and b overlap: the distance between centers is
// under the sum of their radii minus the tolerance, and the IDs differ so an
// actor never collides with itself.
func Collides(a, b Actor) bool {
	return a.Position().DistanceTo(b.Position()) < a.Radius()+b.Radius()-collisionTolerance &&
		a.ID() != b.ID()
}

// IDSource hands out actor IDs, monotonically from 1, never reusing a value.
// The world owns one source and threads it through every constructor.
type IDSource struct {
	next uint32
}

// Next returns a fresh ID.
func (s *IDSource) Next() uint32 {
	s.next++
	return s.next
}
