package actor

import "github.com/jnbrauer/turrets/geom"

// Shot tuning shared by both firers.
const (
	// shotDecayRate converts lifespan seconds into a health pool and drains
	// it: health = lifespan * rate, minus rate per second.
	shotDecayRate float32 = 10

	PlayerShotDamage   float32 = 20
	PlayerShotLifespan float32 = 5
	PlayerShotBoost    float32 = 200 // added to the player's own speed

	TurretShotDamage   float32 = 25
	TurretShotLifespan float32 = 3
	TurretShotSpeed    float32 = 200
)

// Shot is a short-lived projectile. Its health doubles as a lifespan: it
// drains at a fixed rate and drops further when damaged, so any hit that
// exceeds the remaining health destroys the shot.
type Shot struct {
	id       uint32
	position geom.Point
	bounds   geom.Bounds
	velocity geom.Velocity
	damage   float32
	health   float32
}

// NewShot creates a shot already offset from its owner by the caller.
func NewShot(id uint32, position geom.Point, bounds geom.Bounds, velocity geom.Velocity, damage, lifespan float32) *Shot {
	return &Shot{
		id:       id,
		position: position,
		bounds:   bounds,
		velocity: velocity,
		damage:   damage,
		health:   lifespan * shotDecayRate,
	}
}

func (s *Shot) ID() uint32 { return s.id }

func (s *Shot) Radius() float32 { return ShotRadius }

func (s *Shot) Position() geom.Point { return s.position }

// Health returns the remaining health / lifespan pool.
func (s *Shot) Health() float32 { return s.health }

// Update moves the shot and burns lifespan.
func (s *Shot) Update(dt float32) {
	s.position.MoveTime(dt, s.velocity)
	s.health -= dt * shotDecayRate
}

func (s *Shot) Draw(surf Surface) error {
	return surf.FillCircle(s.position, ShotRadius, s.velocity.Heading)
}

func (s *Shot) Damage() float32 { return s.damage }

func (s *Shot) TakeDamage(amount float32) { s.health -= amount }

// CollectShots is always empty; shots do not spawn shots.
func (s *Shot) CollectShots() []*Shot { return nil }

// Dead reports whether the shot has expired or left the arena.
func (s *Shot) Dead() bool {
	return s.health <= 0 || s.position.OutOfBounds(s.bounds)
}
