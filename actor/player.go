package actor

import "github.com/jnbrauer/turrets/geom"

// Player tuning.
const (
	PlayerHealth     float32 = 100
	PlayerMoveSpeed  float32 = 150
	PlayerBodyDamage float32 = 100

	// playerTurnStep is applied per tick while a turn key is held, not
	// scaled by dt. Turn rate therefore tracks the tick rate.
	playerTurnStep float32 = 0.05
)

// Player is the user-controlled ship. Key events land here between ticks and
// are consumed on the next Update.
type Player struct {
	id       uint32
	position geom.Point
	bounds   geom.Bounds
	health   float32
	velocity geom.Velocity
	pending  []*Shot
	heldKey  Key
	ids      *IDSource
}

// NewPlayer creates the ship at the given position, usually the arena center.
func NewPlayer(ids *IDSource, position geom.Point, bounds geom.Bounds) *Player {
	return &Player{
		id:       ids.Next(),
		position: position,
		bounds:   bounds,
		health:   PlayerHealth,
		ids:      ids,
	}
}

func (p *Player) ID() uint32 { return p.id }

func (p *Player) Radius() float32 { return PlayerRadius }

func (p *Player) Position() geom.Point { return p.position }

// Health returns the remaining health pool.
func (p *Player) Health() float32 { return p.health }

// Velocity returns the ship's current velocity.
func (p *Player) Velocity() geom.Velocity { return p.velocity }

// HandleKeyDown applies a key-down event. Up and Down latch the movement
// speed, Space fires once per press (key repeats are ignored), and any other
// key becomes the tracked held key used for continuous turning.
func (p *Player) HandleKeyDown(key Key, repeat bool) {
	switch key {
	case KeyUp:
		p.velocity.Speed = PlayerMoveSpeed
	case KeyDown:
		p.velocity.Speed = -PlayerMoveSpeed
	case KeySpace:
		if !repeat {
			p.FireShot()
		}
	default:
		p.heldKey = key
	}
}

// HandleKeyUp applies a key-up event. Releasing either vertical key stops
// the ship; releasing the tracked held key clears it, while a stale release
// of any other key leaves the newer held key alone.
func (p *Player) HandleKeyUp(key Key) {
	switch key {
	case KeyUp, KeyDown:
		p.velocity.Speed = 0
	default:
		if key == p.heldKey {
			p.heldKey = KeyNone
		}
	}
}

// FireShot queues one shot out of the ship's nose, inheriting the ship's
// heading and speed plus the muzzle boost.
func (p *Player) FireShot() {
	vel := p.velocity
	vel.Speed += PlayerShotBoost

	pos := p.position
	pos.MoveDistance(PlayerRadius+ShotRadius, vel.Heading)

	p.pending = append(p.pending, NewShot(p.ids.Next(), pos, p.bounds, vel, PlayerShotDamage, PlayerShotLifespan))
}

// Update turns the ship if a turn key is held, then moves it and clamps it
// into the arena. The arena edge stops motion; the ship never wraps or dies
// from leaving bounds.
func (p *Player) Update(dt float32) {
	switch p.heldKey {
	case KeyRight:
		p.velocity.Heading += playerTurnStep
	case KeyLeft:
		p.velocity.Heading -= playerTurnStep
	}

	p.position.MoveTime(dt, p.velocity)
	p.position.KeepInBounds(p.bounds)
}

func (p *Player) Draw(surf Surface) error {
	return surf.FillCircle(p.position, PlayerRadius, p.velocity.Heading)
}

// Damage dealt by ramming the ship is fixed, independent of its own health.
func (p *Player) Damage() float32 { return PlayerBodyDamage }

func (p *Player) TakeDamage(amount float32) { p.health -= amount }

// CollectShots drains the pending shot queue.
func (p *Player) CollectShots() []*Shot {
	shots := p.pending
	p.pending = nil
	return shots
}

func (p *Player) Dead() bool { return p.health <= 0 }
