package actor

import (
	"math"
	"testing"

	"github.com/jnbrauer/turrets/geom"
)

func newTestPlayer() *Player {
	var ids IDSource
	return NewPlayer(&ids, geom.Point{X: 400, Y: 300}, testBounds)
}

func TestPlayerMovementKeys(t *testing.T) {
	p := newTestPlayer()

	p.HandleKeyDown(KeyUp, false)
	if p.velocity.Speed != PlayerMoveSpeed {
		t.Errorf("speed after Up = %v, want %v", p.velocity.Speed, PlayerMoveSpeed)
	}

	p.HandleKeyDown(KeyDown, false)
	if p.velocity.Speed != -PlayerMoveSpeed {
		t.Errorf("speed after Down = %v, want %v", p.velocity.Speed, -PlayerMoveSpeed)
	}

	// Releasing either vertical key zeroes speed, whichever latched it.
	p.HandleKeyUp(KeyUp)
	if p.velocity.Speed != 0 {
		t.Errorf("speed after releasing Up = %v, want 0", p.velocity.Speed)
	}
}

func TestPlayerTurning(t *testing.T) {
	p := newTestPlayer()

	p.HandleKeyDown(KeyRight, false)
	for i := 0; i < 10; i++ {
		p.Update(tickDT)
	}
	// Fixed 0.05 rad per tick while held, independent of dt.
	if math.Abs(float64(p.velocity.Heading-0.5)) > 1e-4 {
		t.Errorf("heading after 10 right ticks = %v, want 0.5", p.velocity.Heading)
	}

	p.HandleKeyUp(KeyRight)
	p.HandleKeyDown(KeyLeft, false)
	for i := 0; i < 10; i++ {
		p.Update(tickDT)
	}
	if math.Abs(float64(p.velocity.Heading)) > 1e-4 {
		t.Errorf("heading after 10 left ticks = %v, want 0", p.velocity.Heading)
	}
}

func TestPlayerHeldKeyTracking(t *testing.T) {
	p := newTestPlayer()

	p.HandleKeyDown(KeyRight, false)
	p.HandleKeyDown(KeyLeft, false)
	// A stale release of the older key must not clear the newer one.
	p.HandleKeyUp(KeyRight)
	if p.heldKey != KeyLeft {
		t.Errorf("held key = %v, want KeyLeft", p.heldKey)
	}

	p.HandleKeyUp(KeyLeft)
	if p.heldKey != KeyNone {
		t.Errorf("held key after matching release = %v, want KeyNone", p.heldKey)
	}
}

func TestPlayerOtherKeysDistinct(t *testing.T) {
	p := newTestPlayer()

	p.HandleKeyDown(OtherKey(65), false)
	p.HandleKeyUp(OtherKey(66))
	if p.heldKey != OtherKey(65) {
		t.Error("release of a different raw key cleared the held key")
	}
}

func TestPlayerFireShot(t *testing.T) {
	p := newTestPlayer()

	p.HandleKeyDown(KeySpace, false)
	shots := p.CollectShots()
	if len(shots) != 1 {
		t.Fatalf("shots after Space press = %d, want 1", len(shots))
	}

	s := shots[0]
	if s.velocity.Speed != PlayerShotBoost {
		t.Errorf("shot speed from a standing ship = %v, want %v", s.velocity.Speed, PlayerShotBoost)
	}
	if s.damage != PlayerShotDamage {
		t.Errorf("shot damage = %v, want %v", s.damage, PlayerShotDamage)
	}

	dist := p.position.DistanceTo(s.Position())
	if math.Abs(float64(dist-(PlayerRadius+ShotRadius))) > 1e-3 {
		t.Errorf("shot spawned %v from ship, want %v", dist, PlayerRadius+ShotRadius)
	}
}

func TestPlayerFireShotInheritsSpeed(t *testing.T) {
	p := newTestPlayer()

	p.HandleKeyDown(KeyUp, false)
	p.FireShot()
	shots := p.CollectShots()
	if len(shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(shots))
	}
	want := PlayerMoveSpeed + PlayerShotBoost
	if shots[0].velocity.Speed != want {
		t.Errorf("moving ship shot speed = %v, want %v", shots[0].velocity.Speed, want)
	}
}

func TestPlayerSpaceRepeatSuppressed(t *testing.T) {
	p := newTestPlayer()

	p.HandleKeyDown(KeySpace, false)
	// Holding space delivers repeat events; none of them fire.
	for i := 0; i < 5; i++ {
		p.HandleKeyDown(KeySpace, true)
	}
	if got := len(p.CollectShots()); got != 1 {
		t.Errorf("shots with held space = %d, want 1", got)
	}

	// Release and re-press fires again.
	p.HandleKeyUp(KeySpace)
	p.HandleKeyDown(KeySpace, false)
	if got := len(p.CollectShots()); got != 1 {
		t.Errorf("shots after re-press = %d, want 1", got)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	var ids IDSource
	p := NewPlayer(&ids, geom.Point{X: testBounds.MaxX - 1, Y: 300}, testBounds)

	p.HandleKeyDown(KeyUp, false)
	// Heading 0 points along +X straight at the wall.
	p.Update(1.0)
	if p.position.X != testBounds.MaxX {
		t.Errorf("x after driving past wall = %v, want clamp to %v", p.position.X, testBounds.MaxX)
	}
	if p.position.OutOfBounds(testBounds) {
		t.Error("player left the arena")
	}
}

func TestPlayerDamageAndDeath(t *testing.T) {
	p := newTestPlayer()

	if p.Damage() != PlayerBodyDamage {
		t.Errorf("Damage = %v, want %v", p.Damage(), PlayerBodyDamage)
	}

	p.TakeDamage(50)
	if p.Dead() {
		t.Error("player dead at 50 health")
	}
	p.TakeDamage(50)
	if !p.Dead() {
		t.Error("player alive at 0 health")
	}
}
