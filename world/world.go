// Package world owns the mutable simulation state and the fixed-tick step
// that advances it: actor update, shot collection, pairwise collision
// resolution, and death culling.
package world

import (
	"github.com/jnbrauer/turrets/actor"
	"github.com/jnbrauer/turrets/geom"
)

// StepStats summarizes one tick for the telemetry layer.
type StepStats struct {
	PlayerShots int // shots collected from the player this tick
	TurretShots int // shots collected from turrets this tick
	Collisions  int // colliding pairs resolved this tick
	Culled      int // dead actors removed this tick
}

// World holds the player and every other live actor. The actor slice is
// insertion-ordered; the collision pass depends on that order for its
// deterministic pairwise scan.
type World struct {
	player *actor.Player
	actors []actor.Actor
	bounds geom.Bounds
	ids    actor.IDSource

	gameOver bool
}

// New creates a world with the player centered and one turret in each
// quadrant of the arena.
func New(bounds geom.Bounds) *World {
	w := &World{bounds: bounds}

	w.player = actor.NewPlayer(&w.ids, geom.Point{X: bounds.MaxX / 2, Y: bounds.MaxY / 2}, bounds)

	w.AddActor(actor.NewTurret(&w.ids, geom.Point{X: bounds.MaxX / 4, Y: bounds.MaxY / 4}, bounds))
	w.AddActor(actor.NewTurret(&w.ids, geom.Point{X: bounds.MaxX / 4, Y: bounds.MaxY * 0.75}, bounds))
	w.AddActor(actor.NewTurret(&w.ids, geom.Point{X: bounds.MaxX * 0.75, Y: bounds.MaxY / 4}, bounds))
	w.AddActor(actor.NewTurret(&w.ids, geom.Point{X: bounds.MaxX * 0.75, Y: bounds.MaxY * 0.75}, bounds))

	return w
}

// Player returns the player ship.
func (w *World) Player() *actor.Player { return w.player }

// Actors returns the live non-player actors in insertion order.
func (w *World) Actors() []actor.Actor { return w.actors }

// Bounds returns the arena extent.
func (w *World) Bounds() geom.Bounds { return w.bounds }

// GameOver reports whether the player has died. Once set no further steps
// run.
func (w *World) GameOver() bool { return w.gameOver }

// AddActor appends an actor to the collection.
func (w *World) AddActor(a actor.Actor) {
	w.actors = append(w.actors, a)
}

// Step advances the simulation by one fixed tick: update the player and then
// every actor, fold in the shots they spawned, resolve collisions, cull the
// dead, and check for the player's death.
func (w *World) Step(dt float32) StepStats {
	var stats StepStats
	if w.gameOver {
		return stats
	}

	w.player.Update(dt)
	for _, a := range w.actors {
		a.Update(dt)
	}

	stats.PlayerShots, stats.TurretShots = w.collectShots()
	stats.Collisions = w.handleCollisions()
	stats.Culled = w.removeDead()

	if w.player.Dead() {
		w.gameOver = true
	}
	return stats
}

// collectShots drains the player's pending shots and then every actor's, in
// insertion order, appending them all to the collection.
func (w *World) collectShots() (fromPlayer, fromActors int) {
	newShots := w.player.CollectShots()
	fromPlayer = len(newShots)

	for _, a := range w.actors {
		newShots = append(newShots, a.CollectShots()...)
	}
	fromActors = len(newShots) - fromPlayer

	for _, s := range newShots {
		w.AddActor(s)
	}
	return fromPlayer, fromActors
}

// handleCollisions runs the deterministic pairwise scan: each actor against
// the player, then against every actor after it in the collection. A
// colliding pair exchanges body damage exactly once per tick.
func (w *World) handleCollisions() int {
	hits := 0
	for i, a := range w.actors {
		if actor.Collides(w.player, a) {
			w.player.TakeDamage(a.Damage())
			a.TakeDamage(w.player.Damage())
			hits++
		}

		for _, b := range w.actors[i+1:] {
			if actor.Collides(a, b) {
				a.TakeDamage(b.Damage())
				b.TakeDamage(a.Damage())
				hits++
			}
		}
	}
	return hits
}

// removeDead culls dead actors, preserving the relative order of survivors.
func (w *World) removeDead() int {
	alive := w.actors[:0]
	for _, a := range w.actors {
		if !a.Dead() {
			alive = append(alive, a)
		}
	}
	culled := len(w.actors) - len(alive)
	for i := len(alive); i < len(w.actors); i++ {
		w.actors[i] = nil
	}
	w.actors = alive
	return culled
}

// Draw renders the player and then every actor in order. A failed draw
// aborts the pass immediately; drawing never mutates simulation state.
func (w *World) Draw(s actor.Surface) error {
	if err := w.player.Draw(s); err != nil {
		return err
	}
	for _, a := range w.actors {
		if err := a.Draw(s); err != nil {
			return err
		}
	}
	return nil
}

// KeyDown relays a key-down event to the player.
func (w *World) KeyDown(key actor.Key, repeat bool) {
	w.player.HandleKeyDown(key, repeat)
}

// KeyUp relays a key-up event to the player.
func (w *World) KeyUp(key actor.Key) {
	w.player.HandleKeyUp(key)
}
