package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/jnbrauer/turrets/actor"
)

// namedKeys maps the raylib keys the simulation understands onto semantic
// keys.
var namedKeys = map[int32]actor.Key{
	rl.KeyUp:    actor.KeyUp,
	rl.KeyDown:  actor.KeyDown,
	rl.KeyLeft:  actor.KeyLeft,
	rl.KeyRight: actor.KeyRight,
	rl.KeySpace: actor.KeySpace,
}

// keyState tracks raw key codes currently held so raylib's polled input can
// be turned back into key-up events for unnamed keys.
type keyState struct {
	held map[int32]bool
}

func newKeyState() *keyState {
	return &keyState{held: make(map[int32]bool)}
}

// handleInput converts this frame's raylib key state into semantic key-down
// and key-up events for the world. Escape quits at this boundary and is
// never forwarded into the simulation.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.quit = true
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	for code, key := range namedKeys {
		if rl.IsKeyPressed(code) {
			g.world.KeyDown(key, false)
		} else if rl.IsKeyPressedRepeat(code) {
			g.world.KeyDown(key, true)
		}
		if rl.IsKeyReleased(code) {
			g.world.KeyUp(key)
		}
	}

	// Remaining keys: drain raylib's pressed-key queue for key-downs and
	// watch previously held codes for releases.
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if _, named := namedKeys[code]; named || code == rl.KeyEscape || code == rl.KeyP {
			continue
		}
		g.keys.held[code] = true
		g.world.KeyDown(actor.OtherKey(code), false)
	}
	for code := range g.keys.held {
		if rl.IsKeyUp(code) {
			delete(g.keys.held, code)
			g.world.KeyUp(actor.OtherKey(code))
		}
	}
}
