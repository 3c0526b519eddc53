package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/jnbrauer/turrets/actor"
	"github.com/jnbrauer/turrets/geom"
)

// raylibSurface renders actor circles through raylib. raylib draw calls
// cannot fail, so FillCircle always returns nil; the error is part of the
// Surface contract for backends that can.
type raylibSurface struct{}

func (raylibSurface) FillCircle(center geom.Point, radius, rotation float32) error {
	_ = rotation // cosmetic for circles
	rl.DrawCircleV(rl.Vector2{X: center.X, Y: center.Y}, radius, rl.White)
	return nil
}

// Draw renders one frame from the latest post-tick state. Drawing is
// read-only; a failure aborts the frame without touching simulation state.
func (g *Game) Draw() error {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)

	if err := g.world.Draw(raylibSurface{}); err != nil {
		return fmt.Errorf("drawing actors: %w", err)
	}

	g.drawHUD()
	return nil
}

// drawHUD overlays tick, actor count, and player health on the arena.
func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Actors: %d", len(g.world.Actors())), 10, 35, 20, rl.White)

	health := g.world.Player().Health()
	gui.ProgressBar(
		rl.Rectangle{X: 10, Y: 62, Width: 150, Height: 20},
		"", fmt.Sprintf("%.0f", health),
		health, 0, actor.PlayerHealth,
	)

	if g.paused {
		rl.DrawText("PAUSED", 10, 90, 20, rl.Yellow)
	}

	if g.world.GameOver() {
		w := int32(rl.GetScreenWidth())
		h := int32(rl.GetScreenHeight())
		rl.DrawText("GAME OVER", w/2-90, h/2-16, 32, rl.Red)
	}
}
