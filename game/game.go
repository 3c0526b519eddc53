// Package game is the frame driver: it glues the raylib window loop to the
// fixed-timestep simulation, relays input as semantic key events, and
// renders the world once per frame.
package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/jnbrauer/turrets/config"
	"github.com/jnbrauer/turrets/geom"
	"github.com/jnbrauer/turrets/telemetry"
	"github.com/jnbrauer/turrets/world"
)

// DT is the fixed simulation timestep in seconds.
const DT = float32(1.0 / 60.0)

// Options configures a game instance.
type Options struct {
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game drives the simulation at a fixed tick rate and renders the latest
// post-tick state once per frame.
type Game struct {
	world *world.World

	tick        int32
	accumulator float32
	paused      bool
	quit        bool

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	stepsPerUpdate int
	keys           *keyState
}

// New creates a game from the loaded config and options.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	bounds := geom.Bounds{MaxX: cfg.Derived.ArenaW32, MaxY: cfg.Derived.ArenaH32}

	return &Game{
		world:          world.New(bounds),
		collector:      telemetry.NewCollector(opts.StatsWindowSec, DT),
		output:         output,
		logStats:       opts.LogStats,
		stepsPerUpdate: steps,
		keys:           newKeyState(),
	}, nil
}

// Tick returns the number of simulation ticks run so far.
func (g *Game) Tick() int32 { return g.tick }

// ShouldClose reports whether the game has ended, from player death or an
// Escape press.
func (g *Game) ShouldClose() bool { return g.quit || g.world.GameOver() }

// Update runs one rendered frame's worth of simulation: input is relayed
// first, then the frame's wall-clock time is folded into the accumulator and
// fixed ticks run back-to-back until it drains. Rendering between catch-up
// ticks never happens; Draw sees only the final state.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	g.accumulator += rl.GetFrameTime()
	for g.accumulator >= DT && !g.world.GameOver() {
		g.step()
		g.accumulator -= DT
	}
}

// UpdateHeadless advances the simulation without any raylib involvement.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate && !g.world.GameOver(); i++ {
		g.step()
	}
}

// step runs exactly one fixed tick and feeds the result to telemetry.
func (g *Game) step() {
	stats := g.world.Step(DT)
	g.tick++

	g.collector.RecordTick(telemetry.TickEvents{
		PlayerShots: stats.PlayerShots,
		TurretShots: stats.TurretShots,
		Collisions:  stats.Collisions,
		Culled:      stats.Culled,
		ActorCount:  len(g.world.Actors()),
	})

	if g.collector.ShouldFlush(g.tick) {
		ws := g.collector.Flush(g.tick, float64(g.world.Player().Health()), len(g.world.Actors()))
		if g.logStats {
			ws.Log()
		}
		if err := g.output.WriteTelemetry(ws); err != nil {
			slog.Error("telemetry write failed", "error", err)
		}
	}

	if g.world.GameOver() {
		slog.Info("game over", "tick", g.tick)
	}
}

// Unload releases resources held by the game.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
