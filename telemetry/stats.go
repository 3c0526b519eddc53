// Package telemetry aggregates per-tick simulation events into windowed
// stats records for CSV output and structured logging.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Player state at window end
	PlayerHealth float64 `csv:"player_health"`

	// Events during window
	PlayerShots   int `csv:"player_shots"`
	TurretShots   int `csv:"turret_shots"`
	TurretVolleys int `csv:"turret_volleys"`
	Collisions    int `csv:"collisions"`
	ActorsCulled  int `csv:"actors_culled"`

	// Actor population over the window (sampled every tick)
	ActorsMean float64 `csv:"actors_mean"`
	ActorsStd  float64 `csv:"actors_std"`
	ActorsEnd  int     `csv:"actors_end"`
}

// ActorCountStats returns the mean and standard deviation of per-tick actor
// count samples.
func ActorCountStats(samples []float64) (mean, std float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		std = stat.StdDev(samples, nil)
	}
	return mean, std
}

// Log emits the window to slog.
func (ws WindowStats) Log() {
	slog.Info("stats window",
		"window_end", ws.WindowEndTick,
		"sim_time", ws.SimTimeSec,
		"player_health", ws.PlayerHealth,
		"player_shots", ws.PlayerShots,
		"turret_volleys", ws.TurretVolleys,
		"collisions", ws.Collisions,
		"actors_culled", ws.ActorsCulled,
		"actors_mean", ws.ActorsMean,
		"actors_end", ws.ActorsEnd,
	)
}
