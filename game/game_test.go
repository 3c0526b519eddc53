package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jnbrauer/turrets/config"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
}

func TestHeadlessTicks(t *testing.T) {
	initTestConfig(t)

	g, err := New(Options{StatsWindowSec: 5, StepsPerUpdate: 10, Headless: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Unload()

	for i := 0; i < 6; i++ {
		g.UpdateHeadless()
	}
	if g.Tick() != 60 {
		t.Errorf("tick = %d, want 60 after 6 batches of 10", g.Tick())
	}
	if g.ShouldClose() {
		t.Error("game over with no collisions possible in the first second")
	}
}

func TestHeadlessWritesTelemetry(t *testing.T) {
	initTestConfig(t)
	dir := t.TempDir()

	g, err := New(Options{StatsWindowSec: 1, StepsPerUpdate: 60, OutputDir: dir, Headless: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Three seconds of simulation: three 1-second windows.
	for i := 0; i < 3; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Errorf("telemetry.csv has %d lines, want header + 3 windows", len(lines))
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}

func TestStepsPerUpdateFloor(t *testing.T) {
	initTestConfig(t)

	g, err := New(Options{StatsWindowSec: 5, StepsPerUpdate: 0, Headless: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Unload()

	g.UpdateHeadless()
	if g.Tick() != 1 {
		t.Errorf("tick = %d, want 1 with steps-per-update floored to 1", g.Tick())
	}
}
