package main

import (
	"testing"

	"github.com/trackside-labs/fieldviz/field"
)

func TestScenarioNames(t *testing.T) {
	cfg := field.DefaultNCAA()
	for _, name := range []string{"kickoff", "drive", "static", ""} {
		if _, err := NewScenario(name, cfg, 1); err != nil {
			t.Errorf("NewScenario(%q) error: %v", name, err)
		}
	}
	if _, err := NewScenario("bogus", cfg, 1); err == nil {
		t.Error("NewScenario(bogus) succeeded, want error")
	}
}

func TestScenarioStepStaysOnField(t *testing.T) {
	cfg := field.DefaultNCAA()
	sim, err := NewScenario("kickoff", cfg, 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		points, paths := sim.Step()
		if len(points) != len(sim.players) {
			t.Fatalf("step %d: %d points for %d players", i, len(points), len(sim.players))
		}
		if len(paths) != len(points) {
			t.Fatalf("step %d: %d paths for %d points", i, len(paths), len(points))
		}
		for _, p := range points {
			if !p.Valid() {
				continue
			}
			if p.X < 0 || p.X > cfg.Length || p.Y < 0 || p.Y > cfg.Width {
				t.Fatalf("step %d: point %v off the field", i, p)
			}
		}
	}
}

func TestScenarioTrailsBounded(t *testing.T) {
	cfg := field.DefaultNCAA()
	sim, err := NewScenario("drive", cfg, 7)
	if err != nil {
		t.Fatal(err)
	}
	var paths []field.Path
	for i := 0; i < trailLength+50; i++ {
		_, paths = sim.Step()
	}
	for _, p := range paths {
		if len(p) > trailLength {
			t.Fatalf("trail grew to %d, cap is %d", len(p), trailLength)
		}
	}
}

func TestStaticScenarioEmitsDropouts(t *testing.T) {
	cfg := field.DefaultNCAA()
	sim, err := NewScenario("static", cfg, 3)
	if err != nil {
		t.Fatal(err)
	}
	sawDropout := false
	for i := 0; i < 300 && !sawDropout; i++ {
		points, _ := sim.Step()
		for _, p := range points {
			if !p.Valid() {
				sawDropout = true
			}
		}
	}
	if !sawDropout {
		t.Fatal("static scenario never simulated a detection dropout")
	}
}
