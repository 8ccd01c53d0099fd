package field

import (
	"math"
	"testing"
)

func TestDefaultNCAAMeasurements(t *testing.T) {
	cfg := DefaultNCAA()
	if cfg.Width != 1920 || cfg.Length != 4320 {
		t.Fatalf("field is %vx%v inches, want 1920x4320", cfg.Width, cfg.Length)
	}
	if cfg.GoalLine1 != cfg.EndZoneDepth {
		t.Errorf("left goal line at %v, want the end zone depth %v", cfg.GoalLine1, cfg.EndZoneDepth)
	}
	if cfg.GoalLine2 != cfg.Length-cfg.EndZoneDepth {
		t.Errorf("right goal line at %v, want %v", cfg.GoalLine2, cfg.Length-cfg.EndZoneDepth)
	}
	if cfg.FiftyYardLine*2 != cfg.Length {
		t.Errorf("fifty-yard line at %v is not midfield", cfg.FiftyYardLine)
	}
}

func TestDefaultNCAAVertices(t *testing.T) {
	cfg := DefaultNCAA()
	if len(cfg.Vertices) != 32 {
		t.Fatalf("got %d vertices, want 32", len(cfg.Vertices))
	}
	if len(cfg.Labels) != len(cfg.Vertices) {
		t.Fatalf("got %d labels for %d vertices", len(cfg.Labels), len(cfg.Vertices))
	}

	// Spot-check the corners and the center of field (1-based indices 1..4, 11).
	wantCorners := []Point{{0, 0}, {0, 1920}, {4320, 0}, {4320, 1920}}
	for i, want := range wantCorners {
		if cfg.Vertices[i] != want {
			t.Errorf("vertex %d = %v, want %v", i+1, cfg.Vertices[i], want)
		}
	}
	if center := cfg.Vertices[10]; center != (Point{2160, 960}) {
		t.Errorf("vertex 11 = %v, want center of field", center)
	}
}

func TestDefaultNCAAEdgesInRange(t *testing.T) {
	cfg := DefaultNCAA()
	for _, e := range cfg.Edges {
		for _, idx := range []int{e[0], e[1]} {
			if idx < 1 || idx > len(cfg.Vertices) {
				t.Errorf("edge %v references vertex %d, out of range 1..%d", e, idx, len(cfg.Vertices))
			}
		}
		if e[0] == e[1] {
			t.Errorf("edge %v is self-referencing", e)
		}
	}
}

func TestStandardVerticesTrackMeasurements(t *testing.T) {
	cfg := DefaultNCAA()
	cfg.HashDistanceFromSideline = 600
	verts := cfg.StandardVertices()
	if verts[11] != (Point{cfg.GoalLine1, 600}) {
		t.Errorf("vertex 12 = %v, want hash distance 600", verts[11])
	}
}

func TestPointValid(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"finite", Point{X: 1, Y: 2}, true},
		{"zero", Point{}, true},
		{"nan x", Point{X: math.NaN(), Y: 2}, false},
		{"nan y", Point{X: 1, Y: math.NaN()}, false},
		{"missing sentinel", Missing(), false},
		{"positive inf", Point{X: math.Inf(1), Y: 0}, false},
		{"negative inf", Point{X: 0, Y: math.Inf(-1)}, false},
	}
	for _, tc := range tests {
		if got := tc.p.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
