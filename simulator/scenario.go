package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/trackside-labs/fieldviz/field"
)

// trailLength caps how much movement history each simulated player keeps.
const trailLength = 120

type simPlayer struct {
	pos   field.Point
	vel   field.Point
	trail field.Path
}

// Scenario produces synthetic tracked frames: a set of players plus their
// trailing paths, advanced once per tick.
type Scenario struct {
	name    string
	cfg     field.Configuration
	rng     *rand.Rand
	players []simPlayer
	tick    int
}

// NewScenario builds one of the named scenarios:
//
//	kickoff — two lines of players converging from the goal lines
//	drive   — an offense marching downfield with jittered routes
//	static  — fixed formation with occasional detection dropouts
func NewScenario(name string, cfg field.Configuration, seed int64) (*Scenario, error) {
	s := &Scenario{name: name, cfg: cfg, rng: rand.New(rand.NewSource(seed))}
	switch name {
	case "kickoff":
		for i := 0; i < 11; i++ {
			y := cfg.Width * float64(i+1) / 12
			s.players = append(s.players,
				simPlayer{pos: field.Point{X: cfg.GoalLine1, Y: y}, vel: field.Point{X: 18, Y: 0}},
				simPlayer{pos: field.Point{X: cfg.GoalLine2, Y: y}, vel: field.Point{X: -18, Y: 0}},
			)
		}
	case "drive", "":
		s.name = "drive"
		for i := 0; i < 11; i++ {
			y := cfg.Width * float64(i+1) / 12
			s.players = append(s.players, simPlayer{
				pos: field.Point{X: cfg.GoalLine1 + cfg.YardLineInterval, Y: y},
				vel: field.Point{X: 10 + s.rng.Float64()*8, Y: 0},
			})
		}
	case "static":
		for i := 0; i < 11; i++ {
			y := cfg.Width * float64(i+1) / 12
			s.players = append(s.players, simPlayer{
				pos: field.Point{X: cfg.FiftyYardLine, Y: y},
			})
		}
	default:
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	return s, nil
}

// Step advances the simulation one tick and returns the frame contents.
func (s *Scenario) Step() (points []field.Point, paths []field.Path) {
	s.tick++
	for i := range s.players {
		p := &s.players[i]

		jitterY := (s.rng.Float64() - 0.5) * 12
		next := field.Point{X: p.pos.X + p.vel.X, Y: p.pos.Y + p.vel.Y + jitterY}
		next.X = clamp(next.X, 0, s.cfg.Length)
		next.Y = clamp(next.Y, 0, s.cfg.Width)
		// Bounce off the end lines so drives keep going.
		if next.X <= 0 || next.X >= s.cfg.Length {
			p.vel.X = -p.vel.X
		}
		p.pos = next

		sample := p.pos
		if s.name == "static" && s.rng.Float64() < 0.05 {
			// Simulated detection dropout; the renderer skips these.
			sample = field.Missing()
		}
		p.trail = append(p.trail, sample)
		if len(p.trail) > trailLength {
			p.trail = p.trail[len(p.trail)-trailLength:]
		}

		points = append(points, sample)
		paths = append(paths, append(field.Path(nil), p.trail...))
	}
	return points, paths
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
