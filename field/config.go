// Package field describes the static geometry of an American football field
// in field units (inches), as consumed by the diagram renderer.
package field

// Configuration is the renderer's read-only description of a field. The
// renderer only reads the measurements and the Vertices/Edges sequences; it
// never validates them.
type Configuration struct {
	// Field dimensions in inches (NCAA specifications).
	Width                      float64 // sideline to sideline
	Length                     float64 // end line to end line
	EndZoneDepth               float64
	GoalLine1                  float64 // distance of the left goal line from the left end line
	GoalLine2                  float64
	HashDistanceFromSideline   float64
	HashLength                 float64
	YardLineInterval           float64
	FiftyYardLine              float64
	NumberDistanceFromSideline float64

	// Vertices are the field's reference points in field units, 1-indexed by
	// convention (index i lives at Vertices[i-1]). X runs along the field
	// length, Y across the width.
	Vertices []Point

	// Edges references Vertices pairwise (1-based) and defines the straight
	// segments the renderer draws for the field skeleton.
	Edges [][2]int

	// Labels holds a debug label per vertex, aligned with Vertices.
	Labels []string
}

// DefaultNCAA returns the standard NCAA field geometry.
func DefaultNCAA() Configuration {
	cfg := Configuration{
		Width:                      1920, // 53.33 yards
		Length:                     4320, // 120 yards
		EndZoneDepth:               360,  // 10 yards
		GoalLine1:                  360,
		GoalLine2:                  3960,
		HashDistanceFromSideline:   720, // 60 feet
		HashLength:                 24,
		YardLineInterval:           180, // 5 yards
		FiftyYardLine:              2160,
		NumberDistanceFromSideline: 324, // 9 yards

		Edges: [][2]int{
			// Sidelines (full length).
			{1, 3}, {2, 4},
			// End zone back lines.
			{1, 2}, {3, 4},
			// Goal lines.
			{5, 6}, {7, 8},
			// 50-yard line.
			{9, 10},
			// Corners to goal lines.
			{1, 5}, {2, 6}, {3, 7}, {4, 8},
			// Hash mark lines at goal lines and 50.
			{12, 13}, {14, 15}, {16, 17},
			// Left side yard line hash marks (20/30/40).
			{18, 19}, {20, 21}, {22, 23},
			// Right side yard line hash marks (60/70/80).
			{24, 25}, {26, 27}, {28, 29},
			// Goal lines to 50 along the sidelines.
			{5, 9}, {6, 10}, {9, 7}, {10, 8},
		},

		Labels: []string{
			"01", "02", "03", "04", "05", "06", "07", "08", "09", "10",
			"11", "12", "13", "14", "15", "16", "17", "18", "19", "20",
			"21", "22", "23", "24", "25", "26", "27", "28", "29", "30",
			"31", "32",
		},
	}
	cfg.Vertices = cfg.StandardVertices()
	return cfg
}

// StandardVertices derives the 32 reference points from the configuration's
// measurements. DefaultNCAA installs the result as Vertices; call it again
// after changing measurements by hand.
func (c Configuration) StandardVertices() []Point {
	return []Point{
		// Corners.
		{0, 0},                // 1 - back left of left end zone
		{0, c.Width},          // 2 - back right of left end zone
		{c.Length, 0},         // 3 - back left of right end zone
		{c.Length, c.Width},   // 4 - back right of right end zone

		// Goal lines.
		{c.GoalLine1, 0},       // 5
		{c.GoalLine1, c.Width}, // 6
		{c.GoalLine2, 0},       // 7
		{c.GoalLine2, c.Width}, // 8

		// 50-yard line.
		{c.FiftyYardLine, 0},           // 9
		{c.FiftyYardLine, c.Width},     // 10
		{c.FiftyYardLine, c.Width / 2}, // 11 - center of field

		// Hash marks at the goal lines and the 50.
		{c.GoalLine1, c.HashDistanceFromSideline},               // 12
		{c.GoalLine1, c.Width - c.HashDistanceFromSideline},     // 13
		{c.GoalLine2, c.HashDistanceFromSideline},               // 14
		{c.GoalLine2, c.Width - c.HashDistanceFromSideline},     // 15
		{c.FiftyYardLine, c.HashDistanceFromSideline},           // 16
		{c.FiftyYardLine, c.Width - c.HashDistanceFromSideline}, // 17

		// Hash intersections at the 20/30/40 yard lines.
		{c.GoalLine1 + c.YardLineInterval*2, c.HashDistanceFromSideline},           // 18
		{c.GoalLine1 + c.YardLineInterval*2, c.Width - c.HashDistanceFromSideline}, // 19
		{c.GoalLine1 + c.YardLineInterval*4, c.HashDistanceFromSideline},           // 20
		{c.GoalLine1 + c.YardLineInterval*4, c.Width - c.HashDistanceFromSideline}, // 21
		{c.GoalLine1 + c.YardLineInterval*6, c.HashDistanceFromSideline},           // 22
		{c.GoalLine1 + c.YardLineInterval*6, c.Width - c.HashDistanceFromSideline}, // 23

		// Mirrored intersections at the 60/70/80 yard lines.
		{c.GoalLine2 - c.YardLineInterval*6, c.HashDistanceFromSideline},           // 24
		{c.GoalLine2 - c.YardLineInterval*6, c.Width - c.HashDistanceFromSideline}, // 25
		{c.GoalLine2 - c.YardLineInterval*4, c.HashDistanceFromSideline},           // 26
		{c.GoalLine2 - c.YardLineInterval*4, c.Width - c.HashDistanceFromSideline}, // 27
		{c.GoalLine2 - c.YardLineInterval*2, c.HashDistanceFromSideline},           // 28
		{c.GoalLine2 - c.YardLineInterval*2, c.Width - c.HashDistanceFromSideline}, // 29

		// Number anchors for the major yard lines.
		{c.GoalLine1 + c.YardLineInterval*2, c.NumberDistanceFromSideline},           // 30
		{c.GoalLine1 + c.YardLineInterval*2, c.Width - c.NumberDistanceFromSideline}, // 31
		{c.FiftyYardLine, c.NumberDistanceFromSideline},                              // 32
	}
}
