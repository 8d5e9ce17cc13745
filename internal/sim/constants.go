package sim

// Field and gameplay constants. The simulation runs in field units: the
// play-field is FieldWidth×FieldHeight with y growing downward. These are
// fixed by design; platforms scale the field, they never change it.
const (
	FieldWidth  = 400
	FieldHeight = 600

	ObstacleWidth = 70  // Width of both rectangles of a pair
	GapHeight     = 150 // Vertical opening between top and bottom rectangles
	ScrollSpeed   = 2   // Leftward obstacle movement per tick
	SpawnSpacing  = 200 // Horizontal interval between pairs at reset
	ObstacleCount = 3   // Pairs held at all times

	// Inclusive range for a pair's randomized top rectangle height.
	MinTopHeight = 100
	MaxTopHeight = 400

	Gravity      = 0.3  // Added to vertical velocity every tick
	JumpStrength = -6.0 // Vertical velocity set by a jump (negative = up)

	StartX          = 75 // Fixed horizontal center of the character
	CharacterWidth  = 34
	CharacterHeight = 24
)
