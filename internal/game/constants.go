package game

// Board and entity constants.
// These MUST match the renderer's canvas constants exactly; velocities are
// board units per millisecond of clock delta.

const (
	BoardWidth  = 500.0
	BoardHeight = 300.0

	BallRadius = 8.0
	BallSpeed  = 0.3

	PaddleWidth  = 5.0
	PaddleHeight = 80.0
	PaddleSpeed  = 0.4
	PaddleInset  = 20.0 // gap between a goal line and its paddle
)
