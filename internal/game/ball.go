package game

import "math"

// Ball is the simulated ball. Position is the circle center; velocity is in
// board units per millisecond.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
}

// NewBall returns the ball centered on the board with its serve velocity.
func NewBall() Ball {
	return Ball{
		X:      BoardWidth / 2,
		Y:      BoardHeight / 2,
		VX:     BallSpeed,
		VY:     BallSpeed,
		Radius: BallRadius,
	}
}

// StepBall advances the ball by delta milliseconds against both paddles and
// returns the next ball. Inputs are never mutated.
//
// A ball past either goal line recenters immediately; velocity and radius
// carry over unchanged, so a reset alters position only. Otherwise paddle
// capture forces vx back toward play and wall contact forces vy away from the
// wall, sign flips only with the magnitude untouched, and the position
// integrates with the post-collision velocity within the same tick.
func StepBall(delta float64, b Ball, left, right Paddle) Ball {
	delta = sanitizeDelta(delta)

	if b.X < -b.Radius || b.X > BoardWidth+b.Radius {
		b.X = BoardWidth / 2
		b.Y = BoardHeight / 2
		return b
	}

	// Left paddle wins the degenerate case where both capture zones overlap.
	switch {
	case within(b, left):
		b.VX = math.Abs(b.VX)
	case within(b, right):
		b.VX = -math.Abs(b.VX)
	}

	// Top wall wins ties.
	switch {
	case b.Y <= b.Radius:
		b.VY = math.Abs(b.VY)
	case b.Y >= BoardHeight-b.Radius:
		b.VY = -math.Abs(b.VY)
	}

	b.X += b.VX * delta
	b.Y += b.VY * delta
	return b
}
