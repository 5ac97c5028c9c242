package game

// Paddle is one of the two simulated paddles. Position is the top-left
// corner; only Y varies after creation.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewPaddle returns a paddle docked at the top rail at the given x.
func NewPaddle(x float64) Paddle {
	return Paddle{
		X:      x,
		Y:      0,
		VX:     PaddleSpeed,
		VY:     PaddleSpeed,
		Width:  PaddleWidth,
		Height: PaddleHeight,
	}
}

// StepPaddle advances the paddle by delta milliseconds and returns the next
// paddle. The paddle drives on its own vy and pins at the board edge; the
// clamp never reverses vy, so without an outside system flipping it the
// paddle stays pinned. All other fields pass through unchanged.
func StepPaddle(delta float64, p Paddle) Paddle {
	p.Y = clamp(0, BoardHeight-p.Height, p.Y+p.VY*sanitizeDelta(delta))
	return p
}
