package game

// State is one simulation snapshot. Each tick consumes a snapshot and
// produces a brand-new one; nothing is mutated in place, so a renderer can
// hold a snapshot across ticks without locking.
type State struct {
	Ball        Ball   `json:"ball"`
	PaddleLeft  Paddle `json:"paddle_left"`
	PaddleRight Paddle `json:"paddle_right"`
}

// NewState returns the initial layout: ball centered, both paddles docked at
// the top rail inset from their goal lines.
func NewState() State {
	return State{
		Ball:        NewBall(),
		PaddleLeft:  NewPaddle(PaddleInset),
		PaddleRight: NewPaddle(BoardWidth - PaddleInset - PaddleWidth),
	}
}

// Step produces the next snapshot from the previous one. All three sub-steps
// read the pre-tick snapshot; the freshly computed ball never feeds back into
// the paddle steps.
func Step(delta float64, s State) State {
	return State{
		Ball:        StepBall(delta, s.Ball, s.PaddleLeft, s.PaddleRight),
		PaddleLeft:  StepPaddle(delta, s.PaddleLeft),
		PaddleRight: StepPaddle(delta, s.PaddleRight),
	}
}
