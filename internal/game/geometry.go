package game

import "math"

// near reports whether value lies within spacing of center, bounds inclusive.
func near(center, spacing, value float64) bool {
	return value >= center-spacing && value <= center+spacing
}

// within reports whether the ball's center is inside the paddle's rectangle
// expanded by the ball radius on both axes. This is a Minkowski-sum point
// test: a plain hit/no-hit with no penetration depth or contact normal.
func within(b Ball, p Paddle) bool {
	return near(p.X+p.Width/2, p.Width/2+b.Radius, b.X) &&
		near(p.Y+p.Height/2, p.Height/2+b.Radius, b.Y)
}

// clamp constrains v to the closed interval [lo, hi].
func clamp(lo, hi, v float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// sanitizeDelta guards against adversarial clock input: negative deltas clamp
// to zero and non-finite deltas integrate nothing. Collision and reset checks
// are position-based, so they still run on a zero delta.
func sanitizeDelta(delta float64) float64 {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return 0
	}
	return delta
}
