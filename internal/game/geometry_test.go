package game

import "testing"

func TestNearBoundsAreInclusive(t *testing.T) {
	cases := []struct {
		name                   string
		center, spacing, value float64
		want                   bool
	}{
		{"inside", 10, 5, 12, true},
		{"lower edge", 10, 5, 5, true},
		{"upper edge", 10, 5, 15, true},
		{"below", 10, 5, 4.999, false},
		{"above", 10, 5, 15.001, false},
		{"zero spacing hit", 10, 0, 10, true},
		{"zero spacing miss", 10, 0, 10.001, false},
	}
	for _, c := range cases {
		if got := near(c.center, c.spacing, c.value); got != c.want {
			t.Errorf("%s: near(%g, %g, %g) = %v, want %v", c.name, c.center, c.spacing, c.value, got, c.want)
		}
	}
}

func TestWithinCaptureZone(t *testing.T) {
	p := NewPaddle(20) // box x [20,25], y [0,80]
	b := NewBall()     // radius 8

	// Horizontal capture spans [12, 33], vertical [-8, 88].
	b.X, b.Y = 22.5, 40
	if !within(b, p) {
		t.Error("Ball at paddle center should be within the capture zone")
	}

	b.X = 12
	if !within(b, p) {
		t.Error("Ball touching the expanded left edge should be within")
	}

	b.X = 11.9
	if within(b, p) {
		t.Error("Ball past the expanded left edge should not be within")
	}

	b.X, b.Y = 22.5, 88
	if !within(b, p) {
		t.Error("Ball touching the expanded bottom edge should be within")
	}

	b.Y = 88.1
	if within(b, p) {
		t.Error("Ball past the expanded bottom edge should not be within")
	}
}

func TestWithinIsPureAndSymmetricUnderRepeats(t *testing.T) {
	p := NewPaddle(20)
	b := NewBall()
	b.X, b.Y = 22.5, 40

	first := within(b, p)
	for i := 0; i < 10; i++ {
		if within(b, p) != first {
			t.Fatal("within changed its answer for identical inputs")
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(0, 220, 340); got != 220 {
		t.Errorf("clamp(0, 220, 340) = %g, want 220", got)
	}
	if got := clamp(0, 220, -15); got != 0 {
		t.Errorf("clamp(0, 220, -15) = %g, want 0", got)
	}
	if got := clamp(0, 220, 100); got != 100 {
		t.Errorf("clamp(0, 220, 100) = %g, want 100", got)
	}
}

func TestSanitizeDelta(t *testing.T) {
	if got := sanitizeDelta(16.7); got != 16.7 {
		t.Errorf("sanitizeDelta(16.7) = %g, want 16.7", got)
	}
	if got := sanitizeDelta(0); got != 0 {
		t.Errorf("sanitizeDelta(0) = %g, want 0", got)
	}
	if got := sanitizeDelta(-4); got != 0 {
		t.Errorf("sanitizeDelta(-4) = %g, want 0", got)
	}
	if got := sanitizeDelta(nan()); got != 0 {
		t.Errorf("sanitizeDelta(NaN) = %g, want 0", got)
	}
	if got := sanitizeDelta(inf()); got != 0 {
		t.Errorf("sanitizeDelta(+Inf) = %g, want 0", got)
	}
}
