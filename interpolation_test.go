package imui

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assertNear(t, "Linear", Linear{}.Progress(tt.in), tt.want)
	}
}

func TestEaseOut(t *testing.T) {
	e := EaseOut{Factor: 10}
	assertNear(t, "f(0)", e.Progress(0), 0)
	assertNear(t, "f(-1)", e.Progress(-1), 0)
	if got := e.Progress(math.NaN()); got != 0 {
		t.Errorf("f(NaN) = %v, want 0", got)
	}

	prev := 0.0
	for r := 0.05; r <= 3; r += 0.05 {
		got := e.Progress(r)
		if got <= prev {
			t.Fatalf("f(%v) = %v, not above f(previous) = %v", r, got, prev)
		}
		if got >= 1 {
			t.Fatalf("f(%v) = %v, want < 1", r, got)
		}
		prev = got
	}
	if got := e.Progress(100); math.Abs(got-1) > 1e-12 {
		t.Errorf("f(100) = %v, want ~1", got)
	}
}

func TestEaseOutZeroFactorUsesDefault(t *testing.T) {
	assertNear(t, "zero value", EaseOut{}.Progress(0.3), EaseOut{Factor: DefaultEaseOutFactor}.Progress(0.3))
}

func TestEased(t *testing.T) {
	lin := Eased{Func: ease.Linear}
	assertNear(t, "linear 0.25", lin.Progress(0.25), 0.25)
	assertNear(t, "linear clamps high", lin.Progress(2), 1)
	assertNear(t, "linear clamps low", lin.Progress(-2), 0)

	quad := Eased{Func: ease.InQuad}
	if got := quad.Progress(0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("InQuad(0.5) = %v, want 0.25", got)
	}

	assertNear(t, "nil func", Eased{}.Progress(0.4), 0.4)
}

func TestReversed(t *testing.T) {
	r := Reverse(Linear{})
	assertNear(t, "f(0)", r.Progress(0), 1)
	assertNear(t, "f(0.25)", r.Progress(0.25), 0.75)
	assertNear(t, "f(1)", r.Progress(1), 0)
}

func TestRepeated(t *testing.T) {
	r := Repeat(Linear{})
	assertNear(t, "f(1.25) == f(0.25)", r.Progress(1.25), r.Progress(0.25))
	assertNear(t, "f(-0.25) == f(0.75)", r.Progress(-0.25), r.Progress(0.75))
	assertNear(t, "f(3.5)", r.Progress(3.5), 0.5)
}

func TestAlternateRepeated(t *testing.T) {
	r := AlternateRepeat(Linear{})
	tests := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{1, 1},
		{1.25, 0.75},
		{2.25, 0.25},
		{-0.25, 0.25},
	}
	for _, tt := range tests {
		assertNear(t, "AlternateRepeat", r.Progress(tt.in), tt.want)
	}
}

func TestRatio(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	tests := []struct {
		name     string
		now      time.Time
		duration time.Duration
		want     float64
	}{
		{"before", start.Add(-time.Second), 2 * time.Second, -0.5},
		{"at start", start, 2 * time.Second, 0},
		{"halfway", start.Add(time.Second), 2 * time.Second, 0.5},
		{"after", start.Add(4 * time.Second), 2 * time.Second, 2},
		{"zero duration before", start.Add(-time.Nanosecond), 0, 0},
		{"zero duration at start", start, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "Ratio", Ratio(tt.now, start, tt.duration), tt.want)
		})
	}
}

func TestRatioKeepsPrecisionFarFromOrigin(t *testing.T) {
	start := time.Unix(0, 0)
	now := start.Add(500 * time.Hour).Add(time.Millisecond)
	got := Ratio(now, start.Add(500*time.Hour), 2*time.Millisecond)
	assertNear(t, "Ratio", got, 0.5)
}

func TestSample(t *testing.T) {
	start := time.Unix(100, 0)
	got := Sample(Linear{}, start.Add(250*time.Millisecond), start, time.Second)
	assertNear(t, "Sample", got, 0.25)
}
