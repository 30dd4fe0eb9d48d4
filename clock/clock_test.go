package clock

import (
	"math"
	"math/rand"
	"testing"
)

func advanceAll(c *Clock, times []int64) []int {
	out := make([]int, 0, len(times))
	for _, ts := range times {
		out = append(out, c.Advance(ts, nil))
	}
	return out
}

func TestAdvanceSequences(t *testing.T) {
	cases := []struct {
		name      string
		times     []int64
		wantSteps []int
		wantAcc   float64
	}{
		{
			name:      "first_call_is_baseline",
			times:     []int64{123456},
			wantSteps: []int{0},
			wantAcc:   0,
		},
		{
			name:      "sixty_hz_exact",
			times:     []int64{0, 16, 33, 50},
			wantSteps: []int{0, 0, 1, 1},
			wantAcc:   0.050 - 2.0/60.0,
		},
		{
			name:      "sixty_hz_short",
			times:     []int64{0, 16, 33, 49},
			wantSteps: []int{0, 0, 1, 1},
			wantAcc:   0.049 - 2.0/60.0,
		},
		{
			name:      "clamped_stall",
			times:     []int64{0, 10000},
			wantSteps: []int{0, 15},
			wantAcc:   0,
		},
		{
			name:      "clamped_stall_with_leftover",
			times:     []int64{0, 16, 5000},
			wantSteps: []int{0, 0, 15},
			wantAcc:   0.016 + 0.25 - 15.0/60.0,
		},
		{
			name:      "backwards_is_zero_delta",
			times:     []int64{1000, 1016, 900, 916},
			wantSteps: []int{0, 0, 0, 1},
			wantAcc:   0.032 - 1.0/60.0,
		},
		{
			name:      "repeated_timestamp",
			times:     []int64{0, 0, 0, 17},
			wantSteps: []int{0, 0, 0, 1},
			wantAcc:   0.017 - 1.0/60.0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clk := New(60, 250)
			got := advanceAll(clk, c.times)
			if len(got) != len(c.wantSteps) {
				t.Fatalf("expected %d results, got %d", len(c.wantSteps), len(got))
			}
			for i := range got {
				if got[i] != c.wantSteps[i] {
					t.Fatalf("call %d: expected %d steps, got %d (all=%v)", i, c.wantSteps[i], got[i], got)
				}
			}
			if math.Abs(clk.Accumulator()-c.wantAcc) > 1e-6 {
				t.Fatalf("expected accumulator %.6f, got %.6f", c.wantAcc, clk.Accumulator())
			}
			if clk.Accumulator() < 0 || clk.Accumulator() >= clk.Step() {
				t.Fatalf("accumulator %.6f outside [0, step)", clk.Accumulator())
			}
		})
	}
}

func TestAdvanceInvokesStepWithFixedDt(t *testing.T) {
	clk := New(60, 250)
	var dts []float64
	clk.Advance(0, nil)
	n := clk.Advance(100, func(dt float64) { dts = append(dts, dt) })
	if n != 6 || len(dts) != 6 {
		t.Fatalf("expected 6 steps and callbacks, got %d / %d", n, len(dts))
	}
	for _, dt := range dts {
		if dt != clk.Step() || math.Abs(dt-1.0/60.0) > 1e-7 {
			t.Fatalf("expected dt 1/60, got %v", dt)
		}
	}
}

func TestStepCountMatchesElapsedTime(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, hz := range []int{30, 60, 120} {
		clk := New(hz, 250)
		var now int64 = 5000
		clk.Advance(now, nil)
		total := 0
		for i := 0; i < 5000; i++ {
			now += rng.Int63n(60)
			total += clk.Advance(now, nil)
		}
		elapsed := float64(now-5000) / 1000.0
		want := int(math.Floor(elapsed * float64(hz)))
		if total < want-1 || total > want+1 {
			t.Fatalf("hz=%d: expected %d±1 steps for %.3fs, got %d", hz, want, elapsed, total)
		}
		if clk.Steps() != int64(total) {
			t.Fatalf("hz=%d: Steps()=%d, summed=%d", hz, clk.Steps(), total)
		}
	}
}

func TestClampNeverExceedsMaxSteps(t *testing.T) {
	clk := New(60, 250)
	maxSteps := int(math.Floor(0.25 * 60))
	var now int64
	clk.Advance(now, nil)
	for _, gap := range []int64{16, 251, 1000, 7, 60000, 249, 250} {
		now += gap
		if n := clk.Advance(now, nil); n > maxSteps {
			t.Fatalf("gap %dms produced %d steps, max %d", gap, n, maxSteps)
		}
	}
}

func TestResetAndDefaults(t *testing.T) {
	clk := New(0, 0)
	if math.Abs(clk.Step()-1.0/60.0) > 1e-7 {
		t.Fatalf("expected default 60Hz step, got %v", clk.Step())
	}
	if clk.StepsFor(2.0) != 120 {
		t.Fatalf("expected 120 steps per 2s, got %d", clk.StepsFor(2.0))
	}
	clk.Advance(0, nil)
	clk.Advance(40, nil)
	if !clk.Started() || clk.Steps() != 2 {
		t.Fatalf("expected started clock with 2 steps, got %v/%d", clk.Started(), clk.Steps())
	}
	clk.Reset()
	if clk.Started() || clk.Steps() != 0 || clk.Accumulator() != 0 {
		t.Fatalf("reset did not clear state")
	}
	if n := clk.Advance(99999, nil); n != 0 {
		t.Fatalf("first call after reset should be baseline, got %d steps", n)
	}

	var nilClock *Clock
	if nilClock.Advance(10, nil) != 0 || nilClock.Accumulator() != 0 || nilClock.StepsFor(2.0) != 120 {
		t.Fatalf("nil clock should be inert")
	}
}
