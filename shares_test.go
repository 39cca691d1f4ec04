package mosaic

import "testing"

// --- Shares map ---

func TestSharesDefaultToOne(t *testing.T) {
	var s Shares
	if got := s.Of(1); got != 1 {
		t.Errorf("nil Shares.Of = %v, want 1", got)
	}
	s.Set(1, 2.5)
	if got := s.Of(1); got != 2.5 {
		t.Errorf("Of after Set = %v, want 2.5", got)
	}
	if got := s.Of(2); got != 1 {
		t.Errorf("Of(unset) = %v, want 1", got)
	}
}

func TestSharesReplaceWith(t *testing.T) {
	s := Shares{1: 3}
	s.ReplaceWith(1, 2)
	if got := s.Of(2); got != 3 {
		t.Errorf("share not transferred: Of(2) = %v, want 3", got)
	}
	if _, ok := s[1]; ok {
		t.Error("old entry should be gone")
	}
	// No entry for old: nothing happens, new keeps its default.
	s.ReplaceWith(7, 8)
	if _, ok := s[8]; ok {
		t.Error("ReplaceWith of an unset id should not create an entry")
	}
}

func TestSharesRetainAndSum(t *testing.T) {
	s := Shares{1: 1, 2: 2, 3: 3}
	s.Retain(func(id TileID) bool { return id != 2 })
	if got := s.Sum(); got != 4 {
		t.Errorf("Sum after Retain = %v, want 4", got)
	}
}

// --- Proportional splitting ---

func assertExtents(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("extents = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("extents = %v, want %v", got, want)
		}
	}
}

func TestSplitSharesProportional(t *testing.T) {
	got := splitShares(400, []float64{1, 1, 2}, 0)
	assertExtents(t, got, []float64{100, 100, 200})
}

func TestSplitSharesSumIsExact(t *testing.T) {
	got := splitShares(100, []float64{1, 1, 1}, 10)
	var sum float64
	for _, e := range got {
		sum += e
	}
	if sum != 100 {
		t.Errorf("extents sum to %v, want exactly 100", sum)
	}
}

func TestSplitSharesEqualFallback(t *testing.T) {
	// Five children at min 32 need 160; only 100 available, so weights are
	// ignored and everyone gets an equal slice.
	got := splitShares(100, []float64{1, 1, 1, 1, 9}, 32)
	assertExtents(t, got, []float64{20, 20, 20, 20, 20})
}

func TestSplitSharesPinsAtMinimum(t *testing.T) {
	// Proportional would give [10, 10, 80]; the first two are pinned at 20
	// and the heavy child absorbs what is left.
	got := splitShares(100, []float64{1, 1, 8}, 20)
	assertExtents(t, got, []float64{20, 20, 60})
}

func TestSplitSharesZeroWeights(t *testing.T) {
	got := splitShares(90, []float64{0, 0, 0}, 10)
	assertExtents(t, got, []float64{30, 30, 30})
}

func TestSplitSharesEdgeInputs(t *testing.T) {
	if got := splitShares(100, nil, 0); got != nil {
		t.Errorf("no weights should give nil, got %v", got)
	}
	got := splitShares(-50, []float64{1, 1}, 0)
	assertExtents(t, got, []float64{0, 0})
}

// --- Shrinking for resize ---

func approxEq(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestShrinkSharesTakesFromFront(t *testing.T) {
	shares := Shares{}
	children := []TileID{1, 2}
	extent := func(TileID) float64 { return 100 }

	// 50px at 0.01 shares per pixel: the first child alone covers it.
	taken := shrinkShares(&shares, children, 50, 40, extent)
	if !approxEq(taken, 0.5) {
		t.Errorf("taken = %v, want 0.5", taken)
	}
	if got := shares.Of(1); !approxEq(got, 0.5) {
		t.Errorf("first child share = %v, want 0.5", got)
	}
	if got := shares.Of(2); got != 1 {
		t.Errorf("second child share = %v, want untouched 1", got)
	}
}

func TestShrinkSharesRespectsMinimum(t *testing.T) {
	shares := Shares{}
	children := []TileID{1, 2}
	extent := func(TileID) float64 { return 100 }

	// Asking for more than both children can spare stops at the minimum.
	taken := shrinkShares(&shares, children, 150, 40, extent)
	if !approxEq(taken, 1.2) {
		t.Errorf("taken = %v, want 1.2", taken)
	}
	if got := shares.Of(1); !approxEq(got, 0.4) {
		t.Errorf("first child share = %v, want min 0.4", got)
	}
	if got := shares.Of(2); !approxEq(got, 0.4) {
		t.Errorf("second child share = %v, want min 0.4", got)
	}
}

func TestShrinkSharesNoTarget(t *testing.T) {
	shares := Shares{1: 2}
	if taken := shrinkShares(&shares, []TileID{1}, 0, 10, func(TileID) float64 { return 50 }); taken != 0 {
		t.Errorf("taken = %v, want 0", taken)
	}
	if got := shares.Of(1); got != 2 {
		t.Errorf("share changed to %v on a zero-target shrink", got)
	}
}
