package networth

import (
	"math"
	"testing"
)

func identicalPair() []NormalizedPoint {
	return points(
		USD("2024-01-01", "X", 100),
		USD("2024-01-02", "X", 102),
		USD("2024-01-03", "X", 101),
		USD("2024-01-04", "X", 104),
		USD("2024-01-01", "Y", 200),
		USD("2024-01-02", "Y", 204),
		USD("2024-01-03", "Y", 202),
		USD("2024-01-04", "Y", 208),
	)
}

func TestNewCorrelationMatrix_Identical(t *testing.T) {
	m := NewCorrelationMatrix(identicalPair(), []string{"X", "Y"}, D("2024-01-01"), D("2024-01-04"))
	if m == nil {
		t.Fatal("matrix is nil")
	}
	// Y is X scaled by 2: identical return series, perfect correlation
	c, ok := m.Corr("X", "Y")
	if !ok || !near(c, 1) {
		t.Errorf("Corr(X,Y) = %v, %v; want 1", c, ok)
	}
}

func TestNewCorrelationMatrix_SymmetryAndDiagonal(t *testing.T) {
	pts := append(identicalPair(), points(
		USD("2024-01-01", "Z", 50),
		USD("2024-01-02", "Z", 49),
		USD("2024-01-03", "Z", 51),
		USD("2024-01-04", "Z", 50),
	)...)
	m := NewCorrelationMatrix(pts, []string{"X", "Y", "Z"}, D("2024-01-01"), D("2024-01-04"))
	if m == nil {
		t.Fatal("matrix is nil")
	}
	for i := 0; i < m.Len(); i++ {
		if !near(m.At(i, i), 1) {
			t.Errorf("diagonal [%d][%d] = %v, want 1", i, i, m.At(i, i))
		}
		for j := 0; j < m.Len(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("matrix not symmetric at [%d][%d]", i, j)
			}
		}
	}
}

func TestNewCorrelationMatrix_InsufficientData(t *testing.T) {
	pts := points(
		USD("2024-01-01", "X", 100),
		USD("2024-01-02", "X", 102),
	)
	if m := NewCorrelationMatrix(pts, []string{"X"}, D("2024-01-01"), D("2024-01-02")); m != nil {
		t.Errorf("single account should yield nil, got %v", m)
	}
}

func TestDiversificationScore_Bounds(t *testing.T) {
	m := NewCorrelationMatrix(identicalPair(), []string{"X", "Y"}, D("2024-01-01"), D("2024-01-04"))
	// perfectly correlated pair: (1-1)*50 = 0
	if got := DiversificationScore(m, nil); !near(got, 0) {
		t.Errorf("score of a perfectly correlated pair = %v, want 0", got)
	}
	// degenerate matrix
	if got := DiversificationScore(nil, nil); got != 0 {
		t.Errorf("score of nil matrix = %v, want 0", got)
	}
}

func TestHighlyCorrelatedPairs(t *testing.T) {
	m := NewCorrelationMatrix(identicalPair(), []string{"X", "Y"}, D("2024-01-01"), D("2024-01-04"))
	pairs := HighlyCorrelatedPairs(m, 0.7)
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	if pairs[0].A != "X" || pairs[0].B != "Y" || !near(pairs[0].Correlation, 1) {
		t.Errorf("pair = %+v", pairs[0])
	}
	if low := UncorrelatedPairs(m, 0.3); len(low) != 0 {
		t.Errorf("uncorrelated pairs = %v, want none", low)
	}
}

func TestRollingCorrelation(t *testing.T) {
	pts := identicalPair()
	out := RollingCorrelation(pts, "X", "Y", 2, D("2024-01-01"), D("2024-01-04"))
	if len(out) == 0 {
		t.Fatal("no rolling points")
	}
	for _, p := range out {
		if math.IsNaN(p.Correlation) || !near(p.Correlation, 1) {
			t.Errorf("rolling corr on %s = %v, want 1", p.Date, p.Correlation)
		}
	}
}

func TestRollingCorrelation_BadWindow(t *testing.T) {
	pts := identicalPair()
	for _, window := range []int{0, -1, -21} {
		if out := RollingCorrelation(pts, "X", "Y", window, D("2024-01-01"), D("2024-01-04")); out != nil {
			t.Errorf("window %d: got %d points, want nil", window, len(out))
		}
	}
}
