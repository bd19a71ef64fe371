package networth

import "testing"

func TestAlign_Anchor(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100), // Monday
		USD("2024-01-31", "ETF", 110),
	)
	s := Align(pts, "ETF", D("2024-01-01"), D("2024-01-31"))
	if s == nil {
		t.Fatal("Align returned nil with a valid anchor")
	}
	if _, first := s.First(); first != 100 {
		t.Errorf("first value = %v, want the anchor 100", first)
	}
	if _, last := s.Last(); last != 110 {
		t.Errorf("last value = %v, want 110", last)
	}
	// 23 business days in January 2024
	if s.Len() != 23 {
		t.Errorf("Len = %d, want 23 business days", s.Len())
	}
}

func TestAlign_NoAnchor(t *testing.T) {
	pts := points(USD("2024-02-15", "ETF", 100))
	if s := Align(pts, "ETF", D("2024-01-01"), D("2024-01-31")); s != nil {
		t.Errorf("Align with no record at or before start should be nil, got %v", s)
	}
}

func TestAlign_ForwardFill(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100),
		USD("2024-01-10", "ETF", 120),
	)
	s := Align(pts, "ETF", D("2024-01-01"), D("2024-01-12"))
	testCases := []struct {
		on   string
		want float64
	}{
		{on: "2024-01-02", want: 100}, // filled from the 1st
		{on: "2024-01-09", want: 100},
		{on: "2024-01-10", want: 120},
		{on: "2024-01-12", want: 120}, // filled from the 10th
	}
	for _, tc := range testCases {
		got, ok := s.Get(D(tc.on))
		if !ok || got != tc.want {
			t.Errorf("value on %s = %v, %v; want %v", tc.on, got, ok, tc.want)
		}
	}
}

func TestAlign_FillIdempotence(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100),
		USD("2024-01-10", "ETF", 120),
		USD("2024-01-25", "ETF", 90),
	)
	full := Align(pts, "ETF", D("2024-01-01"), D("2024-01-31"))
	mid := D("2024-01-16")
	short := Align(pts, "ETF", D("2024-01-01"), mid)
	truncated := full.Truncate(mid)

	if short.Len() != truncated.Len() {
		t.Fatalf("lengths differ: %d vs %d", short.Len(), truncated.Len())
	}
	for i := 0; i < short.Len(); i++ {
		d1, v1 := short.At(i)
		d2, v2 := truncated.At(i)
		if d1 != d2 || v1 != v2 {
			t.Errorf("at %d: %v=%v vs %v=%v", i, d1, v1, d2, v2)
		}
	}
}

func TestAlignTotal_ExcludesUnanchored(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100),
		USD("2024-01-15", "Late", 50), // no value at the window start
	)
	s := AlignTotal(pts, D("2024-01-01"), D("2024-01-31"))
	if _, first := s.First(); first != 100 {
		t.Errorf("first total = %v, want 100: unanchored accounts must not default to zero", first)
	}
}
