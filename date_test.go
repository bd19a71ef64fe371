package networth

import (
	"slices"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_IsBusinessDay(t *testing.T) {
	if D("2024-01-13").IsBusinessDay() { // Saturday
		t.Error("2024-01-13 is a Saturday, not a business day")
	}
	if D("2024-01-14").IsBusinessDay() { // Sunday
		t.Error("2024-01-14 is a Sunday, not a business day")
	}
	if !D("2024-01-15").IsBusinessDay() { // Monday
		t.Error("2024-01-15 is a Monday, a business day")
	}
}

func TestDate_Sub(t *testing.T) {
	if got := D("2024-01-31").Sub(D("2024-01-01")); got != 30 {
		t.Errorf("Sub = %d, want 30", got)
	}
	if got := D("2024-01-01").Sub(D("2024-01-31")); got != -30 {
		t.Errorf("Sub = %d, want -30", got)
	}
}

func TestRange_BusinessDays(t *testing.T) {
	r := NewRange(D("2024-01-12"), D("2024-01-16")) // Fri..Tue
	var got []Date
	for on := range r.BusinessDays() {
		got = append(got, on)
	}
	want := []Date{D("2024-01-12"), D("2024-01-15"), D("2024-01-16")}
	if !slices.Equal(got, want) {
		t.Errorf("BusinessDays = %v, want %v", got, want)
	}
}

func TestNewRange_Swaps(t *testing.T) {
	r := NewRange(D("2024-02-01"), D("2024-01-01"))
	if r.From != D("2024-01-01") || r.To != D("2024-02-01") {
		t.Errorf("NewRange did not normalize order: %v", r)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(D("2024-01-10"), 100)
	h.Append(D("2024-01-20"), 200)

	testCases := []struct {
		name   string
		on     string
		want   float64
		wantOK bool
	}{
		{name: "before first", on: "2024-01-09", wantOK: false},
		{name: "exact first", on: "2024-01-10", want: 100, wantOK: true},
		{name: "between", on: "2024-01-15", want: 100, wantOK: true},
		{name: "exact second", on: "2024-01-20", want: 200, wantOK: true},
		{name: "after last", on: "2024-02-01", want: 200, wantOK: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(D(tc.on))
			if ok != tc.wantOK || (ok && got != tc.want) {
				t.Errorf("ValueAsOf(%s) = %v, %v; want %v, %v", tc.on, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestHistory_AppendOverwrites(t *testing.T) {
	var h History[float64]
	h.Append(D("2024-01-10"), 100)
	h.Append(D("2024-01-10"), 150)
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if got, _ := h.Get(D("2024-01-10")); got != 150 {
		t.Errorf("Get = %v, want 150", got)
	}
}
