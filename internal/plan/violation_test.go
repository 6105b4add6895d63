package plan

import "testing"

// TestSeverityFor_Boundaries verifies the inclusive severity boundaries:
// a deviation of exactly 5 is still low, exactly 10 medium, exactly 15 high,
// and anything beyond is critical.
func TestSeverityFor_Boundaries(t *testing.T) {
	cases := []struct {
		difference float64
		want       Severity
	}{
		{0, SeverityLow},
		{4.9, SeverityLow},
		{5, SeverityLow},
		{5.1, SeverityMedium},
		{10, SeverityMedium},
		{10.1, SeverityHigh},
		{15, SeverityHigh},
		{16, SeverityCritical},
		{30, SeverityCritical},
	}
	for _, tc := range cases {
		if got := SeverityFor(tc.difference); got != tc.want {
			t.Errorf("SeverityFor(%.1f) = %s, want %s", tc.difference, got, tc.want)
		}
	}
}

// TestSeverityFor_NegativeDifference verifies that classification uses the
// absolute deviation, so signed differences grade identically.
func TestSeverityFor_NegativeDifference(t *testing.T) {
	if got := SeverityFor(-12); got != SeverityHigh {
		t.Errorf("SeverityFor(-12) = %s, want %s", got, SeverityHigh)
	}
}

// TestSeverityRank verifies that Rank orders severities for
// most-severe-first sorting.
func TestSeverityRank(t *testing.T) {
	order := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("%s should rank above %s", order[i], order[i-1])
		}
	}
}

// TestIntensityDistribution_IsComplete verifies the sum-to-100 invariant
// with its ±1 rounding slack.
func TestIntensityDistribution_IsComplete(t *testing.T) {
	cases := []struct {
		d    IntensityDistribution
		want bool
	}{
		{IntensityDistribution{Easy: 80, Moderate: 10, Hard: 10}, true},
		{IntensityDistribution{Easy: 79.5, Moderate: 10, Hard: 10}, true},
		{IntensityDistribution{Easy: 80, Moderate: 10, Hard: 8}, false},
		{IntensityDistribution{}, false},
	}
	for _, tc := range cases {
		if got := tc.d.IsComplete(); got != tc.want {
			t.Errorf("IsComplete(%+v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}
