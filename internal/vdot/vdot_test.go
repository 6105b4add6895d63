package vdot

import (
	"errors"
	"math"
	"testing"
)

// TestFromRace_TableRow verifies that a race time matching a table row
// returns that row's VDOT exactly.
func TestFromRace_TableRow(t *testing.T) {
	v, err := FromRace(Distance5K, 1140)
	if err != nil {
		t.Fatalf("FromRace: %v", err)
	}
	if v != 50 {
		t.Errorf("19:00 5K = VDOT %.1f, want 50", v)
	}
}

// TestFromRace_Interpolates verifies that a time between two rows lands
// strictly between their scores.
func TestFromRace_Interpolates(t *testing.T) {
	v, err := FromRace(Distance5K, 1150)
	if err != nil {
		t.Fatalf("FromRace: %v", err)
	}
	if v <= 49 || v >= 50 {
		t.Errorf("19:10 5K = VDOT %.1f, want between 49 and 50", v)
	}
}

// TestFromRace_ClampsToTable verifies results outside the table clamp to the
// boundary scores rather than extrapolating.
func TestFromRace_ClampsToTable(t *testing.T) {
	slow, err := FromRace(Distance5K, 3600)
	if err != nil {
		t.Fatalf("FromRace slow: %v", err)
	}
	if slow != MinVDOT {
		t.Errorf("very slow 5K = VDOT %.1f, want %.0f", slow, MinVDOT)
	}
	fast, err := FromRace(Distance5K, 600)
	if err != nil {
		t.Fatalf("FromRace fast: %v", err)
	}
	if fast != MaxVDOT {
		t.Errorf("very fast 5K = VDOT %.1f, want %.0f", fast, MaxVDOT)
	}
}

// TestFromRace_InvalidInput verifies zero and negative inputs error.
func TestFromRace_InvalidInput(t *testing.T) {
	if _, err := FromRace(0, 1200); err == nil {
		t.Error("zero distance should error")
	}
	if _, err := FromRace(Distance5K, -1); err == nil {
		t.Error("negative duration should error")
	}
}

// TestPredictTime_RoundTrip verifies FromRace and PredictTime agree on a
// table row.
func TestPredictTime_RoundTrip(t *testing.T) {
	secs, err := PredictTime(50, DistanceMarathon)
	if err != nil {
		t.Fatalf("PredictTime: %v", err)
	}
	if secs != 10494 {
		t.Errorf("VDOT 50 marathon = %ds, want 10494", secs)
	}
}

// TestPaces_OutOfRange verifies the range guard returns ErrOutOfRange.
func TestPaces_OutOfRange(t *testing.T) {
	for _, v := range []float64{29.9, 85.1, -5} {
		if _, err := Paces(v); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Paces(%.1f) error = %v, want ErrOutOfRange", v, err)
		}
	}
}

// TestPaces_ZoneOrdering verifies the physiological ordering of zones:
// recovery is the slowest pace and repetition the fastest, strictly
// monotonic in between.
func TestPaces_ZoneOrdering(t *testing.T) {
	zp, err := Paces(50)
	if err != nil {
		t.Fatalf("Paces: %v", err)
	}
	ordered := []struct {
		name string
		min  float64
	}{
		{"recovery", zp.Recovery.MinSecPerKm},
		{"easy", zp.Easy.MinSecPerKm},
		{"marathon", zp.Marathon.MinSecPerKm},
		{"threshold", zp.Threshold.MinSecPerKm},
		{"interval", zp.Interval.MinSecPerKm},
		{"repetition", zp.Repetition.MinSecPerKm},
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].min >= ordered[i-1].min {
			t.Errorf("%s (%.0f) should be faster than %s (%.0f)",
				ordered[i].name, ordered[i].min, ordered[i-1].name, ordered[i-1].min)
		}
	}
}

// TestPaces_BandWidth verifies each zone is a proper range with the faster
// bound in Min.
func TestPaces_BandWidth(t *testing.T) {
	zp, err := Paces(42)
	if err != nil {
		t.Fatalf("Paces: %v", err)
	}
	for _, z := range []string{"recovery", "easy", "marathon", "threshold", "interval", "repetition"} {
		pr, ok := zp.Zone(z)
		if !ok {
			t.Fatalf("Zone(%q) missing", z)
		}
		if pr.MinSecPerKm <= 0 || pr.MaxSecPerKm <= pr.MinSecPerKm {
			t.Errorf("zone %s has invalid range %+v", z, pr)
		}
	}
}

// TestPaces_FasterAthleteFasterZones verifies zone paces shift faster as
// VDOT rises.
func TestPaces_FasterAthleteFasterZones(t *testing.T) {
	lo, err := Paces(40)
	if err != nil {
		t.Fatalf("Paces(40): %v", err)
	}
	hi, err := Paces(60)
	if err != nil {
		t.Fatalf("Paces(60): %v", err)
	}
	if hi.Threshold.MinSecPerKm >= lo.Threshold.MinSecPerKm {
		t.Errorf("VDOT 60 threshold %.0f should be faster than VDOT 40 threshold %.0f",
			hi.Threshold.MinSecPerKm, lo.Threshold.MinSecPerKm)
	}
	if hi.Easy.MaxSecPerKm >= lo.Easy.MaxSecPerKm {
		t.Errorf("VDOT 60 easy %.0f should be faster than VDOT 40 easy %.0f",
			hi.Easy.MaxSecPerKm, lo.Easy.MaxSecPerKm)
	}
}

// TestZone_UnknownName verifies the named-zone accessor rejects unknown
// zone names.
func TestZone_UnknownName(t *testing.T) {
	zp, err := Paces(50)
	if err != nil {
		t.Fatalf("Paces: %v", err)
	}
	if _, ok := zp.Zone("sprint"); ok {
		t.Error("Zone(\"sprint\") should report false")
	}
}

// TestLactateThresholdVelocity verifies the derived velocity is plausible
// for a mid-pack runner (around 4.2-4.4 m/s at VDOT 50).
func TestLactateThresholdVelocity(t *testing.T) {
	v, err := LactateThresholdVelocity(50)
	if err != nil {
		t.Fatalf("LactateThresholdVelocity: %v", err)
	}
	if v < 3.9 || v > 4.6 {
		t.Errorf("threshold velocity %.2f m/s out of plausible range", v)
	}
}

// TestLabel verifies the fitness-level bands at their boundaries.
func TestLabel(t *testing.T) {
	cases := []struct {
		vdot float64
		want string
	}{
		{30, "Beginner"},
		{38, "Intermediate"},
		{45, "Advanced Recreational"},
		{55, "Competitive"},
		{65, "Highly Competitive"},
		{75, "Elite"},
	}
	for _, tc := range cases {
		if got := Label(tc.vdot); got != tc.want {
			t.Errorf("Label(%.0f) = %q, want %q", tc.vdot, got, tc.want)
		}
	}
}

// TestTableMonotonic verifies the lookup table itself: scores strictly
// increase and every race time strictly decreases.
func TestTableMonotonic(t *testing.T) {
	for i := 1; i < len(table); i++ {
		prev, cur := table[i-1], table[i]
		if cur.vdot <= prev.vdot {
			t.Fatalf("row %d: vdot %.0f not increasing", i, cur.vdot)
		}
		if cur.t5K >= prev.t5K || cur.t10K >= prev.t10K || cur.tHalf >= prev.tHalf || cur.tFull >= prev.tFull {
			t.Errorf("row %d (vdot %.0f): race times must strictly decrease", i, cur.vdot)
		}
	}
	if table[0].vdot != MinVDOT || table[len(table)-1].vdot != MaxVDOT {
		t.Errorf("table bounds %g-%g, want %g-%g", table[0].vdot, table[len(table)-1].vdot, MinVDOT, MaxVDOT)
	}
}

// TestTimeFor_IntermediateDistance verifies log-log interpolation between
// anchor distances produces a time between the anchors.
func TestTimeFor_IntermediateDistance(t *testing.T) {
	e := table[20] // VDOT 50
	got := e.timeFor(15000)
	if got <= e.t10K || got >= e.tHalf {
		t.Errorf("15K time %.0f should sit between 10K (%.0f) and half (%.0f)", got, e.t10K, e.tHalf)
	}
	if math.Abs(e.timeFor(Distance10K)-e.t10K) > 0.5 {
		t.Errorf("anchor distance should return the anchor time, got %.1f want %.0f", e.timeFor(Distance10K), e.t10K)
	}
}
