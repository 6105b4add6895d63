// Package vdot implements the Daniels VDOT fitness model: deriving a VDOT
// score from a race result, predicting equivalent race times, and computing
// per-zone training pace ranges from a single VDOT foundation value.
package vdot

import (
	"errors"
	"fmt"
	"math"

	"github.com/claude/stride/internal/plan"
)

// Valid VDOT range covered by the lookup table.
const (
	MinVDOT = 30.0
	MaxVDOT = 85.0
)

// ErrOutOfRange is returned when a VDOT score falls outside [MinVDOT, MaxVDOT].
var ErrOutOfRange = errors.New("vdot out of range")

// ZonePaces holds the training pace range for each canonical Daniels zone,
// all derived from one VDOT score.
type ZonePaces struct {
	Recovery   plan.PaceRange `json:"recovery" yaml:"recovery"`
	Easy       plan.PaceRange `json:"easy" yaml:"easy"`
	Marathon   plan.PaceRange `json:"marathon" yaml:"marathon"`
	Threshold  plan.PaceRange `json:"threshold" yaml:"threshold"`
	Interval   plan.PaceRange `json:"interval" yaml:"interval"`
	Repetition plan.PaceRange `json:"repetition" yaml:"repetition"`
}

// Zone returns the pace range for a named zone.
func (z ZonePaces) Zone(name string) (plan.PaceRange, bool) {
	switch name {
	case "recovery":
		return z.Recovery, true
	case "easy":
		return z.Easy, true
	case "marathon":
		return z.Marathon, true
	case "threshold":
		return z.Threshold, true
	case "interval":
		return z.Interval, true
	case "repetition":
		return z.Repetition, true
	default:
		return plan.PaceRange{}, false
	}
}

// FromRace derives a VDOT score from a race result by binary search over the
// lookup table with linear interpolation between bracketing rows.
func FromRace(distanceMeters float64, durationSeconds int) (float64, error) {
	if distanceMeters <= 0 || durationSeconds <= 0 {
		return 0, fmt.Errorf("invalid race result: %.0fm in %ds", distanceMeters, durationSeconds)
	}
	duration := float64(durationSeconds)

	low, high := 0, len(table)-1
	if duration >= table[0].timeFor(distanceMeters) {
		return table[0].vdot, nil
	}
	if duration <= table[high].timeFor(distanceMeters) {
		return table[high].vdot, nil
	}
	for high-low > 1 {
		mid := (low + high) / 2
		if duration <= table[mid].timeFor(distanceMeters) {
			low = mid
		} else {
			high = mid
		}
	}

	lowTime := table[low].timeFor(distanceMeters)
	highTime := table[high].timeFor(distanceMeters)
	if lowTime == highTime {
		return table[low].vdot, nil
	}
	fraction := (lowTime - duration) / (lowTime - highTime)
	v := table[low].vdot + fraction*(table[high].vdot-table[low].vdot)
	return math.Round(v*10) / 10, nil
}

// PredictTime predicts the race time in seconds for a target distance at the
// given VDOT.
func PredictTime(vdot, distanceMeters float64) (int, error) {
	if vdot < MinVDOT || vdot > MaxVDOT {
		return 0, fmt.Errorf("%w: %.1f (valid %g-%g)", ErrOutOfRange, vdot, MinVDOT, MaxVDOT)
	}
	low, high := bracket(vdot)
	if low == high {
		return int(math.Round(table[low].timeFor(distanceMeters))), nil
	}
	fraction := (vdot - table[low].vdot) / (table[high].vdot - table[low].vdot)
	lowTime := table[low].timeFor(distanceMeters)
	highTime := table[high].timeFor(distanceMeters)
	return int(math.Round(lowTime + fraction*(highTime-lowTime))), nil
}

// Pace-derivation constants. Threshold pace sits just under half-marathon
// race pace; easy and recovery are expressed relative to marathon pace;
// repetition is a touch faster than 5K (interval) pace.
const (
	thresholdFromHalf = 0.97
	easyFromMarathon  = 1.22
	recovFromMarathon = 1.38
	repetitionFrom5K  = 0.94
	paceBandHalfWidth = 0.03 // ±3% around the center pace
)

// Paces derives every training zone's pace range from a single VDOT score.
// Returns ErrOutOfRange outside [30,85].
func Paces(vdot float64) (ZonePaces, error) {
	if vdot < MinVDOT || vdot > MaxVDOT {
		return ZonePaces{}, fmt.Errorf("%w: %.1f (valid %g-%g)", ErrOutOfRange, vdot, MinVDOT, MaxVDOT)
	}

	low, high := bracket(vdot)
	e := blend(table[low], table[high], vdot)

	pace5K := e.t5K / (Distance5K / 1000)
	halfPace := e.tHalf / (DistanceHalf / 1000)
	marathonPace := e.tFull / (DistanceMarathon / 1000)

	center := func(p float64) plan.PaceRange {
		return plan.PaceRange{
			MinSecPerKm: math.Round(p * (1 - paceBandHalfWidth)),
			MaxSecPerKm: math.Round(p * (1 + paceBandHalfWidth)),
		}
	}

	return ZonePaces{
		Recovery:   center(marathonPace * recovFromMarathon),
		Easy:       center(marathonPace * easyFromMarathon),
		Marathon:   center(marathonPace),
		Threshold:  center(halfPace * thresholdFromHalf),
		Interval:   center(pace5K),
		Repetition: center(pace5K * repetitionFrom5K),
	}, nil
}

// LactateThresholdVelocity returns the threshold running velocity in meters
// per second for a VDOT score.
func LactateThresholdVelocity(vdot float64) (float64, error) {
	zp, err := Paces(vdot)
	if err != nil {
		return 0, err
	}
	center := (zp.Threshold.MinSecPerKm + zp.Threshold.MaxSecPerKm) / 2
	return 1000 / center, nil
}

// Label returns a human-readable fitness level for a VDOT score.
func Label(vdot float64) string {
	switch {
	case vdot >= 75:
		return "Elite"
	case vdot >= 65:
		return "Highly Competitive"
	case vdot >= 55:
		return "Competitive"
	case vdot >= 45:
		return "Advanced Recreational"
	case vdot >= 38:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// bracket returns the indices of the table rows surrounding a VDOT score.
func bracket(vdot float64) (int, int) {
	if vdot <= table[0].vdot {
		return 0, 0
	}
	if vdot >= table[len(table)-1].vdot {
		return len(table) - 1, len(table) - 1
	}
	low, high := 0, len(table)-1
	for high-low > 1 {
		mid := (low + high) / 2
		if table[mid].vdot <= vdot {
			low = mid
		} else {
			high = mid
		}
	}
	return low, high
}

// blend linearly interpolates the race times of two table rows.
func blend(a, b entry, vdot float64) entry {
	if a.vdot == b.vdot {
		return a
	}
	f := (vdot - a.vdot) / (b.vdot - a.vdot)
	return entry{
		vdot:  vdot,
		t5K:   a.t5K + f*(b.t5K-a.t5K),
		t10K:  a.t10K + f*(b.t10K-a.t10K),
		tHalf: a.tHalf + f*(b.tHalf-a.tHalf),
		tFull: a.tFull + f*(b.tFull-a.tFull),
	}
}
