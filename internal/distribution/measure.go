// Package distribution measures a plan's easy/moderate/hard intensity split,
// detects deviations from a target distribution, and iteratively corrects
// the plan until it converges or stops improving. The algorithm is
// methodology-agnostic: it sees only planned workouts and a target.
package distribution

import "github.com/claude/stride/internal/plan"

// Intensity classification boundaries: a segment is easy at or below
// easyMax, moderate up to moderateMax, hard above.
const (
	easyMax     = 75.0
	moderateMax = 85.0
)

// DefaultDistribution is the conventional result for inputs with zero total
// duration: all easy. Measuring nothing reports nothing hard.
var DefaultDistribution = plan.IntensityDistribution{Easy: 100, Moderate: 0, Hard: 0}

// Measure classifies every segment of every workout by intensity, weights by
// segment duration, and returns the percentage split of total training time.
func Measure(workouts []*plan.PlannedWorkout) plan.IntensityDistribution {
	var easy, moderate, hard float64
	for _, pw := range workouts {
		for _, seg := range pw.Workout.Segments {
			switch {
			case seg.Intensity <= easyMax:
				easy += seg.DurationMin
			case seg.Intensity <= moderateMax:
				moderate += seg.DurationMin
			default:
				hard += seg.DurationMin
			}
		}
	}
	total := easy + moderate + hard
	if total == 0 {
		return DefaultDistribution
	}
	return plan.IntensityDistribution{
		Easy:     easy / total * 100,
		Moderate: moderate / total * 100,
		Hard:     hard / total * 100,
	}.Round()
}
